package ambient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/integration"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

const (
	explorationContextLimit = 10

	explorationSystem = "You research a topic on behalf of a personal assistant. Using the known facts as background, produce a handful of new, concrete, verifiable findings about the topic. Respond with JSON only."
)

// explorationOutput is the model's structured answer for one topic.
type explorationOutput struct {
	Summary  string `json:"summary"`
	Findings []struct {
		Fact         string   `json:"fact"`
		EntityNames  []string `json:"entity_names,omitempty"`
		Confidence   float64  `json:"confidence"`
		WorthSharing bool     `json:"worth_sharing,omitempty"`
		ShareMessage string   `json:"share_message,omitempty"`
	} `json:"findings"`
}

var explorationSchema = []byte(`{
	"type": "object",
	"properties": {
		"summary": {"type": "string"},
		"findings": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"fact": {"type": "string"},
					"entity_names": {"type": "array", "items": {"type": "string"}},
					"confidence": {"type": "number", "minimum": 0, "maximum": 1},
					"worth_sharing": {"type": "boolean"},
					"share_message": {"type": "string"}
				},
				"required": ["fact", "confidence"],
				"additionalProperties": false
			}
		}
	},
	"required": ["summary", "findings"],
	"additionalProperties": false
}`)

// Explorer executes exploration queue tasks: research a claimed
// curiosity topic and hand the findings to the fact checker.
type Explorer struct {
	client   *ent.Client
	graph    graph.Client
	llm      llm.Client
	checker  *integration.Checker
	findings *services.FindingService
	tasks    *services.TaskService
	llmCfg   *config.LLMConfig
}

// NewExplorer creates the exploration executor.
func NewExplorer(client *ent.Client, graphClient graph.Client, llmClient llm.Client, checker *integration.Checker, findings *services.FindingService, tasks *services.TaskService, llmCfg *config.LLMConfig) *Explorer {
	return &Explorer{
		client:   client,
		graph:    graphClient,
		llm:      llmClient,
		checker:  checker,
		findings: findings,
		tasks:    tasks,
		llmCfg:   llmCfg,
	}
}

// Execute runs one exploration task end to end.
func (e *Explorer) Execute(ctx context.Context, task *ent.QueueTask) error {
	topic, _ := models.GetString(task.Metadata, "topic")
	if topic == "" {
		topic = task.Content
	}
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("exploration task %s has no topic", task.ID)
	}
	userID, _ := models.GetString(task.Metadata, "user_id")
	projectTaskID, _ := models.GetString(task.Metadata, "project_task_id")

	background := e.knownFacts(ctx, topic, userID)

	var out explorationOutput
	err := e.llm.Structured(ctx, llm.Request{
		System: explorationSystem,
		Prompt: e.prompt(topic, background),
		Model:  e.llmCfg.Model,
	}, explorationSchema, &out)
	if err != nil {
		return fmt.Errorf("failed to explore %q: %w", topic, err)
	}

	var inputs []services.FindingInput
	var facts []integration.Finding
	for _, f := range out.Findings {
		if strings.TrimSpace(f.Fact) == "" {
			continue
		}
		inputs = append(inputs, services.FindingInput{
			TaskID:        projectTaskID,
			Finding:       f.Fact,
			SourceContext: topic,
			Confidence:    f.Confidence,
			WorthSharing:  f.WorthSharing,
			ShareMessage:  f.ShareMessage,
		})
		facts = append(facts, integration.Finding{
			Fact:        f.Fact,
			EntityNames: f.EntityNames,
			Source:      "exploration",
			Context:     topic,
		})
	}

	if projectTaskID != "" && len(inputs) > 0 {
		if _, err := e.findings.Record(ctx, inputs); err != nil {
			slog.Warn("Failed to record findings", "task_id", projectTaskID, "error", err)
		}
	}

	result, err := e.checker.Integrate(ctx, userID, facts)
	if err != nil {
		return fmt.Errorf("failed to integrate findings: %w", err)
	}

	if projectTaskID != "" {
		outcome := fmt.Sprintf("explored %q: %d facts added, %d queued for review, %d skipped",
			topic, result.Added, result.Queued, result.Skipped)
		if _, err := e.tasks.SetStatus(ctx, projectTaskID, string(projecttask.StatusDone), outcome, out.Summary); err != nil {
			slog.Warn("Failed to close project task", "task_id", projectTaskID, "error", err)
		}
	}

	slog.Info("Exploration finished", "topic", topic,
		"added", result.Added, "queued", result.Queued, "skipped", result.Skipped)
	return nil
}

// knownFacts pulls graph context for the topic; an unavailable graph
// just means exploring without background.
func (e *Explorer) knownFacts(ctx context.Context, topic, userID string) []string {
	found, err := e.graph.HybridFactSearch(ctx, topic, userID, explorationContextLimit)
	if err != nil {
		slog.Warn("Graph unavailable for exploration context", "topic", topic, "error", err)
		return nil
	}
	var facts []string
	for _, f := range found {
		facts = append(facts, f.Fact)
	}
	return facts
}

func (e *Explorer) prompt(topic string, background []string) string {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\n")
	if len(background) > 0 {
		b.WriteString("Known facts:\n")
		for _, fact := range background {
			b.WriteString("- ")
			b.WriteString(fact)
			b.WriteString("\n")
		}
	}
	b.WriteString("Produce up to 5 findings.")
	return b.String()
}

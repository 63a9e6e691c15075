package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

// messagesAPI is the slice of the Anthropic SDK the client uses.
// Satisfied by *sdk.MessageService; tests substitute a stub.
type messagesAPI interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client on the Claude Messages API.
type AnthropicClient struct {
	msg messagesAPI
	cfg *config.LLMConfig
}

// NewAnthropicClient builds a client from the configured defaults.
// The API key is read from ANTHROPIC_API_KEY by the SDK.
func NewAnthropicClient(cfg *config.LLMConfig) *AnthropicClient {
	ac := sdk.NewClient()
	return &AnthropicClient{msg: &ac.Messages, cfg: cfg}
}

// Text returns the model's text completion for the request.
func (c *AnthropicClient) Text(ctx context.Context, req Request) (string, error) {
	text, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Structured asks for a JSON object, validates it against the schema,
// and decodes it into out.
func (c *AnthropicClient) Structured(ctx context.Context, req Request, schema []byte, out any) error {
	req.Prompt = req.Prompt + "\n\nRespond with a single JSON object matching this JSON Schema, with no prose and no code fences:\n" + string(schema)

	text, err := c.complete(ctx, req)
	if err != nil {
		return err
	}
	return DecodeStructured(text, schema, out)
}

func (c *AnthropicClient) complete(ctx context.Context, req Request) (string, error) {
	if req.Prompt == "" {
		return "", validationError(errors.New("prompt is required"))
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt))},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return "", classify(fmt.Errorf("messages.new: %w", err))
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", validationError(errors.New("model returned no text content"))
	}
	return text, nil
}

// DecodeStructured extracts the JSON object from a model reply,
// validates it against the schema, and decodes it into out.
func DecodeStructured(text string, schema []byte, out any) error {
	raw := extractJSON(text)
	if raw == "" {
		return validationError(errors.New("no JSON object in model output"))
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return validationError(fmt.Errorf("malformed JSON in model output: %w", err))
	}

	if len(schema) > 0 {
		compiled, err := compileSchema(schema)
		if err != nil {
			return fmt.Errorf("failed to compile output schema: %w", err)
		}
		if err := compiled.Validate(doc); err != nil {
			return validationError(fmt.Errorf("model output rejected by schema: %w", err))
		}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return validationError(fmt.Errorf("failed to decode model output: %w", err))
	}
	return nil
}

func compileSchema(schema []byte) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile("schema.json")
}

// extractJSON pulls the outermost JSON object from a reply, tolerating
// code fences and surrounding prose.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

package curiosity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/models"
)

const (
	taskTypeCuriosity = "curiosity"

	// prunedErrorMessage is the last_error written on every pruned task.
	prunedErrorMessage = "pruned by backlog limits"

	maxSerializableRetries = 3
	maxEntityChecksPerTurn = 5
)

var pendingStatuses = []projecttask.Status{
	projecttask.StatusBacklog,
	projecttask.StatusReady,
	projecttask.StatusBlocked,
}

// Pipeline turns conversation turns into backlog tasks. All writes for
// one turn happen in a single serializable per-user transaction so
// concurrent ingests from different mediums cannot corrupt the backlog
// bounds.
type Pipeline struct {
	client *ent.Client
	graph  graph.Client
	cfg    *config.CuriosityConfig
	sink   events.Sink
}

// NewPipeline creates a curiosity pipeline. graphClient and sink may be
// nil.
func NewPipeline(client *ent.Client, graphClient graph.Client, cfg *config.CuriosityConfig, sink events.Sink) *Pipeline {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Pipeline{client: client, graph: graphClient, cfg: cfg, sink: sink}
}

// Process runs the detectors over one turn and upserts the resulting
// signals. It returns the number of tasks created or re-triggered.
// Zero signals means zero writes.
func (p *Pipeline) Process(ctx context.Context, turn Turn) (int, error) {
	if turn.UserID == "" {
		return 0, errors.New("user_id is required")
	}

	signals := Detect(turn)
	signals = append(signals, p.detectUnfamiliarEntities(ctx, turn)...)
	signals = dedupeByTopic(signals)
	if len(signals) == 0 {
		return 0, nil
	}

	var (
		upserted int
		emits    []emit
		err      error
	)
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		upserted, emits, err = p.processTx(ctx, turn, signals)
		if err == nil || !isSerializationFailure(err) {
			break
		}
		slog.Debug("Curiosity transaction serialization conflict, retrying",
			"user_id", turn.UserID, "attempt", attempt+1)
	}
	if err != nil {
		return 0, err
	}

	for _, e := range emits {
		_ = p.sink.Emit(ctx, e.kind, e.payload)
	}
	return upserted, nil
}

type emit struct {
	kind    string
	payload map[string]any
}

func (p *Pipeline) processTx(ctx context.Context, turn Turn, signals []Signal) (int, []emit, error) {
	tx, err := p.client.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var emits []emit
	upserted := 0
	for _, signal := range signals {
		e, err := p.upsertSignal(ctx, tx, turn, signal)
		if err != nil {
			return 0, nil, err
		}
		if e != nil {
			emits = append(emits, *e)
			upserted++
		}
	}

	pruneEmits, err := p.enforceBacklogBounds(ctx, tx, turn.UserID)
	if err != nil {
		return 0, nil, err
	}
	emits = append(emits, pruneEmits...)

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("failed to commit curiosity transaction: %w", err)
	}
	return upserted, emits, nil
}

// upsertSignal applies one signal, keyed by lowercased title within the
// user's curiosity backlog. Terminal tasks are left untouched.
func (p *Pipeline) upsertSignal(ctx context.Context, tx *ent.Tx, turn Turn, signal Signal) (*emit, error) {
	existing, err := tx.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(turn.UserID),
			projecttask.TaskTypeEQ(taskTypeCuriosity),
			projecttask.TitleEqualFold(signal.Topic),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up curiosity task: %w", err)
	}

	if existing != nil {
		switch existing.Status {
		case projecttask.StatusDone, projecttask.StatusCancelled:
			return nil, nil
		case projecttask.StatusBacklog, projecttask.StatusReady, projecttask.StatusBlocked:
			return p.retrigger(ctx, existing, signal)
		}
		// in_progress falls through to a fresh row: the active
		// exploration keeps its claim, the new trigger gets its own.
	}

	score, factors := Score(signal, 0, 0, p.cfg)
	priority := StoredPriority(score)
	extra := models.JSONMap{
		"signal_type":       signal.Type,
		"trigger_count":     1,
		"exploration_count": 0,
		"priority_factors":  factorsMap(factors),
	}

	task, err := tx.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle(signal.Topic).
		SetDescription(signal.Evidence).
		SetTaskType(taskTypeCuriosity).
		SetStatus(projecttask.StatusReady).
		SetPriority(priority).
		SetUserID(turn.UserID).
		SetExtra(extra).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create curiosity task: %w", err)
	}

	return &emit{
		kind: events.KindCuriosityTriggered,
		payload: map[string]any{
			"task_id":     task.ID,
			"user_id":     turn.UserID,
			"topic":       signal.Topic,
			"signal_type": signal.Type,
			"priority":    priority,
		},
	}, nil
}

// retrigger bumps an existing pending task: trigger count, freshness,
// merged factors, and a monotone priority.
func (p *Pipeline) retrigger(ctx context.Context, existing *ent.ProjectTask, signal Signal) (*emit, error) {
	triggerCount, _ := models.GetInt(existing.Extra, "trigger_count")
	triggerCount++
	explorationCount, _ := models.GetInt(existing.Extra, "exploration_count")

	score, factors := Score(signal, 0, explorationCount, p.cfg)
	candidate := StoredPriority(score + RepeatBonus(triggerCount))
	priority := existing.Priority
	if candidate > priority {
		priority = candidate
	}

	extra := models.Merge(existing.Extra, models.JSONMap{
		"trigger_count":    triggerCount,
		"priority_factors": factorsMap(factors),
	})

	task, err := existing.Update().
		SetPriority(priority).
		SetLastTriggeredAt(time.Now()).
		SetExtra(extra).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-trigger curiosity task: %w", err)
	}

	return &emit{
		kind: events.KindCuriosityTriggered,
		payload: map[string]any{
			"task_id":       task.ID,
			"user_id":       task.UserID,
			"topic":         task.Title,
			"signal_type":   signal.Type,
			"priority":      priority,
			"trigger_count": triggerCount,
		},
	}, nil
}

// enforceBacklogBounds prunes the user's pending curiosity tasks down
// to the configured limits inside the calling transaction. Expired and
// low-priority tasks go first, then the per-type and per-user caps
// drop the lowest-priority remainder. unfamiliar_entity is exempt from
// the per-type cap: it is the high-volume signal and is bounded by the
// per-user cap alone.
func (p *Pipeline) enforceBacklogBounds(ctx context.Context, tx *ent.Tx, userID string) ([]emit, error) {
	pending, err := tx.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(userID),
			projecttask.TaskTypeEQ(taskTypeCuriosity),
			projecttask.StatusIn(pendingStatuses...),
		).
		Order(ent.Desc(projecttask.FieldPriority), ent.Desc(projecttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending backlog: %w", err)
	}

	now := time.Now()
	var emits []emit
	prune := func(task *ent.ProjectTask, reason string) error {
		extra := models.Merge(task.Extra, models.JSONMap{"pruned_reason": reason})
		err := task.Update().
			SetStatus(projecttask.StatusCancelled).
			SetLastError(prunedErrorMessage).
			SetExtra(extra).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to prune task %s: %w", task.ID, err)
		}
		emits = append(emits, emit{
			kind: events.KindCuriosityPruned,
			payload: map[string]any{
				"task_id": task.ID,
				"user_id": userID,
				"topic":   task.Title,
				"reason":  reason,
			},
		})
		return nil
	}

	kept := 0
	perType := map[string]int{}
	for _, task := range pending {
		signalType, _ := models.GetString(task.Extra, "signal_type")

		effective := task.CreatedAt
		if task.LastTriggeredAt != nil {
			effective = *task.LastTriggeredAt
		}
		ttl := time.Duration(TTLDays(signalType, p.cfg)) * 24 * time.Hour
		if now.Sub(effective) > ttl {
			if err := prune(task, "expired"); err != nil {
				return nil, err
			}
			continue
		}

		if task.Priority < p.cfg.MinPriority {
			if err := prune(task, "low_priority"); err != nil {
				return nil, err
			}
			continue
		}

		overTypeCap := signalType != TypeUnfamiliarEntity &&
			perType[signalType] >= p.cfg.MaxPendingPerType
		if kept >= p.cfg.MaxPendingPerUser || overTypeCap {
			if err := prune(task, "backlog_limits"); err != nil {
				return nil, err
			}
			continue
		}

		kept++
		perType[signalType]++
	}
	return emits, nil
}

// detectUnfamiliarEntities checks candidate entity names against the
// graph and flags the ones it has never seen. Graph trouble silently
// disables the detector for the turn.
func (p *Pipeline) detectUnfamiliarEntities(ctx context.Context, turn Turn) []Signal {
	if turn.Role != "user" || p.graph == nil {
		return nil
	}
	names := ExtractCandidateEntities(turn.Text)
	if len(names) > maxEntityChecksPerTurn {
		names = names[:maxEntityChecksPerTurn]
	}

	var signals []Signal
	for _, name := range names {
		nodes, err := p.graph.HybridNodeSearch(ctx, name, turn.UserID, 1)
		if err != nil {
			slog.Debug("Entity lookup failed, skipping unfamiliar-entity detection",
				"user_id", turn.UserID, "error", err)
			return signals
		}
		if len(nodes) == 0 {
			signals = append(signals, Signal{
				Type:     TypeUnfamiliarEntity,
				Topic:    name,
				Interest: 0.4,
				Evidence: turn.Text,
			})
		}
	}
	return signals
}

func dedupeByTopic(signals []Signal) []Signal {
	seen := map[string]bool{}
	out := signals[:0]
	for _, s := range signals {
		if s.Topic == "" {
			continue
		}
		key := NormalizedTopic(s.Topic)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func factorsMap(f Factors) models.JSONMap {
	return models.JSONMap{
		"interest":          f.Interest,
		"knowledge_gap":     f.KnowledgeGap,
		"type_weight":       f.TypeWeight,
		"recency":           f.Recency,
		"exploration_boost": f.ExplorationBoost,
	}
}

// isSerializationFailure reports a postgres serialization conflict
// (SQLSTATE 40001), the expected outcome of two concurrent ingests for
// the same user.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

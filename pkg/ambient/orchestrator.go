package ambient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/entitymention"
	"github.com/kestrel-ai/kestrel/ent/mission"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

const (
	taskTypeExploration = "exploration"
	taskTypeCuriosity   = "curiosity"

	// Lookback floor per tick; the ceiling comes from config.
	minLookback = 10 * time.Minute

	// An in_progress project task untouched for this long counts as
	// overdue and defeats the "nothing changed" skip.
	overdueAfter = 24 * time.Hour

	fingerprintEntityLimit = 10

	ambientMissionSystem = "You are the ambient layer of a personal assistant. Given the user's current context, decide whether a short proactive message is worth sending right now. Most of the time the answer is no. Respond with JSON only."
)

// Deps are the orchestrator's collaborators.
type Deps struct {
	Client        *ent.Client
	State         *services.StateService
	Sessions      *services.SessionService
	Presence      *services.PresenceService
	Notifications *services.NotificationService
	Missions      *services.MissionService
	Tasks         *services.TaskService
	Queue         *queue.Service
	LLM           llm.Client
	Activity      ActivitySource
	Config        *config.AmbientConfig
	LLMConfig     *config.LLMConfig
	Defaults      *config.Defaults
	Sink          events.Sink
}

// Orchestrator runs the jittered ambient tick for the deployment user.
type Orchestrator struct {
	deps Deps

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu           sync.Mutex
	lastTickAt   time.Time
	streaks      map[string]*streak
	fingerprints map[string]*Fingerprint
}

// NewOrchestrator wires an orchestrator. Deps.Sink and Deps.Activity
// may be nil; the store-backed activity source is the default.
func NewOrchestrator(deps Deps) *Orchestrator {
	if deps.Sink == nil {
		deps.Sink = events.NopSink{}
	}
	if deps.Activity == nil {
		deps.Activity = NewStoreActivity(deps.Client)
	}
	return &Orchestrator{
		deps:         deps,
		stopCh:       make(chan struct{}),
		streaks:      map[string]*streak{},
		fingerprints: map[string]*Fingerprint{},
	}
}

// Start launches the tick loop after the configured startup delay.
func (o *Orchestrator) Start(ctx context.Context) {
	o.wg.Add(1)
	go o.run(ctx)
	slog.Info("Ambient orchestrator started",
		"check_interval", o.deps.Config.CheckInterval,
		"startup_delay", o.deps.Config.StartupDelay)
}

// Stop signals the loop to exit and waits for it.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		close(o.stopCh)
	})
	o.wg.Wait()
}

func (o *Orchestrator) run(ctx context.Context) {
	defer o.wg.Done()

	if !o.sleep(ctx, o.deps.Config.StartupDelay) {
		return
	}
	for {
		if err := o.Tick(ctx); err != nil {
			slog.Error("Ambient tick failed", "error", err)
		}
		if !o.sleep(ctx, jittered(o.deps.Config.CheckInterval)) {
			return
		}
	}
}

// jittered returns base ± 30% uniform.
func jittered(base time.Duration) time.Duration {
	if base <= 0 {
		return base
	}
	spread := int64(float64(base) * 0.3)
	return time.Duration(int64(base) - spread + rand.Int64N(2*spread+1))
}

func (o *Orchestrator) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-o.stopCh:
		return false
	case <-timer.C:
		return true
	}
}

// Tick performs one checkAndEngage pass for the deployment user. At
// most one outward action happens per tick.
func (o *Orchestrator) Tick(ctx context.Context) error {
	return o.checkAndEngage(ctx, o.deps.Defaults.UserID)
}

func (o *Orchestrator) checkAndEngage(ctx context.Context, userID string) error {
	now := time.Now()
	lookback := o.tickLookback(now)

	sample, err := o.deps.Activity.Current(ctx, userID, lookback)
	if err != nil {
		return fmt.Errorf("failed to sample activity: %w", err)
	}
	o.observeStreak(userID, sample, now)

	ds, err := o.deps.State.Get(ctx, userID)
	if err != nil {
		return err
	}
	active, err := o.activeSessionCount(ctx, userID)
	if err != nil {
		return err
	}
	state := DeriveState(ds, active, o.deps.Config.IdleThreshold, now)

	if o.deps.Config.ExplorationEnabled {
		fired, err := o.maybeRunExploration(ctx, userID, state)
		if err != nil {
			slog.Warn("Exploration kickoff failed", "user_id", userID, "error", err)
		} else if fired {
			return nil
		}
	}

	// Engaged and suppressed users are left alone. Proactive contact
	// additionally requires the cooldown to have elapsed.
	if state == StateEngaged || state == StateSuppressed {
		return nil
	}
	if ds.LastProactiveContactAt != nil &&
		now.Sub(*ds.LastProactiveContactAt) < o.deps.Config.ProactiveCooldown {
		return nil
	}

	engage, fingerprint, err := o.shouldEngage(ctx, userID, ds, sample, lookback, now)
	if err != nil {
		return err
	}
	if !engage {
		return nil
	}

	decision, err := o.runAmbientMission(ctx, userID, fingerprint)
	if err != nil {
		// Mission failures are recorded on the execution; the tick
		// simply stands down with no user-visible effect.
		slog.Warn("Ambient mission failed", "user_id", userID, "error", err)
		return nil
	}
	if decision == nil || !decision.Send ||
		decision.Confidence < o.deps.Config.DecisionConfidenceFloor {
		return nil
	}
	return o.deliver(ctx, userID, decision, fingerprint)
}

// tickLookback clamps the window since the previous tick.
func (o *Orchestrator) tickLookback(now time.Time) time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	max := time.Duration(o.deps.Config.ActivityLookbackHours) * time.Hour
	lookback := max
	if !o.lastTickAt.IsZero() {
		lookback = now.Sub(o.lastTickAt)
	}
	o.lastTickAt = now

	if lookback < minLookback {
		return minLookback
	}
	if lookback > max {
		return max
	}
	return lookback
}

func (o *Orchestrator) observeStreak(userID string, sample Sample, now time.Time) time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, ok := o.streaks[userID]
	if !ok {
		s = &streak{}
		o.streaks[userID] = s
	}
	return s.observe(sample, now)
}

func (o *Orchestrator) activeSessionCount(ctx context.Context, userID string) (int, error) {
	sessions, err := o.deps.Sessions.ListSessions(ctx, models.SessionFilters{
		UserID:     userID,
		ActiveOnly: true,
	})
	if err != nil {
		return 0, err
	}

	// A session counts as active only while it is actually being used;
	// lingering never-ended sessions do not pin the user to engaged.
	cutoff := time.Now().Add(-o.deps.Config.IdleThreshold)
	active := 0
	for _, sess := range sessions {
		if sess.LastActivity.After(cutoff) {
			active++
		}
	}
	return active, nil
}

// shouldEngage decides whether the context justifies a proactive check.
func (o *Orchestrator) shouldEngage(ctx context.Context, userID string, ds *ent.DaemonState, sample Sample, lookback time.Duration, now time.Time) (bool, *Fingerprint, error) {
	online, err := o.deps.Presence.Online(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if len(online) == 0 && o.deps.Defaults.NotificationMethod == "daemon" {
		// Nobody is listening and there is no desktop fallback.
		return false, nil, nil
	}
	if ds.LastInteractionAt != nil && now.Sub(*ds.LastInteractionAt) < o.deps.Config.IdleThreshold {
		return false, nil, nil
	}

	fingerprint, err := o.buildFingerprint(ctx, userID, sample, lookback)
	if err != nil {
		return false, nil, err
	}

	o.mu.Lock()
	previous := o.fingerprints[userID]
	o.fingerprints[userID] = fingerprint
	o.mu.Unlock()

	if previous != nil && Similarity(*previous, *fingerprint) >= o.deps.Config.ContextChangeThreshold {
		overdue, err := o.hasOverdueTasks(ctx, userID)
		if err != nil {
			return false, nil, err
		}
		unacked, err := o.deps.Notifications.RecentUnacknowledged(ctx, userID, 1)
		if err != nil {
			return false, nil, err
		}
		if !overdue && len(unacked) == 0 {
			return false, nil, nil
		}
	}
	return true, fingerprint, nil
}

func (o *Orchestrator) buildFingerprint(ctx context.Context, userID string, sample Sample, lookback time.Duration) (*Fingerprint, error) {
	mentions, err := o.deps.Client.EntityMention.Query().
		Where(entitymention.CreatedAtGTE(time.Now().Add(-lookback))).
		Order(ent.Desc(entitymention.FieldCreatedAt)).
		Limit(fingerprintEntityLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity mentions: %w", err)
	}
	entities := map[string]bool{}
	for _, m := range mentions {
		entities[m.NormalizedValue] = true
	}

	open, err := o.deps.Client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(userID),
			projecttask.StatusIn(projecttask.StatusBacklog, projecttask.StatusReady, projecttask.StatusInProgress),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open tasks: %w", err)
	}
	tasks := map[string]bool{}
	for _, id := range open {
		tasks[id] = true
	}

	return &Fingerprint{Activity: sample, Entities: entities, Tasks: tasks}, nil
}

func (o *Orchestrator) hasOverdueTasks(ctx context.Context, userID string) (bool, error) {
	count, err := o.deps.Client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(userID),
			projecttask.StatusEQ(projecttask.StatusInProgress),
			projecttask.StartedAtLT(time.Now().Add(-overdueAfter)),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count overdue tasks: %w", err)
	}
	return count > 0, nil
}

// runAmbientMission records a short-lived mission and asks the model
// for a send/stand-down decision. A validation failure marks the
// execution failed and yields no decision.
func (o *Orchestrator) runAmbientMission(ctx context.Context, userID string, fingerprint *Fingerprint) (*Decision, error) {
	created, err := o.deps.Missions.Create(ctx, models.CreateMissionRequest{
		Name:   fmt.Sprintf("ambient-check-%s", time.Now().Format("20060102-150405")),
		Prompt: o.missionPrompt(userID, fingerprint),
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	running := string(mission.StatusRunningOnce)
	if _, err := o.deps.Missions.Update(ctx, created.ID, models.UpdateMissionRequest{Status: &running}); err != nil {
		return nil, err
	}
	execution, err := o.deps.Missions.StartExecution(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, o.deps.LLMConfig.Timeout)
	defer cancel()

	var decision Decision
	err = o.deps.LLM.Structured(llmCtx, llm.Request{
		System: ambientMissionSystem,
		Prompt: created.Prompt,
		Model:  o.deps.LLMConfig.Model,
	}, decisionSchema, &decision)
	if err != nil {
		if _, ferr := o.deps.Missions.FinishExecution(ctx, execution.ID, "", err.Error(), nil, 0); ferr != nil {
			slog.Warn("Failed to record mission failure", "execution_id", execution.ID, "error", ferr)
		}
		return nil, err
	}

	structured := map[string]interface{}{
		"send":       decision.Send,
		"confidence": decision.Confidence,
		"priority":   decision.Priority,
		"reasoning":  decision.Reasoning,
	}
	if _, err := o.deps.Missions.FinishExecution(ctx, execution.ID, decision.Message, "", structured, 0); err != nil {
		slog.Warn("Failed to record mission outcome", "execution_id", execution.ID, "error", err)
	}

	_ = o.deps.Sink.Emit(ctx, events.KindAmbientDecision, map[string]any{
		"user_id":    userID,
		"send":       decision.Send,
		"confidence": decision.Confidence,
	})
	return &decision, nil
}

func (o *Orchestrator) missionPrompt(userID string, fingerprint *Fingerprint) string {
	var b strings.Builder
	b.WriteString("Current context for user ")
	b.WriteString(userID)
	b.WriteString(".\n")
	if fingerprint.Activity.App != "" || fingerprint.Activity.Title != "" {
		fmt.Fprintf(&b, "Activity: %s %s\n", fingerprint.Activity.App, fingerprint.Activity.Title)
	}
	if len(fingerprint.Entities) > 0 {
		b.WriteString("Recent topics: ")
		b.WriteString(strings.Join(sortedKeys(fingerprint.Entities), ", "))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Open tasks: %d\n", len(fingerprint.Tasks))
	b.WriteString("Decide whether to send a short, genuinely useful proactive message.")
	return b.String()
}

// deliver writes the pending notification with its context snapshot and
// stamps the proactive contact on daemon state.
func (o *Orchestrator) deliver(ctx context.Context, userID string, decision *Decision, fingerprint *Fingerprint) error {
	target, err := o.deps.Presence.PickTarget(ctx, userID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			return err
		}
		if o.deps.Defaults.NotificationMethod == "daemon" {
			return nil
		}
		target = &services.DeliveryTarget{Medium: "desktop"}
	}

	snapshot := map[string]interface{}{
		"activity_app":   fingerprint.Activity.App,
		"activity_title": fingerprint.Activity.Title,
		"entities":       sortedKeys(fingerprint.Entities),
		"open_tasks":     len(fingerprint.Tasks),
		"confidence":     decision.Confidence,
	}
	notification, err := o.deps.Notifications.Create(ctx, services.CreateNotificationInput{
		UserID:           userID,
		Message:          decision.Message,
		Priority:         decision.Priority,
		TargetMedium:     target.Medium,
		TargetLocation:   target.Location,
		RoutingReasoning: decision.Reasoning,
		ContextSnapshot:  snapshot,
	})
	if err != nil {
		return err
	}

	if err := o.deps.State.RecordProactiveContact(ctx, userID); err != nil {
		return err
	}
	if err := o.deps.State.RecordInteraction(ctx, userID); err != nil {
		return err
	}

	_ = o.deps.Sink.Emit(ctx, events.KindNotificationCreated, map[string]any{
		"notification_id": notification.ID,
		"user_id":         userID,
		"medium":          target.Medium,
		"priority":        string(notification.Priority),
	})
	slog.Info("Proactive notification created",
		"notification_id", notification.ID, "user_id", userID, "medium", target.Medium)
	return nil
}

// maybeRunExploration claims the most urgent pending curiosity task and
// hands it to the work queue. Returns true when a kickoff happened.
func (o *Orchestrator) maybeRunExploration(ctx context.Context, userID string, state State) (bool, error) {
	if state == StateEngaged {
		return false, nil
	}

	today, err := o.deps.Client.QueueTask.Query().
		Where(
			queuetask.TaskTypeEQ(taskTypeExploration),
			queuetask.CreatedAtGTE(time.Now().Add(-24*time.Hour)),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count explorations: %w", err)
	}
	if today >= o.deps.Config.MaxExplorationsPerDay {
		return false, nil
	}

	candidate, err := o.deps.Client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(userID),
			projecttask.TaskTypeEQ(taskTypeCuriosity),
			projecttask.StatusIn(projecttask.StatusBacklog, projecttask.StatusReady),
		).
		Order(ent.Desc(projecttask.FieldPriority), ent.Asc(projecttask.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to pick curiosity task: %w", err)
	}

	if state != StateIdle {
		forced, err := o.explorationOverdue(ctx)
		if err != nil {
			return false, err
		}
		if !forced {
			return false, nil
		}
	}

	if _, err := o.deps.Tasks.SetStatus(ctx, candidate.ID, string(projecttask.StatusInProgress), "", ""); err != nil {
		return false, err
	}
	queued, err := o.deps.Queue.Enqueue(ctx, queue.EnqueueInput{
		TaskType: taskTypeExploration,
		Content:  candidate.Title,
		Priority: queuePriorityFor(candidate.Priority),
		Metadata: map[string]interface{}{
			"project_task_id": candidate.ID,
			"user_id":         userID,
			"topic":           candidate.Title,
		},
	})
	if err != nil {
		return false, err
	}

	_ = o.deps.Sink.Emit(ctx, events.KindExplorationStarted, map[string]any{
		"project_task_id": candidate.ID,
		"queue_task_id":   queued.ID,
		"user_id":         userID,
		"topic":           candidate.Title,
	})
	slog.Info("Exploration kicked off",
		"project_task_id", candidate.ID, "topic", candidate.Title, "user_id", userID)
	return true, nil
}

// explorationOverdue reports whether the forced-kickoff window elapsed
// since the last exploration.
func (o *Orchestrator) explorationOverdue(ctx context.Context) (bool, error) {
	last, err := o.deps.Client.QueueTask.Query().
		Where(queuetask.TaskTypeEQ(taskTypeExploration)).
		Order(ent.Desc(queuetask.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to find last exploration: %w", err)
	}
	gap := time.Duration(o.deps.Config.MaxHoursBetweenExplorations) * time.Hour
	return time.Since(last.CreatedAt) >= gap, nil
}

// queuePriorityFor maps the descending project-task priority onto the
// ascending queue convention.
func queuePriorityFor(taskPriority int) int {
	p := 100 - taskPriority
	if p < 1 {
		p = 1
	}
	if p > 100 {
		p = 100
	}
	return p
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

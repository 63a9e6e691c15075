package ambient

import (
	"context"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/session"
)

// Similarity weights. Activity dominates: a user who switched apps is
// in a new context even when the entity overlap is high.
const (
	weightActivity = 0.5
	weightEntities = 0.3
	weightTasks    = 0.2
)

// Sample is one observation of what the user is doing right now.
type Sample struct {
	App   string
	Title string
}

// Key is the streak identity of a sample.
func (s Sample) Key() string {
	return s.App + "\x00" + s.Title
}

// ActivitySource reports the user's current foreground activity.
type ActivitySource interface {
	Current(ctx context.Context, userID string, lookback time.Duration) (Sample, error)
}

// storeActivity derives activity from the store: the medium and working
// dir of the session that spoke most recently within the lookback.
type storeActivity struct {
	client *ent.Client
}

// NewStoreActivity returns an ActivitySource backed by recent
// conversation rows. Deployments with a real desktop watcher plug in
// their own source instead.
func NewStoreActivity(client *ent.Client) ActivitySource {
	return &storeActivity{client: client}
}

func (a *storeActivity) Current(ctx context.Context, userID string, lookback time.Duration) (Sample, error) {
	last, err := a.client.Conversation.Query().
		Where(
			conversation.UserIDEQ(userID),
			conversation.CreatedAtGTE(time.Now().Add(-lookback)),
		).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Sample{}, nil
		}
		return Sample{}, err
	}

	sample := Sample{App: last.Medium}
	sess, err := a.client.Session.Query().
		Where(session.IDEQ(last.SessionID)).
		Only(ctx)
	if err == nil {
		sample.Title = sess.WorkingDir
		if sample.App == "" {
			sample.App = sess.Medium
		}
	}
	return sample, nil
}

// Fingerprint captures the user's context at one tick: foreground
// activity plus the sets of recent entity tokens and open task ids.
type Fingerprint struct {
	Activity Sample
	Entities map[string]bool
	Tasks    map[string]bool
}

// Similarity compares two fingerprints. Identical activity scores the
// full activity weight; the sets contribute their Jaccard overlap.
func Similarity(prev, cur Fingerprint) float64 {
	activity := 0.0
	if prev.Activity == cur.Activity {
		activity = 1.0
	}
	return weightActivity*activity +
		weightEntities*jaccard(prev.Entities, cur.Entities) +
		weightTasks*jaccard(prev.Tasks, cur.Tasks)
}

// jaccard of two empty sets is 1: nothing changed.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

// streak is a running (app, title) key with accumulated duration.
type streak struct {
	key   string
	since time.Time
}

// observe updates the streak for the sample and returns how long the
// current activity has been continuous.
func (s *streak) observe(sample Sample, now time.Time) time.Duration {
	key := sample.Key()
	if s.key != key {
		s.key = key
		s.since = now
	}
	return now.Sub(s.since)
}

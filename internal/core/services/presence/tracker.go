package presence

import (
	"context"
	"log"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
	"github.com/thermovote/thermovote/internal/telemetry"
)

const (
	// DefaultTTL is how long a session stays live without activity.
	DefaultTTL = 5 * time.Minute

	// DefaultSweepInterval is how often stale records are evicted.
	DefaultSweepInterval = 5 * time.Minute
)

// Tracker maintains the live-session record set used for the approximate
// online-user count. Records are evicted by the periodic sweep, not
// filtered at query time.
type Tracker struct {
	conns ports.ConnectionRepository
	ttl   time.Duration
	now   func() time.Time
}

// NewTracker creates a Tracker with the given staleness threshold. A zero
// ttl means DefaultTTL.
func NewTracker(conns ports.ConnectionRepository, ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		conns: conns,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Touch upserts the last-seen time for a session. An existing record is
// refreshed in place; a session never has more than one live record.
func (t *Tracker) Touch(ctx context.Context, sessionID string) error {
	if !domain.IsValidSessionID(sessionID) {
		return domain.NewValidationError("sessionId", "malformed session token")
	}
	return t.conns.TouchConnection(ctx, sessionID, t.now())
}

// CountLive returns the size of the current record set.
func (t *Tracker) CountLive(ctx context.Context) (int, error) {
	return t.conns.CountConnections(ctx)
}

// Sweep removes every record whose LastSeen is older than the staleness
// threshold and returns how many were removed.
func (t *Tracker) Sweep(ctx context.Context) (int, error) {
	removed, err := t.conns.DeleteConnectionsBefore(ctx, t.now().Add(-t.ttl))
	if err != nil {
		return 0, err
	}

	live, err := t.conns.CountConnections(ctx)
	if err == nil {
		telemetry.ConnectedSessions.Set(float64(live))
	}
	return removed, nil
}

// StartSweepLoop manages the periodic eviction of stale sessions. It only
// needs eventual execution and assumes no ordering relative to request
// handling.
func (t *Tracker) StartSweepLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := t.Sweep(ctx)
				if err != nil {
					log.Printf("Connection sweep failed: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("Connection sweep removed %d stale session(s)", removed)
				}
			}
		}
	}()
}

// Ensure interface compliance
var _ ports.PresenceTracker = (*Tracker)(nil)

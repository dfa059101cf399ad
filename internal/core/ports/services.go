package ports

import (
	"context"

	"github.com/thermovote/thermovote/internal/core/domain"
)

// ZoneService is the behavior the web layer depends on for zone reads and
// vote ingestion.
type ZoneService interface {
	// GetZones returns all zones with recency counts overlaid.
	GetZones(ctx context.Context) ([]domain.ZoneView, error)
	// GetZone returns the raw stored zone, or domain.ErrZoneNotFound.
	GetZone(ctx context.Context, id string) (*domain.Zone, error)
	// SubmitVote validates, appends the event, recomputes the temperature
	// and returns the updated view. The only write path for temperature.
	SubmitVote(ctx context.Context, zoneID string, voteType domain.VoteType) (*domain.ZoneView, error)
	// GetSystemStats aggregates recency counts and temperatures across all
	// zones.
	GetSystemStats(ctx context.Context) (*domain.SystemStats, error)
}

// HistoryService builds the chart-facing vote series.
type HistoryService interface {
	// BuildSeries returns exactly hours*6 gap-filled 10-minute buckets,
	// oldest to newest, ending at the bucket containing now.
	BuildSeries(ctx context.Context, zoneID string, hours int) ([]domain.HistoryBucket, error)
}

// PresenceTracker tracks session liveness for the connected-user count.
type PresenceTracker interface {
	Touch(ctx context.Context, sessionID string) error
	CountLive(ctx context.Context) (int, error)
}

// ZoneNotifier pushes zone updates to connected clients. Implemented by
// the websocket manager; a nil notifier is valid and means no push.
type ZoneNotifier interface {
	NotifyZoneUpdate(view domain.ZoneView)
}

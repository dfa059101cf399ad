package ports

import (
	"context"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
)

// ZoneRepository defines persistence for zones.
type ZoneRepository interface {
	// ListZones retrieves all zones ordered by id.
	ListZones(ctx context.Context) ([]domain.Zone, error)
	// GetZone retrieves a zone by id, or domain.ErrZoneNotFound.
	GetZone(ctx context.Context, id string) (*domain.Zone, error)
	// UpdateZoneTemperature persists a freshly computed temperature and its
	// timestamp. This is the only mutation a zone row ever receives.
	UpdateZoneTemperature(ctx context.Context, id string, temperature float64, at time.Time) error
	// SeedZones inserts the given zones if they do not already exist.
	SeedZones(ctx context.Context, zones []domain.Zone) error
}

// VoteLedger defines the append-only store of vote events.
type VoteLedger interface {
	// AppendVote records a vote event. Events are never updated or deleted.
	AppendVote(ctx context.Context, event domain.VoteEvent) error
	// VotesSince returns all events for the zone with timestamp >= since.
	VotesSince(ctx context.Context, zoneID string, since time.Time) ([]domain.VoteEvent, error)
}

// SampleRepository defines the append-only temperature history.
type SampleRepository interface {
	SaveSample(ctx context.Context, sample domain.TemperatureSample) error
	// ListSamples returns the most recent samples for a zone, newest first.
	ListSamples(ctx context.Context, zoneID string, limit int) ([]domain.TemperatureSample, error)
}

// ConnectionRepository defines the live-session record set.
type ConnectionRepository interface {
	// TouchConnection upserts the record for sessionID with LastSeen=at.
	TouchConnection(ctx context.Context, sessionID string, at time.Time) error
	// CountConnections returns the size of the current record set.
	CountConnections(ctx context.Context) (int, error)
	// DeleteConnectionsBefore removes records last seen before cutoff and
	// reports how many were removed.
	DeleteConnectionsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Storage aggregates all persistence concerns behind one connection.
type Storage interface {
	ZoneRepository
	VoteLedger
	SampleRepository
	ConnectionRepository

	// Close closes the storage connection.
	Close() error
}

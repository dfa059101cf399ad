package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

// MemoryAdapter implements ports.Storage entirely in memory. It backs the
// ephemeral deployment mode and the service tests; state is lost on
// restart.
type MemoryAdapter struct {
	mu          sync.RWMutex
	zones       map[string]domain.Zone
	votes       []domain.VoteEvent
	samples     []domain.TemperatureSample
	connections map[string]time.Time
}

// NewMemoryAdapter creates an empty in-memory store.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		zones:       make(map[string]domain.Zone),
		connections: make(map[string]time.Time),
	}
}

// ListZones retrieves all zones ordered by id.
func (a *MemoryAdapter) ListZones(ctx context.Context) ([]domain.Zone, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	zones := make([]domain.Zone, 0, len(a.zones))
	for _, z := range a.zones {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
	return zones, nil
}

// GetZone retrieves a zone by id.
func (a *MemoryAdapter) GetZone(ctx context.Context, id string) (*domain.Zone, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	z, ok := a.zones[id]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	return &z, nil
}

// UpdateZoneTemperature persists a computed temperature and its timestamp.
func (a *MemoryAdapter) UpdateZoneTemperature(ctx context.Context, id string, temperature float64, at time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	z, ok := a.zones[id]
	if !ok {
		return domain.ErrZoneNotFound
	}
	z.Temperature = temperature
	z.LastUpdated = at
	a.zones[id] = z
	return nil
}

// SeedZones inserts the given zones if they do not already exist.
func (a *MemoryAdapter) SeedZones(ctx context.Context, zones []domain.Zone) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, z := range zones {
		if _, ok := a.zones[z.ID]; !ok {
			a.zones[z.ID] = z
		}
	}
	return nil
}

// AppendVote records a vote event.
func (a *MemoryAdapter) AppendVote(ctx context.Context, event domain.VoteEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.votes = append(a.votes, event)
	return nil
}

// VotesSince returns all events for the zone with timestamp >= since,
// oldest first.
func (a *MemoryAdapter) VotesSince(ctx context.Context, zoneID string, since time.Time) ([]domain.VoteEvent, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var events []domain.VoteEvent
	for _, ev := range a.votes {
		if ev.ZoneID == zoneID && !ev.Timestamp.Before(since) {
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })
	return events, nil
}

// SaveSample appends a temperature sample.
func (a *MemoryAdapter) SaveSample(ctx context.Context, sample domain.TemperatureSample) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.samples = append(a.samples, sample)
	return nil
}

// ListSamples returns the most recent samples for a zone, newest first.
func (a *MemoryAdapter) ListSamples(ctx context.Context, zoneID string, limit int) ([]domain.TemperatureSample, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var samples []domain.TemperatureSample
	for _, s := range a.samples {
		if s.ZoneID == zoneID {
			samples = append(samples, s)
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Timestamp.After(samples[j].Timestamp) })
	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	return samples, nil
}

// TouchConnection upserts the record for sessionID.
func (a *MemoryAdapter) TouchConnection(ctx context.Context, sessionID string, at time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.connections[sessionID] = at
	return nil
}

// CountConnections returns the size of the current record set.
func (a *MemoryAdapter) CountConnections(ctx context.Context) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.connections), nil
}

// DeleteConnectionsBefore removes records last seen before cutoff.
func (a *MemoryAdapter) DeleteConnectionsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := 0
	for sid, seen := range a.connections {
		if seen.Before(cutoff) {
			delete(a.connections, sid)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for the in-memory store.
func (a *MemoryAdapter) Close() error {
	return nil
}

// Ensure interface compliance
var _ ports.Storage = (*MemoryAdapter)(nil)

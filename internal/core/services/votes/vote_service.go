package votes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
	"github.com/thermovote/thermovote/internal/telemetry"
)

// DefaultWindow is the trailing interval used for "current" sentiment.
const DefaultWindow = 10 * time.Minute

// Service orchestrates vote ingestion and zone reads. SubmitVote is the
// only write path that mutates a zone's temperature; the read-modify-write
// sequence is serialized per zone while distinct zones proceed in
// parallel.
type Service struct {
	zones    ports.ZoneRepository
	ledger   ports.VoteLedger
	samples  ports.SampleRepository
	presence ports.PresenceTracker
	notifier ports.ZoneNotifier
	window   time.Duration
	now      func() time.Time

	mu        sync.Mutex
	zoneLocks map[string]*sync.Mutex
}

// NewService creates a vote service over the given repositories. window
// is the recency window; zero means DefaultWindow.
func NewService(zones ports.ZoneRepository, ledger ports.VoteLedger, samples ports.SampleRepository, presence ports.PresenceTracker, window time.Duration) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Service{
		zones:     zones,
		ledger:    ledger,
		samples:   samples,
		presence:  presence,
		window:    window,
		now:       time.Now,
		zoneLocks: make(map[string]*sync.Mutex),
	}
}

// SetNotifier wires the live-update push. May be left unset.
func (s *Service) SetNotifier(n ports.ZoneNotifier) {
	s.notifier = n
}

// lockZone returns the mutex serializing updates for one zone id.
func (s *Service) lockZone(zoneID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.zoneLocks[zoneID]
	if !ok {
		l = &sync.Mutex{}
		s.zoneLocks[zoneID] = l
	}
	return l
}

// RecentCounts recomputes the hot/cold tally for a zone over the trailing
// window. This is the authoritative count shown to users; the stored zone
// counters are never trusted.
func (s *Service) RecentCounts(ctx context.Context, zoneID string) (domain.VoteCounts, error) {
	events, err := s.ledger.VotesSince(ctx, zoneID, s.now().Add(-s.window))
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("ledger query for zone %s: %w", zoneID, err)
	}

	var counts domain.VoteCounts
	for _, ev := range events {
		switch ev.VoteType {
		case domain.VoteHot:
			counts.Hot++
		case domain.VoteCold:
			counts.Cold++
		}
	}
	return counts, nil
}

// SubmitVote validates the vote, appends it to the ledger, recomputes the
// recency tally and the temperature, persists both and returns the
// updated view. A rejected vote leaves the ledger untouched.
func (s *Service) SubmitVote(ctx context.Context, zoneID string, voteType domain.VoteType) (*domain.ZoneView, error) {
	if !voteType.IsValid() {
		telemetry.VotesRejected.WithLabelValues("invalid_vote_type").Inc()
		return nil, domain.NewValidationError("voteType", `must be "hot" or "cold"`)
	}

	lock := s.lockZone(zoneID)
	lock.Lock()
	defer lock.Unlock()

	zone, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		telemetry.VotesRejected.WithLabelValues("unknown_zone").Inc()
		return nil, err
	}

	now := s.now()
	event := domain.VoteEvent{
		ID:        uuid.NewString(),
		ZoneID:    zoneID,
		VoteType:  voteType,
		Timestamp: now,
	}
	if err := s.ledger.AppendVote(ctx, event); err != nil {
		return nil, fmt.Errorf("append vote: %w", err)
	}

	counts, err := s.RecentCounts(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	temperature := domain.NextTemperature(counts.Hot, counts.Cold)
	if err := s.zones.UpdateZoneTemperature(ctx, zoneID, temperature, now); err != nil {
		return nil, fmt.Errorf("update zone temperature: %w", err)
	}
	if err := s.samples.SaveSample(ctx, domain.TemperatureSample{
		ID:          uuid.NewString(),
		ZoneID:      zoneID,
		Temperature: temperature,
		Timestamp:   now,
	}); err != nil {
		return nil, fmt.Errorf("save temperature sample: %w", err)
	}

	zone.Temperature = temperature
	zone.LastUpdated = now
	view := domain.NewZoneView(*zone, counts)

	telemetry.VotesAccepted.WithLabelValues(zoneID, string(voteType)).Inc()
	telemetry.ZoneTemperature.WithLabelValues(zoneID).Set(temperature)

	if s.notifier != nil {
		s.notifier.NotifyZoneUpdate(view)
	}
	return &view, nil
}

// GetZone returns the raw stored zone without overlaying recency counts.
func (s *Service) GetZone(ctx context.Context, id string) (*domain.Zone, error) {
	return s.zones.GetZone(ctx, id)
}

// GetZones returns every zone with its recency counts overlaid.
func (s *Service) GetZones(ctx context.Context) ([]domain.ZoneView, error) {
	zones, err := s.zones.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ZoneView, len(zones))
	for i, z := range zones {
		counts, err := s.RecentCounts(ctx, z.ID)
		if err != nil {
			return nil, err
		}
		views[i] = domain.NewZoneView(z, counts)
	}
	return views, nil
}

// GetSystemStats aggregates recency counts, temperatures and the live
// session count across all zones. The average is rounded to one decimal.
func (s *Service) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	views, err := s.GetZones(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.SystemStats{Zones: views}
	var tempSum float64
	for _, v := range views {
		stats.HotVotes += v.HotVotes
		stats.ColdVotes += v.ColdVotes
		tempSum += v.Temperature
	}
	stats.TotalVotes = stats.HotVotes + stats.ColdVotes
	if len(views) > 0 {
		stats.AverageTemperature = domain.RoundTenth(tempSum / float64(len(views)))
	}

	if s.presence != nil {
		live, err := s.presence.CountLive(ctx)
		if err != nil {
			return nil, err
		}
		stats.ConnectedUsers = live
	}
	return stats, nil
}

// Ensure interface compliance
var _ ports.ZoneService = (*Service)(nil)

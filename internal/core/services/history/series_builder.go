package history

import (
	"context"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

// MaxHours caps the lookback span a client may request (one week).
const MaxHours = 168

// SeriesBuilder turns raw ledger events into a complete, gap-filled
// charting series. It assumes the zone id is valid; existence checks are
// the caller's concern.
type SeriesBuilder struct {
	ledger ports.VoteLedger
	now    func() time.Time
}

// NewSeriesBuilder creates a SeriesBuilder over the given ledger.
func NewSeriesBuilder(ledger ports.VoteLedger) *SeriesBuilder {
	return &SeriesBuilder{
		ledger: ledger,
		now:    time.Now,
	}
}

// BuildSeries returns exactly hours*6 buckets of 10 minutes each, ordered
// oldest to newest, the last bucket containing now. Buckets without
// events carry zero counts; spacing is exact regardless of data sparsity.
func (b *SeriesBuilder) BuildSeries(ctx context.Context, zoneID string, hours int) ([]domain.HistoryBucket, error) {
	if hours < 1 || hours > MaxHours {
		return nil, domain.NewValidationError("hours", "must be between 1 and 168")
	}

	now := b.now()
	events, err := b.ledger.VotesSince(ctx, zoneID, now.Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, err
	}

	// Accumulate per-bucket tallies keyed by bucket start.
	counts := make(map[time.Time]domain.VoteCounts)
	for _, ev := range events {
		key := BucketStart(ev.Timestamp)
		c := counts[key]
		switch ev.VoteType {
		case domain.VoteHot:
			c.Hot++
		case domain.VoteCold:
			c.Cold++
		}
		counts[key] = c
	}

	grid := Grid(now, hours*BucketsPerHour)
	series := make([]domain.HistoryBucket, len(grid))
	for i, start := range grid {
		c := counts[start]
		series[i] = domain.HistoryBucket{
			Timestamp: start,
			HotVotes:  c.Hot,
			ColdVotes: c.Cold,
		}
	}
	return series, nil
}

// Ensure interface compliance
var _ ports.HistoryService = (*SeriesBuilder)(nil)

package snapshot

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

// DefaultInterval is how often the recorder samples zone temperatures.
const DefaultInterval = 10 * time.Minute

// Recorder periodically appends a TemperatureSample per zone, capturing
// the stored reading for long-horizon history. It records the value as
// persisted; it does not trigger a recomputation.
type Recorder struct {
	zones   ports.ZoneRepository
	samples ports.SampleRepository
	now     func() time.Time
}

// NewRecorder creates a snapshot recorder over the given repositories.
func NewRecorder(zones ports.ZoneRepository, samples ports.SampleRepository) *Recorder {
	return &Recorder{
		zones:   zones,
		samples: samples,
		now:     time.Now,
	}
}

// RecordOnce writes one sample for every zone.
func (r *Recorder) RecordOnce(ctx context.Context) error {
	zones, err := r.zones.ListZones(ctx)
	if err != nil {
		return err
	}

	now := r.now()
	for _, z := range zones {
		sample := domain.TemperatureSample{
			ID:          uuid.NewString(),
			ZoneID:      z.ID,
			Temperature: z.Temperature,
			Timestamp:   now,
		}
		if err := r.samples.SaveSample(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}

// Start runs the snapshot loop on its own timer until ctx is cancelled.
func (r *Recorder) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.RecordOnce(ctx); err != nil {
					log.Printf("Temperature snapshot failed: %v", err)
				}
			}
		}
	}()
}

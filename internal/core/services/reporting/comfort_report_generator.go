package reporting

import (
	"context"
	"time"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

// ComfortReportGenerator assembles a floor-wide comfort summary from the
// live zone stats, ready for PDF export.
type ComfortReportGenerator struct {
	zones ports.ZoneService
	now   func() time.Time
}

// NewComfortReportGenerator creates a generator over the zone service.
func NewComfortReportGenerator(zones ports.ZoneService) *ComfortReportGenerator {
	return &ComfortReportGenerator{
		zones: zones,
		now:   time.Now,
	}
}

// Generate builds a ComfortReport for the current moment.
func (g *ComfortReportGenerator) Generate(ctx context.Context) (*domain.ComfortReport, error) {
	stats, err := g.zones.GetSystemStats(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.ComfortReport{
		Metadata: domain.ReportMetadata{
			Title:       "Zone Comfort Report",
			GeneratedAt: g.now(),
		},
		Summary: domain.ReportSummary{
			TotalVotes:         stats.TotalVotes,
			HotVotes:           stats.HotVotes,
			ColdVotes:          stats.ColdVotes,
			AverageTemperature: stats.AverageTemperature,
			ConnectedUsers:     stats.ConnectedUsers,
		},
		Zones: make([]domain.ZoneReportEntry, len(stats.Zones)),
	}

	for i, v := range stats.Zones {
		report.Zones[i] = domain.ZoneReportEntry{
			ID:          v.ID,
			Name:        v.Name,
			Temperature: v.Temperature,
			HotVotes:    v.HotVotes,
			ColdVotes:   v.ColdVotes,
			LastUpdated: v.LastUpdated,
		}
	}
	return report, nil
}

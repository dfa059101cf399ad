package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thermovote/thermovote/internal/core/domain"
)

func TestExportComfortReport(t *testing.T) {
	report := &domain.ComfortReport{
		Metadata: domain.ReportMetadata{
			Title:       "Zone Comfort Report",
			GeneratedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		Summary: domain.ReportSummary{
			TotalVotes:         7,
			HotVotes:           4,
			ColdVotes:          3,
			AverageTemperature: 22.2,
			ConnectedUsers:     3,
		},
		Zones: []domain.ZoneReportEntry{
			{ID: "zone-a", Name: "Zone A", Temperature: 22.1, HotVotes: 4},
			{ID: "zone-b", Name: "Zone B", Temperature: 22.4, ColdVotes: 3},
		},
	}

	pdf, err := NewPDFExporter().ExportComfortReport(report)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestExportComfortReport_NoZones(t *testing.T) {
	report := &domain.ComfortReport{
		Metadata: domain.ReportMetadata{Title: "Zone Comfort Report", GeneratedAt: time.Now()},
	}

	pdf, err := NewPDFExporter().ExportComfortReport(report)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

package domain

import (
	"time"
)

// ComfortReport is a point-in-time summary of the whole floor, suitable
// for PDF export.
type ComfortReport struct {
	Metadata ReportMetadata    `json:"metadata"`
	Summary  ReportSummary     `json:"summary"`
	Zones    []ZoneReportEntry `json:"zones"`
}

// ReportMetadata describes when and for whom the report was generated.
type ReportMetadata struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportSummary holds floor-wide aggregates.
type ReportSummary struct {
	TotalVotes         int     `json:"total_votes"`
	HotVotes           int     `json:"hot_votes"`
	ColdVotes          int     `json:"cold_votes"`
	AverageTemperature float64 `json:"average_temperature"`
	ConnectedUsers     int     `json:"connected_users"`
}

// ZoneReportEntry is one row of the per-zone table.
type ZoneReportEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Temperature float64   `json:"temperature"`
	HotVotes    int       `json:"hot_votes"`
	ColdVotes   int       `json:"cold_votes"`
	LastUpdated time.Time `json:"last_updated"`
}

package domain

// SystemStats is an aggregated snapshot across all zones, built from each
// zone's recency counts rather than its stored counters.
type SystemStats struct {
	TotalVotes         int        `json:"totalVotes"`
	HotVotes           int        `json:"hotVotes"`
	ColdVotes          int        `json:"coldVotes"`
	AverageTemperature float64    `json:"averageTemperature"`
	ConnectedUsers     int        `json:"connectedUsers"`
	Zones              []ZoneView `json:"zones"`
}

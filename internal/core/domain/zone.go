package domain

import (
	"time"
)

// Zone represents a physical area with an independently tracked comfort
// temperature. Temperature and LastUpdated are the authoritative stored
// fields; HotVotes/ColdVotes are stale by design and overwritten from the
// vote ledger on every read (see ZoneView).
type Zone struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Temperature  float64   `json:"temperature"`
	HotVotes     int       `json:"hotVotes"`
	ColdVotes    int       `json:"coldVotes"`
	ActiveVoters int       `json:"activeVoters"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ZoneView is a Zone overlaid with freshly recomputed recency counts.
// It is what the API returns; the embedded vote counts come from the
// ledger, never from the stored zone row.
type ZoneView struct {
	Zone
}

// NewZoneView overlays the zone's stored counters with the given recency
// counts.
func NewZoneView(z Zone, counts VoteCounts) ZoneView {
	z.HotVotes = counts.Hot
	z.ColdVotes = counts.Cold
	return ZoneView{Zone: z}
}

// SeedZones returns the fixed default zones created on first startup.
// IDs, names and initial temperatures are part of the API contract and
// must not change.
func SeedZones() []Zone {
	return []Zone{
		{ID: "standing", Name: "Standing Desks", Temperature: 22.3},
		{ID: "zone-a", Name: "Zone A", Temperature: 21.8},
		{ID: "zone-b", Name: "Zone B", Temperature: 22.7},
		{ID: "zone-c", Name: "Zone C", Temperature: 21.5},
		{ID: "recharge", Name: "Recharge Room", Temperature: 23.1},
	}
}

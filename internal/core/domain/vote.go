package domain

import (
	"time"
)

// VoteType is a type-safe identifier for the two vote directions.
type VoteType string

const (
	VoteHot  VoteType = "hot"
	VoteCold VoteType = "cold"
)

// IsValid reports whether the vote type is one of the accepted values.
func (v VoteType) IsValid() bool {
	return v == VoteHot || v == VoteCold
}

// VoteEvent is a single immutable vote. Events are append-only: they are
// never updated or deleted once written.
type VoteEvent struct {
	ID        string    `json:"id"`
	ZoneID    string    `json:"zoneId"`
	VoteType  VoteType  `json:"voteType"`
	Timestamp time.Time `json:"timestamp"`
}

// VoteCounts is a hot/cold tally over some window of the ledger.
type VoteCounts struct {
	Hot  int `json:"hot"`
	Cold int `json:"cold"`
}

// Total returns the combined number of votes.
func (c VoteCounts) Total() int {
	return c.Hot + c.Cold
}

// TemperatureSample is an append-only record of a computed temperature,
// written on every vote-triggered recomputation and by the periodic
// snapshot. It serves long-horizon audit; chart history derives from
// VoteEvent instead.
type TemperatureSample struct {
	ID          string    `json:"id"`
	ZoneID      string    `json:"zoneId"`
	Temperature float64   `json:"temperature"`
	Timestamp   time.Time `json:"timestamp"`
}

// HistoryBucket is one fixed-width slot of the charting series.
type HistoryBucket struct {
	Timestamp time.Time `json:"timestamp"`
	HotVotes  int       `json:"hotVotes"`
	ColdVotes int       `json:"coldVotes"`
}

package domain

import (
	"math"
)

// BaseTemperature is the neutral reading a zone settles at when no votes
// fall inside the recency window.
const BaseTemperature = 22.0

// DegreesPerVote is the contribution of a single net vote to the reading.
const DegreesPerVote = 0.1

// NextTemperature maps a recency tally to a new temperature reading:
// base + 0.1 per net hot vote, rounded to one decimal place. Rounding is
// half away from zero (math.Round). With an empty window the result is
// exactly BaseTemperature; the model carries no memory beyond the window.
func NextTemperature(hot, cold int) float64 {
	t := BaseTemperature + DegreesPerVote*float64(hot-cold)
	return RoundTenth(t)
}

// RoundTenth rounds to one decimal place, half away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

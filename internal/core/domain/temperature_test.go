package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTemperature_Baseline(t *testing.T) {
	// Empty window resets to the base value exactly
	assert.Equal(t, 22.0, NextTemperature(0, 0))
}

func TestNextTemperature_HotVotes(t *testing.T) {
	assert.Equal(t, 22.1, NextTemperature(1, 0))
	assert.Equal(t, 22.3, NextTemperature(3, 0))
	assert.Equal(t, 23.0, NextTemperature(10, 0))
}

func TestNextTemperature_ColdVotes(t *testing.T) {
	assert.Equal(t, 21.9, NextTemperature(0, 1))
	assert.Equal(t, 21.5, NextTemperature(0, 5))
}

func TestNextTemperature_Mixed(t *testing.T) {
	// Only the differential matters
	assert.Equal(t, 22.0, NextTemperature(4, 4))
	assert.Equal(t, 22.2, NextTemperature(7, 5))
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 22.3, RoundTenth(22.25))
	assert.Equal(t, -22.3, RoundTenth(-22.25))
	assert.Equal(t, 22.2, RoundTenth(22.24))
	assert.Equal(t, 22.0, RoundTenth(22.0))
}

func TestVoteTypeIsValid(t *testing.T) {
	assert.True(t, VoteHot.IsValid())
	assert.True(t, VoteCold.IsValid())
	assert.False(t, VoteType("warm").IsValid())
	assert.False(t, VoteType("").IsValid())
}

package storage

import (
	"github.com/thermovote/thermovote/internal/core/domain"
)

// Converters between GORM models and domain entities.

func zoneToModel(z domain.Zone) ZoneModel {
	return ZoneModel{
		ID:           z.ID,
		Name:         z.Name,
		Temperature:  z.Temperature,
		HotVotes:     z.HotVotes,
		ColdVotes:    z.ColdVotes,
		ActiveVoters: z.ActiveVoters,
		LastUpdated:  z.LastUpdated,
	}
}

func zoneToDomain(m ZoneModel) domain.Zone {
	return domain.Zone{
		ID:           m.ID,
		Name:         m.Name,
		Temperature:  m.Temperature,
		HotVotes:     m.HotVotes,
		ColdVotes:    m.ColdVotes,
		ActiveVoters: m.ActiveVoters,
		LastUpdated:  m.LastUpdated,
	}
}

func voteToModel(e domain.VoteEvent) VoteEventModel {
	return VoteEventModel{
		ID:        e.ID,
		ZoneID:    e.ZoneID,
		VoteType:  string(e.VoteType),
		Timestamp: e.Timestamp,
	}
}

func voteToDomain(m VoteEventModel) domain.VoteEvent {
	return domain.VoteEvent{
		ID:        m.ID,
		ZoneID:    m.ZoneID,
		VoteType:  domain.VoteType(m.VoteType),
		Timestamp: m.Timestamp,
	}
}

func sampleToModel(s domain.TemperatureSample) TemperatureSampleModel {
	return TemperatureSampleModel{
		ID:          s.ID,
		ZoneID:      s.ZoneID,
		Temperature: s.Temperature,
		Timestamp:   s.Timestamp,
	}
}

func sampleToDomain(m TemperatureSampleModel) domain.TemperatureSample {
	return domain.TemperatureSample{
		ID:          m.ID,
		ZoneID:      m.ZoneID,
		Temperature: m.Temperature,
		Timestamp:   m.Timestamp,
	}
}

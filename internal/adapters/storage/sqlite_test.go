package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thermovote/thermovote/internal/core/domain"
)

func newTestDB(t *testing.T) *SQLiteAdapter {
	t.Helper()
	store, err := NewSQLiteAdapter(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteAdapter_SeedAndGet(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SeedZones(ctx, domain.SeedZones()))
	require.NoError(t, store.SeedZones(ctx, domain.SeedZones())) // idempotent

	zones, err := store.ListZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 5)

	zone, err := store.GetZone(ctx, "recharge")
	require.NoError(t, err)
	assert.Equal(t, "Recharge Room", zone.Name)
	assert.Equal(t, 23.1, zone.Temperature)

	_, err = store.GetZone(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestSQLiteAdapter_UpdateZoneTemperature(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.SeedZones(ctx, domain.SeedZones()))

	at := time.Now().Truncate(time.Second)
	require.NoError(t, store.UpdateZoneTemperature(ctx, "zone-a", 22.4, at))

	zone, err := store.GetZone(ctx, "zone-a")
	require.NoError(t, err)
	assert.Equal(t, 22.4, zone.Temperature)
	assert.WithinDuration(t, at, zone.LastUpdated, time.Second)

	err = store.UpdateZoneTemperature(ctx, "nope", 22.4, at)
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestSQLiteAdapter_VoteLedger(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.AppendVote(ctx, domain.VoteEvent{
		ID: "v1", ZoneID: "zone-a", VoteType: domain.VoteHot, Timestamp: now.Add(-15 * time.Minute),
	}))
	require.NoError(t, store.AppendVote(ctx, domain.VoteEvent{
		ID: "v2", ZoneID: "zone-a", VoteType: domain.VoteCold, Timestamp: now,
	}))

	recent, err := store.VotesSince(ctx, "zone-a", now.Add(-10*time.Minute))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.VoteCold, recent[0].VoteType)
}

func TestSQLiteAdapter_Connections(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.TouchConnection(ctx, "s1", now.Add(-10*time.Minute)))
	require.NoError(t, store.TouchConnection(ctx, "s1", now)) // refresh in place
	require.NoError(t, store.TouchConnection(ctx, "s2", now.Add(-10*time.Minute)))

	count, err := store.CountConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	removed, err := store.DeleteConnectionsBefore(ctx, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err = store.CountConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteAdapter_Samples(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveSample(ctx, domain.TemperatureSample{
			ID:          string(rune('a' + i)),
			ZoneID:      "zone-a",
			Temperature: 22.0 + float64(i)*0.1,
			Timestamp:   now.Add(time.Duration(i) * time.Minute),
		}))
	}

	samples, err := store.ListSamples(ctx, "zone-a", 2)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.InDelta(t, 22.2, samples[0].Temperature, 1e-9)
}

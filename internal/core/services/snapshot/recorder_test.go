package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thermovote/thermovote/internal/adapters/storage"
	"github.com/thermovote/thermovote/internal/core/domain"
)

func TestRecordOnce_SamplesEveryZone(t *testing.T) {
	store := storage.NewMemoryAdapter()
	ctx := context.Background()
	require.NoError(t, store.SeedZones(ctx, domain.SeedZones()))

	recorder := NewRecorder(store, store)
	require.NoError(t, recorder.RecordOnce(ctx))

	for _, z := range domain.SeedZones() {
		samples, err := store.ListSamples(ctx, z.ID, 10)
		require.NoError(t, err)
		require.Len(t, samples, 1, "zone %s", z.ID)
		// The snapshot records the stored reading as-is
		assert.Equal(t, z.Temperature, samples[0].Temperature)
	}
}

func TestRecordOnce_AppendsOnEachRun(t *testing.T) {
	store := storage.NewMemoryAdapter()
	ctx := context.Background()
	require.NoError(t, store.SeedZones(ctx, domain.SeedZones()))

	recorder := NewRecorder(store, store)
	require.NoError(t, recorder.RecordOnce(ctx))
	require.NoError(t, recorder.RecordOnce(ctx))

	samples, err := store.ListSamples(ctx, "zone-a", 10)
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

package search

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/recallit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) (*historyTracker, *badger.Backend) {
	t.Helper()

	backend, err := badger.OpenBackend("", true)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	settings := badger.NewSettingsRepository(backend)
	return newHistoryTracker(settings, slog.Default()), backend
}

func TestHistoryRecord(t *testing.T) {
	tracker, _ := newTestHistory(t)
	ctx := context.Background()

	tracker.record(ctx, "dinner plans", 3, 12*time.Millisecond)
	tracker.record(ctx, "budget", 0, 4*time.Millisecond)

	entries := tracker.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "dinner plans", entries[0].QueryText)
	assert.Equal(t, int64(3), entries[0].ResultCount)
	assert.Equal(t, "budget", entries[1].QueryText)
	assert.NotZero(t, entries[0].Id)
}

func TestHistoryCap(t *testing.T) {
	tracker, _ := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		tracker.record(ctx, fmt.Sprintf("query %d", i), 1, time.Millisecond)
	}

	entries := tracker.snapshot()
	require.Len(t, entries, historyCap)

	// The survivors are the 100 most recent, oldest first.
	assert.Equal(t, "query 50", entries[0].QueryText)
	assert.Equal(t, "query 149", entries[len(entries)-1].QueryText)
}

func TestHistoryPersistence(t *testing.T) {
	backend, err := badger.OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	settings := badger.NewSettingsRepository(backend)
	ctx := context.Background()

	tracker := newHistoryTracker(settings, slog.Default())
	tracker.record(ctx, "dinner plans", 3, 12*time.Millisecond)
	tracker.record(ctx, "budget", 0, 4*time.Millisecond)

	// A fresh tracker over the same settings sees the persisted entries.
	reloaded := newHistoryTracker(settings, slog.Default())
	reloaded.load(ctx)

	entries := reloaded.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "dinner plans", entries[0].QueryText)
	assert.Equal(t, "budget", entries[1].QueryText)
}

func TestHistoryLoadEmpty(t *testing.T) {
	tracker, _ := newTestHistory(t)

	tracker.load(context.Background())
	assert.Empty(t, tracker.snapshot())
}

func TestHistoryLoadCorruptBlob(t *testing.T) {
	backend, err := badger.OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	settings := badger.NewSettingsRepository(backend)
	ctx := context.Background()
	require.NoError(t, settings.SetSetting(ctx, historySettingKey, []byte{0xff, 0xff, 0xff}))

	tracker := newHistoryTracker(settings, slog.Default())
	tracker.load(ctx)
	assert.Empty(t, tracker.snapshot())
}

func TestHistoryClear(t *testing.T) {
	backend, err := badger.OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	settings := badger.NewSettingsRepository(backend)
	ctx := context.Background()

	tracker := newHistoryTracker(settings, slog.Default())
	tracker.record(ctx, "dinner plans", 3, time.Millisecond)

	require.NoError(t, tracker.clear(ctx))
	assert.Empty(t, tracker.snapshot())

	// The persisted blob is gone too.
	data, err := settings.GetSetting(ctx, historySettingKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestHistoryMatching(t *testing.T) {
	tracker, _ := newTestHistory(t)
	ctx := context.Background()

	tracker.record(ctx, "dinner plans", 1, time.Millisecond)
	tracker.record(ctx, "budget review", 1, time.Millisecond)
	tracker.record(ctx, "Dinner reservations", 1, time.Millisecond)

	matches := tracker.matching("dinner")
	require.Len(t, matches, 2)
	// Most recent first
	assert.Equal(t, "Dinner reservations", matches[0])
	assert.Equal(t, "dinner plans", matches[1])

	assert.Empty(t, tracker.matching("skiing"))
}

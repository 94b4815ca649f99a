package search

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

const (
	// historyCap bounds the retained history; the oldest entries are
	// evicted first once the cap is reached.
	historyCap = 100

	// historySettingKey is where the serialized history blob lives in the
	// store's generic key/value settings area.
	historySettingKey = "search:history"
)

// historyTracker records executed queries and serves history-based
// suggestions. The whole list is persisted as a single blob after every
// append; persistence failures degrade to in-memory-only history.
type historyTracker struct {
	mu       sync.Mutex
	entries  []core.SearchHistoryEntry
	settings storage.SettingsRepository
	logger   *slog.Logger
}

func newHistoryTracker(settings storage.SettingsRepository, logger *slog.Logger) *historyTracker {
	return &historyTracker{
		settings: settings,
		logger:   logger,
	}
}

// load reads the persisted history blob. A missing blob yields empty
// history; a corrupt one is logged and discarded.
func (h *historyTracker) load(ctx context.Context) {
	data, err := h.settings.GetSetting(ctx, historySettingKey)
	if err != nil {
		h.logger.Error("error loading search history", "err", err)
		return
	}
	if data == nil {
		return
	}

	entries, err := storage.UnmarshalSearchHistory(data)
	if err != nil {
		h.logger.Error("error decoding search history, starting empty", "err", err)
		return
	}

	h.mu.Lock()
	h.entries = entries
	h.mu.Unlock()
}

// record appends one executed query and persists the updated list.
func (h *historyTracker) record(ctx context.Context, queryText string, resultCount int, elapsed time.Duration) {
	now := time.Now().UTC()
	entry := core.SearchHistoryEntry{
		Id:              core.IDFromContent(queryText + "@" + strconv.FormatInt(now.UnixMicro(), 10)),
		QueryText:       queryText,
		Timestamp:       now,
		ResultCount:     int64(resultCount),
		ExecutionTimeMs: elapsed.Milliseconds(),
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	if overflow := len(h.entries) - historyCap; overflow > 0 {
		h.entries = h.entries[overflow:]
	}
	blob := storage.MarshalSearchHistory(h.entries)
	h.mu.Unlock()

	if err := h.settings.SetSetting(ctx, historySettingKey, blob); err != nil {
		// The in-memory append stands; only persistence is lost.
		h.logger.Error("error saving search history", "err", err)
	}
}

// snapshot returns a copy of the current history, oldest first.
func (h *historyTracker) snapshot() []core.SearchHistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]core.SearchHistoryEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// clear wipes history in memory and deletes the persisted blob.
func (h *historyTracker) clear(ctx context.Context) error {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()

	return h.settings.DeleteSetting(ctx, historySettingKey)
}

// matching returns the query texts of history entries containing partial as
// a case-insensitive substring, most recent first.
func (h *historyTracker) matching(partial string) []string {
	needle := strings.ToLower(partial)

	h.mu.Lock()
	defer h.mu.Unlock()

	var texts []string
	for i := len(h.entries) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(h.entries[i].QueryText), needle) {
			texts = append(texts, h.entries[i].QueryText)
		}
	}
	return texts
}

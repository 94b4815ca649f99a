package search

import (
	"sort"
	"sync"
	"time"

	"github.com/poiesic/recallit/core"
)

// statsRecorder accumulates service-level search counters.
type statsRecorder struct {
	mu              sync.Mutex
	totalSearches   int64
	totalDurationMs int64
	degraded        int64
	lastDegraded    bool
}

func (r *statsRecorder) record(elapsed time.Duration, degraded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalSearches++
	r.totalDurationMs += elapsed.Milliseconds()
	if degraded {
		r.degraded++
	}
	r.lastDegraded = degraded
}

func (r *statsRecorder) view() (total int64, avgMs float64, degraded int64, lastDegraded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	avg := 0.0
	if r.totalSearches > 0 {
		avg = float64(r.totalDurationMs) / float64(r.totalSearches)
	}
	return r.totalSearches, avg, r.degraded, r.lastDegraded
}

// popularQueries returns the most frequent query texts in the history,
// ties broken by recency.
func popularQueries(entries []core.SearchHistoryEntry, max int) []string {
	counts := make(map[string]int)
	lastSeen := make(map[string]int)
	for i, entry := range entries {
		counts[entry.QueryText]++
		lastSeen[entry.QueryText] = i
	}

	texts := make([]string, 0, len(counts))
	for text := range counts {
		texts = append(texts, text)
	}
	sort.SliceStable(texts, func(i, j int) bool {
		if counts[texts[i]] != counts[texts[j]] {
			return counts[texts[i]] > counts[texts[j]]
		}
		return lastSeen[texts[i]] > lastSeen[texts[j]]
	})

	if len(texts) > max {
		texts = texts[:max]
	}
	return texts
}

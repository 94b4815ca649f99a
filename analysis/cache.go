package analysis

import (
	"context"
	"sync"

	"github.com/poiesic/recallit/core"
)

// Cache is an in-memory store of AnalysisRecords keyed by conversation id.
// Records are produced by an external analyzer and pushed here; the search
// collector reads them back during index rebuilds. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	records map[core.ID]*core.AnalysisRecord
}

// NewCache creates an empty analysis cache.
func NewCache() *Cache {
	return &Cache{
		records: make(map[core.ID]*core.AnalysisRecord),
	}
}

// Put stores a record, replacing any previous analysis for the same
// conversation. Records without an id receive one derived from their
// transcript content.
func (c *Cache) Put(record *core.AnalysisRecord) {
	if record == nil {
		return
	}
	if record.Id == 0 {
		record.Id = core.IDFromContent(record.Transcript)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[record.ConversationId] = record
}

// GetAnalyses returns all cached analysis records.
// The context parameter keeps the signature uniform with the repository
// collaborators; lookups never block on I/O.
func (c *Cache) GetAnalyses(ctx context.Context) ([]*core.AnalysisRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]*core.AnalysisRecord, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record)
	}
	return records, nil
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Clear removes all cached records.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make(map[core.ID]*core.AnalysisRecord)
}

package badger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

const (
	defaultSearchLimit   = 50
	defaultMinRelevance  = 1.0
	snippetContextRadius = 60
)

var _ storage.StoreSearcher = (*Backend)(nil)

// AdvancedSearch finds conversation and commitment records whose fields match
// the search text, scored by a per-type relevance heuristic. The scan walks
// the full record space for each requested type; the per-record heuristic is
// cheap enough that this holds up to the store sizes recallit targets.
func (b *Backend) AdvancedSearch(ctx context.Context, text string, opts storage.AdvancedSearchOptions) ([]*storage.StoreMatch, error) {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return []*storage.StoreMatch{}, nil
	}

	types := opts.Types
	if len(types) == 0 {
		types = []core.DocumentType{core.DocumentTypeConversation, core.DocumentTypeCommitment}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	minRelevance := opts.MinRelevance
	if minRelevance <= 0 {
		minRelevance = defaultMinRelevance
	}

	// Each type receives an even share of the overall limit.
	perType := limit / len(types)
	if perType < 1 {
		perType = 1
	}

	now := time.Now().UTC()
	var matches []*storage.StoreMatch

	for _, t := range types {
		switch t {
		case core.DocumentTypeConversation:
			found, err := b.searchConversations(term, minRelevance, perType, now)
			if err != nil {
				return nil, err
			}
			matches = append(matches, found...)
		case core.DocumentTypeCommitment:
			found, err := b.searchCommitments(term, minRelevance, perType)
			if err != nil {
				return nil, err
			}
			matches = append(matches, found...)
		default:
			// Insight and transcript records are served by the in-memory
			// index, not the store.
		}
	}

	return matches, nil
}

func (b *Backend) searchConversations(term string, minRelevance float64, limit int, now time.Time) ([]*storage.StoreMatch, error) {
	var matches []*storage.StoreMatch

	err := b.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(convRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ConversationRecord
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalConversationRecord(val)
				return err
			}); err != nil {
				return err
			}

			score := scoreConversation(record, term, now)
			if score < minRelevance {
				continue
			}

			title := record.ContactName
			if title == "" {
				title = record.PhoneNumber
			}
			matches = append(matches, &storage.StoreMatch{
				Type:         core.DocumentTypeConversation,
				Id:           core.DocumentTypeConversation.DocId(record.Id),
				Title:        title,
				Snippet:      makeSnippet(record.Transcript, term),
				Relevance:    score,
				Conversation: record,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance > matches[j].Relevance
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (b *Backend) searchCommitments(term string, minRelevance float64, limit int) ([]*storage.StoreMatch, error) {
	var matches []*storage.StoreMatch

	err := b.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(commitRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CommitmentRecord
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCommitmentRecord(val)
				return err
			}); err != nil {
				return err
			}

			score := scoreCommitment(record, term)
			if score < minRelevance {
				continue
			}

			matches = append(matches, &storage.StoreMatch{
				Type:       core.DocumentTypeCommitment,
				Id:         core.DocumentTypeCommitment.DocId(record.Id),
				Title:      record.Text,
				Snippet:    makeSnippet(record.Text, term),
				Relevance:  score,
				Commitment: record,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance > matches[j].Relevance
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// scoreConversation computes the additive relevance heuristic for a
// conversation record:
//
//	+10 contact name contains the term
//	 +8 phone number contains the term
//	 +2 per occurrence of the term in the transcript
//	 +3 conversation within the last 7 days, else +1 within the last 30
func scoreConversation(record *core.ConversationRecord, term string, now time.Time) float64 {
	var score float64

	if strings.Contains(strings.ToLower(record.ContactName), term) {
		score += 10
	}
	if strings.Contains(strings.ToLower(record.PhoneNumber), term) {
		score += 8
	}
	score += 2 * float64(strings.Count(strings.ToLower(record.Transcript), term))

	age := now.Sub(record.Timestamp)
	switch {
	case age <= 7*24*time.Hour:
		score += 3
	case age <= 30*24*time.Hour:
		score += 1
	}

	return score
}

// scoreCommitment computes the additive relevance heuristic for a
// commitment record:
//
//	+5 per occurrence of the term in the commitment text
//	+3 category matches the term
//	+4 high priority, +2 medium priority
//	+3 pending status, +5 overdue status
func scoreCommitment(record *core.CommitmentRecord, term string) float64 {
	var score float64

	score += 5 * float64(strings.Count(strings.ToLower(record.Text), term))
	if record.Category != "" && strings.Contains(strings.ToLower(record.Category), term) {
		score += 3
	}

	switch record.Priority {
	case core.PriorityHigh:
		score += 4
	case core.PriorityMedium:
		score += 2
	}

	switch record.Status {
	case core.StatusPending:
		score += 3
	case core.StatusOverdue:
		score += 5
	}

	return score
}

// makeSnippet extracts a short window of text around the first occurrence of
// the term. Falls back to the head of the text when the term is absent.
func makeSnippet(text, term string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, term)
	if idx < 0 {
		if len(text) > 2*snippetContextRadius {
			return text[:2*snippetContextRadius] + "..."
		}
		return text
	}

	start := idx - snippetContextRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + snippetContextRadius
	if end > len(text) {
		end = len(text)
	}

	snippet := text[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet = snippet + "..."
	}
	return snippet
}

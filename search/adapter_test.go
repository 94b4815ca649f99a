package search

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves canned matches, recording the options it was called with.
type stubStore struct {
	matches  []*storage.StoreMatch
	err      error
	lastOpts storage.AdvancedSearchOptions
}

func (s *stubStore) AdvancedSearch(ctx context.Context, text string, opts storage.AdvancedSearchOptions) ([]*storage.StoreMatch, error) {
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

func TestStructuredAdapterSearch(t *testing.T) {
	now := time.Now().UTC()
	conversation := &core.ConversationRecord{
		Id:          1,
		ContactId:   "contact-001",
		ContactName: "Sarah Johnson",
		Transcript:  "We talked about the dinner reservations for Friday.",
		Timestamp:   now,
		Duration:    420,
	}
	commitment := &core.CommitmentRecord{
		Id:             2,
		ConversationId: 1,
		ContactId:      "contact-001",
		Text:           "Confirm the dinner reservations",
		Category:       "personal",
		Status:         core.StatusPending,
		Timestamp:      now,
	}

	store := &stubStore{matches: []*storage.StoreMatch{
		{
			Type:         core.DocumentTypeConversation,
			Id:           core.DocumentTypeConversation.DocId(1),
			Title:        "Sarah Johnson",
			Snippet:      "...dinner reservations...",
			Relevance:    15,
			Conversation: conversation,
		},
		{
			Type:       core.DocumentTypeCommitment,
			Id:         core.DocumentTypeCommitment.DocId(2),
			Title:      "Confirm the dinner reservations",
			Relevance:  8,
			Commitment: commitment,
		},
	}}

	adapter := &structuredAdapter{store: store, minRelevance: 1}
	results, err := adapter.search(context.Background(), "dinner reservations", Options{MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, []core.DocumentType{core.DocumentTypeConversation, core.DocumentTypeCommitment}, store.lastOpts.Types)
	assert.Equal(t, 10, store.lastOpts.Limit)
	assert.Equal(t, 1.0, store.lastOpts.MinRelevance)

	conv := results[0]
	assert.Equal(t, core.DocumentTypeConversation, conv.Type)
	assert.InDelta(t, 0.15, conv.RelevanceScore, 1e-9)
	assert.Equal(t, []string{"dinner", "reservations"}, conv.MatchedTerms)
	assert.Equal(t, "contact-001", conv.Metadata.ContactId)
	assert.Equal(t, int64(420), conv.Metadata.Duration)
	assert.Empty(t, conv.Highlights)

	com := results[1]
	assert.Equal(t, core.DocumentTypeCommitment, com.Type)
	assert.InDelta(t, 0.08, com.RelevanceScore, 1e-9)
	assert.Equal(t, "personal", com.Metadata.Category)
	assert.Equal(t, core.StatusPending, com.Metadata.Status)
}

func TestStructuredAdapterHighlights(t *testing.T) {
	conversation := &core.ConversationRecord{
		Id:         1,
		Transcript: "dinner reservations Saturday",
		Timestamp:  time.Now().UTC(),
	}
	store := &stubStore{matches: []*storage.StoreMatch{
		{
			Type:         core.DocumentTypeConversation,
			Id:           core.DocumentTypeConversation.DocId(1),
			Relevance:    5,
			Conversation: conversation,
		},
	}}

	adapter := &structuredAdapter{store: store, minRelevance: 1}
	results, err := adapter.search(context.Background(), "reservation", Options{IncludeHighlights: true})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// The singular query term matches inside "reservations"; the span widens
	// to cover the whole word.
	require.Len(t, results[0].Highlights, 1)
	assert.Equal(t, "reservations", results[0].Highlights[0].Text)
}

func TestStructuredAdapterScoreClamping(t *testing.T) {
	store := &stubStore{matches: []*storage.StoreMatch{
		{
			Type:         core.DocumentTypeConversation,
			Id:           core.DocumentTypeConversation.DocId(1),
			Relevance:    250,
			Conversation: &core.ConversationRecord{Id: 1, Transcript: "text"},
		},
	}}

	adapter := &structuredAdapter{store: store, minRelevance: 1}
	results, err := adapter.search(context.Background(), "text", Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].RelevanceScore)
}

func TestStructuredAdapterSkipsMalformedMatches(t *testing.T) {
	store := &stubStore{matches: []*storage.StoreMatch{
		{
			Type: core.DocumentTypeConversation,
			Id:   core.DocumentTypeConversation.DocId(1),
			// Conversation record missing
		},
		{
			Type: core.DocumentTypeInsight,
			Id:   core.DocumentTypeInsight.DocId(2),
		},
	}}

	adapter := &structuredAdapter{store: store, minRelevance: 1}
	results, err := adapter.search(context.Background(), "anything", Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

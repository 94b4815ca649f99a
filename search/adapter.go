package search

import (
	"context"
	"strings"

	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

// structuredAdapter runs searches directly against the persistent store for
// the two highest-volume record types. It bypasses the in-memory index so
// conversations and commitments stay searchable beyond what is feasible to
// hold in memory.
type structuredAdapter struct {
	store        storage.StoreSearcher
	minRelevance float64
}

// search queries the store and converts its matches into results with
// normalized relevance scores. The store heuristic scores on an open-ended
// additive scale; dividing by 100 and clamping maps it into [0,1].
func (a *structuredAdapter) search(ctx context.Context, text string, opts Options) ([]*Result, error) {
	matches, err := a.store.AdvancedSearch(ctx, text, storage.AdvancedSearchOptions{
		Types:        []core.DocumentType{core.DocumentTypeConversation, core.DocumentTypeCommitment},
		Limit:        opts.MaxResults,
		MinRelevance: a.minRelevance,
	})
	if err != nil {
		return nil, err
	}

	terms := uniqueTokens(text)
	results := make([]*Result, 0, len(matches))
	for _, match := range matches {
		if result := convertStoreMatch(match, terms, opts.IncludeHighlights); result != nil {
			results = append(results, result)
		}
	}
	return results, nil
}

// convertStoreMatch maps one store match onto a Result. Returns nil for
// matches whose embedded record is missing, which would indicate a store bug.
func convertStoreMatch(match *storage.StoreMatch, terms []string, includeHighlights bool) *Result {
	result := &Result{
		Id:             match.Id,
		Type:           match.Type,
		Title:          match.Title,
		ContentSnippet: match.Snippet,
		RelevanceScore: clampScore(match.Relevance / 100),
	}

	switch match.Type {
	case core.DocumentTypeConversation:
		record := match.Conversation
		if record == nil {
			return nil
		}
		result.Description = truncateText(record.Transcript, 160)
		result.MatchedTerms = termsIn(record.Transcript+" "+record.ContactName+" "+record.PhoneNumber, terms)
		if includeHighlights {
			result.Highlights = findHighlights(record.Transcript, result.MatchedTerms)
		}
		result.Metadata = ResultMetadata{
			ContactId:      record.ContactId,
			ConversationId: record.Id,
			Date:           record.Timestamp,
			Duration:       record.Duration,
			EmotionalTone:  record.EmotionalTone,
		}
	case core.DocumentTypeCommitment:
		record := match.Commitment
		if record == nil {
			return nil
		}
		result.Description = record.Text
		result.MatchedTerms = termsIn(record.Text+" "+record.Category, terms)
		if includeHighlights {
			result.Highlights = findHighlights(record.Text, result.MatchedTerms)
		}
		result.Metadata = ResultMetadata{
			ContactId:      record.ContactId,
			ConversationId: record.ConversationId,
			Date:           record.Timestamp,
			Category:       record.Category,
			Status:         record.Status,
		}
	default:
		// The store only serves conversations and commitments.
		return nil
	}

	return result
}

// termsIn returns the subset of terms contained in text, case-insensitively.
func termsIn(text string, terms []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/poiesic/recallit/core"
)

// mergeResults unions structured-adapter output with index-path output.
//
// The structured adapter is authoritative for conversations and commitments;
// the index path is the only source for insight and transcript documents.
// When both paths return the same composite id the structured result wins.
// Both paths build ids through core.DocumentType.DocId, so an id collision
// always means the same underlying record.
func mergeResults(structured, engine []*Result) []*Result {
	merged := make([]*Result, 0, len(structured)+len(engine))
	seen := make(map[string]struct{}, len(structured))

	for _, result := range structured {
		merged = append(merged, result)
		seen[result.Id] = struct{}{}
	}

	for _, result := range engine {
		if _, dup := seen[result.Id]; dup {
			continue
		}
		switch result.Type {
		case core.DocumentTypeInsight, core.DocumentTypeTranscript:
			merged = append(merged, result)
			seen[result.Id] = struct{}{}
		case core.DocumentTypeConversation, core.DocumentTypeCommitment:
			// Served authoritatively by the structured adapter.
		}
	}

	return merged
}

// applyFilters keeps results matching every populated filter field.
func applyFilters(results []*Result, filters Filters) []*Result {
	filtered := make([]*Result, 0, len(results))
	for _, result := range results {
		if matchesFilters(result, filters) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

func matchesFilters(result *Result, filters Filters) bool {
	if len(filters.Types) > 0 && !slices.Contains(filters.Types, result.Type) {
		return false
	}
	if len(filters.ContactIds) > 0 && !slices.Contains(filters.ContactIds, result.Metadata.ContactId) {
		return false
	}
	if filters.DateRange != nil {
		date := result.Metadata.Date
		if date.Before(filters.DateRange.From) || date.After(filters.DateRange.To) {
			return false
		}
	}
	if len(filters.Categories) > 0 && !containsFold(filters.Categories, result.Metadata.Category) {
		return false
	}
	if len(filters.CommitmentStatuses) > 0 && !slices.Contains(filters.CommitmentStatuses, result.Metadata.Status) {
		return false
	}
	if len(filters.EmotionalTones) > 0 && !containsFold(filters.EmotionalTones, result.Metadata.EmotionalTone) {
		return false
	}
	if filters.MinRelevanceScore > 0 && result.RelevanceScore < filters.MinRelevanceScore {
		return false
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

// sortResults orders results by the requested key and direction. The sort is
// stable so equal-key results preserve their pre-sort relative order.
func sortResults(results []*Result, by SortBy, order SortOrder) {
	less := func(i, j int) bool {
		switch by {
		case SortByDate:
			return results[i].Metadata.Date.Before(results[j].Metadata.Date)
		case SortByTitle:
			return results[i].Title < results[j].Title
		default:
			return results[i].RelevanceScore < results[j].RelevanceScore
		}
	}

	if order == SortAscending {
		sort.SliceStable(results, less)
	} else {
		sort.SliceStable(results, func(i, j int) bool { return less(j, i) })
	}
}

// truncateResults slices results down to max entries.
func truncateResults(results []*Result, max int) []*Result {
	if max > 0 && len(results) > max {
		return results[:max]
	}
	return results
}

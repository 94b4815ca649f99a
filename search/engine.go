package search

import (
	"math"
	"sort"
	"strings"
)

// queryIndex runs the index path of a search: candidate selection over the
// postings, TF-IDF style scoring, and optional highlighting. A query with no
// candidates returns an empty slice, never an error.
func queryIndex(s *snapshot, terms []string, opts Options, maxFuzzyDistance int) []*Result {
	if len(terms) == 0 {
		return []*Result{}
	}

	// matched maps candidate doc id to the index tokens that selected it.
	// For exact matches the token is the query term itself; for fuzzy
	// matches it is the vocabulary token within edit distance.
	matched := make(map[string]map[string]struct{})

	addPostings := func(token string) {
		for docId := range s.postings[token] {
			set, ok := matched[docId]
			if !ok {
				set = make(map[string]struct{})
				matched[docId] = set
			}
			set[token] = struct{}{}
		}
	}

	for _, term := range terms {
		addPostings(term)

		if opts.FuzzyMatching {
			// Full vocabulary scan. Fine at the index sizes recallit
			// targets (low thousands of documents); revisit with a
			// trigram or BK-tree index if vocabularies grow past that.
			for token := range s.postings {
				if token == term {
					continue
				}
				if withinEditDistance(token, term, maxFuzzyDistance) {
					addPostings(token)
				}
			}
		}
	}

	totalDocs := float64(s.documentCount())
	results := make([]*Result, 0, len(matched))

	for docId, tokens := range matched {
		doc, ok := s.docs[docId]
		if !ok {
			continue
		}

		docLen := float64(len(doc.CompositeText))
		if docLen == 0 {
			continue
		}

		var score float64
		matchedTerms := make([]string, 0, len(tokens))
		for token := range tokens {
			matchedTerms = append(matchedTerms, token)

			tf := float64(countOccurrences(doc.CompositeText, token, opts.CaseSensitive)) / docLen
			idf := math.Log(totalDocs / float64(len(s.postings[token])))
			score += tf * idf
		}
		sort.Strings(matchedTerms)

		result := &Result{
			Id:             doc.DocId,
			Type:           doc.Type,
			Title:          doc.Title,
			Description:    doc.Description,
			ContentSnippet: excerptAround(doc.CompositeText, matchedTerms[0]),
			RelevanceScore: clampScore(score * 100),
			MatchedTerms:   matchedTerms,
			Metadata:       doc.Metadata,
		}
		if opts.IncludeHighlights {
			result.Highlights = findHighlights(doc.CompositeText, matchedTerms)
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}

// findHighlights locates every case-insensitive occurrence of each term and
// returns the spans ordered by start index. Spans are widened to word
// boundaries so a term matching inside a longer word highlights the whole
// word, and spans widened onto the same word collapse to one.
func findHighlights(text string, terms []string) []Highlight {
	lower := strings.ToLower(text)
	var spans []Highlight
	seen := make(map[int]bool)

	for _, term := range terms {
		if term == "" {
			continue
		}
		needle := strings.ToLower(term)
		offset := 0
		for {
			idx := strings.Index(lower[offset:], needle)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(needle)
			offset = end

			for start > 0 && isWordByte(lower[start-1]) {
				start--
			}
			for end < len(lower) && isWordByte(lower[end]) {
				end++
			}
			if seen[start] {
				continue
			}
			seen[start] = true

			spans = append(spans, Highlight{
				Text:       text[start:end],
				StartIndex: start,
				EndIndex:   end,
			})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].StartIndex < spans[j].StartIndex
	})
	return spans
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// excerptAround extracts a short window of text around the first
// case-insensitive occurrence of term.
func excerptAround(text, term string) string {
	const radius = 60

	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(term))
	if idx < 0 {
		return truncateText(text, 2*radius)
	}

	start := idx - radius
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + radius
	if end > len(text) {
		end = len(text)
	}

	excerpt := text[start:end]
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(text) {
		excerpt = excerpt + "..."
	}
	return excerpt
}

// clampScore normalizes a raw score into [0,1].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

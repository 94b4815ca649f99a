package search

import "strings"

// minTokenLength is the shortest token the index keeps. Shorter tokens are
// almost always noise ("ok", "so", "at").
const minTokenLength = 3

// Stop words excluded from the index and from query terms
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true,
	"had": true, "have": true, "this": true, "that": true, "with": true,
	"they": true, "them": true, "from": true, "she": true, "his": true,
	"him": true, "were": true, "been": true, "will": true, "would": true,
	"could": true, "should": true, "there": true, "their": true,
	"what": true, "when": true, "which": true, "your": true, "about": true,
	"into": true, "just": true, "also": true, "than": true, "then": true,
	"some": true, "these": true, "those": true, "does": true, "did": true,
}

// tokenize splits text into index terms: lowercase, punctuation treated as
// whitespace, tokens of length <= 2 and stop words dropped.
func tokenize(text string) []string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < minTokenLength {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// uniqueTokens tokenizes and removes duplicates, preserving first-seen order.
func uniqueTokens(text string) []string {
	tokens := tokenize(text)
	seen := make(map[string]bool, len(tokens))
	unique := tokens[:0]
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		unique = append(unique, token)
	}
	return unique
}

// countOccurrences counts non-overlapping occurrences of term in text.
// Matching is case insensitive unless caseSensitive is set.
func countOccurrences(text, term string, caseSensitive bool) int {
	if term == "" {
		return 0
	}
	if !caseSensitive {
		text = strings.ToLower(text)
		term = strings.ToLower(term)
	}
	return strings.Count(text, term)
}

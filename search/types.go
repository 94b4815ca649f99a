package search

import (
	"time"

	"github.com/poiesic/recallit/core"
)

// SortBy selects the key results are ordered by.
type SortBy string

const (
	SortByRelevance SortBy = "relevance"
	SortByDate      SortBy = "date"
	SortByTitle     SortBy = "title"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// DateRange is an inclusive time interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Filters narrow a result set. Every populated field is applied as an
// AND-composed predicate; zero-valued fields are ignored.
type Filters struct {
	Types              []core.DocumentType
	ContactIds         []string
	DateRange          *DateRange
	Categories         []string
	CommitmentStatuses []core.CommitmentStatus
	EmotionalTones     []string
	MinRelevanceScore  float64
}

// Options configure how a query executes and how results are shaped.
type Options struct {
	// MaxResults caps the returned result count. Default 50.
	MaxResults int
	// IncludeHighlights requests highlight spans on index-path results.
	IncludeHighlights bool
	// SortBy selects the sort key. Default relevance.
	SortBy SortBy
	// SortOrder selects the direction. Default descending.
	SortOrder SortOrder
	// FuzzyMatching extends candidate selection with edit-distance matches.
	FuzzyMatching bool
	// CaseSensitive makes term occurrence counting case sensitive.
	CaseSensitive bool
}

// Query is a free-text search request.
type Query struct {
	Text    string
	Filters Filters
	Options Options
}

// Highlight is one matched span inside a document's text.
type Highlight struct {
	Text       string
	StartIndex int
	EndIndex   int
}

// ResultMetadata carries the facet fields of a result.
type ResultMetadata struct {
	ContactId      string
	ConversationId core.ID
	Date           time.Time
	Duration       int64 // seconds, conversations only
	Category       string
	Status         core.CommitmentStatus
	EmotionalTone  string
}

// Result is a single search hit.
// RelevanceScore is always normalized into [0,1] regardless of which
// sub-engine produced the hit.
type Result struct {
	Id             string
	Type           core.DocumentType
	Title          string
	Description    string
	ContentSnippet string
	RelevanceScore float64
	MatchedTerms   []string
	Metadata       ResultMetadata
	Highlights     []Highlight
}

// Stats aggregates service counters.
type Stats struct {
	TotalSearches     int64
	AverageDurationMs float64
	PopularQueries    []string
	DocumentCounts    map[core.DocumentType]int
	// DegradedSearches counts searches where at least one sub-engine
	// failed and contributed zero results. LastSearchDegraded reports the
	// same signal for the most recent search; callers use it to tell a
	// genuinely empty result from a partial one.
	DegradedSearches   int64
	LastSearchDegraded bool
}

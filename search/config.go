// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

// Config holds tuning parameters for the search service.
type Config struct {
	// ConversationBatchLimit caps how many conversations one index
	// rebuild collects. Default: 1000
	ConversationBatchLimit int

	// CommitmentBatchLimit caps how many commitments one index rebuild
	// collects. Default: 1000
	CommitmentBatchLimit int

	// MaxFuzzyDistance is the Levenshtein distance within which a
	// vocabulary token matches a query term when fuzzy matching is on.
	// Default: 2
	MaxFuzzyDistance int

	// MinStoreRelevance is the threshold below which store-side matches
	// are discarded. Default: 1
	MinStoreRelevance float64

	// DefaultMaxResults is the result cap applied when a query does not
	// set one. Default: 50
	DefaultMaxResults int
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		ConversationBatchLimit: 1000,
		CommitmentBatchLimit:   1000,
		MaxFuzzyDistance:       2,
		MinStoreRelevance:      1,
		DefaultMaxResults:      50,
	}
}

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


// Package search provides hybrid full-text search over conversations,
// commitments, and cached analyses.
//
// The Service type layers two search paths:
//   - An in-process inverted index with TF-IDF style scoring, optional
//     Levenshtein fuzzy matching, and highlighting
//   - Store-side relevance search for the high-volume record types
//
// Results from both paths are merged, deduplicated, filtered, sorted, and
// truncated; every completed search is recorded in a capped, persisted
// history that also backs autocomplete suggestions.
package search

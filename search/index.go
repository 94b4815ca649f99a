package search

import "github.com/poiesic/recallit/core"

// snapshot is one immutable build of the inverted index. A rebuild constructs
// a fresh snapshot off to the side and publishes it with an atomic pointer
// swap, so searches always observe either the old or the new index, never a
// half-replaced one.
type snapshot struct {
	// docs maps composite document id to its document.
	docs map[string]*Document
	// postings maps each index token to the set of document ids whose
	// composite text contains it.
	postings map[string]map[string]struct{}
}

func emptySnapshot() *snapshot {
	return &snapshot{
		docs:     make(map[string]*Document),
		postings: make(map[string]map[string]struct{}),
	}
}

// buildSnapshot tokenizes every document's composite text and constructs the
// postings structure. Later documents with a duplicate id replace earlier
// ones, keeping document ids unique within the snapshot.
func buildSnapshot(docs []*Document) *snapshot {
	s := emptySnapshot()
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		s.docs[doc.DocId] = doc
	}

	for id, doc := range s.docs {
		for _, token := range tokenize(doc.CompositeText) {
			set, ok := s.postings[token]
			if !ok {
				set = make(map[string]struct{})
				s.postings[token] = set
			}
			set[id] = struct{}{}
		}
	}
	return s
}

// documentCount returns the number of indexed documents, floored at 1 so the
// inverse-document-frequency term never divides by zero.
func (s *snapshot) documentCount() int {
	if len(s.docs) < 1 {
		return 1
	}
	return len(s.docs)
}

// countByType tallies indexed documents per document type.
func (s *snapshot) countByType() map[core.DocumentType]int {
	counts := make(map[core.DocumentType]int)
	for _, doc := range s.docs {
		counts[doc.Type]++
	}
	return counts
}

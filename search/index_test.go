package search

import (
	"testing"
	"time"

	"github.com/poiesic/recallit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(docType core.DocumentType, id core.ID, text string) *Document {
	return &Document{
		DocId:         docType.DocId(id),
		Type:          docType,
		SourceId:      id,
		CompositeText: text,
		Title:         text,
		Metadata:      ResultMetadata{Date: time.Now().UTC()},
	}
}

func TestBuildSnapshot(t *testing.T) {
	docs := []*Document{
		testDocument(core.DocumentTypeConversation, 1, "dinner reservations friday"),
		testDocument(core.DocumentTypeCommitment, 2, "confirm dinner booking"),
		testDocument(core.DocumentTypeInsight, 3, "budget review topics"),
	}

	s := buildSnapshot(docs)

	assert.Len(t, s.docs, 3)
	assert.Len(t, s.postings["dinner"], 2)
	assert.Len(t, s.postings["budget"], 1)
	assert.NotContains(t, s.postings, "the")

	counts := s.countByType()
	assert.Equal(t, 1, counts[core.DocumentTypeConversation])
	assert.Equal(t, 1, counts[core.DocumentTypeCommitment])
	assert.Equal(t, 1, counts[core.DocumentTypeInsight])
}

func TestBuildSnapshotDeduplicates(t *testing.T) {
	first := testDocument(core.DocumentTypeConversation, 1, "original transcript")
	second := testDocument(core.DocumentTypeConversation, 1, "replacement transcript")

	s := buildSnapshot([]*Document{first, second})

	require.Len(t, s.docs, 1)
	assert.Equal(t, "replacement transcript", s.docs[first.DocId].CompositeText)
	assert.NotContains(t, s.postings, "original")
	assert.Contains(t, s.postings, "replacement")
}

func TestBuildSnapshotDeterministic(t *testing.T) {
	docs := []*Document{
		testDocument(core.DocumentTypeConversation, 1, "dinner reservations friday"),
		testDocument(core.DocumentTypeCommitment, 2, "confirm dinner booking"),
	}

	first := buildSnapshot(docs)
	second := buildSnapshot(docs)

	require.Equal(t, len(first.docs), len(second.docs))
	require.Equal(t, len(first.postings), len(second.postings))
	for token, ids := range first.postings {
		assert.Equal(t, ids, second.postings[token], "postings for %q differ", token)
	}
}

func TestSnapshotDocumentCount(t *testing.T) {
	assert.Equal(t, 1, emptySnapshot().documentCount())

	s := buildSnapshot([]*Document{
		testDocument(core.DocumentTypeConversation, 1, "hello world"),
		testDocument(core.DocumentTypeConversation, 2, "hello again"),
	})
	assert.Equal(t, 2, s.documentCount())
}

func TestBuildSnapshotSkipsNil(t *testing.T) {
	s := buildSnapshot([]*Document{
		nil,
		testDocument(core.DocumentTypeConversation, 1, "hello world"),
	})
	assert.Len(t, s.docs, 1)
}

package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "simple content",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}

	t.Run("different content produces different IDs", func(t *testing.T) {
		if IDFromContent("alpha") == IDFromContent("beta") {
			t.Error("Expected different IDs for different content")
		}
	})
}

func TestDocumentTypeDocId(t *testing.T) {
	tests := []struct {
		name    string
		docType DocumentType
		id      ID
		want    string
	}{
		{
			name:    "conversation",
			docType: DocumentTypeConversation,
			id:      42,
			want:    "conversation_42",
		},
		{
			name:    "commitment",
			docType: DocumentTypeCommitment,
			id:      7,
			want:    "commitment_7",
		},
		{
			name:    "insight",
			docType: DocumentTypeInsight,
			id:      1,
			want:    "insight_1",
		},
		{
			name:    "transcript with zero id",
			docType: DocumentTypeTranscript,
			id:      0,
			want:    "transcript_0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.docType.DocId(tt.id); got != tt.want {
				t.Errorf("DocId() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocIdCollision(t *testing.T) {
	// Same numeric id under different types must produce distinct doc ids.
	if DocumentTypeConversation.DocId(5) == DocumentTypeCommitment.DocId(5) {
		t.Error("Expected distinct doc ids across types for the same numeric id")
	}
}

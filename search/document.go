package search

import (
	"strings"

	"github.com/poiesic/recallit/core"
)

// Document is the ephemeral, searchable form of one source record. Documents
// are derived during index rebuilds and never persisted; the whole set is
// rebuilt wholesale rather than patched in place.
type Document struct {
	DocId         string
	Type          core.DocumentType
	SourceId      core.ID
	CompositeText string
	Title         string
	Description   string
	Metadata      ResultMetadata
}

// newConversationDocument derives a searchable document from a conversation.
// The composite text joins the transcript with the contact name, phone
// number, and emotional tone so all of them are matchable.
func newConversationDocument(record *core.ConversationRecord) *Document {
	title := record.ContactName
	if title == "" {
		title = record.PhoneNumber
	}

	composite := joinFields(
		record.Transcript,
		record.ContactName,
		record.PhoneNumber,
		record.EmotionalTone,
	)

	return &Document{
		DocId:         core.DocumentTypeConversation.DocId(record.Id),
		Type:          core.DocumentTypeConversation,
		SourceId:      record.Id,
		CompositeText: composite,
		Title:         title,
		Description:   truncateText(record.Transcript, 160),
		Metadata: ResultMetadata{
			ContactId:      record.ContactId,
			ConversationId: record.Id,
			Date:           record.Timestamp,
			Duration:       record.Duration,
			EmotionalTone:  record.EmotionalTone,
		},
	}
}

// newCommitmentDocument derives a searchable document from a commitment.
func newCommitmentDocument(record *core.CommitmentRecord) *Document {
	composite := joinFields(
		record.Text,
		record.Category,
		string(record.Priority),
		string(record.Status),
		string(record.WhoCommitted),
	)

	return &Document{
		DocId:         core.DocumentTypeCommitment.DocId(record.Id),
		Type:          core.DocumentTypeCommitment,
		SourceId:      record.Id,
		CompositeText: composite,
		Title:         truncateText(record.Text, 80),
		Description:   record.Text,
		Metadata: ResultMetadata{
			ContactId:      record.ContactId,
			ConversationId: record.ConversationId,
			Date:           record.Timestamp,
			Category:       record.Category,
			Status:         record.Status,
		},
	}
}

// newInsightDocument derives a searchable document from a cached analysis.
func newInsightDocument(record *core.AnalysisRecord) *Document {
	composite := joinFields(
		record.Transcript,
		strings.Join(record.KeyTopics, " "),
		strings.Join(record.ActionItems, " "),
		strings.Join(record.FollowUpSuggestions, " "),
	)

	title := "Conversation insight"
	if len(record.KeyTopics) > 0 {
		title = record.KeyTopics[0]
	}

	return &Document{
		DocId:         core.DocumentTypeInsight.DocId(record.Id),
		Type:          core.DocumentTypeInsight,
		SourceId:      record.Id,
		CompositeText: composite,
		Title:         title,
		Description:   truncateText(record.Transcript, 160),
		Metadata: ResultMetadata{
			ConversationId: record.ConversationId,
			Date:           record.Timestamp,
		},
	}
}

// joinFields concatenates non-empty fields with single spaces.
func joinFields(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// truncateText shortens text to at most limit bytes, appending an ellipsis
// when anything was cut.
func truncateText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

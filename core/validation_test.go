package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateConversationRecord(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		record  *ConversationRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ConversationRecord{
				Id:          1,
				ContactId:   "contact-001",
				ContactName: "Sarah Johnson",
				Transcript:  "We talked about dinner plans",
				Timestamp:   validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record without contact details",
			record: &ConversationRecord{
				Transcript: "Call from an unknown number",
				Timestamp:  validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record with ID 0",
			record: &ConversationRecord{
				Id:         0,
				Transcript: "Message",
				Timestamp:  validTime,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidConversation,
		},
		{
			name: "empty transcript",
			record: &ConversationRecord{
				ContactName: "Sarah Johnson",
				Timestamp:   validTime,
			},
			wantErr: ErrEmptyTranscript,
		},
		{
			name: "future timestamp",
			record: &ConversationRecord{
				Transcript: "Message",
				Timestamp:  futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConversationRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateConversationRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateConversationRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCommitmentRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *CommitmentRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &CommitmentRecord{
				Text:         "Call the restaurant",
				Priority:     PriorityHigh,
				Status:       StatusPending,
				WhoCommitted: CommitterUser,
			},
			wantErr: nil,
		},
		{
			name: "valid record without due date",
			record: &CommitmentRecord{
				Text:         "Send the spreadsheet",
				Priority:     PriorityLow,
				Status:       StatusCompleted,
				WhoCommitted: CommitterContact,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidCommitment,
		},
		{
			name: "empty text",
			record: &CommitmentRecord{
				Priority:     PriorityHigh,
				Status:       StatusPending,
				WhoCommitted: CommitterUser,
			},
			wantErr: ErrEmptyCommitmentText,
		},
		{
			name: "invalid priority",
			record: &CommitmentRecord{
				Text:         "Call the restaurant",
				Priority:     "urgent",
				Status:       StatusPending,
				WhoCommitted: CommitterUser,
			},
			wantErr: ErrInvalidPriority,
		},
		{
			name: "invalid status",
			record: &CommitmentRecord{
				Text:         "Call the restaurant",
				Priority:     PriorityHigh,
				Status:       "done",
				WhoCommitted: CommitterUser,
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "invalid committer",
			record: &CommitmentRecord{
				Text:         "Call the restaurant",
				Priority:     PriorityHigh,
				Status:       StatusPending,
				WhoCommitted: "nobody",
			},
			wantErr: ErrInvalidCommitter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommitmentRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCommitmentRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCommitmentRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAnalysisRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := &AnalysisRecord{
			ConversationId: 1,
			Transcript:     "Discussed the quarterly numbers",
			KeyTopics:      []string{"budget"},
		}
		if err := ValidateAnalysisRecord(record); err != nil {
			t.Errorf("ValidateAnalysisRecord() unexpected error: %v", err)
		}
	})

	t.Run("nil record", func(t *testing.T) {
		if err := ValidateAnalysisRecord(nil); !errors.Is(err, ErrInvalidAnalysis) {
			t.Errorf("ValidateAnalysisRecord(nil) error = %v, want %v", err, ErrInvalidAnalysis)
		}
	})

	t.Run("empty transcript", func(t *testing.T) {
		if err := ValidateAnalysisRecord(&AnalysisRecord{ConversationId: 1}); !errors.Is(err, ErrEmptyTranscript) {
			t.Errorf("ValidateAnalysisRecord() error = %v, want %v", err, ErrEmptyTranscript)
		}
	})
}

func TestValidateDocumentType(t *testing.T) {
	valid := []DocumentType{
		DocumentTypeConversation,
		DocumentTypeCommitment,
		DocumentTypeInsight,
		DocumentTypeTranscript,
	}
	for _, docType := range valid {
		if err := ValidateDocumentType(docType); err != nil {
			t.Errorf("ValidateDocumentType(%q) unexpected error: %v", docType, err)
		}
	}

	if err := ValidateDocumentType("email"); !errors.Is(err, ErrInvalidDocumentType) {
		t.Errorf("ValidateDocumentType(email) error = %v, want %v", err, ErrInvalidDocumentType)
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-time.Hour)) {
		t.Error("Expected past timestamp to be valid")
	}
	if !IsValidTimestamp(time.Now().Add(30 * time.Second)) {
		t.Error("Expected timestamp within skew tolerance to be valid")
	}
	if IsValidTimestamp(time.Now().Add(time.Hour)) {
		t.Error("Expected future timestamp to be invalid")
	}
}

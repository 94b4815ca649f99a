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


package core

import (
	"fmt"
	"time"
)

// ValidateConversationRecord validates a ConversationRecord according to domain rules.
//
// Validation rules:
//   - Transcript must not be empty
//   - Timestamp must not be in the future
//
// NOT validated:
//   - ContactName / PhoneNumber (calls from unknown numbers have neither)
//   - ID (0 is valid from database sequences)
func ValidateConversationRecord(record *ConversationRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidConversation)
	}

	if record.Transcript == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConversation, ErrEmptyTranscript)
	}

	if !IsValidTimestamp(record.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidConversation, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateCommitmentRecord validates a CommitmentRecord according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Priority, Status, and WhoCommitted must be valid enum values
//
// NOT validated:
//   - DueDate (commitments without a deadline leave it zero)
//   - ID (0 is valid from database sequences)
func ValidateCommitmentRecord(record *CommitmentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCommitment)
	}

	if record.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCommitment, ErrEmptyCommitmentText)
	}

	if err := ValidatePriority(record.Priority); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommitment, err)
	}

	if err := ValidateStatus(record.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommitment, err)
	}

	if err := ValidateCommitter(record.WhoCommitted); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommitment, err)
	}

	return nil
}

// ValidateAnalysisRecord validates an AnalysisRecord according to domain rules.
func ValidateAnalysisRecord(record *AnalysisRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidAnalysis)
	}

	if record.Transcript == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAnalysis, ErrEmptyTranscript)
	}

	return nil
}

// ValidatePriority validates that a Priority has a valid value.
func ValidatePriority(priority Priority) error {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
}

// ValidateStatus validates that a CommitmentStatus has a valid value.
func ValidateStatus(status CommitmentStatus) error {
	switch status {
	case StatusPending, StatusCompleted, StatusOverdue, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}

// ValidateCommitter validates that a Committer has a valid value.
func ValidateCommitter(committer Committer) error {
	switch committer {
	case CommitterUser, CommitterContact:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCommitter, committer)
	}
}

// ValidateDocumentType validates that a DocumentType has a valid value.
func ValidateDocumentType(t DocumentType) error {
	switch t {
	case DocumentTypeConversation, DocumentTypeCommitment, DocumentTypeInsight, DocumentTypeTranscript:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDocumentType, t)
	}
}

// IsValidTimestamp returns true if the timestamp is not in the future.
// A small amount of clock skew is tolerated.
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now().Add(time.Minute))
}

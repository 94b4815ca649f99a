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

import "errors"

// Domain validation errors
var (
	// ErrInvalidConversation indicates a ConversationRecord failed validation.
	ErrInvalidConversation = errors.New("invalid conversation record")

	// ErrInvalidCommitment indicates a CommitmentRecord failed validation.
	ErrInvalidCommitment = errors.New("invalid commitment record")

	// ErrInvalidAnalysis indicates an AnalysisRecord failed validation.
	ErrInvalidAnalysis = errors.New("invalid analysis record")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyTranscript indicates the Transcript field is empty.
	ErrEmptyTranscript = errors.New("transcript cannot be empty")

	// ErrEmptyCommitmentText indicates the commitment Text field is empty.
	ErrEmptyCommitmentText = errors.New("commitment text cannot be empty")

	// ErrInvalidPriority indicates an invalid Priority value.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus indicates an invalid CommitmentStatus value.
	ErrInvalidStatus = errors.New("invalid commitment status")

	// ErrInvalidCommitter indicates an invalid Committer value.
	ErrInvalidCommitter = errors.New("invalid committer")

	// ErrInvalidDocumentType indicates an invalid DocumentType value.
	ErrInvalidDocumentType = errors.New("invalid document type")
)

package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocumentType discriminates the kind of record behind a search document.
type DocumentType string

const (
	// DocumentTypeConversation represents a recorded phone conversation.
	DocumentTypeConversation DocumentType = "conversation"
	// DocumentTypeCommitment represents a commitment made during a conversation.
	DocumentTypeCommitment DocumentType = "commitment"
	// DocumentTypeInsight represents an AI-derived analysis of a conversation.
	DocumentTypeInsight DocumentType = "insight"
	// DocumentTypeTranscript represents a standalone transcript fragment.
	DocumentTypeTranscript DocumentType = "transcript"
)

// DocId returns the composite document identifier for a record of this type.
// Both the in-memory index and the store-side search build ids through this
// method, so ids from the two paths collide exactly when they refer to the
// same underlying record.
func (t DocumentType) DocId(id ID) string {
	return fmt.Sprintf("%s_%d", t, id)
}

// Priority indicates how urgent a commitment is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// CommitmentStatus tracks the lifecycle of a commitment.
type CommitmentStatus string

const (
	StatusPending   CommitmentStatus = "pending"
	StatusCompleted CommitmentStatus = "completed"
	StatusOverdue   CommitmentStatus = "overdue"
	StatusCancelled CommitmentStatus = "cancelled"
)

// Committer identifies who made a commitment.
type Committer string

const (
	CommitterUser    Committer = "user"
	CommitterContact Committer = "contact"
)

// ConversationRecord represents a single recorded conversation with a contact.
type ConversationRecord struct {
	Id            ID
	ContactId     string
	ContactName   string
	PhoneNumber   string
	Transcript    string
	EmotionalTone string
	Timestamp     time.Time // When the conversation took place
	Duration      int64     // Call duration in seconds
	InsertedAt    time.Time // When the record was inserted into the database
	UpdatedAt     time.Time // When the record was last updated
}

// CommitmentRecord represents a commitment extracted from a conversation.
type CommitmentRecord struct {
	Id             ID
	ConversationId ID
	ContactId      string
	Text           string
	Category       string
	Priority       Priority
	Status         CommitmentStatus
	WhoCommitted   Committer
	DueDate        time.Time
	Timestamp      time.Time
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// AnalysisRecord represents an AI-derived analysis of a conversation.
// These records are produced by an external analyzer and cached in memory;
// they are never persisted by this subsystem.
type AnalysisRecord struct {
	Id                  ID
	ConversationId      ID
	Transcript          string
	KeyTopics           []string
	ActionItems         []string
	FollowUpSuggestions []string
	Timestamp           time.Time
}

// SearchHistoryEntry records one executed search.
type SearchHistoryEntry struct {
	Id              ID
	QueryText       string
	Timestamp       time.Time
	ResultCount     int64
	ExecutionTimeMs int64
}

package storage

import (
	"context"
	"time"

	"github.com/poiesic/recallit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ConversationRepository provides operations for managing conversation records.
type ConversationRepository interface {
	Repository
	// AddConversations adds one or more conversation records to storage.
	// For records with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the records with generated IDs and timestamps populated.
	AddConversations(ctx context.Context, records ...*core.ConversationRecord) ([]*core.ConversationRecord, error)

	// UpdateConversations updates existing conversation records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateConversations(ctx context.Context, records ...*core.ConversationRecord) ([]*core.ConversationRecord, error)

	// DeleteConversations removes conversation records by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteConversations(ctx context.Context, ids ...core.ID) error

	// GetConversation retrieves a single conversation record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetConversation(ctx context.Context, id core.ID) (*core.ConversationRecord, error)

	// GetConversations retrieves the N most recent conversation records,
	// ordered by timestamp descending. Returns up to limit records.
	GetConversations(ctx context.Context, limit int) ([]*core.ConversationRecord, error)

	// GetConversationsByDateRange retrieves conversation records within a time range.
	// Returns records where start <= Timestamp < end, ordered by timestamp.
	GetConversationsByDateRange(ctx context.Context, start, end time.Time) ([]*core.ConversationRecord, error)
}

// CommitmentFilter narrows the set of commitments returned by GetCommitments.
// Zero-valued fields are ignored.
type CommitmentFilter struct {
	Statuses  []core.CommitmentStatus
	ContactId string
	Limit     int
}

// CommitmentRepository provides operations for managing commitment records.
type CommitmentRepository interface {
	Repository
	// AddCommitments adds one or more commitment records to storage.
	// For records with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the records with generated IDs and timestamps populated.
	AddCommitments(ctx context.Context, records ...*core.CommitmentRecord) ([]*core.CommitmentRecord, error)

	// UpdateCommitments updates existing commitment records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateCommitments(ctx context.Context, records ...*core.CommitmentRecord) ([]*core.CommitmentRecord, error)

	// DeleteCommitments removes commitment records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteCommitments(ctx context.Context, ids ...core.ID) error

	// GetCommitment retrieves a single commitment record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetCommitment(ctx context.Context, id core.ID) (*core.CommitmentRecord, error)

	// GetCommitments retrieves commitment records matching the filter,
	// ordered by timestamp descending.
	GetCommitments(ctx context.Context, filter CommitmentFilter) ([]*core.CommitmentRecord, error)

	// GetCommitmentsByConversation retrieves commitments extracted from one conversation.
	GetCommitmentsByConversation(ctx context.Context, conversationId core.ID) ([]*core.CommitmentRecord, error)
}

// SettingsRepository provides a generic key/value area for small blobs
// such as serialized search history.
type SettingsRepository interface {
	// GetSetting retrieves the value stored under key.
	// Returns nil, nil if the key does not exist.
	GetSetting(ctx context.Context, key string) ([]byte, error)

	// SetSetting stores value under key, replacing any previous value.
	SetSetting(ctx context.Context, key string, value []byte) error

	// DeleteSetting removes the value stored under key.
	// Deleting a missing key is not an error.
	DeleteSetting(ctx context.Context, key string) error
}

// AdvancedSearchOptions configures a store-side search.
type AdvancedSearchOptions struct {
	// Types restricts the search to the given document types.
	// Only conversation and commitment are supported by the store.
	Types []core.DocumentType

	// Limit caps the total number of matches across all types.
	// Each type receives an even share of the limit.
	Limit int

	// MinRelevance discards matches scoring below this threshold.
	MinRelevance float64
}

// StoreMatch is a single match returned by store-side search.
// Exactly one of Conversation or Commitment is non-nil, matching Type.
type StoreMatch struct {
	Type         core.DocumentType
	Id           string // composite document id, see core.DocumentType.DocId
	Title        string
	Snippet      string
	Relevance    float64
	Conversation *core.ConversationRecord
	Commitment   *core.CommitmentRecord
}

// StoreSearcher searches the persistent store directly, without an in-memory
// index. It exists for the high-volume record types that may not fit
// comfortably in memory.
type StoreSearcher interface {
	// AdvancedSearch finds records whose fields match the search text,
	// scored by a per-type relevance heuristic. Matches are ordered by
	// relevance descending within each type.
	AdvancedSearch(ctx context.Context, text string, opts AdvancedSearchOptions) ([]*StoreMatch, error)
}

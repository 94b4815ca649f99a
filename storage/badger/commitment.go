package badger

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

// CommitmentRepository implements storage.CommitmentRepository for BadgerDB.
type CommitmentRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.CommitmentRepository = (*CommitmentRepository)(nil)

// NewCommitmentRepository creates a new CommitmentRepository.
func NewCommitmentRepository(backend *Backend) (*CommitmentRepository, error) {
	idSeq, err := backend.GetSequence(commitIDSeq)
	if err != nil {
		return nil, err
	}

	return &CommitmentRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *CommitmentRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *CommitmentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCommitments adds one or more commitment records to storage.
func (r *CommitmentRepository) AddCommitments(ctx context.Context, records ...*core.CommitmentRecord) ([]*core.CommitmentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			record.Id = core.ID(nextID)

			record.InsertedAt = time.Now().UTC()
			record.UpdatedAt = record.InsertedAt

			key := makeCommitmentKey(record.Id)
			value := storage.MarshalCommitmentRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update conversation index
			if record.ConversationId != 0 {
				convKey := makeCommitmentConvKey(record.ConversationId, record.Id)
				if err := tx.Set(convKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateCommitments updates existing commitment records.
func (r *CommitmentRepository) UpdateCommitments(ctx context.Context, records ...*core.CommitmentRecord) ([]*core.CommitmentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeCommitmentKey(record.Id)

			old, err := r.readCommitment(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.UpdatedAt = time.Now().UTC()

			value := storage.MarshalCommitmentRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update conversation index if the parent conversation changed
			if old.ConversationId != record.ConversationId {
				if old.ConversationId != 0 {
					if err := tx.Delete(makeCommitmentConvKey(old.ConversationId, old.Id)); err != nil {
						return err
					}
				}
				if record.ConversationId != 0 {
					convKey := makeCommitmentConvKey(record.ConversationId, record.Id)
					if err := tx.Set(convKey, storage.MarshalID(record.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteCommitments removes commitment records by their IDs.
func (r *CommitmentRepository) DeleteCommitments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCommitmentKey(id)

			record, err := r.readCommitment(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if record.ConversationId != 0 {
				if err := tx.Delete(makeCommitmentConvKey(record.ConversationId, record.Id)); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCommitment retrieves a single commitment record by ID.
func (r *CommitmentRepository) GetCommitment(ctx context.Context, id core.ID) (*core.CommitmentRecord, error) {
	var result *core.CommitmentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCommitmentKey(id)
		var err error
		result, err = r.readCommitment(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetCommitments retrieves commitment records matching the filter,
// ordered by timestamp descending.
func (r *CommitmentRepository) GetCommitments(ctx context.Context, filter storage.CommitmentFilter) ([]*core.CommitmentRecord, error) {
	var results []*core.CommitmentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(commitRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var record *core.CommitmentRecord
			if err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCommitmentRecord(val)
				return err
			}); err != nil {
				return err
			}

			if !matchesFilter(record, filter) {
				continue
			}
			results = append(results, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

// GetCommitmentsByConversation retrieves commitments extracted from one conversation.
func (r *CommitmentRepository) GetCommitmentsByConversation(ctx context.Context, conversationId core.ID) ([]*core.CommitmentRecord, error) {
	var results []*core.CommitmentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialCommitmentConvKey(conversationId)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := r.readCommitment(tx, makeCommitmentKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

func matchesFilter(record *core.CommitmentRecord, filter storage.CommitmentFilter) bool {
	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, record.Status) {
		return false
	}
	if filter.ContactId != "" && record.ContactId != filter.ContactId {
		return false
	}
	return true
}

// readCommitment reads and unmarshals a commitment record by key.
// Returns nil, nil when the key does not exist.
func (r *CommitmentRepository) readCommitment(tx *badger.Txn, key []byte) (*core.CommitmentRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CommitmentRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalCommitmentRecord(val)
		return unmarshalErr
	})
	return record, err
}

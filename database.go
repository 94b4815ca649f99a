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


package recallit

import (
	"log/slog"

	"github.com/poiesic/recallit/analysis"
	"github.com/poiesic/recallit/search"
	"github.com/poiesic/recallit/storage"
	"github.com/poiesic/recallit/storage/badger"
)

// Database bundles the BadgerDB backend, its repositories, and the in-memory
// analysis cache behind one handle.
type Database struct {
	backend      *badger.Backend
	convRepo     storage.ConversationRepository
	commitRepo   storage.CommitmentRepository
	settings     storage.SettingsRepository
	analyses     *analysis.Cache
	searchConfig *search.Config
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory     bool
	searchConfig *search.Config
}

// WithInMemory opens the backend in memory, without touching disk.
// Intended for tests.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithSearchConfig overrides the search configuration used by NewSearchService.
func WithSearchConfig(config search.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.searchConfig = &config
	}
}

// NewDatabase opens the store at filePath and wires up the repositories.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	convRepo, err := badger.NewConversationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	commitRepo, err := badger.NewCommitmentRepository(backend)
	if err != nil {
		convRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		convRepo:     convRepo,
		commitRepo:   commitRepo,
		settings:     badger.NewSettingsRepository(backend),
		analyses:     analysis.NewCache(),
		searchConfig: options.searchConfig,
		logger:       slog.Default(),
	}, nil
}

// Close closes the repositories and the backend.
func (db *Database) Close() error {
	if err := db.commitRepo.Close(); err != nil {
		db.logger.Error("error closing commitment repository", "err", err)
		return err
	}
	if err := db.convRepo.Close(); err != nil {
		db.logger.Error("error closing conversation repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ConversationRepository returns the conversation repository.
func (db *Database) ConversationRepository() storage.ConversationRepository {
	return db.convRepo
}

// CommitmentRepository returns the commitment repository.
func (db *Database) CommitmentRepository() storage.CommitmentRepository {
	return db.commitRepo
}

// SettingsRepository returns the generic key/value settings repository.
func (db *Database) SettingsRepository() storage.SettingsRepository {
	return db.settings
}

// AnalysisCache returns the in-memory analysis cache.
func (db *Database) AnalysisCache() *analysis.Cache {
	return db.analyses
}

// NewSearchService creates a search service over this database.
// The service must be initialized before its first search.
func (db *Database) NewSearchService(opts ...search.Option) (*search.Service, error) {
	if db.searchConfig != nil {
		opts = append([]search.Option{search.WithConfig(*db.searchConfig)}, opts...)
	}
	return search.NewService(db.convRepo, db.commitRepo, db.settings, db.backend, db.analyses, opts...)
}

package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

// AnalysisSource serves cached conversation analyses for indexing.
type AnalysisSource interface {
	GetAnalyses(ctx context.Context) ([]*core.AnalysisRecord, error)
}

// Service is the hybrid search facade. It owns the in-memory index and
// document map; searches only read that state and RebuildIndex replaces it
// wholesale, so a service instance is safe for concurrent use.
type Service struct {
	conversations storage.ConversationRepository
	commitments   storage.CommitmentRepository
	analyses      AnalysisSource
	adapter       *structuredAdapter
	history       *historyTracker
	config        Config
	pool          *ants.Pool
	logger        *slog.Logger

	idx atomic.Pointer[snapshot]

	initMu      sync.Mutex
	initialized bool

	stats statsRecorder
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		s.history.logger = logger
		return nil
	}
}

// WithConfig overrides the default search configuration.
// Zero-valued fields fall back to their defaults.
func WithConfig(config Config) Option {
	return func(s *Service) error {
		defaults := DefaultConfig()
		if config.ConversationBatchLimit <= 0 {
			config.ConversationBatchLimit = defaults.ConversationBatchLimit
		}
		if config.CommitmentBatchLimit <= 0 {
			config.CommitmentBatchLimit = defaults.CommitmentBatchLimit
		}
		if config.MaxFuzzyDistance <= 0 {
			config.MaxFuzzyDistance = defaults.MaxFuzzyDistance
		}
		if config.MinStoreRelevance <= 0 {
			config.MinStoreRelevance = defaults.MinStoreRelevance
		}
		if config.DefaultMaxResults <= 0 {
			config.DefaultMaxResults = defaults.DefaultMaxResults
		}
		s.config = config
		s.adapter.minRelevance = config.MinStoreRelevance
		return nil
	}
}

// WithPoolSize sets the worker pool size for index rebuild collection.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Service) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewService creates a new search service.
func NewService(
	conversations storage.ConversationRepository,
	commitments storage.CommitmentRepository,
	settings storage.SettingsRepository,
	store storage.StoreSearcher,
	analyses AnalysisSource,
	opts ...Option,
) (*Service, error) {
	if conversations == nil {
		return nil, ErrConversationRepositoryRequired
	}
	if commitments == nil {
		return nil, ErrCommitmentRepositoryRequired
	}
	if settings == nil {
		return nil, ErrSettingsRepositoryRequired
	}
	if store == nil {
		return nil, ErrStoreSearcherRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	config := DefaultConfig()

	s := &Service{
		conversations: conversations,
		commitments:   commitments,
		analyses:      analyses,
		adapter: &structuredAdapter{
			store:        store,
			minRelevance: config.MinStoreRelevance,
		},
		history: newHistoryTracker(settings, logger),
		config:  config,
		pool:    pool,
		logger:  logger,
	}
	s.idx.Store(emptySnapshot())

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the worker pool.
func (s *Service) Close() error {
	s.pool.Release()
	return nil
}

// Initialize loads persisted search history and builds the first index
// snapshot. It is idempotent; repeated calls are no-ops.
func (s *Service) Initialize(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initialized {
		return nil
	}

	s.history.load(ctx)
	if err := s.RebuildIndex(ctx); err != nil {
		return err
	}

	s.initialized = true
	return nil
}

// RebuildIndex replaces the index and document map wholesale. Source types
// are collected concurrently on the worker pool; a failure collecting one
// source type is logged and that type contributes zero documents, it is
// never fatal to the rebuild.
func (s *Service) RebuildIndex(ctx context.Context) error {
	var (
		mu   sync.Mutex
		docs []*Document
		wg   sync.WaitGroup
	)

	collect := func(source string, fn func(context.Context) ([]*Document, error)) {
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			found, err := fn(ctx)
			if err != nil {
				s.logger.Error("error collecting documents, source contributes none",
					"source", source, "err", err)
				return
			}
			mu.Lock()
			docs = append(docs, found...)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			s.logger.Error("error scheduling document collection", "source", source, "err", err)
		}
	}

	collect("conversations", s.collectConversations)
	collect("commitments", s.collectCommitments)
	collect("analyses", s.collectAnalyses)
	wg.Wait()

	// Build off to the side, then publish atomically. In-flight searches
	// keep reading the previous snapshot.
	s.idx.Store(buildSnapshot(docs))
	s.logger.Info("search index rebuilt", "documents", len(docs))
	return nil
}

func (s *Service) collectConversations(ctx context.Context) ([]*Document, error) {
	records, err := s.conversations.GetConversations(ctx, s.config.ConversationBatchLimit)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, newConversationDocument(record))
	}
	return docs, nil
}

func (s *Service) collectCommitments(ctx context.Context) ([]*Document, error) {
	records, err := s.commitments.GetCommitments(ctx, storage.CommitmentFilter{
		Limit: s.config.CommitmentBatchLimit,
	})
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, newCommitmentDocument(record))
	}
	return docs, nil
}

func (s *Service) collectAnalyses(ctx context.Context) ([]*Document, error) {
	if s.analyses == nil {
		return nil, nil
	}
	records, err := s.analyses.GetAnalyses(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, newInsightDocument(record))
	}
	return docs, nil
}

// Search executes a query against both search paths, merges and ranks the
// outputs, and records the query in history.
//
// Search never fails on sub-engine errors: a failing sub-engine is logged,
// contributes zero results, and marks the search degraded in Stats. Callers
// therefore always receive a well-formed result list; a failed search is
// distinguishable from an empty one only through Stats.
func (s *Service) Search(ctx context.Context, query Query) ([]*Result, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor is Search with observation hooks at each stage.
func (s *Service) SearchWithMonitor(ctx context.Context, query Query, monitor SearchMonitor) ([]*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	monitor.Start(query.Text)

	opts := query.Options
	if opts.MaxResults <= 0 {
		opts.MaxResults = s.config.DefaultMaxResults
	}
	if opts.SortBy == "" {
		opts.SortBy = SortByRelevance
	}
	if opts.SortOrder == "" {
		opts.SortOrder = SortDescending
	}

	degraded := false

	// 1. Store-side search for conversations and commitments
	structured, err := s.adapter.search(ctx, query.Text, opts)
	if err != nil {
		s.logger.Error("store search failed, contributing zero results", "err", err)
		structured = nil
		degraded = true
	}
	monitor.AfterStoreSearch(structured)

	// 2. Index path for everything else
	terms := uniqueTokens(query.Text)
	engine := queryIndex(s.idx.Load(), terms, opts, s.config.MaxFuzzyDistance)
	monitor.AfterIndexSearch(engine)

	// 3. Merge, filter, sort, truncate
	merged := mergeResults(structured, engine)
	monitor.AfterMerge(merged)

	filtered := applyFilters(merged, query.Filters)
	sortResults(filtered, opts.SortBy, opts.SortOrder)
	results := truncateResults(filtered, opts.MaxResults)

	// 4. Record the completed search
	elapsed := time.Since(start)
	s.history.record(ctx, query.Text, len(results), elapsed)
	s.stats.record(elapsed, degraded)

	monitor.Finish(results)
	return results, nil
}

// Suggestions returns autocomplete candidates for a partial query: history
// entries containing it as a substring first, supplemented with indexed
// vocabulary tokens starting with it, deduplicated and capped at max.
func (s *Service) Suggestions(ctx context.Context, partial string, max int) ([]string, error) {
	if max <= 0 {
		max = 10
	}
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return []string{}, nil
	}

	candidates := s.history.matching(partial)

	if len(candidates) < max {
		prefix := strings.ToLower(partial)
		snap := s.idx.Load()

		var vocab []string
		for token := range snap.postings {
			if strings.HasPrefix(token, prefix) {
				vocab = append(vocab, token)
			}
		}
		sort.Strings(vocab)
		candidates = append(candidates, vocab...)
	}

	seen := make(map[string]bool, len(candidates))
	suggestions := make([]string, 0, max)
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		suggestions = append(suggestions, candidate)
		if len(suggestions) == max {
			break
		}
	}
	return suggestions, nil
}

// Stats returns aggregate search counters and per-type document counts for
// the current index snapshot.
func (s *Service) Stats() Stats {
	total, avg, degraded, lastDegraded := s.stats.view()

	return Stats{
		TotalSearches:      total,
		AverageDurationMs:  avg,
		PopularQueries:     popularQueries(s.history.snapshot(), 5),
		DocumentCounts:     s.idx.Load().countByType(),
		DegradedSearches:   degraded,
		LastSearchDegraded: lastDegraded,
	}
}

// History returns a copy of the recorded search history, oldest first.
func (s *Service) History() []core.SearchHistoryEntry {
	return s.history.snapshot()
}

// ClearHistory wipes the search history in memory and in the store.
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.history.clear(ctx)
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/students-api/internal/models"
	"github.com/noah-isme/students-api/internal/repository"
)

const studentCachePattern = "students:*"

// StudentCacheRepository abstracts persistence for cached scoped reads.
type StudentCacheRepository interface {
	Get(ctx context.Context, key string) ([]models.Student, error)
	Set(ctx context.Context, key string, students []models.Student, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CacheService fronts the scoped read path with an optional Redis cache.
// Every failure is logged and reported as a miss; callers never see it.
//
// Writes bump a generation counter. A fill carries the generation observed
// before its store query and is dropped if a write happened since, so rows
// read before a write never outlive that write's invalidation.
type CacheService struct {
	repo    StudentCacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	enabled bool

	mu  sync.Mutex
	gen uint64
}

// NewCacheService constructs a cache service.
func NewCacheService(repo StudentCacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, ttl: ttl, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Key returns the cache key for scope.
func Key(scope models.Scope) string {
	return "students:" + string(scope.Kind) + ":" + scope.Value
}

// Get returns cached rows for scope and whether the lookup hit.
func (s *CacheService) Get(ctx context.Context, scope models.Scope) ([]models.Student, bool) {
	if !s.Enabled() {
		return nil, false
	}
	start := time.Now()
	students, err := s.repo.Get(ctx, Key(scope))
	s.metrics.RecordCacheLookup(err == nil, time.Since(start))
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("cache get failed", zap.String("key", Key(scope)), zap.Error(err))
		}
		return nil, false
	}
	return students, true
}

// Generation returns the current write generation. Read it before querying
// the store and hand it to Set.
func (s *CacheService) Generation() uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Set stores rows for scope unless a write completed after gen was taken.
func (s *CacheService) Set(ctx context.Context, scope models.Scope, students []models.Student, gen uint64) {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	if err := s.repo.Set(ctx, Key(scope), students, s.ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", Key(scope)), zap.Error(err))
	}
}

// Invalidate drops every cached scope after a write.
func (s *CacheService) Invalidate(ctx context.Context) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if !s.Enabled() {
		return
	}
	if err := s.repo.DeleteByPattern(ctx, studentCachePattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", studentCachePattern), zap.Error(err))
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/renovaverde/content-service/internal/cache"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/relevance"
	"github.com/renovaverde/content-service/internal/repositories"
)

// RelatedService resolves the "related articles" panel for one article.
type RelatedService interface {
	RelatedForSlug(ctx context.Context, slug string) (*RelatedResponse, error)
}

// RelatedResponse is the wire shape consumed by the frontend panel. Field
// names are fixed for compatibility with existing consumers.
type RelatedResponse struct {
	RelatedArticles []models.Article `json:"relatedArticles"`
	NewArticles     []models.Article `json:"newArticles"`
}

type relatedService struct {
	repo     repositories.Repository
	ranker   *relevance.Ranker
	cache    cache.CacheService
	logger   *slog.Logger
	poolSize int
	cacheTTL time.Duration
}

func NewRelatedService(
	repo repositories.Repository,
	ranker *relevance.Ranker,
	cacheService cache.CacheService,
	logger *slog.Logger,
	poolSize int,
	cacheTTL time.Duration,
) RelatedService {
	if poolSize <= 0 {
		poolSize = 200
	}
	return &relatedService{
		repo:     repo,
		ranker:   ranker,
		cache:    cacheService,
		logger:   logger,
		poolSize: poolSize,
		cacheTTL: cacheTTL,
	}
}

func relatedCacheKey(slug string) string {
	return "related:" + slug
}

func (s *relatedService) RelatedForSlug(ctx context.Context, slug string) (*RelatedResponse, error) {
	var cached RelatedResponse
	if err := s.cache.Get(ctx, relatedCacheKey(slug), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Related cache read failed", "slug", slug, "error", err)
	}

	current, err := s.repo.Article().GetBySlug(ctx, slug)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	pool, err := s.repo.Article().ListPublishedExcluding(ctx, current.ID, s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	response := &RelatedResponse{
		RelatedArticles: s.ranker.Related(current, pool, relevance.DefaultRelatedCount),
		NewArticles:     s.ranker.Newest(current, pool, relevance.DefaultRelatedCount),
	}

	if err := s.cache.Set(ctx, relatedCacheKey(slug), response, s.cacheTTL); err != nil {
		s.logger.Warn("Related cache write failed", "slug", slug, "error", err)
	}

	return response, nil
}

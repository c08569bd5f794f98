package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"gorm.io/datatypes"

	"github.com/renovaverde/content-service/internal/cache"
	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/utils"
)

type ArticleService interface {
	Create(ctx context.Context, req *CreateArticleRequest) (*models.Article, error)
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, id uint, req *UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters repositories.ArticleFilters) (*ArticleListResponse, error)
	Search(ctx context.Context, query string, filters repositories.ArticleFilters) (*ArticleListResponse, error)
	SetPublished(ctx context.Context, id uint, published bool) error
	Like(ctx context.Context, id uint) (int, error)
	Categories(ctx context.Context) ([]repositories.CategoryCount, error)
}

// ===== REQUEST / RESPONSE STRUCTURES =====

type CreateArticleRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Slug     string   `json:"slug" validate:"required,min=1,max=220,article_slug"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  *string  `json:"excerpt" validate:"omitempty,max=500"`
	Category string   `json:"category" validate:"required,article_category"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url,max=500"`
	Tags     []string `json:"tags" validate:"omitempty,dive,min=1,max=40"`
}

type UpdateArticleRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Slug     *string  `json:"slug" validate:"omitempty,min=1,max=220,article_slug"`
	Content  *string  `json:"content" validate:"omitempty,min=1"`
	Excerpt  *string  `json:"excerpt" validate:"omitempty,max=500"`
	Category *string  `json:"category" validate:"omitempty,article_category"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url,max=500"`
	Tags     []string `json:"tags" validate:"omitempty,dive,min=1,max=40"`
}

type ArticleListResponse struct {
	Articles []*models.Article `json:"articles"`
	Total    int64             `json:"total"`
}

type articleService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
	listTTL   time.Duration
}

func NewArticleService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
	listCacheTTL time.Duration,
) ArticleService {
	if listCacheTTL <= 0 {
		listCacheTTL = 2 * time.Minute
	}
	return &articleService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		listTTL:   listCacheTTL,
	}
}

func (s *articleService) Create(ctx context.Context, req *CreateArticleRequest) (*models.Article, error) {
	s.logger.Info("Creating article", "slug", req.Slug)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.Article().ExistsBySlug(ctx, req.Slug, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, ErrSlugTaken
	}

	article := &models.Article{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Tags:     marshalTags(req.Tags),
	}

	if err := s.repo.Article().Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.invalidateListCaches(ctx)
	s.logger.Info("Article created successfully", "article_id", article.ID)

	return article, nil
}

func (s *articleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.repo.Article().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repo.Article().GetBySlug(ctx, slug)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	count, err := s.repo.Comment().CountByArticle(ctx, article.ID, true)
	if err == nil {
		article.CommentCount = int(count)
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id uint, req *UpdateArticleRequest) (*models.Article, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		exists, err := s.repo.Article().ExistsBySlug(ctx, *req.Slug, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if exists {
			return nil, ErrSlugTaken
		}
		article.Slug = *req.Slug
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Excerpt != nil {
		article.Excerpt = req.Excerpt
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.ImageURL != nil {
		article.ImageURL = req.ImageURL
	}
	if req.Tags != nil {
		article.Tags = marshalTags(req.Tags)
	}

	if err := s.repo.Article().Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.invalidateArticleCaches(ctx)
	s.logger.Info("Article updated", "article_id", article.ID)

	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Article().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.invalidateArticleCaches(ctx)
	s.logger.Info("Article deleted", "article_id", id)
	return nil
}

func (s *articleService) List(ctx context.Context, filters repositories.ArticleFilters) (*ArticleListResponse, error) {
	key := articleListCacheKey("list", "", filters)
	if cached := s.readListCache(ctx, key); cached != nil {
		return cached, nil
	}

	articles, total, err := s.repo.Article().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	response := &ArticleListResponse{Articles: articles, Total: total}
	s.writeListCache(ctx, key, response)
	return response, nil
}

func (s *articleService) Search(ctx context.Context, query string, filters repositories.ArticleFilters) (*ArticleListResponse, error) {
	key := articleListCacheKey("search", query, filters)
	if cached := s.readListCache(ctx, key); cached != nil {
		return cached, nil
	}

	articles, total, err := s.repo.Article().Search(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	response := &ArticleListResponse{Articles: articles, Total: total}
	s.writeListCache(ctx, key, response)
	return response, nil
}

func (s *articleService) SetPublished(ctx context.Context, id uint, published bool) error {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Article().SetPublished(ctx, id, published); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to update published flag: %w", err)
	}

	s.invalidateArticleCaches(ctx)
	s.publishStatusEvent(ctx, article, published)

	return nil
}

func (s *articleService) Like(ctx context.Context, id uint) (int, error) {
	likes, err := s.repo.Article().IncrementLikes(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrArticleNotFound
		}
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return likes, nil
}

func (s *articleService) Categories(ctx context.Context) ([]repositories.CategoryCount, error) {
	counts, err := s.repo.Article().CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	return counts, nil
}

// ===== HELPERS =====

func (s *articleService) publishStatusEvent(ctx context.Context, article *models.Article, published bool) {
	event := &events.ContentEvent{
		ID:        watermill.NewUUID(),
		Timestamp: time.Now(),
		Source:    "content-service",
		Version:   "1.0",
	}

	if published {
		event.Type = events.EventArticlePublished
		event.Data = events.ArticlePublishedEvent{
			ArticleID: article.ID,
			Title:     article.Title,
			Slug:      article.Slug,
			Category:  article.Category,
			CreatedAt: article.CreatedAt,
		}
	} else {
		event.Type = events.EventArticleUnpublished
		event.Data = events.ArticleUnpublishedEvent{
			ArticleID: article.ID,
			Slug:      article.Slug,
		}
	}

	if err := s.publisher.PublishContentEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish article status event", "article_id", article.ID, "error", err)
	}
}

// articleListCacheKey derives a key under the articles: namespace so that
// invalidateListCaches can clear every cached page in one pattern delete.
func articleListCacheKey(kind, query string, filters repositories.ArticleFilters) string {
	category := ""
	if filters.Category != nil {
		category = *filters.Category
	}
	published := "any"
	if filters.Published != nil {
		published = strconv.FormatBool(*filters.Published)
	}
	from, to := "", ""
	if filters.DateFrom != nil {
		from = strconv.FormatInt(filters.DateFrom.Unix(), 10)
	}
	if filters.DateTo != nil {
		to = strconv.FormatInt(filters.DateTo.Unix(), 10)
	}
	return fmt.Sprintf("articles:%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		kind, query, category, published, from, to,
		filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)
}

func (s *articleService) readListCache(ctx context.Context, key string) *ArticleListResponse {
	var cached ArticleListResponse
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Article list cache read failed", "key", key, "error", err)
	}
	return nil
}

func (s *articleService) writeListCache(ctx context.Context, key string, response *ArticleListResponse) {
	if err := s.cache.Set(ctx, key, response, s.listTTL); err != nil {
		s.logger.Warn("Article list cache write failed", "key", key, "error", err)
	}
}

func (s *articleService) invalidateListCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "articles:*"); err != nil {
		s.logger.Warn("Failed to invalidate article list caches", "error", err)
	}
}

// invalidateArticleCaches drops the list caches plus every cached related
// panel: a mutated article can appear in (or vanish from) any other article's
// panel, so per-slug deletion is not enough.
func (s *articleService) invalidateArticleCaches(ctx context.Context) {
	s.invalidateListCaches(ctx)
	if err := s.cache.DeletePattern(ctx, "related:*"); err != nil {
		s.logger.Warn("Failed to invalidate related caches", "error", err)
	}
}

func marshalTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	payload, _ := json.Marshal(tags)
	return datatypes.JSON(payload)
}

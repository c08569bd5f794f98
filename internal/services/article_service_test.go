package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/renovaverde/content-service/internal/cache"
	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/utils"
)

func newArticleServiceForTest(t *testing.T) (ArticleService, *MockRepository, *events.MockEventPublisher) {
	t.Helper()
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewArticleService(repo, cache.NoopCache{}, publisher, testLogger(), utils.NewValidator(), time.Minute)
	return service, repo, publisher
}

func newCachedArticleServiceForTest(t *testing.T) (ArticleService, *MockRepository, *memoryCache) {
	t.Helper()
	repo := NewMockRepository()
	memCache := newMemoryCache()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewArticleService(repo, memCache, publisher, testLogger(), utils.NewValidator(), time.Minute)
	return service, repo, memCache
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := func() *CreateArticleRequest {
		return &CreateArticleRequest{
			Title:    "Jardim vertical para varandas pequenas",
			Slug:     "jardim-vertical-varandas",
			Content:  "<p>Passo a passo completo.</p>",
			Category: "jardinagem",
			Tags:     []string{"horta", "vertical"},
		}
	}

	t.Run("success", func(t *testing.T) {
		service, repo, _ := newArticleServiceForTest(t)

		repo.ArticleRepo.On("ExistsBySlug", ctx, "jardim-vertical-varandas", (*uint)(nil)).Return(false, nil)
		repo.ArticleRepo.On("Create", ctx, mock.AnythingOfType("*models.Article")).Return(nil)

		article, err := service.Create(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "jardim-vertical-varandas", article.Slug)
		assert.False(t, article.Published, "articles start as drafts")
		assert.JSONEq(t, `["horta","vertical"]`, string(article.Tags))
		repo.ArticleRepo.AssertExpectations(t)
	})

	t.Run("slug taken", func(t *testing.T) {
		service, repo, _ := newArticleServiceForTest(t)

		repo.ArticleRepo.On("ExistsBySlug", ctx, "jardim-vertical-varandas", (*uint)(nil)).Return(true, nil)

		_, err := service.Create(ctx, validRequest())

		assert.ErrorIs(t, err, ErrSlugTaken)
		repo.ArticleRepo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid slug format", func(t *testing.T) {
		service, repo, _ := newArticleServiceForTest(t)

		req := validRequest()
		req.Slug = "Jardim Vertical!"

		_, err := service.Create(ctx, req)

		var validationErrors ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
		repo.ArticleRepo.AssertNotCalled(t, "ExistsBySlug")
	})

	t.Run("invalid category", func(t *testing.T) {
		service, _, _ := newArticleServiceForTest(t)

		req := validRequest()
		req.Category = "culinaria"

		_, err := service.Create(ctx, req)

		var validationErrors ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
	})
}

func TestArticleService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newArticleServiceForTest(t)

	article := &models.Article{ID: 9, Slug: "compostagem-caseira", Published: true}
	repo.ArticleRepo.On("GetBySlug", ctx, "compostagem-caseira").Return(article, nil)
	repo.CommentRepo.On("CountByArticle", ctx, uint(9), true).Return(int64(4), nil)

	got, err := service.GetBySlug(ctx, "compostagem-caseira")

	require.NoError(t, err)
	assert.Equal(t, 4, got.CommentCount, "approved comment count rides along")
}

func TestArticleService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newArticleServiceForTest(t)

	repo.ArticleRepo.On("GetByID", ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_Update_SlugConflict(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newArticleServiceForTest(t)

	existing := &models.Article{ID: 3, Slug: "antigo", Title: "Antigo"}
	newSlug := "ja-existe"
	id := uint(3)

	repo.ArticleRepo.On("GetByID", ctx, id).Return(existing, nil)
	repo.ArticleRepo.On("ExistsBySlug", ctx, newSlug, &id).Return(true, nil)

	_, err := service.Update(ctx, id, &UpdateArticleRequest{Slug: &newSlug})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.ArticleRepo.AssertNotCalled(t, "Update")
}

func TestArticleService_SetPublished_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	service, repo, publisher := newArticleServiceForTest(t)

	article := &models.Article{ID: 2, Slug: "energia-solar", Title: "Energia solar em casa", Category: "energia"}
	repo.ArticleRepo.On("GetByID", ctx, uint(2)).Return(article, nil)
	repo.ArticleRepo.On("SetPublished", ctx, uint(2), true).Return(nil)

	require.NoError(t, service.SetPublished(ctx, 2, true))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventArticlePublished, published[0].Type)

	data, ok := published[0].Data.(events.ArticlePublishedEvent)
	require.True(t, ok)
	assert.Equal(t, "energia-solar", data.Slug)
}

func TestArticleService_SetPublished_Unpublish(t *testing.T) {
	ctx := context.Background()
	service, repo, publisher := newArticleServiceForTest(t)

	article := &models.Article{ID: 2, Slug: "energia-solar"}
	repo.ArticleRepo.On("GetByID", ctx, uint(2)).Return(article, nil)
	repo.ArticleRepo.On("SetPublished", ctx, uint(2), false).Return(nil)

	require.NoError(t, service.SetPublished(ctx, 2, false))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventArticleUnpublished, published[0].Type)
}

func TestArticleService_Like(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newArticleServiceForTest(t)

	repo.ArticleRepo.On("IncrementLikes", ctx, uint(8)).Return(42, nil)

	likes, err := service.Like(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 42, likes)

	repo.ArticleRepo.On("IncrementLikes", ctx, uint(9)).Return(0, gorm.ErrRecordNotFound)
	_, err = service.Like(ctx, 9)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_ListCachesResponse(t *testing.T) {
	ctx := context.Background()
	service, repo, memCache := newCachedArticleServiceForTest(t)

	filters := repositories.ArticleFilters{Limit: 20, SortBy: "created_at", SortOrder: "desc"}
	articles := []*models.Article{{ID: 1, Slug: "horta-em-casa", Title: "Horta em casa"}}
	repo.ArticleRepo.On("List", ctx, filters).Return(articles, int64(1), nil).Once()

	first, err := service.List(ctx, filters)
	require.NoError(t, err)
	require.Len(t, first.Articles, 1)
	assert.NotEmpty(t, memCache.entries, "first call populates the cache")

	// Second identical call is served from the cache; the repository mock
	// was set up with Once and would fail on another hit.
	second, err := service.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Articles[0].Slug, second.Articles[0].Slug)
	repo.ArticleRepo.AssertNumberOfCalls(t, "List", 1)

	// A different page is a different cache key.
	nextPage := filters
	nextPage.Offset = 20
	repo.ArticleRepo.On("List", ctx, nextPage).Return([]*models.Article{}, int64(1), nil).Once()
	_, err = service.List(ctx, nextPage)
	require.NoError(t, err)
	repo.ArticleRepo.AssertExpectations(t)
}

func TestArticleService_SearchCachesResponse(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newCachedArticleServiceForTest(t)

	filters := repositories.ArticleFilters{Limit: 20}
	articles := []*models.Article{{ID: 5, Slug: "adubo-organico", Title: "Adubo orgânico"}}
	repo.ArticleRepo.On("Search", ctx, "adubo", filters).Return(articles, int64(1), nil).Once()

	first, err := service.Search(ctx, "adubo", filters)
	require.NoError(t, err)

	second, err := service.Search(ctx, "adubo", filters)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
	repo.ArticleRepo.AssertNumberOfCalls(t, "Search", 1)
}

func TestArticleService_PublishInvalidatesCaches(t *testing.T) {
	ctx := context.Background()
	service, repo, memCache := newCachedArticleServiceForTest(t)

	filters := repositories.ArticleFilters{Limit: 20}
	repo.ArticleRepo.On("List", ctx, filters).Return([]*models.Article{}, int64(0), nil).Twice()

	_, err := service.List(ctx, filters)
	require.NoError(t, err)

	// Related panels cached for other articles go stale too: the newly
	// published article may belong in any of them.
	require.NoError(t, memCache.Set(ctx, relatedCacheKey("horta-em-casa"), &RelatedResponse{}, time.Minute))
	require.NoError(t, memCache.Set(ctx, relatedCacheKey("energia-solar"), &RelatedResponse{}, time.Minute))

	article := &models.Article{ID: 2, Slug: "compostagem-caseira"}
	repo.ArticleRepo.On("GetByID", ctx, uint(2)).Return(article, nil)
	repo.ArticleRepo.On("SetPublished", ctx, uint(2), true).Return(nil)

	require.NoError(t, service.SetPublished(ctx, 2, true))
	assert.Empty(t, memCache.entries, "publish clears list and related caches")

	_, err = service.List(ctx, filters)
	require.NoError(t, err)
	repo.ArticleRepo.AssertNumberOfCalls(t, "List", 2)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/utils"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := &CreateCommentRequest{
		Author: "Ana",
		Email:  "Ana@Example.com",
		Body:   "Adorei as dicas de compostagem!",
	}

	t.Run("success on published article", func(t *testing.T) {
		repo := NewMockRepository()
		service := NewCommentService(repo, testLogger(), utils.NewValidator())

		repo.ArticleRepo.On("GetByID", ctx, uint(1)).Return(&models.Article{ID: 1, Published: true}, nil)
		repo.CommentRepo.On("Create", ctx, mock.AnythingOfType("*models.Comment")).Return(nil)

		comment, err := service.Create(ctx, 1, validRequest)

		require.NoError(t, err)
		assert.Equal(t, uint(1), comment.ArticleID)
		assert.Equal(t, "ana@example.com", comment.Email, "email is normalized")
		assert.False(t, comment.Approved, "new comments await moderation")
		repo.CommentRepo.AssertExpectations(t)
	})

	t.Run("rejected on unpublished article", func(t *testing.T) {
		repo := NewMockRepository()
		service := NewCommentService(repo, testLogger(), utils.NewValidator())

		repo.ArticleRepo.On("GetByID", ctx, uint(2)).Return(&models.Article{ID: 2, Published: false}, nil)

		_, err := service.Create(ctx, 2, validRequest)

		assert.ErrorIs(t, err, ErrArticleNotPublished)
		repo.CommentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("article missing", func(t *testing.T) {
		repo := NewMockRepository()
		service := NewCommentService(repo, testLogger(), utils.NewValidator())

		repo.ArticleRepo.On("GetByID", ctx, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Create(ctx, 3, validRequest)
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})

	t.Run("validation failure", func(t *testing.T) {
		repo := NewMockRepository()
		service := NewCommentService(repo, testLogger(), utils.NewValidator())

		_, err := service.Create(ctx, 1, &CreateCommentRequest{Author: "", Email: "not-an-email", Body: ""})

		var validationErrors ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
		repo.ArticleRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestCommentService_ListByArticle(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	service := NewCommentService(repo, testLogger(), utils.NewValidator())

	approved := true
	repo.CommentRepo.On("ListByArticle", ctx, uint(1), repositories.CommentFilters{Approved: &approved, Limit: 10}).
		Return([]*models.Comment{{ID: 7, ArticleID: 1, Approved: true}}, int64(1), nil)

	response, err := service.ListByArticle(ctx, 1, false, repositories.CommentFilters{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), response.Total)
	require.Len(t, response.Comments, 1)
	assert.True(t, response.Comments[0].Approved)
}

func TestCommentService_Approve(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	service := NewCommentService(repo, testLogger(), utils.NewValidator())

	repo.CommentRepo.On("SetApproved", ctx, uint(5), true).Return(nil)
	require.NoError(t, service.Approve(ctx, 5))

	repo.CommentRepo.On("SetApproved", ctx, uint(6), true).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, service.Approve(ctx, 6), ErrCommentNotFound)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes event", func(t *testing.T) {
		repo := NewMockRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		service := NewNewsletterService(repo, publisher, testLogger(), utils.NewValidator())

		repo.SubscriberRepo.On("ExistsByEmail", ctx, "leitor@renovaverde.com.br").Return(false, nil)
		repo.SubscriberRepo.On("Create", ctx, mock.AnythingOfType("*models.Subscriber")).Return(nil)

		subscriber, err := service.Subscribe(ctx, &SubscribeRequest{Email: "Leitor@RenovaVerde.com.br"})

		require.NoError(t, err)
		assert.Equal(t, "leitor@renovaverde.com.br", subscriber.Email)

		published := publisher.GetPublishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventSubscriberJoined, published[0].Type)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := NewMockRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		service := NewNewsletterService(repo, publisher, testLogger(), utils.NewValidator())

		repo.SubscriberRepo.On("ExistsByEmail", ctx, "ja@cadastrado.com").Return(true, nil)

		_, err := service.Subscribe(ctx, &SubscribeRequest{Email: "ja@cadastrado.com"})

		assert.ErrorIs(t, err, ErrAlreadySubscribed)
		repo.SubscriberRepo.AssertNotCalled(t, "Create")
		assert.Empty(t, publisher.GetPublishedEvents())
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := NewMockRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		service := NewNewsletterService(repo, publisher, testLogger(), utils.NewValidator())

		_, err := service.Subscribe(ctx, &SubscribeRequest{Email: "nope"})

		var validationErrors ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
	})
}

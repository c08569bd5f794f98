package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) List(ctx context.Context, filters repositories.ArticleFilters) ([]*models.Article, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Search(ctx context.Context, query string, filters repositories.ArticleFilters) ([]*models.Article, int64, error) {
	args := m.Called(ctx, query, filters)
	return args.Get(0).([]*models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) ListPublishedExcluding(ctx context.Context, excludeID uint, limit int) ([]models.Article, error) {
	args := m.Called(ctx, excludeID, limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementLikes(ctx context.Context, id uint) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockArticleRepository) CountByCategory(ctx context.Context) ([]repositories.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.CategoryCount), args.Error(1)
}

func (m *MockArticleRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID uint, filters repositories.CommentFilters) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, articleID, filters)
	return args.Get(0).([]*models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByArticle(ctx context.Context, articleID uint, approvedOnly bool) (int64, error) {
	args := m.Called(ctx, articleID, approvedOnly)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubscriberRepository is a mock implementation of SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	args := m.Called(ctx, subscriber)
	return args.Error(0)
}

func (m *MockSubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriberRepository) List(ctx context.Context, limit, offset int) ([]*models.Subscriber, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Subscriber), args.Get(1).(int64), args.Error(2)
}

// MockQuizSubmissionRepository is a mock implementation of QuizSubmissionRepository
type MockQuizSubmissionRepository struct {
	mock.Mock
}

func (m *MockQuizSubmissionRepository) Create(ctx context.Context, submission *models.QuizSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockQuizSubmissionRepository) ListByQuiz(ctx context.Context, quizID string, limit, offset int) ([]*models.QuizSubmission, int64, error) {
	args := m.Called(ctx, quizID, limit, offset)
	return args.Get(0).([]*models.QuizSubmission), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuizSubmissionRepository) GetStats(ctx context.Context, quizID string) (*repositories.QuizStats, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.QuizStats), args.Error(1)
}

// MockRepository aggregates the per-entity mocks behind the Repository interface
type MockRepository struct {
	ArticleRepo        *MockArticleRepository
	CommentRepo        *MockCommentRepository
	SubscriberRepo     *MockSubscriberRepository
	QuizSubmissionRepo *MockQuizSubmissionRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		ArticleRepo:        new(MockArticleRepository),
		CommentRepo:        new(MockCommentRepository),
		SubscriberRepo:     new(MockSubscriberRepository),
		QuizSubmissionRepo: new(MockQuizSubmissionRepository),
	}
}

func (m *MockRepository) Article() repositories.ArticleRepository { return m.ArticleRepo }
func (m *MockRepository) Comment() repositories.CommentRepository { return m.CommentRepo }
func (m *MockRepository) Subscriber() repositories.SubscriberRepository {
	return m.SubscriberRepo
}
func (m *MockRepository) QuizSubmission() repositories.QuizSubmissionRepository {
	return m.QuizSubmissionRepo
}

package repositories

import (
	"context"

	"github.com/renovaverde/content-service/internal/models"
)

// CommentRepository interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID uint, filters CommentFilters) ([]*models.Comment, int64, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
	Delete(ctx context.Context, id uint) error
	CountByArticle(ctx context.Context, articleID uint, approvedOnly bool) (int64, error)
}

// SubscriberRepository interface for newsletter signups
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*models.Subscriber, int64, error)
}

// QuizSubmissionRepository interface for persisted quiz results
type QuizSubmissionRepository interface {
	Create(ctx context.Context, submission *models.QuizSubmission) error
	ListByQuiz(ctx context.Context, quizID string, limit, offset int) ([]*models.QuizSubmission, int64, error)
	GetStats(ctx context.Context, quizID string) (*QuizStats, error)
}

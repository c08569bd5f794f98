package postgres

import (
	"context"
	"fmt"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizSubmissionPostgreSQL struct {
	db *gorm.DB
}

func NewQuizSubmissionPostgreSQL(db *gorm.DB) repositories.QuizSubmissionRepository {
	return &QuizSubmissionPostgreSQL{db: db}
}

func (q *QuizSubmissionPostgreSQL) Create(ctx context.Context, submission *models.QuizSubmission) error {
	if err := q.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}
	return nil
}

func (q *QuizSubmissionPostgreSQL) ListByQuiz(ctx context.Context, quizID string, limit, offset int) ([]*models.QuizSubmission, int64, error) {
	query := q.db.WithContext(ctx).
		Model(&models.QuizSubmission{}).
		Where("quiz_id = ?", quizID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quiz submissions: %w", err)
	}

	var submissions []*models.QuizSubmission
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quiz submissions: %w", err)
	}

	return submissions, total, nil
}

func (q *QuizSubmissionPostgreSQL) GetStats(ctx context.Context, quizID string) (*repositories.QuizStats, error) {
	var stats repositories.QuizStats
	err := q.db.WithContext(ctx).
		Model(&models.QuizSubmission{}).
		Select("COUNT(*) as submissions, COALESCE(AVG(total_points), 0) as average_points, COALESCE(MAX(max_points), 0) as max_points").
		Where("quiz_id = ?", quizID).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute quiz stats: %w", err)
	}
	return &stats, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/quiz"
	"github.com/renovaverde/content-service/internal/repositories"
)

type QuizService interface {
	List(ctx context.Context) []QuizSummary
	Get(ctx context.Context, id string) (*models.Quiz, error)
	Submit(ctx context.Context, id string, answers models.AnswerSet) (*models.QuizResult, error)
	Stats(ctx context.Context, id string) (*repositories.QuizStats, error)
}

// QuizSummary is the catalog listing shape; questions stay out of the list
// payload.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	EstimatedTime int    `json:"estimatedTime"`
	QuestionCount int    `json:"questionCount"`
}

type quizService struct {
	catalog   *quiz.Catalog
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewQuizService(
	catalog *quiz.Catalog,
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
) QuizService {
	return &quizService{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *quizService) List(ctx context.Context) []QuizSummary {
	quizzes := s.catalog.List()
	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Category:      q.Category,
			EstimatedTime: q.EstimatedTime,
			QuestionCount: len(q.Questions),
		})
	}
	return summaries
}

func (s *quizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	q, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return q, nil
}

// Submit computes the result for an answer set and records the outcome.
// Malformed answer sets never fail the computation; unknown question or
// option ids simply award nothing.
func (s *quizService) Submit(ctx context.Context, id string, answers models.AnswerSet) (*models.QuizResult, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := quiz.ComputeResult(q, answers)

	if err := s.recordSubmission(ctx, q.ID, &result); err != nil {
		// Persisting the outcome is best effort; the respondent still
		// gets their result.
		s.logger.Error("Failed to record quiz submission", "quiz_id", q.ID, "error", err)
	}

	s.publishCompletedEvent(ctx, q.ID, &result)

	return &result, nil
}

func (s *quizService) Stats(ctx context.Context, id string) (*repositories.QuizStats, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	stats, err := s.repo.QuizSubmission().GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz stats: %w", err)
	}
	return stats, nil
}

func (s *quizService) recordSubmission(ctx context.Context, quizID string, result *models.QuizResult) error {
	categories, err := json.Marshal(result.CategoryPoints)
	if err != nil {
		return fmt.Errorf("failed to marshal category points: %w", err)
	}

	submission := &models.QuizSubmission{
		QuizID:         quizID,
		TotalPoints:    result.TotalPoints,
		MaxPoints:      result.MaxPoints,
		CategoryPoints: categories,
	}
	return s.repo.QuizSubmission().Create(ctx, submission)
}

func (s *quizService) publishCompletedEvent(ctx context.Context, quizID string, result *models.QuizResult) {
	event := &events.ContentEvent{
		ID:        watermill.NewUUID(),
		Type:      events.EventQuizCompleted,
		Timestamp: time.Now(),
		Source:    "content-service",
		Version:   "1.0",
		Data: events.QuizCompletedEvent{
			QuizID:      quizID,
			TotalPoints: result.TotalPoints,
			MaxPoints:   result.MaxPoints,
		},
	}

	if err := s.publisher.PublishContentEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish quiz completed event", "quiz_id", quizID, "error", err)
	}
}

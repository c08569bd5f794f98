package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/utils"
)

type CommentService interface {
	Create(ctx context.Context, articleID uint, req *CreateCommentRequest) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID uint, includePending bool, filters repositories.CommentFilters) (*CommentListResponse, error)
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type NewsletterService interface {
	Subscribe(ctx context.Context, req *SubscribeRequest) (*models.Subscriber, error)
	List(ctx context.Context, limit, offset int) ([]*models.Subscriber, int64, error)
}

// ===== REQUEST / RESPONSE STRUCTURES =====

type CreateCommentRequest struct {
	Author string `json:"author" validate:"required,min=1,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Body   string `json:"body" validate:"required,min=1,max=2000"`
}

type CommentListResponse struct {
	Comments []*models.Comment `json:"comments"`
	Total    int64             `json:"total"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ===== COMMENT SERVICE =====

type commentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
}

func NewCommentService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator) CommentService {
	return &commentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *commentService) Create(ctx context.Context, articleID uint, req *CreateCommentRequest) (*models.Comment, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	// Comments only attach to published articles.
	article, err := s.repo.Article().GetByID(ctx, articleID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if !article.Published {
		return nil, ErrArticleNotPublished
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    strings.TrimSpace(req.Author),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Body:      req.Body,
	}

	if err := s.repo.Comment().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("Comment created", "comment_id", comment.ID, "article_id", articleID)
	return comment, nil
}

func (s *commentService) ListByArticle(ctx context.Context, articleID uint, includePending bool, filters repositories.CommentFilters) (*CommentListResponse, error) {
	if !includePending {
		approved := true
		filters.Approved = &approved
	}

	comments, total, err := s.repo.Comment().ListByArticle(ctx, articleID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return &CommentListResponse{Comments: comments, Total: total}, nil
}

func (s *commentService) Approve(ctx context.Context, id uint) error {
	if err := s.repo.Comment().SetApproved(ctx, id, true); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to approve comment: %w", err)
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Comment().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// ===== NEWSLETTER SERVICE =====

type newsletterService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewNewsletterService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) NewsletterService {
	return &newsletterService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *SubscribeRequest) (*models.Subscriber, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.Subscriber().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	subscriber := &models.Subscriber{Email: email}
	if err := s.repo.Subscriber().Create(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	event := &events.ContentEvent{
		ID:        watermill.NewUUID(),
		Type:      events.EventSubscriberJoined,
		Timestamp: time.Now(),
		Source:    "content-service",
		Version:   "1.0",
		Data:      events.SubscriberJoinedEvent{Email: email},
	}
	if err := s.publisher.PublishContentEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish subscriber event", "error", err)
	}

	s.logger.Info("Subscriber created", "subscriber_id", subscriber.ID)
	return subscriber, nil
}

func (s *newsletterService) List(ctx context.Context, limit, offset int) ([]*models.Subscriber, int64, error) {
	return s.repo.Subscriber().List(ctx, limit, offset)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"gorm.io/gorm"
)

type CommentPostgreSQL struct {
	db *gorm.DB
}

func NewCommentPostgreSQL(db *gorm.DB) repositories.CommentRepository {
	return &CommentPostgreSQL{db: db}
}

func (c *CommentPostgreSQL) Create(ctx context.Context, comment *models.Comment) error {
	if err := c.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (c *CommentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := c.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *CommentPostgreSQL) ListByArticle(ctx context.Context, articleID uint, filters repositories.CommentFilters) ([]*models.Comment, int64, error) {
	query := c.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ?", articleID)
	if filters.Approved != nil {
		query = query.Where("approved = ?", *filters.Approved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []*models.Comment
	err := query.
		Order("created_at DESC").
		Limit(filters.Limit).
		Offset(filters.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, total, nil
}

func (c *CommentPostgreSQL) SetApproved(ctx context.Context, id uint, approved bool) error {
	result := c.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("approved", approved)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c *CommentPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c *CommentPostgreSQL) CountByArticle(ctx context.Context, articleID uint, approvedOnly bool) (int64, error) {
	query := c.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ?", articleID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

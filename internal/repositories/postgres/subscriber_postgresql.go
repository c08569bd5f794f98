package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"gorm.io/gorm"
)

type SubscriberPostgreSQL struct {
	db *gorm.DB
}

func NewSubscriberPostgreSQL(db *gorm.DB) repositories.SubscriberRepository {
	return &SubscriberPostgreSQL{db: db}
}

func (s *SubscriberPostgreSQL) Create(ctx context.Context, subscriber *models.Subscriber) error {
	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))
	if err := s.db.WithContext(ctx).Create(subscriber).Error; err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (s *SubscriberPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Subscriber{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SubscriberPostgreSQL) List(ctx context.Context, limit, offset int) ([]*models.Subscriber, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Subscriber{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	var subscribers []*models.Subscriber
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subscribers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return subscribers, total, nil
}

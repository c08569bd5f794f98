package repositories

import (
	"context"

	"github.com/renovaverde/content-service/internal/models"
)

// ArticleRepository interface for article-specific operations
type ArticleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error // Soft delete

	// Query operations
	List(ctx context.Context, filters ArticleFilters) ([]*models.Article, int64, error)
	Search(ctx context.Context, query string, filters ArticleFilters) ([]*models.Article, int64, error)
	ListPublishedExcluding(ctx context.Context, excludeID uint, limit int) ([]models.Article, error)

	// Status management
	SetPublished(ctx context.Context, id uint, published bool) error

	// Engagement
	IncrementLikes(ctx context.Context, id uint) (int, error)

	// Statistics
	CountByCategory(ctx context.Context) ([]CategoryCount, error)

	// Validation helpers
	ExistsBySlug(ctx context.Context, slug string, excludeID *uint) (bool, error)
}

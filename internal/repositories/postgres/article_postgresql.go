package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/repositories"
	"gorm.io/gorm"
)

type ArticlePostgreSQL struct {
	db *gorm.DB
}

func NewArticlePostgreSQL(db *gorm.DB) repositories.ArticleRepository {
	return &ArticlePostgreSQL{db: db}
}

// Create creates a new article after checking slug uniqueness
func (a *ArticlePostgreSQL) Create(ctx context.Context, article *models.Article) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := a.ExistsBySlug(ctx, article.Slug, nil)
		if err != nil {
			return fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if exists {
			return fmt.Errorf("article with slug '%s' already exists", article.Slug)
		}

		if err := tx.Create(article).Error; err != nil {
			return fmt.Errorf("failed to create article: %w", err)
		}
		return nil
	})
}

func (a *ArticlePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := a.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (a *ArticlePostgreSQL) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := a.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (a *ArticlePostgreSQL) Update(ctx context.Context, article *models.Article) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Article
		if err := tx.First(&current, article.ID).Error; err != nil {
			return fmt.Errorf("article not found: %w", err)
		}

		if article.Slug != current.Slug {
			exists, err := a.ExistsBySlug(ctx, article.Slug, &article.ID)
			if err != nil {
				return fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if exists {
				return fmt.Errorf("article with slug '%s' already exists", article.Slug)
			}
		}

		if err := tx.Save(article).Error; err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		return nil
	})
}

func (a *ArticlePostgreSQL) Delete(ctx context.Context, id uint) error {
	result := a.db.WithContext(ctx).Delete(&models.Article{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *ArticlePostgreSQL) List(ctx context.Context, filters repositories.ArticleFilters) ([]*models.Article, int64, error) {
	query := a.db.WithContext(ctx).Model(&models.Article{})
	query = applyArticleFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var articles []*models.Article
	query = query.Order(articleOrderClause(filters)).Offset(filters.Offset)
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, total, nil
}

func (a *ArticlePostgreSQL) Search(ctx context.Context, searchQuery string, filters repositories.ArticleFilters) ([]*models.Article, int64, error) {
	pattern := "%" + strings.ToLower(searchQuery) + "%"
	query := a.db.WithContext(ctx).Model(&models.Article{}).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern, pattern)
	query = applyArticleFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var articles []*models.Article
	query = query.Order(articleOrderClause(filters)).Offset(filters.Offset)
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search articles: %w", err)
	}

	return articles, total, nil
}

// ListPublishedExcluding returns published articles newest-first, skipping one
// id. This is the candidate pool the relevance ranker consumes.
func (a *ArticlePostgreSQL) ListPublishedExcluding(ctx context.Context, excludeID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := a.db.WithContext(ctx).
		Where("published = ?", true).
		Where("id <> ?", excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}
	return articles, nil
}

func (a *ArticlePostgreSQL) SetPublished(ctx context.Context, id uint, published bool) error {
	result := a.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Update("published", published)
	if result.Error != nil {
		return fmt.Errorf("failed to update published flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *ArticlePostgreSQL) IncrementLikes(ctx context.Context, id uint) (int, error) {
	var likes int
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Article{}).
			Where("id = ?", id).
			Update("likes", gorm.Expr("likes + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.Article{}).
			Select("likes").
			Where("id = ?", id).
			Scan(&likes).Error
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func (a *ArticlePostgreSQL) CountByCategory(ctx context.Context) ([]repositories.CategoryCount, error) {
	var counts []repositories.CategoryCount
	err := a.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("category, COUNT(*) as count").
		Where("published = ?", true).
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by category: %w", err)
	}
	return counts, nil
}

func (a *ArticlePostgreSQL) ExistsBySlug(ctx context.Context, slug string, excludeID *uint) (bool, error) {
	query := a.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func applyArticleFilters(query *gorm.DB, filters repositories.ArticleFilters) *gorm.DB {
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Published != nil {
		query = query.Where("published = ?", *filters.Published)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

func articleOrderClause(filters repositories.ArticleFilters) string {
	sortBy := filters.SortBy
	switch sortBy {
	case "title", "likes", "created_at":
	default:
		sortBy = "created_at"
	}

	sortOrder := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}

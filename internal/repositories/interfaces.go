package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type ArticleFilters struct {
	Category  *string    `json:"category"`
	Published *bool      `json:"published"`
	DateFrom  *time.Time `json:"date_from"`
	DateTo    *time.Time `json:"date_to"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	SortBy    string     `json:"sort_by"`    // "created_at", "title", "likes"
	SortOrder string     `json:"sort_order"` // "asc", "desc"
}

type CommentFilters struct {
	Approved *bool `json:"approved"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type QuizStats struct {
	Submissions   int64   `json:"submissions"`
	AveragePoints float64 `json:"average_points"`
	MaxPoints     int     `json:"max_points"`
}

// ===== AGGREGATE =====

// Repository aggregates every data-access interface behind one dependency.
type Repository interface {
	Article() ArticleRepository
	Comment() CommentRepository
	Subscriber() SubscriberRepository
	QuizSubmission() QuizSubmissionRepository
}

// IsNotFoundError reports whether err is the driver's record-miss error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

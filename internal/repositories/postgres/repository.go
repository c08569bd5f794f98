package postgres

import (
	"github.com/renovaverde/content-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	article        repositories.ArticleRepository
	comment        repositories.CommentRepository
	subscriber     repositories.SubscriberRepository
	quizSubmission repositories.QuizSubmissionRepository
}

// NewRepository builds the aggregate over a shared gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		article:        NewArticlePostgreSQL(db),
		comment:        NewCommentPostgreSQL(db),
		subscriber:     NewSubscriberPostgreSQL(db),
		quizSubmission: NewQuizSubmissionPostgreSQL(db),
	}
}

func (r *gormRepository) Article() repositories.ArticleRepository {
	return r.article
}

func (r *gormRepository) Comment() repositories.CommentRepository {
	return r.comment
}

func (r *gormRepository) Subscriber() repositories.SubscriberRepository {
	return r.subscriber
}

func (r *gormRepository) QuizSubmission() repositories.QuizSubmissionRepository {
	return r.quizSubmission
}

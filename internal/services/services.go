package services

import (
	"log/slog"
	"time"

	"github.com/renovaverde/content-service/internal/cache"
	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/quiz"
	"github.com/renovaverde/content-service/internal/relevance"
	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/utils"
)

// ServiceManager aggregates every service behind one dependency for wiring.
type ServiceManager interface {
	Article() ArticleService
	Related() RelatedService
	Quiz() QuizService
	Comment() CommentService
	Newsletter() NewsletterService
	Export() ExportService
}

type serviceManager struct {
	article    ArticleService
	related    RelatedService
	quiz       QuizService
	comment    CommentService
	newsletter NewsletterService
	export     ExportService
}

type ManagerConfig struct {
	Repo      repositories.Repository
	Cache     cache.CacheService
	Publisher events.EventPublisher
	Catalog   *quiz.Catalog
	Ranker    *relevance.Ranker
	Logger    *slog.Logger
	Validator *utils.Validator

	RelatedPoolSize int
	RelatedCacheTTL time.Duration
	ListCacheTTL    time.Duration
}

func NewServiceManager(cfg ManagerConfig) ServiceManager {
	return &serviceManager{
		article:    NewArticleService(cfg.Repo, cfg.Cache, cfg.Publisher, cfg.Logger, cfg.Validator, cfg.ListCacheTTL),
		related:    NewRelatedService(cfg.Repo, cfg.Ranker, cfg.Cache, cfg.Logger, cfg.RelatedPoolSize, cfg.RelatedCacheTTL),
		quiz:       NewQuizService(cfg.Catalog, cfg.Repo, cfg.Publisher, cfg.Logger),
		comment:    NewCommentService(cfg.Repo, cfg.Logger, cfg.Validator),
		newsletter: NewNewsletterService(cfg.Repo, cfg.Publisher, cfg.Logger, cfg.Validator),
		export:     NewExportService(cfg.Repo, cfg.Catalog, cfg.Logger),
	}
}

func (m *serviceManager) Article() ArticleService       { return m.article }
func (m *serviceManager) Related() RelatedService       { return m.related }
func (m *serviceManager) Quiz() QuizService             { return m.quiz }
func (m *serviceManager) Comment() CommentService       { return m.comment }
func (m *serviceManager) Newsletter() NewsletterService { return m.newsletter }
func (m *serviceManager) Export() ExportService         { return m.export }

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
)

type HandlerManager struct {
	articleHandler    *ArticleHandler
	quizHandler       *QuizHandler
	commentHandler    *CommentHandler
	newsletterHandler *NewsletterHandler
	exportHandler     *ExportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		articleHandler:    NewArticleHandler(serviceManager.Article(), serviceManager.Related(), logger),
		quizHandler:       NewQuizHandler(serviceManager.Quiz(), logger),
		commentHandler:    NewCommentHandler(serviceManager.Comment(), logger),
		newsletterHandler: NewNewsletterHandler(serviceManager.Newsletter(), logger),
		exportHandler:     NewExportHandler(serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Article routes
		articles := v1.Group("/articles")
		{
			articles.POST("", hm.articleHandler.CreateArticle)
			articles.GET("", hm.articleHandler.ListArticles)
			articles.GET("/search", hm.articleHandler.SearchArticles)
			articles.GET("/categories", hm.articleHandler.ListCategories)
			articles.GET("/:id", hm.articleHandler.GetArticle)
			articles.PUT("/:id", hm.articleHandler.UpdateArticle)
			articles.DELETE("/:id", hm.articleHandler.DeleteArticle)
			articles.PUT("/:id/publish", hm.articleHandler.SetPublished)
			articles.POST("/:id/like", hm.articleHandler.LikeArticle)

			// Comment management under the owning article
			articles.POST("/:id/comments", hm.commentHandler.CreateComment)
			articles.GET("/:id/comments", hm.commentHandler.ListComments)
		}

		// Slug-addressed public routes. Gin cannot mix :id and :slug under
		// the same segment, so slug lookups get their own prefix.
		publicArticles := v1.Group("/content")
		{
			publicArticles.GET("/:slug", hm.articleHandler.GetArticleBySlug)
			publicArticles.GET("/:slug/related", hm.articleHandler.GetRelatedArticles)
		}

		// Comment moderation routes
		comments := v1.Group("/comments")
		{
			comments.PUT("/:id/approve", hm.commentHandler.ApproveComment)
			comments.DELETE("/:id", hm.commentHandler.DeleteComment)
		}

		// Quiz routes
		quizzes := v1.Group("/quizzes")
		{
			quizzes.GET("", hm.quizHandler.ListQuizzes)
			quizzes.GET("/:id", hm.quizHandler.GetQuiz)
			quizzes.POST("/:id/submit", hm.quizHandler.SubmitQuiz)
			quizzes.GET("/:id/stats", hm.quizHandler.GetQuizStats)
		}

		// Newsletter routes
		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("/subscribe", hm.newsletterHandler.Subscribe)
			newsletter.GET("/subscribers", hm.newsletterHandler.ListSubscribers)
		}

		// Admin export routes
		export := v1.Group("/export")
		{
			export.GET("/articles", hm.exportHandler.ExportArticles)
			export.GET("/quizzes/:id/submissions", hm.exportHandler.ExportQuizSubmissions)
		}
	}
}

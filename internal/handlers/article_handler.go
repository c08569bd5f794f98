package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
)

type ArticleHandler struct {
	BaseHandler
	articleService services.ArticleService
	relatedService services.RelatedService
}

func NewArticleHandler(
	articleService services.ArticleService,
	relatedService services.RelatedService,
	logger utils.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    NewBaseHandler(logger),
		articleService: articleService,
		relatedService: relatedService,
	}
}

// CreateArticle creates a new article
// @Summary Create article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body services.CreateArticleRequest true "Article data"
// @Success 201 {object} models.Article
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req services.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetArticle retrieves an article by ID
// @Summary Get article
// @Tags articles
// @Produce json
// @Param id path uint true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetArticleBySlug retrieves a published article by slug
// @Summary Get article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Article
// @Failure 404 {object} ErrorResponse
// @Router /articles/slug/{slug} [get]
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	slug := parseStringParam(c, "slug")
	if slug == "" {
		return
	}

	h.LogRequest(c, "Getting article by slug", "slug", slug)

	article, err := h.articleService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// ListArticles lists articles with filters and pagination
// @Summary List articles
// @Tags articles
// @Produce json
// @Param category query string false "Category filter"
// @Param published query bool false "Published filter"
// @Success 200 {object} services.ArticleListResponse
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filters := parseArticleFilters(c)

	response, err := h.articleService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchArticles searches articles by title and content
// @Summary Search articles
// @Tags articles
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} services.ArticleListResponse
// @Failure 400 {object} ErrorResponse
// @Router /articles/search [get]
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Search query is required",
			Details: "provide a non-empty q parameter",
		})
		return
	}

	filters := parseArticleFilters(c)

	response, err := h.articleService.Search(c.Request.Context(), query, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateArticle updates an existing article
// @Summary Update article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path uint true "Article ID"
// @Param article body services.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} models.Article
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle removes an article
// @Summary Delete article
// @Tags articles
// @Param id path uint true "Article ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetPublished publishes or unpublishes an article
// @Summary Set article publication status
// @Tags articles
// @Accept json
// @Produce json
// @Param id path uint true "Article ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id}/publish [put]
func (h *ArticleHandler) SetPublished(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.articleService.SetPublished(c.Request.Context(), id, req.Published); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Article publication status updated", gin.H{
		"id":        id,
		"published": req.Published,
	})
}

// LikeArticle increments the like counter
// @Summary Like article
// @Tags articles
// @Produce json
// @Param id path uint true "Article ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id}/like [post]
func (h *ArticleHandler) LikeArticle(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	likes, err := h.articleService.Like(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ListCategories returns article counts per category
// @Summary List categories
// @Tags articles
// @Produce json
// @Success 200 {array} repositories.CategoryCount
// @Router /articles/categories [get]
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	categories, err := h.articleService.Categories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetRelatedArticles returns the related-content panel for an article
// @Summary Get related articles
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} services.RelatedResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{slug}/related [get]
func (h *ArticleHandler) GetRelatedArticles(c *gin.Context) {
	slug := parseStringParam(c, "slug")
	if slug == "" {
		return
	}

	h.LogRequest(c, "Getting related articles", "slug", slug)

	response, err := h.relatedService.RelatedForSlug(c.Request.Context(), slug)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ArticleHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: businessRuleError.Message,
			Details: map[string]interface{}{
				"rule":    businessRuleError.Rule,
				"context": businessRuleError.Context,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Article not found",
		})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Slug already in use",
		})
	case errors.Is(err, services.ErrArticleNotPublished):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Article not found",
		})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled article service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

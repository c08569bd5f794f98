package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/repositories"
	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
)

// ===== COMMENT HANDLER =====

type CommentHandler struct {
	BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService, logger utils.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    NewBaseHandler(logger),
		commentService: commentService,
	}
}

// CreateComment submits a comment on a published article
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path uint true "Article ID"
// @Param comment body services.CreateCommentRequest true "Comment data"
// @Success 201 {object} models.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID := parseUintParam(c, "id")
	if articleID == 0 {
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), articleID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments lists approved comments for an article
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path uint true "Article ID"
// @Param include_pending query bool false "Include unapproved comments"
// @Success 200 {object} services.CommentListResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID := parseUintParam(c, "id")
	if articleID == 0 {
		return
	}

	includePending, _ := strconv.ParseBool(c.DefaultQuery("include_pending", "false"))
	limit, offset := parsePagination(c)

	response, err := h.commentService.ListByArticle(c.Request.Context(), articleID, includePending, repositories.CommentFilters{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ApproveComment marks a pending comment as approved
// @Summary Approve comment
// @Tags comments
// @Produce json
// @Param id path uint true "Comment ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id}/approve [put]
func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.commentService.Approve(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Comment approved", gin.H{"id": id})
}

// DeleteComment removes a comment
// @Summary Delete comment
// @Tags comments
// @Param id path uint true "Comment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Article not found",
		})
	case errors.Is(err, services.ErrArticleNotPublished):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Comments are only accepted on published articles",
		})
	case errors.Is(err, services.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Comment not found",
		})
	default:
		h.LogError(c, err, "Unhandled comment service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

// ===== NEWSLETTER HANDLER =====

type NewsletterHandler struct {
	BaseHandler
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(newsletterService services.NewsletterService, logger utils.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       NewBaseHandler(logger),
		newsletterService: newsletterService,
	}
}

// Subscribe registers an email address for the newsletter
// @Summary Subscribe to newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body services.SubscribeRequest true "Subscriber email"
// @Success 201 {object} models.Subscriber
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	subscriber, err := h.newsletterService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscriber)
}

// ListSubscribers lists newsletter subscribers
// @Summary List subscribers
// @Tags newsletter
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /newsletter/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	limit, offset := parsePagination(c)

	subscribers, total, err := h.newsletterService.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribers": subscribers,
		"total":       total,
	})
}

func (h *NewsletterHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Email is already subscribed",
		})
	default:
		h.LogError(c, err, "Unhandled newsletter service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

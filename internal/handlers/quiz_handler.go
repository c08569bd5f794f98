package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
	}
}

// SubmitQuizRequest carries the visitor's selections, keyed by question
// index. Option values are the option IDs declared by the quiz.
type SubmitQuizRequest struct {
	Answers models.AnswerSet `json:"answers"`
}

// ListQuizzes lists the quiz catalog
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} services.QuizSummary
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries := h.quizService.List(c.Request.Context())
	c.JSON(http.StatusOK, summaries)
}

// GetQuiz retrieves a quiz with its full question list
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id := parseStringParam(c, "id")
	if id == "" {
		return
	}

	quiz, err := h.quizService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// SubmitQuiz scores a completed quiz
// @Summary Submit quiz answers
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param submission body SubmitQuizRequest true "Answers keyed by question index"
// @Success 200 {object} models.QuizResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	id := parseStringParam(c, "id")
	if id == "" {
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Submitting quiz", "quiz_id", id, "answered_questions", len(req.Answers))

	result, err := h.quizService.Submit(c.Request.Context(), id, req.Answers)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetQuizStats returns submission statistics for a quiz
// @Summary Get quiz statistics
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} repositories.QuizStats
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id}/stats [get]
func (h *QuizHandler) GetQuizStats(c *gin.Context) {
	id := parseStringParam(c, "id")
	if id == "" {
		return
	}

	stats, err := h.quizService.Stats(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *QuizHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Quiz not found",
		})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled quiz service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

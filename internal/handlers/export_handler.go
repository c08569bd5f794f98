package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportArticles downloads the article inventory as an Excel workbook
// @Summary Export articles
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /export/articles [get]
func (h *ExportHandler) ExportArticles(c *gin.Context) {
	h.LogRequest(c, "Exporting articles to Excel")

	data, err := h.exportService.ExportArticlesToExcel(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="articles.xlsx"`)
	c.Data(http.StatusOK, excelContentType, data)
}

// ExportQuizSubmissions downloads a quiz's submissions as an Excel workbook
// @Summary Export quiz submissions
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quiz ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /export/quizzes/{id}/submissions [get]
func (h *ExportHandler) ExportQuizSubmissions(c *gin.Context) {
	id := parseStringParam(c, "id")
	if id == "" {
		return
	}

	data, err := h.exportService.ExportQuizSubmissionsToExcel(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf(`attachment; filename="quiz-%s-submissions.xlsx"`, id)
	c.Header("Content-Disposition", filename)
	c.Data(http.StatusOK, excelContentType, data)
}

func (h *ExportHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Quiz not found",
		})
	default:
		h.LogError(c, err, "Unhandled export service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

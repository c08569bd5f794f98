package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/renovaverde/content-service/internal/quiz"
	"github.com/renovaverde/content-service/internal/repositories"
)

// ExportService produces XLSX exports for the admin area.
type ExportService interface {
	ExportArticlesToExcel(ctx context.Context) ([]byte, error)
	ExportQuizSubmissionsToExcel(ctx context.Context, quizID string) ([]byte, error)
}

type exportService struct {
	repo    repositories.Repository
	catalog *quiz.Catalog
	logger  *slog.Logger
}

func NewExportService(repo repositories.Repository, catalog *quiz.Catalog, logger *slog.Logger) ExportService {
	return &exportService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *exportService) ExportArticlesToExcel(ctx context.Context) ([]byte, error) {
	articles, _, err := s.repo.Article().List(ctx, repositories.ArticleFilters{
		Limit:  10000,
		SortBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load articles for export: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Articles"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Title", "Slug", "Category", "Published", "Likes", "Created At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, article := range articles {
		row := []interface{}{
			article.ID,
			article.Title,
			article.Slug,
			article.Category,
			article.Published,
			article.Likes,
			article.CreatedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported articles to Excel", "count", len(articles))
	return buf.Bytes(), nil
}

func (s *exportService) ExportQuizSubmissionsToExcel(ctx context.Context, quizID string) ([]byte, error) {
	if _, err := s.catalog.Get(quizID); err != nil {
		return nil, ErrQuizNotFound
	}

	submissions, _, err := s.repo.QuizSubmission().ListByQuiz(ctx, quizID, 10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for export: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Submissions"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Quiz", "Total Points", "Max Points", "Category Points", "Created At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, submission := range submissions {
		row := []interface{}{
			submission.ID,
			submission.QuizID,
			submission.TotalPoints,
			submission.MaxPoints,
			strings.TrimSpace(string(submission.CategoryPoints)),
			submission.CreatedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported quiz submissions to Excel", "quiz_id", quizID, "count", len(submissions))
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/quiz"
	"github.com/renovaverde/content-service/internal/repositories"
)

func TestExportService_ExportArticlesToExcel(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	service := NewExportService(repo, quiz.DefaultCatalog(), testLogger())

	articles := []*models.Article{
		{ID: 1, Title: "Horta em casa", Slug: "horta-em-casa", Category: "jardinagem", Published: true, Likes: 10},
		{ID: 2, Title: "Energia solar", Slug: "energia-solar", Category: "energia"},
	}
	repo.ArticleRepo.On("List", ctx, repositories.ArticleFilters{Limit: 10000, SortBy: "created_at"}).
		Return(articles, int64(2), nil)

	data, err := service.ExportArticlesToExcel(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Articles")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per article")
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "horta-em-casa", rows[1][2])
	assert.Equal(t, "energia-solar", rows[2][2])
}

func TestExportService_ExportQuizSubmissions_UnknownQuiz(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	service := NewExportService(repo, quiz.DefaultCatalog(), testLogger())

	_, err := service.ExportQuizSubmissionsToExcel(ctx, "missing")

	assert.ErrorIs(t, err, ErrQuizNotFound)
	repo.QuizSubmissionRepo.AssertNotCalled(t, "ListByQuiz")
}

func TestExportService_ExportQuizSubmissions(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	service := NewExportService(repo, quiz.DefaultCatalog(), testLogger())

	submissions := []*models.QuizSubmission{
		{ID: 1, QuizID: "horta-ideal", TotalPoints: 0, MaxPoints: 21, CategoryPoints: []byte(`{"tipos":{"vasos":2}}`)},
	}
	repo.QuizSubmissionRepo.On("ListByQuiz", ctx, "horta-ideal", 10000, 0).
		Return(submissions, int64(1), nil)

	data, err := service.ExportQuizSubmissionsToExcel(ctx, "horta-ideal")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "horta-ideal", rows[1][1])
}

package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/utils"
)

func TestDefaultCatalog_ListOrder(t *testing.T) {
	catalog := DefaultCatalog()

	quizzes := catalog.List()
	require.Len(t, quizzes, 3)

	ids := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"indice-sustentabilidade", "horta-ideal", "teste-reciclagem"}, ids)
}

func TestCatalog_Get(t *testing.T) {
	catalog := DefaultCatalog()

	q, err := catalog.Get("horta-ideal")
	require.NoError(t, err)
	assert.Equal(t, "horta-ideal", q.ID)
	assert.NotEmpty(t, q.Questions)

	_, err = catalog.Get("nao-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultCatalog_QuestionIDsAreSequential(t *testing.T) {
	// Submissions key answers by question id, so ids must be unique and
	// track the question's position.
	for _, q := range DefaultCatalog().List() {
		for i, question := range q.Questions {
			assert.Equal(t, i+1, question.ID, "quiz %s question %d", q.ID, i)
			assert.NotEmpty(t, question.Options, "quiz %s question %d", q.ID, i)
		}
	}
}

func TestDefaultCatalog_ScoringQuizComputesFullResult(t *testing.T) {
	catalog := DefaultCatalog()
	q, err := catalog.Get("indice-sustentabilidade")
	require.NoError(t, err)

	// Best single answer on the scale questions, every practice on the
	// multiple-choice one.
	answers := models.AnswerSet{
		1: {"d"},
		2: {"d"},
		3: {"a", "b", "c"},
	}

	result := ComputeResult(q, answers)
	assert.Equal(t, len(q.Questions)*PointsPerQuestion, result.MaxPoints)
	assert.Equal(t, 20, result.TotalPoints)
	assert.Less(t, result.TotalPoints, result.MaxPoints, "the ceiling is an approximation, not the attainable best")
}

func TestCatalog_Validate(t *testing.T) {
	v := utils.NewValidator()

	require.NoError(t, DefaultCatalog().Validate(v))

	bad := NewCatalog([]models.Quiz{{
		ID:    "quiz-quebrado",
		Title: "Quiz quebrado",
		Questions: []models.QuizQuestion{{
			ID:       1,
			Question: "Pergunta sem tipo válido?",
			Type:     "ranking",
			Options:  []models.QuizOption{{ID: "a", Text: "A"}},
		}},
	}})

	err := bad.Validate(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz-quebrado")
}

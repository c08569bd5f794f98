package quiz

import (
	"errors"

	"github.com/renovaverde/content-service/internal/models"
)

var ErrNotFound = errors.New("quiz not found")

// PointsPerQuestion is the fixed per-question ceiling used to normalize a
// result into a percentage. It is a display approximation, not the true
// maximum obtainable score: an option may award more or fewer points than 7.
const PointsPerQuestion = 7

// ComputeResult scores a submitted answer set against a quiz definition.
//
// Every selected option folds its point map into the accumulators: the
// reserved "pontuacao" dimension adds to the numeric total, tag dimensions
// increment the per-dimension category tallies, and the reserved "correta"
// flag stays pass-through data with no effect on either accumulator.
//
// Missing answers, unknown question ids and unknown option ids contribute
// nothing; partial submissions never fail. The computation is deterministic
// and never mutates its inputs.
func ComputeResult(quiz *models.Quiz, answers models.AnswerSet) models.QuizResult {
	result := models.QuizResult{
		CategoryPoints: make(map[string]map[string]int),
		MaxPoints:      len(quiz.Questions) * PointsPerQuestion,
	}

	for _, question := range quiz.Questions {
		selected := answers[question.ID]
		if len(selected) == 0 {
			continue
		}

		for _, option := range question.Options {
			if !containsOption(selected, option.ID) {
				continue
			}

			for _, entry := range option.Points {
				switch entry.Dimension {
				case models.DimensionScore:
					if entry.Value.Kind == models.PointNumber {
						result.TotalPoints += entry.Value.Number
					}
				case models.DimensionCorrect:
					// Informational only; callers who want a
					// percentage-correct compute it themselves.
				default:
					tallyCategory(result.CategoryPoints, entry.Dimension, entry.Value)
				}
			}
		}
	}

	return result
}

func tallyCategory(categories map[string]map[string]int, dimension string, value models.PointValue) {
	if value.Kind != models.PointTags {
		return
	}

	counts, ok := categories[dimension]
	if !ok {
		counts = make(map[string]int)
		categories[dimension] = counts
	}

	for _, tag := range value.Tags {
		counts[tag]++
	}
}

func containsOption(selected []string, optionID string) bool {
	for _, id := range selected {
		if id == optionID {
			return true
		}
	}
	return false
}

package models

import (
	"encoding/json"
	"fmt"
)

type QuizQuestionType string

const (
	QuestionSingle   QuizQuestionType = "single"
	QuestionMultiple QuizQuestionType = "multiple"
)

// Reserved dimension keys inside an option's point map. "pontuacao" carries a
// numeric contribution to the total score, "correta" marks the option as the
// correct answer for knowledge-test quizzes. Every other key is a free-form
// category dimension.
const (
	DimensionScore   = "pontuacao"
	DimensionCorrect = "correta"
)

// Quiz is a static, ordered questionnaire. Quizzes are defined once at process
// start and never mutated or persisted.
type Quiz struct {
	ID            string         `json:"id" validate:"required"`
	Title         string         `json:"title" validate:"required"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	EstimatedTime int            `json:"estimatedTime"` // minutes, informational only
	Questions     []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

type QuizQuestion struct {
	ID       int              `json:"id"`
	Question string           `json:"question" validate:"required"`
	Type     QuizQuestionType `json:"type" validate:"required,quiz_question_type"`
	Options  []QuizOption     `json:"options" validate:"required,min=1"`
}

type QuizOption struct {
	ID     string       `json:"id"`
	Text   string       `json:"text"`
	Points OptionPoints `json:"points"`
}

// OptionPoints maps a dimension name to its value, preserving declaration
// order so accumulation is deterministic.
type OptionPoints []PointEntry

type PointEntry struct {
	Dimension string
	Value     PointValue
}

type PointKind int

const (
	PointNumber PointKind = iota
	PointFlag
	PointTags
)

// PointValue is a tagged variant over the three shapes an option's point map
// may carry: a numeric score contribution, a boolean correctness flag, or a
// list of category tags.
type PointValue struct {
	Kind   PointKind
	Number int
	Flag   bool
	Tags   []string
}

func Number(n int) PointValue {
	return PointValue{Kind: PointNumber, Number: n}
}

func Flag(b bool) PointValue {
	return PointValue{Kind: PointFlag, Flag: b}
}

func Tags(tags ...string) PointValue {
	return PointValue{Kind: PointTags, Tags: tags}
}

func (v PointValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case PointNumber:
		return json.Marshal(v.Number)
	case PointFlag:
		return json.Marshal(v.Flag)
	case PointTags:
		return json.Marshal(v.Tags)
	default:
		return nil, fmt.Errorf("unknown point value kind %d", v.Kind)
	}
}

func (v *PointValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*v = Number(int(value))
	case bool:
		*v = Flag(value)
	case string:
		*v = Tags(value)
	case []any:
		tags := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("point tag list may only contain strings, got %T", item)
			}
			tags = append(tags, s)
		}
		*v = PointValue{Kind: PointTags, Tags: tags}
	default:
		return fmt.Errorf("unsupported point value type %T", raw)
	}

	return nil
}

// MarshalJSON renders the point map as the flat object shape the frontend
// consumes, e.g. {"pontuacao": 3, "tipos": ["vertical", "vasos"]}.
func (p OptionPoints) MarshalJSON() ([]byte, error) {
	out := make(map[string]PointValue, len(p))
	for _, entry := range p {
		out[entry.Dimension] = entry.Value
	}
	return json.Marshal(out)
}

func (p *OptionPoints) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entries := make(OptionPoints, 0, len(raw))
	for dimension, rawValue := range raw {
		var value PointValue
		if err := value.UnmarshalJSON(rawValue); err != nil {
			return fmt.Errorf("dimension %q: %w", dimension, err)
		}
		entries = append(entries, PointEntry{Dimension: dimension, Value: value})
	}

	*p = entries
	return nil
}

// Get returns the value for a dimension, or false when the dimension is absent.
func (p OptionPoints) Get(dimension string) (PointValue, bool) {
	for _, entry := range p {
		if entry.Dimension == dimension {
			return entry.Value, true
		}
	}
	return PointValue{}, false
}

// AnswerSet maps a question id to the option ids the respondent selected.
// Missing question ids and unknown option ids are tolerated and contribute
// nothing to the result.
type AnswerSet map[int][]string

// QuizResult is the computed outcome of a quiz submission. Both the numeric
// total and the per-dimension category tallies are always populated; callers
// read whichever part fits the quiz style.
type QuizResult struct {
	TotalPoints    int                       `json:"totalPoints"`
	CategoryPoints map[string]map[string]int `json:"categoryPoints"`
	MaxPoints      int                       `json:"maxPoints"`
}

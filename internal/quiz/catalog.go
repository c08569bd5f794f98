package quiz

import (
	"fmt"

	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/utils"
)

// Catalog holds the fixed set of quizzes served by the site. It is built once
// at process start and treated as immutable afterwards; tests inject smaller
// fixtures through NewCatalog.
type Catalog struct {
	quizzes []models.Quiz
	byID    map[string]*models.Quiz
}

func NewCatalog(quizzes []models.Quiz) *Catalog {
	c := &Catalog{
		quizzes: quizzes,
		byID:    make(map[string]*models.Quiz, len(quizzes)),
	}
	for i := range c.quizzes {
		c.byID[c.quizzes[i].ID] = &c.quizzes[i]
	}
	return c
}

// DefaultCatalog returns the production quiz catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultQuizzes())
}

// List returns all quizzes in declaration order.
func (c *Catalog) List() []models.Quiz {
	return c.quizzes
}

// Get looks a quiz up by id, returning ErrNotFound on a miss.
func (c *Catalog) Get(id string) (*models.Quiz, error) {
	quiz, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return quiz, nil
}

// Validate checks every quiz definition against its struct tags. Run once at
// startup so a malformed definition fails the boot instead of a request.
func (c *Catalog) Validate(v *utils.Validator) error {
	for i := range c.quizzes {
		if err := v.ValidateStruct(&c.quizzes[i]); err != nil {
			return fmt.Errorf("quiz %q: %w", c.quizzes[i].ID, err)
		}
	}
	return nil
}

func defaultQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:            "indice-sustentabilidade",
			Title:         "Qual é o seu Índice de Sustentabilidade?",
			Description:   "Descubra o quanto a sua rotina em casa já é sustentável e onde dá para melhorar.",
			Category:      "sustentabilidade",
			EstimatedTime: 5,
			Questions: []models.QuizQuestion{
				{
					ID:       1,
					Question: "O que você faz com o lixo orgânico da sua cozinha?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Vai tudo para o lixo comum", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(1)},
						}},
						{ID: "b", Text: "Separo, mas não composto", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(3)},
						}},
						{ID: "c", Text: "Composto parte dos resíduos", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(5)},
						}},
						{ID: "d", Text: "Tenho uma composteira em uso", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(7)},
						}},
					},
				},
				{
					ID:       2,
					Question: "Como está o consumo de energia na sua casa?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Nunca pensei nisso", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(1)},
						}},
						{ID: "b", Text: "Troquei as lâmpadas por LED", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(3)},
						}},
						{ID: "c", Text: "Uso eletrodomésticos eficientes e LED", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(5)},
						}},
						{ID: "d", Text: "Tenho energia solar instalada", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(7)},
						}},
					},
				},
				{
					ID:       3,
					Question: "Quais dessas práticas fazem parte da sua rotina?",
					Type:     models.QuestionMultiple,
					Options: []models.QuizOption{
						{ID: "a", Text: "Reuso água da chuva ou da máquina", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(2)},
						}},
						{ID: "b", Text: "Levo sacolas reutilizáveis ao mercado", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(2)},
						}},
						{ID: "c", Text: "Separo recicláveis", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(2)},
						}},
						{ID: "d", Text: "Nenhuma delas ainda", Points: models.OptionPoints{
							{Dimension: models.DimensionScore, Value: models.Number(0)},
						}},
					},
				},
			},
		},
		{
			ID:            "horta-ideal",
			Title:         "Qual horta combina com a sua casa?",
			Description:   "Responda sobre o seu espaço e a sua rotina para descobrir o tipo de horta ideal.",
			Category:      "jardinagem",
			EstimatedTime: 4,
			Questions: []models.QuizQuestion{
				{
					ID:       1,
					Question: "Quanto espaço você tem disponível?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Só uma parede ou varanda pequena", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("vertical", "vasos")},
						}},
						{ID: "b", Text: "Uma varanda ampla ou área de serviço", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("vasos")},
						}},
						{ID: "c", Text: "Quintal com terra", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("canteiro")},
						}},
					},
				},
				{
					ID:       2,
					Question: "Quanto tempo por semana você teria para cuidar das plantas?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Menos de uma hora", Points: models.OptionPoints{
							{Dimension: "manutencao", Value: models.Tags("baixa")},
							{Dimension: "tipos", Value: models.Tags("vasos")},
						}},
						{ID: "b", Text: "Algumas horas", Points: models.OptionPoints{
							{Dimension: "manutencao", Value: models.Tags("media")},
						}},
						{ID: "c", Text: "Tempo não é problema", Points: models.OptionPoints{
							{Dimension: "manutencao", Value: models.Tags("alta")},
							{Dimension: "tipos", Value: models.Tags("canteiro")},
						}},
					},
				},
				{
					ID:       3,
					Question: "O que você mais quer colher?",
					Type:     models.QuestionMultiple,
					Options: []models.QuizOption{
						{ID: "a", Text: "Temperos e ervas", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("vertical", "vasos")},
						}},
						{ID: "b", Text: "Hortaliças folhosas", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("canteiro", "vasos")},
						}},
						{ID: "c", Text: "Legumes e frutas", Points: models.OptionPoints{
							{Dimension: "tipos", Value: models.Tags("canteiro")},
						}},
					},
				},
			},
		},
		{
			ID:            "teste-reciclagem",
			Title:         "Você sabe reciclar de verdade?",
			Description:   "Teste os seus conhecimentos sobre separação de resíduos.",
			Category:      "reciclagem",
			EstimatedTime: 3,
			Questions: []models.QuizQuestion{
				{
					ID:       1,
					Question: "Papel engordurado de pizza vai para qual lixeira?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Reciclável azul (papel)", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(false)},
						}},
						{ID: "b", Text: "Lixo comum ou compostagem", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(true)},
							{Dimension: models.DimensionScore, Value: models.Number(7)},
						}},
					},
				},
				{
					ID:       2,
					Question: "Vidro quebrado pode ir para a coleta seletiva?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Sim, embalado e identificado", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(true)},
							{Dimension: models.DimensionScore, Value: models.Number(7)},
						}},
						{ID: "b", Text: "Não, vidro quebrado nunca é reciclável", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(false)},
						}},
					},
				},
				{
					ID:       3,
					Question: "Isopor é reciclável no Brasil?",
					Type:     models.QuestionSingle,
					Options: []models.QuizOption{
						{ID: "a", Text: "Sim, é um plástico (PS) e tem coleta em vários municípios", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(true)},
							{Dimension: models.DimensionScore, Value: models.Number(7)},
						}},
						{ID: "b", Text: "Não, isopor é sempre lixo comum", Points: models.OptionPoints{
							{Dimension: models.DimensionCorrect, Value: models.Flag(false)},
						}},
					},
				},
			},
		},
	}
}

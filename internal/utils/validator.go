package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/renovaverde/content-service/internal/errors"
	"github.com/renovaverde/content-service/internal/models"
)

// Validator wraps the struct validator with the custom rules this service
// registers.
type Validator struct {
	structValidator *validator.Validate
}

func NewValidator() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)
	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags, converting driver errors into the
// shared ValidationErrors type.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if ve := apperrors.ToValidationErrors(err); len(ve) > 0 {
			return ve
		}
		return err
	}
	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("quiz_question_type", validateQuizQuestionType)
	validate.RegisterValidation("article_category", validateArticleCategory)
	validate.RegisterValidation("article_slug", validateArticleSlug)

	// Report json field names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuizQuestionType(fl validator.FieldLevel) bool {
	validTypes := []models.QuizQuestionType{
		models.QuestionSingle,
		models.QuestionMultiple,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateArticleCategory(fl validator.FieldLevel) bool {
	validCategories := []models.ArticleCategory{
		models.CategoryJardinagem,
		models.CategoryEnergia,
		models.CategoryReciclagem,
		models.CategorySustentabilidade,
	}

	value := fl.Field().String()
	for _, validCategory := range validCategories {
		if string(validCategory) == value {
			return true
		}
	}
	return false
}

func validateArticleSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

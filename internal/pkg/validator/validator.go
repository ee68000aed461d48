package validator

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/landslide-dashboard/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest валидирует DTO запроса и сразу возвращает AppError с полями,
// не прошедшими проверку
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return errors.ErrInvalidRequest.WithDetails(Details(err))
}

// Details раскладывает ошибки валидатора в map поле -> правило
func Details(err error) map[string]interface{} {
	details := make(map[string]interface{})

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		details["reason"] = err.Error()
		return details
	}

	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		details[fe.Namespace()] = rule
	}
	return details
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

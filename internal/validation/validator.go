package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError collects the per-field violations of one request payload.
// Handlers return it as-is; the router's error handler relies on its
// JSON shape for 400 responses.
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	messages := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "; ")
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// RequestValidator plugs go-playground struct validation into echo, so
// handler DTOs are checked right after Bind through their validate tags
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// Echo builds the validator echo is configured with
func Echo(validate *validator.Validate, translator ut.Translator) *RequestValidator {
	return &RequestValidator{
		validate:   validate,
		translator: translator,
	}
}

func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pldErr := &PayloadError{violations: make([]violation, 0, len(ve))}
	for _, fieldErr := range ve {
		pldErr.violations = append(pldErr.violations, violation{
			Field:   fieldErr.Field(),
			Message: fieldErr.Translate(v.translator),
		})
	}
	return pldErr
}

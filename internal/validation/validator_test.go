package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enrollPayload struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	InitialPoints int    `validate:"gte=0"`
}

func buildValidator(t *testing.T) *RequestValidator {
	enLocale := en.New()
	trans, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	require.True(t, ok, "en translator must be available")
	return Echo(validator.New(), trans)
}

func TestValidatePassesValidPayload(t *testing.T) {
	v := buildValidator(t)

	t.Log("payload satisfying all tags must pass")
	{
		err := v.Validate(enrollPayload{Name: "John Walls", Email: "john.walls@somemail.com", InitialPoints: 100})
		assert.NoError(t, err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := buildValidator(t)

	t.Log("every violated field must be reported, not just the first")
	{
		err := v.Validate(enrollPayload{Name: "", Email: "not-an-email", InitialPoints: -5})
		require.Error(t, err)

		pldErr, ok := err.(*PayloadError)
		require.True(t, ok, "error must be payload error")
		assert.Len(t, pldErr.violations, 3)
		assert.NotEmpty(t, pldErr.Error())
	}
}

func TestPayloadErrorJSONShape(t *testing.T) {
	v := buildValidator(t)

	t.Log("payload error must marshal as an errors array with field and message")
	{
		err := v.Validate(enrollPayload{Name: "", Email: "john.walls@somemail.com"})
		require.Error(t, err)

		raw, marshalErr := json.Marshal(err)
		require.NoError(t, marshalErr)

		var decoded struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.Len(t, decoded.Errors, 1)
		assert.Equal(t, "Name", decoded.Errors[0].Field)
		assert.NotEmpty(t, decoded.Errors[0].Message)
	}
}

package lib

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingBody struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestExtractAndValidateBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body, err := ExtractAndValidateBody[ratingBody](newRequest(`{"name":"Ada","rating":4}`))
		require.NoError(t, err)
		assert.Equal(t, "Ada", body.Name)
		assert.Equal(t, 4, body.Rating)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := ExtractAndValidateBody[ratingBody](newRequest(`{"name":"Ada","rating":4,"stars":5}`))
		require.Error(t, err)

		var ve *ValidationError
		assert.False(t, errors.As(err, &ve))
	})

	t.Run("failing tags are reported per field", func(t *testing.T) {
		_, err := ExtractAndValidateBody[ratingBody](newRequest(`{"rating":9}`))
		require.Error(t, err)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		require.Len(t, ve.Errors, 2)
		assert.Equal(t, FieldError{Field: "name", Tag: "required", Message: "is required"}, ve.Errors[0])
		assert.Equal(t, FieldError{Field: "rating", Tag: "max", Message: "must be at most 5"}, ve.Errors[1])
	})
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(ratingBody{Name: "Ada", Rating: 1}))

	err := ValidateStruct(ratingBody{Name: "Ada"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "rating", ve.Errors[0].Field)
	assert.Equal(t, "must be at least 1", ve.Errors[0].Message)
}

package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(errors.New("boom"), "error.reviews.failedToSubmit", gecho.NewDefaultLogger(), rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error.reviews.failedToSubmit")
}

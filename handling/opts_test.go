package handling

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_server/services"
	"storefront_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReviewListOptions(t *testing.T) {
	t.Run("no query", func(t *testing.T) {
		opts, err := ParseReviewListOptions(httptest.NewRequest(http.MethodGet, "/reviews", nil))
		require.NoError(t, err)
		assert.Equal(t, services.ReviewListOptions{}, opts)
	})

	t.Run("all filters", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reviews?min_rating=4&recommend=Yes&limit=2", nil)
		opts, err := ParseReviewListOptions(r)
		require.NoError(t, err)
		assert.Equal(t, services.ReviewListOptions{MinRating: 4, Recommend: structs.RecommendYes, Limit: 2}, opts)
	})

	for _, query := range []string{
		"min_rating=high",
		"min_rating=6",
		"recommend=Maybe",
		"limit=-1",
	} {
		t.Run("rejects "+query, func(t *testing.T) {
			_, err := ParseReviewListOptions(httptest.NewRequest(http.MethodGet, "/reviews?"+query, nil))
			assert.Error(t, err)
		})
	}
}

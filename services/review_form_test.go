package services

import (
	"errors"
	"testing"

	"storefront_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name     string
		draft    structs.ReviewDraft
		messages []string
	}{
		{
			name:     "empty draft",
			draft:    structs.ReviewDraft{},
			messages: []string{MsgNameRequired, MsgReviewRequired, MsgRatingRequired},
		},
		{
			name:     "missing text",
			draft:    structs.ReviewDraft{Name: "A", Rating: 3},
			messages: []string{MsgReviewRequired},
		},
		{
			name:     "rating above range",
			draft:    structs.ReviewDraft{Name: "A", Text: "B", Rating: 6},
			messages: []string{MsgRatingRequired},
		},
		{
			name:     "negative rating",
			draft:    structs.ReviewDraft{Name: "A", Text: "B", Rating: -1},
			messages: []string{MsgRatingRequired},
		},
		{
			name:  "complete",
			draft: structs.ReviewDraft{Name: "A", Text: "B", Rating: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, messages := ValidateDraft(tt.draft)
			if tt.messages == nil {
				assert.Empty(t, messages)
				return
			}
			assert.Equal(t, tt.messages, messages)
		})
	}
}

func TestValidateDraft_PromotesToReview(t *testing.T) {
	review, messages := ValidateDraft(structs.ReviewDraft{Name: "A", Text: "B", Rating: 5})
	require.Empty(t, messages)
	assert.Equal(t, structs.Review{Name: "A", Text: "B", Rating: 5}, review)

	review, _ = ValidateDraft(structs.ReviewDraft{Name: "A", Text: "B", Rating: 2, Recommend: structs.RecommendNo})
	assert.Equal(t, structs.RecommendNo, review.Recommend)
}

func TestReviewForm_ErrorsAreDeduplicated(t *testing.T) {
	form := NewReviewForm(NewNotificationBus())

	_, err := form.Validate()
	require.Error(t, err)
	_, err = form.Validate()
	require.Error(t, err)

	var ve *ReviewValidationError
	require.True(t, errors.As(err, &ve))
	expected := []string{MsgNameRequired, MsgReviewRequired, MsgRatingRequired}
	assert.Equal(t, expected, ve.Messages)
	assert.Equal(t, expected, form.Errors())
}

func TestReviewForm_ErrorsAccumulateUntilSuccess(t *testing.T) {
	form := NewReviewForm(NewNotificationBus())

	form.SetName("A")
	form.SetText("B")
	_, err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{MsgRatingRequired}, form.Errors())

	form.SetName("")
	_, err = form.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{MsgRatingRequired, MsgNameRequired}, form.Errors())

	form.SetName("A")
	form.SetRating(5)
	review, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, structs.Review{Name: "A", Text: "B", Rating: 5}, review)
	assert.Empty(t, form.Errors())
}

func TestReviewForm_SubmitPublishesAndClears(t *testing.T) {
	bus := NewNotificationBus()
	var published []any
	bus.Subscribe(TopicReviewSubmitted, func(payload any) { published = append(published, payload) })

	form := NewReviewForm(bus)
	form.SetName("A")
	form.SetText("B")
	form.SetRating(4)
	require.NoError(t, form.SetRecommend(structs.RecommendYes))

	review, err := form.Submit()
	require.NoError(t, err)

	want := structs.Review{Name: "A", Text: "B", Rating: 4, Recommend: structs.RecommendYes}
	assert.Equal(t, want, review)
	assert.Equal(t, []any{want}, published)
	assert.Equal(t, structs.ReviewDraft{}, form.Draft())
	assert.Empty(t, form.Errors())
}

func TestReviewForm_FailedSubmitKeepsDraft(t *testing.T) {
	bus := NewNotificationBus()
	published := 0
	bus.Subscribe(TopicReviewSubmitted, func(any) { published++ })

	form := NewReviewForm(bus)
	form.SetName("A")

	_, err := form.Submit()
	require.Error(t, err)
	assert.Equal(t, 0, published)
	assert.Equal(t, "A", form.Draft().Name)
	assert.Equal(t, []string{MsgReviewRequired, MsgRatingRequired}, form.Errors())
}

func TestReviewForm_SetRecommend(t *testing.T) {
	form := NewReviewForm(nil)

	require.NoError(t, form.SetRecommend(structs.RecommendNo))
	assert.ErrorIs(t, form.SetRecommend("Maybe"), ErrInvalidRecommendation)
	assert.Equal(t, structs.RecommendNo, form.Draft().Recommend)

	require.NoError(t, form.SetRecommend(""))
	assert.Equal(t, structs.Recommendation(""), form.Draft().Recommend)
}

func TestReviewForm_Reset(t *testing.T) {
	form := NewReviewForm(nil)
	form.SetName("A")
	_, _ = form.Validate()
	require.NotEmpty(t, form.Errors())

	form.Reset()

	assert.Equal(t, structs.ReviewDraft{}, form.Draft())
	assert.Empty(t, form.Errors())
}

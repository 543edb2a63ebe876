package services

import (
	"errors"
	"slices"
	"storefront_server/lib"
	"storefront_server/structs"
)

// requiredMessages maps a failing draft field to the message shown for it
var requiredMessages = map[string]string{
	"name":   MsgNameRequired,
	"text":   MsgReviewRequired,
	"rating": MsgRatingRequired,
}

// ValidateDraft promotes a draft to a Review, or lists one message per missing field.
// A rating outside 1-5 counts as missing.
func ValidateDraft(draft structs.ReviewDraft) (structs.Review, []string) {
	err := lib.ValidateStruct(draft)
	if err == nil {
		recommend := draft.Recommend
		if !recommend.IsValid() {
			recommend = ""
		}
		return structs.Review{
			Name:      draft.Name,
			Text:      draft.Text,
			Rating:    draft.Rating,
			Recommend: recommend,
		}, nil
	}

	var ve *lib.ValidationError
	if !errors.As(err, &ve) {
		return structs.Review{}, []string{err.Error()}
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		if msg, ok := requiredMessages[fe.Field]; ok && !slices.Contains(messages, msg) {
			messages = append(messages, msg)
		}
	}
	return structs.Review{}, messages
}

// ReviewForm holds the draft being edited and the messages from failed submits.
// Messages accumulate without duplicates until a successful Validate or a Reset.
type ReviewForm struct {
	draft  structs.ReviewDraft
	errors []string
	bus    *NotificationBus
}

func NewReviewForm(bus *NotificationBus) *ReviewForm {
	return &ReviewForm{bus: bus}
}

func (rf *ReviewForm) SetName(name string) {
	rf.draft.Name = name
}

func (rf *ReviewForm) SetText(text string) {
	rf.draft.Text = text
}

func (rf *ReviewForm) SetRating(rating int) {
	rf.draft.Rating = rating
}

func (rf *ReviewForm) SetRecommend(recommend structs.Recommendation) error {
	if !recommend.IsValid() {
		return ErrInvalidRecommendation
	}
	rf.draft.Recommend = recommend
	return nil
}

func (rf *ReviewForm) Draft() structs.ReviewDraft {
	return rf.draft
}

func (rf *ReviewForm) Errors() []string {
	return append(make([]string, 0, len(rf.errors)), rf.errors...)
}

// Validate returns the Review and clears the accumulated messages, or returns a
// *ReviewValidationError holding every accumulated message. The draft is left untouched.
func (rf *ReviewForm) Validate() (structs.Review, error) {
	review, messages := ValidateDraft(rf.draft)
	if len(messages) == 0 {
		rf.errors = nil
		return review, nil
	}

	for _, msg := range messages {
		if !slices.Contains(rf.errors, msg) {
			rf.errors = append(rf.errors, msg)
		}
	}
	return structs.Review{}, &ReviewValidationError{Messages: rf.Errors()}
}

// Submit validates the draft, publishes the review on TopicReviewSubmitted and clears the form
func (rf *ReviewForm) Submit() (structs.Review, error) {
	review, err := rf.Validate()
	if err != nil {
		return structs.Review{}, err
	}

	if rf.bus != nil {
		rf.bus.Publish(TopicReviewSubmitted, review)
	}
	rf.Reset()
	return review, nil
}

func (rf *ReviewForm) Reset() {
	rf.draft = structs.ReviewDraft{}
	rf.errors = nil
}

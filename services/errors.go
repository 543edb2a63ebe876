package services

import (
	"errors"
	"strings"
)

var (
	ErrVariantOutOfRange     = errors.New("variant index out of range")
	ErrInvalidRecommendation = errors.New("recommendation must be Yes or No")
	ErrInvalidCatalog        = errors.New("invalid catalog")
)

// Messages shown for missing review fields, in the order they are reported
const (
	MsgNameRequired   = "Name required."
	MsgReviewRequired = "Review required."
	MsgRatingRequired = "Rating required."
)

// ReviewValidationError carries every message accumulated by the review form
type ReviewValidationError struct {
	Messages []string `json:"errors"`
}

func (e *ReviewValidationError) Error() string {
	return "review validation failed: " + strings.Join(e.Messages, " ")
}

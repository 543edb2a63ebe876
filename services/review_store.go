package services

import (
	"iter"
	"storefront_server/structs"
)

const EmptyReviewsMessage = "There are no reviews yet."

// ReviewStore keeps submitted reviews in insertion order
type ReviewStore struct {
	reviews []structs.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

func (rs *ReviewStore) Append(review structs.Review) {
	rs.reviews = append(rs.reviews, review)
}

// All yields the reviews in insertion order. Each iteration reads the current contents,
// so ranging again after Append includes the new review.
func (rs *ReviewStore) All() iter.Seq[structs.Review] {
	return func(yield func(structs.Review) bool) {
		for _, r := range rs.reviews {
			if !yield(r) {
				return
			}
		}
	}
}

func (rs *ReviewStore) IsEmpty() bool {
	return len(rs.reviews) == 0
}

func (rs *ReviewStore) Len() int {
	return len(rs.reviews)
}

// SubscribeTo appends every Review published on TopicReviewSubmitted. Other payload types are ignored.
func (rs *ReviewStore) SubscribeTo(bus *NotificationBus) Subscription {
	return bus.Subscribe(TopicReviewSubmitted, func(payload any) {
		if review, ok := payload.(structs.Review); ok {
			rs.Append(review)
		}
	})
}

// ReviewListOptions filters a review listing. Zero values disable a filter.
type ReviewListOptions struct {
	MinRating int                    `json:"min_rating,omitempty"`
	Recommend structs.Recommendation `json:"recommend,omitempty"`
	Limit     int                    `json:"limit,omitempty"`
}

func (o ReviewListOptions) matches(r structs.Review) bool {
	if o.MinRating > 0 && r.Rating < o.MinRating {
		return false
	}
	if o.Recommend != "" && r.Recommend != o.Recommend {
		return false
	}
	return true
}

// Filter lazily applies opts to seq
func (o ReviewListOptions) Filter(seq iter.Seq[structs.Review]) iter.Seq[structs.Review] {
	return func(yield func(structs.Review) bool) {
		n := 0
		for r := range seq {
			if o.Limit > 0 && n >= o.Limit {
				return
			}
			if !o.matches(r) {
				continue
			}
			n++
			if !yield(r) {
				return
			}
		}
	}
}

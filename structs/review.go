package structs

// Recommendation answers "Would you recommend this product?"; empty means not answered
type Recommendation string

const (
	RecommendYes Recommendation = "Yes"
	RecommendNo  Recommendation = "No"
)

func (r Recommendation) IsValid() bool {
	return r == "" || r == RecommendYes || r == RecommendNo
}

// ReviewDraft is the review form while it is being edited. Zero values mean the field was not filled in.
type ReviewDraft struct {
	Name      string         `json:"name" validate:"required"`
	Text      string         `json:"review" validate:"required"`
	Rating    int            `json:"rating" validate:"required,min=1,max=5"`
	Recommend Recommendation `json:"recommend,omitempty"`
}

type Review struct {
	Name      string         `json:"name"`
	Text      string         `json:"review"`
	Rating    int            `json:"rating"`
	Recommend Recommendation `json:"recommend,omitempty"`
}

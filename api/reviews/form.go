package reviews

import (
	"errors"
	"net/http"
	"storefront_server/api/health"
	"storefront_server/handling"
	"storefront_server/lib"
	"storefront_server/services"

	"github.com/MonkyMars/gecho"
)

// FetchForm handles GET /reviews/form with the draft and the accumulated error messages
func (rrm *ReviewRoutesManager) FetchForm(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"form": rrm.storefront.ReviewForm(),
		}),
		gecho.Send(),
	)
}

// UpdateForm handles PATCH /reviews/form; only the fields present in the body are set
func (rrm *ReviewRoutesManager) UpdateForm(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[services.ReviewDraftUpdate](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.reviews.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	form, err := rrm.storefront.UpdateReviewDraft(*body)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecommendation) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.reviews.invalidRecommendation"),
				gecho.WithData(err.Error()),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.reviews.failedToUpdate", rrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"form": form,
		}),
		gecho.Send(),
	)
}

// SubmitForm handles POST /reviews/form/submit. Missing fields answer 400 with every accumulated message.
func (rrm *ReviewRoutesManager) SubmitForm(w http.ResponseWriter, r *http.Request) {
	review, err := rrm.storefront.SubmitReview()
	if err != nil {
		var ve *services.ReviewValidationError
		if errors.As(err, &ve) {
			health.StoreActions.WithLabelValues("review_submit", "invalid").Inc()
			gecho.BadRequest(w,
				gecho.WithMessage("error.reviews.validationFailed"),
				gecho.WithData(map[string]any{
					"errors": ve.Messages,
				}),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.reviews.failedToSubmit", rrm.logger, w)
		return
	}

	health.StoreActions.WithLabelValues("review_submit", "ok").Inc()
	gecho.Success(w,
		gecho.WithMessage("success.reviews.submitted"),
		gecho.WithData(map[string]any{
			"review": review,
		}),
		gecho.Send(),
	)
}

// ResetForm handles DELETE /reviews/form
func (rrm *ReviewRoutesManager) ResetForm(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithMessage("success.reviews.formCleared"),
		gecho.WithData(map[string]any{
			"form": rrm.storefront.ResetReviewForm(),
		}),
		gecho.Send(),
	)
}

package products

import (
	"errors"
	"net/http"
	"storefront_server/services"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchProduct handles GET /product with the derived display fields for the selected variant
func (p *ProductRoutesManager) FetchProduct(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": p.storefront.Product(),
		}),
		gecho.Send(),
	)
}

// SelectVariant handles POST /product/variant/{index}, the hover on a colour box
func (p *ProductRoutesManager) SelectVariant(w http.ResponseWriter, r *http.Request) {
	indexStr := chi.URLParam(r, "index")

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		p.logger.Warn("Invalid variant index format", gecho.Field("index", indexStr), gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.product.invalidVariantIndex"),
			gecho.Send(),
		)
		return
	}

	product, err := p.storefront.SelectVariant(index)
	if err != nil {
		if errors.Is(err, services.ErrVariantOutOfRange) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.product.variantOutOfRange"),
				gecho.WithData(err.Error()),
				gecho.Send(),
			)
			return
		}

		p.logger.Error("Failed to select variant", gecho.Field("index", index), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.product.failedToSelectVariant"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

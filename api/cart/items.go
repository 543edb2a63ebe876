package cart

import (
	"net/http"
	"storefront_server/api/health"

	"github.com/MonkyMars/gecho"
)

func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"cart": crm.storefront.Cart(),
		}),
		gecho.Send(),
	)
}

// AddItem handles POST /cart/items, adding one unit of the selected variant
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	cart := crm.storefront.AddToCart()
	health.StoreActions.WithLabelValues("cart_add", "ok").Inc()

	gecho.Success(w,
		gecho.WithMessage("success.cart.itemAdded"),
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}

// RemoveItem handles DELETE /cart/items, removing one unit of the selected variant.
// Removing a variant that is not in the cart is not an error; "removed" is false.
func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, removed := crm.storefront.RemoveFromCart()

	outcome := "ok"
	message := "success.cart.itemRemoved"
	if !removed {
		outcome = "absent"
		message = "success.cart.itemNotInCart"
	}
	health.StoreActions.WithLabelValues("cart_remove", outcome).Inc()

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(map[string]any{
			"cart":    cart,
			"removed": removed,
		}),
		gecho.Send(),
	)
}

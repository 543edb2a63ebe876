package services

import (
	"fmt"
	"slices"
	"storefront_server/structs"
	"sync"

	"github.com/MonkyMars/gecho"
)

// Storefront owns the product view, cart, review form and review list and runs every
// user action on them one at a time, the way a UI event loop would.
type Storefront struct {
	mu      sync.Mutex
	logger  *gecho.Logger
	premium bool

	view    *ProductView
	cart    *CartStore
	bus     *NotificationBus
	form    *ReviewForm
	reviews *ReviewStore
}

// ProductSnapshot is the catalog data plus every derived display field
type ProductSnapshot struct {
	Brand           string            `json:"brand"`
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Details         []string          `json:"details"`
	Variants        []structs.Variant `json:"variants"`
	SelectedVariant int               `json:"selected_variant"`
	Image           string            `json:"image"`
	InStock         bool              `json:"in_stock"`
	StockLabel      string            `json:"stock_label"`
	Shipping        string            `json:"shipping"`
	OnSale          bool              `json:"on_sale"`
	Sale            string            `json:"sale"`
}

type CartSnapshot struct {
	Items []int `json:"items"`
	Count int   `json:"count"`
}

type ReviewFormSnapshot struct {
	Draft  structs.ReviewDraft `json:"draft"`
	Errors []string            `json:"errors"`
}

// ReviewDraftUpdate sets the fields that are present and leaves the others alone
type ReviewDraftUpdate struct {
	Name      *string                 `json:"name,omitempty"`
	Text      *string                 `json:"review,omitempty"`
	Rating    *int                    `json:"rating,omitempty"`
	Recommend *structs.Recommendation `json:"recommend,omitempty"`
}

func NewStorefront(logger *gecho.Logger, product structs.Product, premium bool) (*Storefront, error) {
	view, err := NewProductView(product)
	if err != nil {
		return nil, err
	}

	bus := NewNotificationBus()
	reviews := NewReviewStore()
	reviews.SubscribeTo(bus)

	return &Storefront{
		logger:  logger,
		premium: premium,
		view:    view,
		cart:    NewCartStore(),
		bus:     bus,
		form:    NewReviewForm(bus),
		reviews: reviews,
	}, nil
}

func (sf *Storefront) Product() ProductSnapshot {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.productSnapshot()
}

func (sf *Storefront) productSnapshot() ProductSnapshot {
	p := sf.view.Product()
	return ProductSnapshot{
		Brand:           p.Brand,
		Name:            p.Name,
		Title:           sf.view.Title(),
		Details:         p.Details,
		Variants:        p.Variants,
		SelectedVariant: sf.view.SelectedIndex(),
		Image:           sf.view.Image(),
		InStock:         sf.view.InStock(),
		StockLabel:      sf.view.StockLabel(),
		Shipping:        sf.view.ShippingCost(sf.premium),
		OnSale:          p.OnSale,
		Sale:            sf.view.SaleMessage(),
	}
}

func (sf *Storefront) SelectVariant(index int) (ProductSnapshot, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.view.SelectVariant(index); err != nil {
		return ProductSnapshot{}, err
	}
	sf.logger.Debug("Variant selected", gecho.Field("index", index), gecho.Field("variant_id", sf.view.CurrentVariant().ID))
	return sf.productSnapshot(), nil
}

func (sf *Storefront) Cart() CartSnapshot {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.cartSnapshot()
}

func (sf *Storefront) cartSnapshot() CartSnapshot {
	return CartSnapshot{Items: sf.cart.Items(), Count: sf.cart.Size()}
}

// AddToCart adds one unit of the variant selected at the time of the call
func (sf *Storefront) AddToCart() CartSnapshot {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	id := sf.view.CurrentVariant().ID
	sf.cart.AddItem(id)
	sf.logger.Debug("Item added to cart", gecho.Field("variant_id", id), gecho.Field("count", sf.cart.Size()))
	return sf.cartSnapshot()
}

// RemoveFromCart removes one unit of the currently selected variant, if the cart holds any
func (sf *Storefront) RemoveFromCart() (CartSnapshot, bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	id := sf.view.CurrentVariant().ID
	removed := sf.cart.RemoveItem(id)
	sf.logger.Debug("Item removed from cart", gecho.Field("variant_id", id), gecho.Field("removed", removed))
	return sf.cartSnapshot(), removed
}

func (sf *Storefront) ReviewForm() ReviewFormSnapshot {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.formSnapshot()
}

func (sf *Storefront) formSnapshot() ReviewFormSnapshot {
	return ReviewFormSnapshot{Draft: sf.form.Draft(), Errors: sf.form.Errors()}
}

// UpdateReviewDraft applies the present fields. A bad recommendation leaves the draft unchanged.
func (sf *Storefront) UpdateReviewDraft(update ReviewDraftUpdate) (ReviewFormSnapshot, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if update.Recommend != nil && !update.Recommend.IsValid() {
		return ReviewFormSnapshot{}, fmt.Errorf("%w: got %q", ErrInvalidRecommendation, *update.Recommend)
	}

	if update.Name != nil {
		sf.form.SetName(*update.Name)
	}
	if update.Text != nil {
		sf.form.SetText(*update.Text)
	}
	if update.Rating != nil {
		sf.form.SetRating(*update.Rating)
	}
	if update.Recommend != nil {
		if err := sf.form.SetRecommend(*update.Recommend); err != nil {
			return ReviewFormSnapshot{}, err
		}
	}
	return sf.formSnapshot(), nil
}

// SubmitReview returns a *ReviewValidationError when required fields are missing
func (sf *Storefront) SubmitReview() (structs.Review, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	review, err := sf.form.Submit()
	if err != nil {
		sf.logger.Debug("Review rejected", gecho.Field("errors", sf.form.Errors()))
		return structs.Review{}, err
	}
	sf.logger.Info("Review submitted", gecho.Field("rating", review.Rating), gecho.Field("reviews", sf.reviews.Len()))
	return review, nil
}

func (sf *Storefront) ResetReviewForm() ReviewFormSnapshot {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.form.Reset()
	return sf.formSnapshot()
}

// Reviews returns the stored reviews matching opts, in insertion order
func (sf *Storefront) Reviews(opts ReviewListOptions) []structs.Review {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	out := slices.Collect(opts.Filter(sf.reviews.All()))
	if out == nil {
		out = []structs.Review{}
	}
	return out
}

func (sf *Storefront) ReviewCount() int {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.reviews.Len()
}

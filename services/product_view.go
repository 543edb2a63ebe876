package services

import (
	"fmt"
	"slices"
	"storefront_server/structs"
)

const (
	ShippingFree     = "Free"
	ShippingStandard = "$2.99"

	StockLabelInStock    = "In Stock"
	StockLabelOutOfStock = "Out Of Stock"
)

// ProductView tracks the selected variant of a product and derives the display fields from it.
// Derived fields are recomputed on every call.
type ProductView struct {
	product  structs.Product
	selected int
}

func NewProductView(product structs.Product) (*ProductView, error) {
	if len(product.Variants) == 0 {
		return nil, fmt.Errorf("%w: product %q has no variants", ErrInvalidCatalog, product.Name)
	}
	return &ProductView{product: product}, nil
}

// SelectVariant changes the selection. An out-of-range index is rejected and the selection kept.
func (pv *ProductView) SelectVariant(index int) error {
	if index < 0 || index >= len(pv.product.Variants) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVariantOutOfRange, index, len(pv.product.Variants))
	}
	pv.selected = index
	return nil
}

func (pv *ProductView) SelectedIndex() int {
	return pv.selected
}

func (pv *ProductView) CurrentVariant() structs.Variant {
	return pv.product.Variants[pv.selected]
}

func (pv *ProductView) Title() string {
	return pv.product.Brand + " " + pv.product.Name
}

func (pv *ProductView) Image() string {
	return pv.CurrentVariant().Image
}

func (pv *ProductView) InStock() bool {
	return pv.CurrentVariant().Quantity > 0
}

func (pv *ProductView) StockLabel() string {
	if pv.InStock() {
		return StockLabelInStock
	}
	return StockLabelOutOfStock
}

func (pv *ProductView) ShippingCost(premium bool) string {
	return ShippingCost(premium)
}

func (pv *ProductView) SaleMessage() string {
	if pv.product.OnSale {
		return pv.Title() + " are On Sale!"
	}
	return pv.Title() + " are NOT On Sale"
}

// Product returns a copy of the catalog data
func (pv *ProductView) Product() structs.Product {
	p := pv.product
	p.Details = slices.Clone(p.Details)
	p.Variants = slices.Clone(p.Variants)
	return p
}

// ShippingCost depends only on the premium flag
func ShippingCost(premium bool) string {
	if premium {
		return ShippingFree
	}
	return ShippingStandard
}

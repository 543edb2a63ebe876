package services

import (
	"fmt"
	"os"
	"storefront_server/lib"
	"storefront_server/structs"

	"gopkg.in/yaml.v3"
)

// DefaultProduct is the catalog served when no catalog file is configured
func DefaultProduct() structs.Product {
	return structs.Product{
		Brand:   "Vue",
		Name:    "Socks",
		Details: []string{"80% cotton", "20% polyester", "Gender-neutral"},
		OnSale:  true,
		Variants: []structs.Variant{
			{
				ID:       2234,
				Color:    structs.ColorGreen,
				Quantity: 0,
				Image:    "./assets/vmSocks-green-onWhite.jpg",
			},
			{
				ID:       2235,
				Color:    structs.ColorBlue,
				Quantity: 10,
				Image:    "./assets/vmSocks-blue-onWhite.jpg",
			},
		},
	}
}

// LoadProduct reads a product from a YAML file, or returns DefaultProduct when path is empty
func LoadProduct(path string) (structs.Product, error) {
	if path == "" {
		return DefaultProduct(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return structs.Product{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	return ParseProduct(data)
}

func ParseProduct(data []byte) (structs.Product, error) {
	var product structs.Product
	if err := yaml.Unmarshal(data, &product); err != nil {
		return structs.Product{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := ValidateProduct(product); err != nil {
		return structs.Product{}, err
	}

	return product, nil
}

// ValidateProduct checks field tags and that variant ids are unique
func ValidateProduct(product structs.Product) error {
	if err := lib.ValidateStruct(product); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	seen := make(map[int]struct{}, len(product.Variants))
	for _, v := range product.Variants {
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate variant id %d", ErrInvalidCatalog, v.ID)
		}
		seen[v.ID] = struct{}{}
	}

	return nil
}

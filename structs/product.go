package structs

// Color of a variant
type Color string

const (
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// Variant is a purchasable configuration of a product with its own stock and image
type Variant struct {
	ID       int    `yaml:"id" json:"id" validate:"gt=0"`
	Color    Color  `yaml:"color" json:"color" validate:"required"`
	Quantity int    `yaml:"quantity" json:"quantity" validate:"gte=0"`
	Image    string `yaml:"image" json:"image" validate:"required"`
}

type Product struct {
	Brand    string    `yaml:"brand" json:"brand" validate:"required"`
	Name     string    `yaml:"name" json:"name" validate:"required"`
	Details  []string  `yaml:"details" json:"details"`
	OnSale   bool      `yaml:"on_sale" json:"on_sale"`
	Variants []Variant `yaml:"variants" json:"variants" validate:"required,min=1,dive"`
}

package services

import (
	"os"
	"path/filepath"
	"testing"

	"storefront_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
brand: Vue
name: Mittens
details:
  - 100% wool
on_sale: false
variants:
  - id: 3001
    color: red
    quantity: 4
    image: ./assets/mittens-red.jpg
  - id: 3002
    color: white
    quantity: 0
    image: ./assets/mittens-white.jpg
`

func TestDefaultProduct(t *testing.T) {
	p := DefaultProduct()

	require.NoError(t, ValidateProduct(p))
	assert.Equal(t, "Vue", p.Brand)
	assert.Equal(t, "Socks", p.Name)
	assert.Equal(t, []string{"80% cotton", "20% polyester", "Gender-neutral"}, p.Details)
	assert.True(t, p.OnSale)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, structs.Variant{ID: 2234, Color: structs.ColorGreen, Quantity: 0, Image: "./assets/vmSocks-green-onWhite.jpg"}, p.Variants[0])
	assert.Equal(t, structs.Variant{ID: 2235, Color: structs.ColorBlue, Quantity: 10, Image: "./assets/vmSocks-blue-onWhite.jpg"}, p.Variants[1])
}

func TestLoadProduct_EmptyPathUsesDefault(t *testing.T) {
	p, err := LoadProduct("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProduct(), p)
}

func TestLoadProduct_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	p, err := LoadProduct(path)
	require.NoError(t, err)

	assert.Equal(t, "Mittens", p.Name)
	assert.False(t, p.OnSale)
	assert.Equal(t, []string{"100% wool"}, p.Details)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, 3001, p.Variants[0].ID)
	assert.Equal(t, structs.Color("white"), p.Variants[1].Color)
}

func TestLoadProduct_MissingFile(t *testing.T) {
	_, err := LoadProduct(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseProduct_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed yaml": "brand: [",
		"no variants":    "brand: Vue\nname: Socks\n",
		"negative quantity": `
brand: Vue
name: Socks
variants:
  - {id: 1, color: green, quantity: -1, image: a.jpg}
`,
		"duplicate ids": `
brand: Vue
name: Socks
variants:
  - {id: 1, color: green, quantity: 1, image: a.jpg}
  - {id: 1, color: blue, quantity: 1, image: b.jpg}
`,
		"missing brand": `
name: Socks
variants:
  - {id: 1, color: green, quantity: 1, image: a.jpg}
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProduct([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

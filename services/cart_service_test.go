package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartStore_AddItem(t *testing.T) {
	cart := NewCartStore()
	assert.Equal(t, 0, cart.Size())
	assert.Equal(t, []int{}, cart.Items())

	cart.AddItem(2234)
	assert.Equal(t, 1, cart.Size())

	cart.AddItem(2234)
	assert.Equal(t, []int{2234, 2234}, cart.Items())
	assert.Equal(t, 2, cart.Count(2234))
}

func TestCartStore_RemoveItemById(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(2234)
	cart.AddItem(2235)

	assert.True(t, cart.RemoveItem(2234))
	assert.Equal(t, []int{2235}, cart.Items())
}

func TestCartStore_RemoveItemTakesMostRecentOccurrence(t *testing.T) {
	cart := NewCartStore()
	for _, id := range []int{2234, 2235, 2234, 2235} {
		cart.AddItem(id)
	}

	assert.True(t, cart.RemoveItem(2234))
	assert.Equal(t, []int{2234, 2235, 2235}, cart.Items())
}

func TestCartStore_RemoveMissingItem(t *testing.T) {
	cart := NewCartStore()
	assert.False(t, cart.RemoveItem(2234))

	cart.AddItem(2235)
	assert.False(t, cart.RemoveItem(2234))
	assert.Equal(t, []int{2235}, cart.Items())
}

func TestCartStore_ItemsIsACopy(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(2234)

	items := cart.Items()
	items[0] = 1

	assert.Equal(t, []int{2234}, cart.Items())
}

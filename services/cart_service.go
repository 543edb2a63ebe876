package services

import "slices"

// CartStore is an ordered multiset of variant ids. The same id may appear many times, one entry per unit.
type CartStore struct {
	items []int
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (cs *CartStore) AddItem(id int) {
	cs.items = append(cs.items, id)
}

// RemoveItem removes the most recently added occurrence of id and reports whether one was found
func (cs *CartStore) RemoveItem(id int) bool {
	for i := len(cs.items) - 1; i >= 0; i-- {
		if cs.items[i] == id {
			cs.items = slices.Delete(cs.items, i, i+1)
			return true
		}
	}
	return false
}

func (cs *CartStore) Size() int {
	return len(cs.items)
}

// Count returns the number of units of id in the cart
func (cs *CartStore) Count(id int) int {
	n := 0
	for _, item := range cs.items {
		if item == id {
			n++
		}
	}
	return n
}

func (cs *CartStore) Items() []int {
	return append(make([]int, 0, len(cs.items)), cs.items...)
}

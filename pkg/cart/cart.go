// Package cart holds the in-progress product selection for one
// session. Contents are mirrored to durable storage after every
// mutation so a restart restores the cart exactly; the in-memory state
// stays authoritative when a write fails.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/modaboutique/storefront/pkg/models"
	"github.com/modaboutique/storefront/pkg/storage"
)

// Cart is an ordered collection of cart items, at most one entry per
// product id. Insertion order is preserved for display.
type Cart struct {
	mu        sync.Mutex
	items     []models.CartItem
	store     storage.Store
	listeners []func()
}

// New restores the cart from the store, or starts empty when nothing
// usable is persisted.
func New(store storage.Store) *Cart {
	c := &Cart{store: store}
	raw, ok := store.Get(storage.KeyCart)
	if !ok {
		return c
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Warning: discarding unreadable saved cart: %v", err)
		return c
	}
	c.items = items
	return c
}

// OnChange registers a callback invoked after every mutation.
func (c *Cart) OnChange(fn func()) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Add puts one unit of the product in the cart. If the product is
// already present its quantity is incremented instead of adding a
// second entry.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
	}
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// Remove deletes the entry for the product id. Absent ids are a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// SetQuantity replaces the entry's quantity. Quantities below 1 are
// ignored; removal must go through Remove.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price times quantity over all entries,
// recomputed from the contents on every call.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the sum of quantities over all entries.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// persistLocked writes the full item list under the cart key. Each
// write carries the complete state, so the last write wins and failed
// writes only cost durability, never correctness.
func (c *Cart) persistLocked() {
	items := c.items
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		log.Printf("Warning: failed to encode cart: %v", err)
		return
	}
	if err := c.store.Set(storage.KeyCart, raw); err != nil {
		log.Printf("Warning: failed to persist cart: %v", err)
	}
}

func (c *Cart) notify() {
	c.mu.Lock()
	listeners := c.listeners
	c.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

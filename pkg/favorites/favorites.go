// Package favorites is the visitor's inquiry cart: product snapshots
// captured at the moment of favoriting, persisted locally, never
// synchronized against the live catalog. A stale snapshot is expected.
package favorites

import (
	"encoding/json"
	"log"
	"sync"

	"backend/pkg/client"
	"backend/pkg/storage"
)

const storageKey = "favoriteProducts"

// Context is the single source of truth for favorited products,
// shared across every consuming view. Mutations are reflected in
// memory and persisted to the storage slot immediately.
type Context struct {
	mu       sync.Mutex
	storage  storage.Storage
	products []client.Product
}

// NewContext loads any stored collection. A parse failure is swallowed
// and treated as "no favorites" rather than propagated.
func NewContext(slot storage.Storage) *Context {
	ctx := &Context{
		storage:  slot,
		products: []client.Product{},
	}

	if data, ok := slot.Get(storageKey); ok {
		var stored []client.Product
		if err := json.Unmarshal(data, &stored); err != nil {
			log.Printf("favorites: ignoring unparseable stored collection: %v", err)
		} else if stored != nil {
			ctx.products = stored
		}
	}

	return ctx
}

func (c *Context) persist() {
	data, err := json.Marshal(c.products)
	if err != nil {
		log.Printf("favorites: persist marshal failed: %v", err)
		return
	}
	if err := c.storage.Set(storageKey, data); err != nil {
		log.Printf("favorites: persist failed: %v", err)
	}
}

// AddToFavorites inserts the product snapshot unless an entry with the
// same identifier already exists. Idempotent.
func (c *Context) AddToFavorites(product client.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.products {
		if existing.ID == product.ID {
			return
		}
	}
	c.products = append(c.products, product)
	c.persist()
}

// RemoveFromFavorites drops any entry matching the id. Removing an
// absent id is a no-op.
func (c *Context) RemoveFromFavorites(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.products[:0]
	removed := false
	for _, product := range c.products {
		if product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, product)
	}
	if !removed {
		return
	}
	c.products = kept
	c.persist()
}

func (c *Context) IsFavorite(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, product := range c.products {
		if product.ID == productID {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the current collection.
func (c *Context) Favorites() []client.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]client.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Context) ClearFavorites() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = []client.Product{}
	c.persist()
}

// Package catalog holds the fixed scavenger-hunt item list. The catalog is
// seeded once at startup and is read-only afterwards; item order is stable.
package catalog

import (
	"fmt"

	"github.com/dkoroteev/streethunt/internal/models"
)

type Catalog struct {
	items []models.HuntItem
	byID  map[string]int
}

// New builds a catalog from the given items, validating id uniqueness.
func New(items []models.HuntItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %q has empty id", item.Name)
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %s", item.ID)
		}
		byID[item.ID] = i
	}

	cp := make([]models.HuntItem, len(items))
	copy(cp, items)

	return &Catalog{items: cp, byID: byID}, nil
}

// Default returns the catalog built from the seed list. Panics on a broken
// seed, which is a programming error caught by tests.
func Default() *Catalog {
	c, err := New(seedItems)
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns the catalog entries in seed order. Callers must not mutate
// the returned slice.
func (c *Catalog) Items() []models.HuntItem {
	return c.items
}

// ByID returns the item with the given id, if present.
func (c *Catalog) ByID(id string) (models.HuntItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.HuntItem{}, false
	}
	return c.items[i], true
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.items)
}

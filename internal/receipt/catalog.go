package receipt

import (
	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
)

// Catalog looks up the current name of a catalog product.
type Catalog interface {
	ProductName(id uuid.UUID) (string, bool)
}

// MapCatalog is a Catalog backed by an in-memory map.
type MapCatalog map[uuid.UUID]string

// NewMapCatalog indexes products by ID.
func NewMapCatalog(products []entity.Product) MapCatalog {
	c := make(MapCatalog, len(products))
	for _, p := range products {
		c[p.ID] = p.Name
	}
	return c
}

// ProductName implements Catalog.
func (c MapCatalog) ProductName(id uuid.UUID) (string, bool) {
	name, ok := c[id]
	return name, ok
}

package repositories

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// ItemFilter narrows FindItems results. Zero values mean "no filter".
type ItemFilter struct {
	CategoryID string // only items in this category
	LowStock   bool   // only items at or below their threshold
	Search     string // case-insensitive match on code or name
}

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its ID.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// FindItems retrieves items matching the filter, in creation order.
	FindItems(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
}

// ItemWriter defines write operations for item data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem updates an existing item's details.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item. Deleting an absent ID is a no-op;
	// transactions referencing the item are left in place.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}

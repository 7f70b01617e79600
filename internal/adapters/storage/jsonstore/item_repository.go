package jsonstore

import (
	"context"
	"strings"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

type itemRepository struct {
	store *Store
}

func newItemRepository(store *Store) *itemRepository {
	return &itemRepository{store: store}
}

var _ portsrepo.ItemRepositoryFacade = (*itemRepository)(nil)

func (r *itemRepository) FindItemByID(_ context.Context, itemID string) (*domain.Item, error) {
	var found *domain.Item
	r.store.view(func(snap *Snapshot) {
		for i := range snap.Items {
			if snap.Items[i].ItemID == itemID {
				item := snap.Items[i]
				found = &item
				return
			}
		}
	})
	return found, nil
}

func (r *itemRepository) FindItems(_ context.Context, filter portsrepo.ItemFilter) ([]domain.Item, error) {
	search := strings.ToLower(filter.Search)
	var items []domain.Item
	r.store.view(func(snap *Snapshot) {
		items = make([]domain.Item, 0, len(snap.Items))
		for _, item := range snap.Items {
			if filter.CategoryID != "" && item.CategoryID != filter.CategoryID {
				continue
			}
			if filter.LowStock && !item.IsLowStock() {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(item.Code), search) &&
				!strings.Contains(strings.ToLower(item.Name), search) {
				continue
			}
			items = append(items, item)
		}
	})
	return items, nil
}

func (r *itemRepository) SaveItem(_ context.Context, item domain.Item) error {
	return r.store.mutate(func(snap *Snapshot) error {
		snap.Items = append(snap.Items, item)
		return nil
	})
}

func (r *itemRepository) UpdateItem(_ context.Context, item domain.Item) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Items {
			if snap.Items[i].ItemID == item.ItemID {
				snap.Items[i] = item
				return nil
			}
		}
		return nil
	})
}

func (r *itemRepository) DeleteItem(_ context.Context, itemID string) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Items {
			if snap.Items[i].ItemID == itemID {
				snap.Items = append(snap.Items[:i], snap.Items[i+1:]...)
				return nil
			}
		}
		// Absent ID: no-op. Transactions referencing the item are kept.
		return nil
	})
}

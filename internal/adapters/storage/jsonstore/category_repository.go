package jsonstore

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

type categoryRepository struct {
	store *Store
}

func newCategoryRepository(store *Store) *categoryRepository {
	return &categoryRepository{store: store}
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func (r *categoryRepository) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	var found *domain.Category
	r.store.view(func(snap *Snapshot) {
		for i := range snap.Categories {
			if snap.Categories[i].CategoryID == categoryID {
				c := snap.Categories[i]
				found = &c
				return
			}
		}
	})
	return found, nil
}

func (r *categoryRepository) FindCategories(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	r.store.view(func(snap *Snapshot) {
		categories = make([]domain.Category, len(snap.Categories))
		copy(categories, snap.Categories)
	})
	return categories, nil
}

func (r *categoryRepository) SaveCategory(_ context.Context, category domain.Category) error {
	return r.store.mutate(func(snap *Snapshot) error {
		snap.Categories = append(snap.Categories, category)
		return nil
	})
}

func (r *categoryRepository) UpdateCategory(_ context.Context, category domain.Category) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Categories {
			if snap.Categories[i].CategoryID == category.CategoryID {
				snap.Categories[i] = category
				return nil
			}
		}
		// Updating a vanished category is a silent no-op.
		return nil
	})
}

func (r *categoryRepository) DeleteCategory(_ context.Context, categoryID string) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Categories {
			if snap.Categories[i].CategoryID == categoryID {
				snap.Categories = append(snap.Categories[:i], snap.Categories[i+1:]...)
				return nil
			}
		}
		// Absent ID: no-op, items referencing it are never touched.
		return nil
	})
}

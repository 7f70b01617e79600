package jsonstore

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

type purchaseOrderRepository struct {
	store *Store
}

func newPurchaseOrderRepository(store *Store) *purchaseOrderRepository {
	return &purchaseOrderRepository{store: store}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*purchaseOrderRepository)(nil)

func (r *purchaseOrderRepository) FindPurchaseOrderByID(_ context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	var found *domain.PurchaseOrder
	r.store.view(func(snap *Snapshot) {
		for i := range snap.PurchaseOrders {
			if snap.PurchaseOrders[i].PurchaseOrderID == purchaseOrderID {
				po := snap.PurchaseOrders[i]
				po.Lines = append([]domain.PurchaseOrderLine(nil), po.Lines...)
				found = &po
				return
			}
		}
	})
	return found, nil
}

func (r *purchaseOrderRepository) FindPurchaseOrders(_ context.Context) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	r.store.view(func(snap *Snapshot) {
		orders = make([]domain.PurchaseOrder, len(snap.PurchaseOrders))
		for i, po := range snap.PurchaseOrders {
			po.Lines = append([]domain.PurchaseOrderLine(nil), po.Lines...)
			orders[i] = po
		}
	})
	return orders, nil
}

func (r *purchaseOrderRepository) SavePurchaseOrder(_ context.Context, order domain.PurchaseOrder) error {
	return r.store.mutate(func(snap *Snapshot) error {
		snap.PurchaseOrders = append(snap.PurchaseOrders, order)
		return nil
	})
}

func (r *purchaseOrderRepository) UpdatePurchaseOrder(_ context.Context, order domain.PurchaseOrder) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.PurchaseOrders {
			if snap.PurchaseOrders[i].PurchaseOrderID == order.PurchaseOrderID {
				snap.PurchaseOrders[i] = order
				return nil
			}
		}
		return nil
	})
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/google/uuid"
)

type purchaseOrderService struct {
	orderRepo portsrepo.PurchaseOrderRepositoryFacade
	itemRepo  portsrepo.ItemReader
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(orderRepo portsrepo.PurchaseOrderRepositoryFacade, itemRepo portsrepo.ItemReader) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

// CreatePurchaseOrder drafts an order. Every line must reference an existing
// item with a positive quantity, and an item can appear on one line only.
// Drafting an order never moves stock.
func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, creatorUserID string) (*domain.PurchaseOrder, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: purchase order needs at least one line", apperrors.ErrValidation)
	}

	seen := make(map[string]struct{}, len(req.Lines))
	lines := make([]domain.PurchaseOrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %s", apperrors.ErrValidation, l.ItemID)
		}
		if _, dup := seen[l.ItemID]; dup {
			return nil, fmt.Errorf("%w: item %s listed twice", apperrors.ErrDuplicate, l.ItemID)
		}
		seen[l.ItemID] = struct{}{}

		item, err := s.itemRepo.FindItemByID(ctx, l.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to find item %s: %w", l.ItemID, err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: item %s", apperrors.ErrNotFound, l.ItemID)
		}
		lines = append(lines, domain.PurchaseOrderLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}

	now := time.Now().UTC()
	order := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		Lines:           lines,
		Date:            req.Date,
		Status:          domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SavePurchaseOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save purchase order: %w", err)
	}
	return &order, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseOrderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
	}
	return order, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders, err := s.orderRepo.FindPurchaseOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// MarkPurchaseOrderSent transitions a DRAFT order to SENT. Sending twice is
// rejected rather than silently accepted.
func (s *purchaseOrderService) MarkPurchaseOrderSent(ctx context.Context, purchaseOrderID string, updaterUserID string) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseOrderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
	}
	if order.Status == domain.Sent {
		return nil, fmt.Errorf("%w: purchase order %s already sent", apperrors.ErrValidation, purchaseOrderID)
	}

	order.Status = domain.Sent
	order.LastUpdatedAt = time.Now().UTC()
	order.LastUpdatedBy = updaterUserID

	if err := s.orderRepo.UpdatePurchaseOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update purchase order %s: %w", purchaseOrderID, err)
	}
	return order, nil
}

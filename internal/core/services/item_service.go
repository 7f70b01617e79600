package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/google/uuid"
)

type itemService struct {
	itemRepo     portsrepo.ItemRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem registers a new item with zero stock. The category must exist
// at creation time; it may be deleted later without cascading here.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: item code and name are required", apperrors.ErrValidation)
	}
	if req.MinStock < 0 {
		return nil, fmt.Errorf("%w: minStock must be >= 0", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", req.CategoryID, err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, req.CategoryID)
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:       uuid.NewString(),
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		CategoryID:   req.CategoryID,
		Unit:         req.Unit,
		MinStock:     req.MinStock,
		CurrentStock: 0,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", apperrors.ErrNotFound, itemID)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error) {
	filter := portsrepo.ItemFilter{
		CategoryID: params.CategoryID,
		LowStock:   params.LowStock,
		Search:     params.Search,
	}
	items, err := s.itemRepo.FindItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// UpdateItem replaces the item's descriptive fields. CurrentStock is copied
// through untouched; the ledger is the only writer of stock levels.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", apperrors.ErrNotFound, itemID)
	}

	if req.Code != nil {
		item.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MinStock != nil {
		if *req.MinStock < 0 {
			return nil, fmt.Errorf("%w: minStock must be >= 0", apperrors.ErrValidation)
		}
		item.MinStock = *req.MinStock
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = updaterUserID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", itemID, err)
	}
	return item, nil
}

// DeleteItem removes the item. Removing an unknown ID is a silent no-op.
// Transactions that reference the item stay in the audit trail.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	return nil
}

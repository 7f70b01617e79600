package services_test

import (
	"context"
	"testing"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/core/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockItemRepository is a mock type for the ItemRepositoryFacade interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindItems(ctx context.Context, filter portsrepo.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo     *MockItemRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewItemService(suite.mockItemRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *ItemServiceTestSuite) TestCreateItem_StartsAtZeroStock() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	creatorUserID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, Name: "Medicines"}, nil).Once()
	suite.mockItemRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	req := dto.CreateItemRequest{
		Code:       "MED-01",
		Name:       "Paracetamol 500mg",
		CategoryID: categoryID,
		Unit:       "box",
		MinStock:   10,
	}

	item, err := suite.service.CreateItem(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.Equal(int64(0), item.CurrentStock)
	suite.Equal(int64(10), item.MinStock)
	suite.True(item.IsLowStock())
	suite.Equal(creatorUserID, item.CreatedBy)

	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_UnknownCategoryRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, nil).Once()

	req := dto.CreateItemRequest{
		Code:       "MED-01",
		Name:       "Paracetamol 500mg",
		CategoryID: categoryID,
		Unit:       "box",
	}

	item, err := suite.service.CreateItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(item)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NeverTouchesStock() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.Item{
		ItemID:       itemID,
		Code:         "MED-01",
		Name:         "Paracetamol 500mg",
		CategoryID:   uuid.NewString(),
		Unit:         "box",
		MinStock:     10,
		CurrentStock: 42,
	}

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()

	var savedItem domain.Item
	suite.mockItemRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.Item")).
		Run(func(args mock.Arguments) {
			savedItem = args.Get(1).(domain.Item)
		}).Return(nil).Once()

	newName := "Paracetamol 1g"
	newMin := int64(5)
	updated, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateItemRequest{Name: &newName, MinStock: &newMin}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Paracetamol 1g", updated.Name)
	suite.Equal(int64(5), updated.MinStock)
	suite.Equal(int64(42), updated.CurrentStock)
	suite.Equal(int64(42), savedItem.CurrentStock)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NegativeMinStockRejected() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).
		Return(&domain.Item{ItemID: itemID, Code: "MED-01", Name: "Paracetamol"}, nil).Once()

	badMin := int64(-1)
	updated, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateItemRequest{MinStock: &badMin}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestListItems_PassesFilter() {
	ctx := context.Background()
	expected := []domain.Item{{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol"}}

	suite.mockItemRepo.On("FindItems", ctx, portsrepo.ItemFilter{LowStock: true, Search: "para"}).
		Return(expected, nil).Once()

	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{LowStock: true, Search: "para"})

	suite.Require().NoError(err)
	suite.Equal(expected, items)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_UnknownIDIsNoOp() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("DeleteItem", ctx, itemID).Return(nil).Once()

	err := suite.service.DeleteItem(ctx, itemID)

	suite.Require().NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}

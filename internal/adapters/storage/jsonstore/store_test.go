package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	path  string
	store *Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.path = filepath.Join(suite.T().TempDir(), "snapshot.json")
	store, err := Open(suite.path, SeedConfig{
		AdminUsername:     "user",
		AdminPasswordHash: "$2a$10$notarealhashbutlongenoughtoberealistic",
	})
	suite.Require().NoError(err)
	suite.store = store
}

// --- Test Cases ---

func (suite *StoreTestSuite) TestOpen_SeedsDefaultSnapshot() {
	// The seed snapshot carries one admin user and the starter categories,
	// and is written to disk immediately.
	users, err := newUserRepository(suite.store).FindUsers(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal("user", users[0].Username)
	suite.Equal(domain.RoleAdmin, users[0].Role)

	categories, err := newCategoryRepository(suite.store).FindCategories(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(categories, 4)
	suite.Equal("Medicines", categories[0].Name)

	_, err = os.Stat(suite.path)
	suite.Require().NoError(err)
}

func (suite *StoreTestSuite) TestOpen_RoundTripsExistingSnapshot() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)

	item := domain.Item{
		ItemID:       uuid.NewString(),
		Code:         "MED-01",
		Name:         "Paracetamol 500mg",
		Unit:         "box",
		MinStock:     10,
		CurrentStock: 3,
	}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	// Reopen from the same file; state must survive.
	reopened, err := Open(suite.path, SeedConfig{})
	suite.Require().NoError(err)

	found, err := newItemRepository(reopened).FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("MED-01", found.Code)
	suite.Equal(int64(3), found.CurrentStock)

	users, err := newUserRepository(reopened).FindUsers(ctx)
	suite.Require().NoError(err)
	suite.Len(users, 1)
}

func (suite *StoreTestSuite) TestCommit_WritesMetaEnvelope() {
	raw, err := os.ReadFile(suite.path)
	suite.Require().NoError(err)

	var payload struct {
		Meta Meta `json:"_meta"`
	}
	suite.Require().NoError(json.Unmarshal(raw, &payload))
	suite.Equal("json_snapshot", payload.Meta.Storage)
	suite.Equal(snapshotVersion, payload.Meta.Version)
	suite.WithinDuration(time.Now(), payload.Meta.Timestamp, 5*time.Second)
}

func (suite *StoreTestSuite) TestCommit_LeavesNoTmpFile() {
	ctx := context.Background()
	err := newItemRepository(suite.store).SaveItem(ctx, domain.Item{ItemID: uuid.NewString(), Code: "X", Name: "X"})
	suite.Require().NoError(err)

	_, err = os.Stat(suite.path + ".tmp")
	suite.Require().True(os.IsNotExist(err))
}

func (suite *StoreTestSuite) TestSaveTransaction_CommitsAtomically() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)
	notifRepo := newNotificationRepository(suite.store)

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", Unit: "box", MinStock: 10, CurrentStock: 50}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	actingUserID := uuid.NewString()
	txn := domain.StockTransaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Issuance,
		ItemID:        item.ItemID,
		Quantity:      45,
		Timestamp:     time.Now().UTC(),
		UserID:        actingUserID,
	}

	updated, notification, err := txnRepo.SaveTransaction(ctx, txn)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(int64(5), updated.CurrentStock)
	suite.Equal(actingUserID, updated.LastUpdatedBy)

	// 5 <= minStock 10, so a warning must ride along with the commit.
	suite.Require().NotNil(notification)
	suite.Equal(domain.SeverityWarning, notification.Severity)
	suite.Contains(notification.Message, "Paracetamol")
	suite.Contains(notification.Message, "(5)")

	found, err := itemRepo.FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(5), found.CurrentStock)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(txn.TransactionID, txns[0].TransactionID)

	notifs, err := notifRepo.FindNotifications(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(notifs, 1)
	suite.Equal(notification.NotificationID, notifs[0].NotificationID)
}

func (suite *StoreTestSuite) TestSaveTransaction_WarningLevels() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", MinStock: 10, CurrentStock: 5}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	movement := func(txnType domain.TransactionType, qty int64) (*domain.Item, *domain.Notification) {
		updated, notification, err := txnRepo.SaveTransaction(ctx, domain.StockTransaction{
			TransactionID: uuid.NewString(),
			Type:          txnType,
			ItemID:        item.ItemID,
			Quantity:      qty,
			Timestamp:     time.Now().UTC(),
		})
		suite.Require().NoError(err)
		return updated, notification
	}

	// Restock well above the threshold: no warning.
	updated, notification := movement(domain.Receipt, 100)
	suite.Equal(int64(105), updated.CurrentStock)
	suite.Nil(notification)

	// Landing exactly on the threshold is still low stock.
	updated, notification = movement(domain.Issuance, 95)
	suite.Equal(int64(10), updated.CurrentStock)
	suite.Require().NotNil(notification)
	suite.Contains(notification.Message, "(10)")

	// Level-triggered: another movement under threshold warns again.
	updated, notification = movement(domain.Issuance, 1)
	suite.Equal(int64(9), updated.CurrentStock)
	suite.Require().NotNil(notification)
	suite.Contains(notification.Message, "(9)")
}

func (suite *StoreTestSuite) TestSaveTransaction_InsufficientStockAppliesNothing() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)
	notifRepo := newNotificationRepository(suite.store)

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", Unit: "box", MinStock: 0, CurrentStock: 3}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	updated, notification, err := txnRepo.SaveTransaction(ctx, domain.StockTransaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Issuance,
		ItemID:        item.ItemID,
		Quantity:      4,
		Timestamp:     time.Now().UTC(),
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(updated)
	suite.Nil(notification)

	found, err := itemRepo.FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), found.CurrentStock)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Empty(txns)

	notifs, err := notifRepo.FindNotifications(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Empty(notifs)
}

func (suite *StoreTestSuite) TestSaveTransaction_UnknownItemAppliesNothing() {
	ctx := context.Background()
	txnRepo := newTransactionRepository(suite.store)

	txn := domain.StockTransaction{TransactionID: uuid.NewString(), Type: domain.Receipt, ItemID: uuid.NewString(), Quantity: 1}

	_, _, err := txnRepo.SaveTransaction(ctx, txn)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Empty(txns)
}

func (suite *StoreTestSuite) TestSaveTransaction_ConcurrentReceiptsLoseNothing() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", MinStock: 0, CurrentStock: 0}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	const workers = 100
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := txnRepo.SaveTransaction(ctx, domain.StockTransaction{
				TransactionID: uuid.NewString(),
				Type:          domain.Receipt,
				ItemID:        item.ItemID,
				Quantity:      1,
				Timestamp:     time.Now().UTC(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.Require().NoError(err)
	}

	// Every delta must survive: no receipt may be applied against a stale
	// stock level.
	found, err := itemRepo.FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(workers), found.CurrentStock)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{ItemID: item.ItemID})
	suite.Require().NoError(err)
	suite.Len(txns, workers)
}

func (suite *StoreTestSuite) TestSaveTransaction_ConcurrentIssuancesNeverOverdraw() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)

	const available = 50
	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", MinStock: 0, CurrentStock: available}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	const workers = 100
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := txnRepo.SaveTransaction(ctx, domain.StockTransaction{
				TransactionID: uuid.NewString(),
				Type:          domain.Issuance,
				ItemID:        item.ItemID,
				Quantity:      1,
				Timestamp:     time.Now().UTC(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var rejected int
	for err := range errs {
		if err != nil {
			suite.Require().ErrorIs(err, apperrors.ErrInsufficientStock)
			rejected++
		}
	}
	suite.Equal(workers-available, rejected)

	found, err := itemRepo.FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), found.CurrentStock)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{ItemID: item.ItemID})
	suite.Require().NoError(err)
	suite.Len(txns, available)
}

func (suite *StoreTestSuite) TestTransactions_NewestFirstOrdering() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", CurrentStock: 0}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	first := domain.StockTransaction{TransactionID: uuid.NewString(), Type: domain.Receipt, ItemID: item.ItemID, Quantity: 10}
	second := domain.StockTransaction{TransactionID: uuid.NewString(), Type: domain.Receipt, ItemID: item.ItemID, Quantity: 20}

	_, _, err := txnRepo.SaveTransaction(ctx, first)
	suite.Require().NoError(err)
	updated, _, err := txnRepo.SaveTransaction(ctx, second)
	suite.Require().NoError(err)
	suite.Equal(int64(30), updated.CurrentStock)

	txns, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(second.TransactionID, txns[0].TransactionID)
	suite.Equal(first.TransactionID, txns[1].TransactionID)
}

func (suite *StoreTestSuite) TestFindTransactions_FilterAndPagination() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	txnRepo := newTransactionRepository(suite.store)

	itemA := domain.Item{ItemID: uuid.NewString(), Code: "A", Name: "A"}
	itemB := domain.Item{ItemID: uuid.NewString(), Code: "B", Name: "B", CurrentStock: 10}
	suite.Require().NoError(itemRepo.SaveItem(ctx, itemA))
	suite.Require().NoError(itemRepo.SaveItem(ctx, itemB))

	for i := 0; i < 3; i++ {
		txn := domain.StockTransaction{TransactionID: uuid.NewString(), Type: domain.Receipt, ItemID: itemA.ItemID, Quantity: 1}
		_, _, err := txnRepo.SaveTransaction(ctx, txn)
		suite.Require().NoError(err)
	}
	issuance := domain.StockTransaction{TransactionID: uuid.NewString(), Type: domain.Issuance, ItemID: itemB.ItemID, Quantity: 1}
	_, _, err := txnRepo.SaveTransaction(ctx, issuance)
	suite.Require().NoError(err)

	byItem, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{ItemID: itemA.ItemID})
	suite.Require().NoError(err)
	suite.Len(byItem, 3)

	byType, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{Type: domain.Issuance})
	suite.Require().NoError(err)
	suite.Len(byType, 1)

	paged, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{Limit: 2, Offset: 1})
	suite.Require().NoError(err)
	suite.Len(paged, 2)

	pastEnd, err := txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{Offset: 100})
	suite.Require().NoError(err)
	suite.Empty(pastEnd)
}

func (suite *StoreTestSuite) TestFindItems_Filters() {
	ctx := context.Background()
	itemRepo := newItemRepository(suite.store)
	catID := uuid.NewString()

	suite.Require().NoError(itemRepo.SaveItem(ctx, domain.Item{
		ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol 500mg", CategoryID: catID, MinStock: 10, CurrentStock: 5,
	}))
	suite.Require().NoError(itemRepo.SaveItem(ctx, domain.Item{
		ItemID: uuid.NewString(), Code: "SUP-01", Name: "Gauze", CategoryID: uuid.NewString(), MinStock: 5, CurrentStock: 50,
	}))

	byCategory, err := itemRepo.FindItems(ctx, portsrepo.ItemFilter{CategoryID: catID})
	suite.Require().NoError(err)
	suite.Len(byCategory, 1)

	lowStock, err := itemRepo.FindItems(ctx, portsrepo.ItemFilter{LowStock: true})
	suite.Require().NoError(err)
	suite.Require().Len(lowStock, 1)
	suite.Equal("MED-01", lowStock[0].Code)

	bySearch, err := itemRepo.FindItems(ctx, portsrepo.ItemFilter{Search: "paracet"})
	suite.Require().NoError(err)
	suite.Len(bySearch, 1)

	byCode, err := itemRepo.FindItems(ctx, portsrepo.ItemFilter{Search: "sup-"})
	suite.Require().NoError(err)
	suite.Len(byCode, 1)
}

func (suite *StoreTestSuite) TestDeleteCategory_LeavesItemsInPlace() {
	ctx := context.Background()
	catRepo := newCategoryRepository(suite.store)
	itemRepo := newItemRepository(suite.store)

	categories, err := catRepo.FindCategories(ctx)
	suite.Require().NoError(err)
	target := categories[0]

	item := domain.Item{ItemID: uuid.NewString(), Code: "MED-01", Name: "Paracetamol", CategoryID: target.CategoryID}
	suite.Require().NoError(itemRepo.SaveItem(ctx, item))

	suite.Require().NoError(catRepo.DeleteCategory(ctx, target.CategoryID))

	// The item survives with its dangling category reference.
	found, err := itemRepo.FindItemByID(ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(target.CategoryID, found.CategoryID)

	remaining, err := catRepo.FindCategories(ctx)
	suite.Require().NoError(err)
	suite.Len(remaining, 3)
}

func (suite *StoreTestSuite) TestNotifications_PrependAndMarkRead() {
	ctx := context.Background()
	notifRepo := newNotificationRepository(suite.store)

	first := domain.Notification{NotificationID: uuid.NewString(), Title: "first"}
	second := domain.Notification{NotificationID: uuid.NewString(), Title: "second"}
	suite.Require().NoError(notifRepo.SaveNotification(ctx, first))
	suite.Require().NoError(notifRepo.SaveNotification(ctx, second))

	notifs, err := notifRepo.FindNotifications(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(notifs, 2)
	suite.Equal("second", notifs[0].Title)

	suite.Require().NoError(notifRepo.MarkNotificationRead(ctx, first.NotificationID))

	notifs, err = notifRepo.FindNotifications(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.False(notifs[0].Read)
	suite.True(notifs[1].Read)
}

func (suite *StoreTestSuite) TestUserRepository_PersistsPasswordHash() {
	ctx := context.Background()
	userRepo := newUserRepository(suite.store)

	// The domain type hides the hash from API responses; the store must keep it.
	user, err := userRepo.FindUserByUsername(ctx, "user")
	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.PasswordHash)

	reopened, err := Open(suite.path, SeedConfig{})
	suite.Require().NoError(err)
	again, err := newUserRepository(reopened).FindUserByUsername(ctx, "user")
	suite.Require().NoError(err)
	suite.Require().NotNil(again)
	suite.Equal(user.PasswordHash, again.PasswordHash)
}

func (suite *StoreTestSuite) TestUpdateLastLogin_Persists() {
	ctx := context.Background()
	userRepo := newUserRepository(suite.store)

	user, err := userRepo.FindUserByUsername(ctx, "user")
	suite.Require().NoError(err)

	at := time.Now().UTC().Truncate(time.Second)
	suite.Require().NoError(userRepo.UpdateLastLogin(ctx, user.UserID, at))

	updated, err := userRepo.FindUserByID(ctx, user.UserID)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.LastLoginAt)
	suite.True(updated.LastLoginAt.Equal(at))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestOpen_MissingDirectoryFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "snapshot.json"), SeedConfig{})
	require.Error(t, err)
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func setupTestStore(t *testing.T) *Store {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func seedProduct(t *testing.T, store *Store, sku string, qty, reorder int) *model.Product {
	t.Helper()
	p := &model.Product{
		SKU:          sku,
		Name:         "Product " + sku,
		UnitPrice:    decimal.RequireFromString("5.00"),
		StockQty:     qty,
		ReorderLevel: reorder,
	}
	require.NoError(t, store.SaveProduct(context.Background(), p))
	return p
}

func TestNewStore(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	assert.NotNil(t, store.db)
}

func TestCategoryCRUD(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	desc := "Fresh produce"
	c := &model.Category{Name: "Produce", Description: &desc}
	require.NoError(t, store.SaveCategory(ctx, c))
	require.Greater(t, c.ID, int64(0))

	got, err := store.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Produce", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Fresh produce", *got.Description)

	c.Name = "Fresh Produce"
	require.NoError(t, store.SaveCategory(ctx, c))

	list, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Fresh Produce", list[0].Name)

	require.NoError(t, store.DeleteCategory(ctx, c.ID))
	_, err = store.GetCategory(ctx, c.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	c := &model.Category{Name: "Hardware"}
	require.NoError(t, store.SaveCategory(ctx, c))

	p := seedProduct(t, store, "HW-001", 10, 2)
	p.CategoryID = &c.ID
	require.NoError(t, store.SaveProduct(ctx, p))

	err := store.DeleteCategory(ctx, c.ID)
	assert.ErrorIs(t, err, model.ErrConflict)

	// Once the product is gone the category can be removed.
	require.NoError(t, store.DeleteProduct(ctx, p.ID))
	assert.NoError(t, store.DeleteCategory(ctx, c.ID))
}

func TestSupplierAndCustomerCRUD(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	sup := &model.Supplier{Name: "Acme", Contact: "555-0100", Address: "1 Main St"}
	require.NoError(t, store.SaveSupplier(ctx, sup))
	gotSup, err := store.GetSupplier(ctx, sup.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", gotSup.Name)

	email := "jane@example.com"
	cust := &model.Customer{Name: "Jane", Contact: "555-0200", Email: &email}
	require.NoError(t, store.SaveCustomer(ctx, cust))
	gotCust, err := store.GetCustomer(ctx, cust.ID)
	require.NoError(t, err)
	require.NotNil(t, gotCust.Email)
	assert.Equal(t, "jane@example.com", *gotCust.Email)

	require.NoError(t, store.DeleteSupplier(ctx, sup.ID))
	require.NoError(t, store.DeleteCustomer(ctx, cust.ID))
}

func TestProductCRUD(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	cat := &model.Category{Name: "Beverages"}
	require.NoError(t, store.SaveCategory(ctx, cat))
	sup := &model.Supplier{Name: "BevCo"}
	require.NoError(t, store.SaveSupplier(ctx, sup))

	p := &model.Product{
		SKU:          "BEV-001",
		Name:         "Sparkling Water",
		CategoryID:   &cat.ID,
		SupplierID:   &sup.ID,
		UnitPrice:    decimal.RequireFromString("1.25"),
		StockQty:     100,
		ReorderLevel: 20,
	}
	require.NoError(t, store.SaveProduct(ctx, p))
	require.Greater(t, p.ID, int64(0))

	got, err := store.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "BEV-001", got.SKU)
	assert.True(t, got.UnitPrice.Equal(decimal.RequireFromString("1.25")))
	assert.Equal(t, "Beverages", got.CategoryName)
	assert.Equal(t, "BevCo", got.SupplierName)

	bySKU, err := store.GetProductBySKU(ctx, "BEV-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySKU.ID)

	_, err = store.GetProductBySKU(ctx, "NOPE")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestListLowStockProducts(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	seedProduct(t, store, "OK-001", 50, 10)
	low := seedProduct(t, store, "LOW-001", 5, 10)
	atLevel := seedProduct(t, store, "EDGE-001", 10, 10)

	lowStock, err := store.ListLowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, lowStock, 2)

	ids := []int64{lowStock[0].ID, lowStock[1].ID}
	assert.Contains(t, ids, low.ID)
	assert.Contains(t, ids, atLevel.ID)
}

func TestAdjustProductStock(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	p := seedProduct(t, store, "ADJ-001", 10, 2)

	require.NoError(t, store.AdjustProductStock(ctx, p.ID, -4))
	require.NoError(t, store.AdjustProductStock(ctx, p.ID, 1))

	got, err := store.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQty)

	err = store.AdjustProductStock(ctx, 9999, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOrderHeaderAndItems(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	cust := &model.Customer{Name: "Bob"}
	require.NoError(t, store.SaveCustomer(ctx, cust))
	p := seedProduct(t, store, "ORD-001", 10, 2)

	o := &model.Order{
		CustomerID:  cust.ID,
		OrderDate:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("10.00"),
		Status:      model.OrderStatusNew,
	}
	require.NoError(t, store.SaveOrderHeader(ctx, o))
	require.Greater(t, o.ID, int64(0))

	item := &model.OrderItem{
		OrderID:   o.ID,
		ProductID: p.ID,
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("5.00"),
	}
	require.NoError(t, store.InsertOrderItem(ctx, item))

	got, err := store.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.CustomerName)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), got.OrderDate)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Product ORD-001", got.Items[0].ProductName)

	require.NoError(t, store.DeleteOrderItems(ctx, o.ID))
	items, err := store.ListOrderItems(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, store.DeleteOrderHeader(ctx, o.ID))
	_, err = store.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteOrderItemsWrapsDriverError(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.Close())

	err := store.DeleteOrderItems(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete items of order 1")
}

func TestAdjustmentRows(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	p := seedProduct(t, store, "ADJR-01", 10, 2)

	a := &model.InventoryAdjustment{
		ProductID:      p.ID,
		AdjustmentDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		ChangeQty:      -3,
		Reason:         "breakage",
	}
	require.NoError(t, store.SaveAdjustmentRow(ctx, a))
	require.Greater(t, a.ID, int64(0))

	got, err := store.GetAdjustment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, got.ChangeQty)
	assert.Equal(t, "breakage", got.Reason)
	assert.Equal(t, "Product ADJR-01", got.ProductName)

	list, err := store.ListAdjustments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, store.DeleteAdjustmentRow(ctx, a.ID))
	_, err = store.GetAdjustment(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReportMetadata(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	r := &model.Report{
		ReportType:  model.ReportInventory,
		GeneratedOn: time.Now().UTC().Truncate(time.Second),
		Parameters:  `{"format":"csv"}`,
		FilePath:    "reports/inventory_20240601_090000.csv",
	}
	require.NoError(t, store.SaveReport(ctx, r))
	require.Greater(t, r.ID, int64(0))

	list, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.ReportInventory, list[0].ReportType)
	assert.Equal(t, r.FilePath, list[0].FilePath)
}

func TestUserOperations(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	u := &model.User{
		Username:     "admin",
		PasswordHash: "$2a$10$somehash",
		Email:        "admin@example.com",
		FullName:     "Site Admin",
		Role:         model.RoleAdmin,
		Active:       true,
	}
	require.NoError(t, store.SaveUser(ctx, u))

	byName, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, model.RoleAdmin, byName.Role)
	assert.True(t, byName.Active)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, store.DeactivateUser(ctx, u.ID))
	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestTransactionCommitAndRollback(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	c := &model.Category{Name: "Committed"}
	require.NoError(t, tx.SaveCategory(ctx, c))
	require.NoError(t, tx.Commit())

	list, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveCategory(ctx, &model.Category{Name: "Discarded"}))
	require.NoError(t, tx.Rollback())

	list, err = store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQueryTable(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	seedProduct(t, store, "QT-001", 3, 1)

	cols, rows, err := store.QueryTable(ctx, `SELECT sku, stock_qty FROM products ORDER BY sku`)
	require.NoError(t, err)
	assert.Equal(t, []string{"sku", "stock_qty"}, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"QT-001", "3"}, rows[0])
}

func TestExec(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Exec(ctx, `CREATE TABLE scratch (id INTEGER PRIMARY KEY)`))
	require.NoError(t, store.Exec(ctx, `DROP TABLE scratch`))
}

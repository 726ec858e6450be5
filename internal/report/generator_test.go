package report

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/inventory"
	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

func setupGenerator(t *testing.T) (*Generator, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	dir := t.TempDir()
	g := NewGenerator(store, zap.NewNop(),
		filepath.Join(dir, "reports"), filepath.Join(dir, "tickets"))
	return g, store
}

func seedCatalog(t *testing.T, store *storage.Store) *model.Product {
	t.Helper()
	ctx := context.Background()

	c := &model.Category{Name: "Beverages"}
	require.NoError(t, store.SaveCategory(ctx, c))

	p := &model.Product{
		SKU:          "BEV-001",
		Name:         "Sparkling Water",
		CategoryID:   &c.ID,
		UnitPrice:    decimal.RequireFromString("1.25"),
		StockQty:     4,
		ReorderLevel: 10,
	}
	require.NoError(t, store.SaveProduct(ctx, p))
	return p
}

func TestGenerateInventoryCSV(t *testing.T) {
	g, store := setupGenerator(t)
	seedCatalog(t, store)
	ctx := context.Background()

	rep, err := g.Generate(ctx, model.ReportInventory, FormatCSV)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Greater(t, rep.ID, int64(0))
	assert.Contains(t, rep.FilePath, "Inventory_")
	assert.Contains(t, rep.Parameters, `"rows":1`)

	f, err := os.Open(rep.FilePath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "sku", records[0][0])
	assert.Equal(t, "BEV-001", records[1][0])

	saved, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, rep.FilePath, saved[0].FilePath)
}

func TestGenerateLowStockXLSX(t *testing.T) {
	g, store := setupGenerator(t)
	seedCatalog(t, store)

	rep, err := g.Generate(context.Background(), model.ReportLowStock, FormatXLSX)
	require.NoError(t, err)
	assert.Contains(t, rep.FilePath, "LowStock_")

	info, err := os.Stat(rep.FilePath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateRejectsUnknownInput(t *testing.T) {
	g, _ := setupGenerator(t)
	ctx := context.Background()

	_, err := g.Generate(ctx, model.ReportType("Bogus"), FormatCSV)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = g.Generate(ctx, model.ReportInventory, Format("pdf"))
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestOrderTicket(t *testing.T) {
	g, store := setupGenerator(t)
	p := seedCatalog(t, store)
	ctx := context.Background()

	cust := &model.Customer{Name: "Jane"}
	require.NoError(t, store.SaveCustomer(ctx, cust))

	svc := inventory.NewService(store, zap.NewNop())
	o := &model.Order{
		CustomerID: cust.ID,
		Items: []*model.OrderItem{
			{ProductID: p.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("1.25")},
		},
	}
	require.NoError(t, svc.SaveOrder(ctx, o))

	path, err := g.OrderTicket(ctx, o.ID)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "order_")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestOrderTicketMissingOrder(t *testing.T) {
	g, _ := setupGenerator(t)

	_, err := g.OrderTicket(context.Background(), 9999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

type fixture struct {
	store    *storage.Store
	svc      *Service
	customer *model.Customer
	water    *model.Product
	coffee   *model.Product
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	customer := &model.Customer{Name: "Jane"}
	require.NoError(t, store.SaveCustomer(ctx, customer))

	water := &model.Product{
		SKU:          "WTR-001",
		Name:         "Water",
		UnitPrice:    decimal.RequireFromString("2.50"),
		StockQty:     100,
		ReorderLevel: 10,
	}
	require.NoError(t, store.SaveProduct(ctx, water))

	coffee := &model.Product{
		SKU:          "COF-001",
		Name:         "Coffee",
		UnitPrice:    decimal.RequireFromString("10.00"),
		StockQty:     50,
		ReorderLevel: 5,
	}
	require.NoError(t, store.SaveProduct(ctx, coffee))

	return &fixture{
		store:    store,
		svc:      NewService(store, zap.NewNop()),
		customer: customer,
		water:    water,
		coffee:   coffee,
	}
}

func (f *fixture) stockOf(t *testing.T, id int64) int {
	t.Helper()
	p, err := f.store.GetProduct(context.Background(), id)
	require.NoError(t, err)
	return p.StockQty
}

func TestSaveOrderComputesTotalAndDeductsStock(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	o := &model.Order{
		CustomerID: f.customer.ID,
		Items: []*model.OrderItem{
			{ProductID: f.water.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("2.50")},
			{ProductID: f.coffee.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	require.Greater(t, o.ID, int64(0))
	assert.False(t, o.OrderDate.IsZero())
	assert.Equal(t, model.OrderStatusNew, o.Status)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("25.00")),
		"total %s", o.TotalAmount)

	assert.Equal(t, 98, f.stockOf(t, f.water.ID))
	assert.Equal(t, 48, f.stockOf(t, f.coffee.ID))

	got, err := f.store.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
}

func TestSaveOrderRejectsBadInput(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	err := f.svc.SaveOrder(ctx, &model.Order{})
	assert.ErrorIs(t, err, model.ErrValidation)

	err = f.svc.SaveOrder(ctx, &model.Order{
		CustomerID: f.customer.ID,
		Items:      []*model.OrderItem{{ProductID: f.water.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, model.ErrValidation)

	// Nothing was deducted by the failed saves.
	assert.Equal(t, 100, f.stockOf(t, f.water.ID))
}

// Saving an order back unchanged must not drift stock.
func TestResaveUnchangedOrderIsStockNeutral(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	o := &model.Order{
		CustomerID: f.customer.ID,
		Items: []*model.OrderItem{
			{ProductID: f.water.ID, Quantity: 5, UnitPrice: decimal.RequireFromString("2.50")},
		},
	}
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	require.Equal(t, 95, f.stockOf(t, f.water.ID))

	require.NoError(t, f.svc.SaveOrder(ctx, o))
	assert.Equal(t, 95, f.stockOf(t, f.water.ID))
}

func TestEditOrderAppliesQuantityDifference(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	o := &model.Order{
		CustomerID: f.customer.ID,
		Items: []*model.OrderItem{
			{ProductID: f.water.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("2.50")},
		},
	}
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	require.Equal(t, 98, f.stockOf(t, f.water.ID))

	o.Items[0].Quantity = 5
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	assert.Equal(t, 95, f.stockOf(t, f.water.ID))
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("12.50")))

	// Swapping the item for a different product restores the first.
	o.Items = []*model.OrderItem{
		{ProductID: f.coffee.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	}
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	assert.Equal(t, 100, f.stockOf(t, f.water.ID))
	assert.Equal(t, 49, f.stockOf(t, f.coffee.ID))
}

func TestDeleteOrderKeepsStockDeduction(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	o := &model.Order{
		CustomerID: f.customer.ID,
		Items: []*model.OrderItem{
			{ProductID: f.water.ID, Quantity: 10, UnitPrice: decimal.RequireFromString("2.50")},
		},
	}
	require.NoError(t, f.svc.SaveOrder(ctx, o))
	require.Equal(t, 90, f.stockOf(t, f.water.ID))

	require.NoError(t, f.svc.DeleteOrder(ctx, o.ID))

	_, err := f.store.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Stock stays where the save left it.
	assert.Equal(t, 90, f.stockOf(t, f.water.ID))
}

func TestDeleteMissingOrder(t *testing.T) {
	f := setup(t)
	err := f.svc.DeleteOrder(context.Background(), 9999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSaveAdjustmentAppliesDelta(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := &model.InventoryAdjustment{
		ProductID: f.water.ID,
		ChangeQty: -3,
		Reason:    "breakage",
	}
	require.NoError(t, f.svc.SaveAdjustment(ctx, a))
	require.Greater(t, a.ID, int64(0))
	assert.False(t, a.AdjustmentDate.IsZero())
	assert.Equal(t, 97, f.stockOf(t, f.water.ID))

	// Editing the row applies only the difference from what is stored.
	a.ChangeQty = -5
	require.NoError(t, f.svc.SaveAdjustment(ctx, a))
	assert.Equal(t, 95, f.stockOf(t, f.water.ID))

	a.ChangeQty = 2
	require.NoError(t, f.svc.SaveAdjustment(ctx, a))
	assert.Equal(t, 102, f.stockOf(t, f.water.ID))
}

func TestDeleteAdjustmentReversesEffect(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := &model.InventoryAdjustment{
		ProductID: f.water.ID,
		ChangeQty: -3,
		Reason:    "breakage",
	}
	require.NoError(t, f.svc.SaveAdjustment(ctx, a))
	require.Equal(t, 97, f.stockOf(t, f.water.ID))

	require.NoError(t, f.svc.DeleteAdjustment(ctx, a.ID))
	assert.Equal(t, 100, f.stockOf(t, f.water.ID))

	_, err := f.store.GetAdjustment(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItemsTotal(t *testing.T) {
	o := &Order{
		Items: []*OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("2.50")},
			{Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
	assert.True(t, o.ItemsTotal().Equal(decimal.RequireFromString("35.00")),
		"total %s", o.ItemsTotal())

	empty := &Order{}
	assert.True(t, empty.ItemsTotal().IsZero())
}

func TestProductLowStock(t *testing.T) {
	assert.True(t, (&Product{StockQty: 5, ReorderLevel: 10}).LowStock())
	assert.True(t, (&Product{StockQty: 10, ReorderLevel: 10}).LowStock())
	assert.False(t, (&Product{StockQty: 11, ReorderLevel: 10}).LowStock())
}

func TestReportTypeValid(t *testing.T) {
	for _, typ := range []ReportType{ReportInventory, ReportLowStock, ReportSales, ReportTopProducts} {
		assert.True(t, typ.Valid(), "%s", typ)
	}
	assert.False(t, ReportType("Bogus").Valid())
}

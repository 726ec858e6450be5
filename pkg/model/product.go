package model

import "github.com/shopspring/decimal"

// Product is a stocked item. StockQty is a ledger balance: it reflects
// the sum of committed adjustment deltas and the net effect of order line
// items since the product was created, and is mutated through those
// workflows rather than edited freely.
type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockQty     int             `json:"stock_qty"`
	ReorderLevel int             `json:"reorder_level"`

	// Display-only joined fields, populated by list queries and never
	// persisted.
	CategoryName string `json:"category_name,omitempty"`
	SupplierName string `json:"supplier_name,omitempty"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p *Product) LowStock() bool {
	return p.StockQty <= p.ReorderLevel
}

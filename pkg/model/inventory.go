package model

import "time"

// InventoryAdjustment is an audit-logged manual stock correction,
// distinct from order-driven stock changes. ChangeQty is a signed delta
// applied to the product's stock.
type InventoryAdjustment struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	AdjustmentDate time.Time `json:"adjustment_date"`
	ChangeQty      int       `json:"change_qty"`
	Reason         string    `json:"reason"`

	// Display-only, from the product join.
	ProductName string `json:"product_name,omitempty"`
}

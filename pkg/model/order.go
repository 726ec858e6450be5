package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values are stored as free text; the constants below are the
// values the service itself writes.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Order owns its line items; items have no lifecycle outside their
// parent's save and delete operations. TotalAmount is recomputed from the
// items before every save and is never trusted from caller input.
type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Items       []*OrderItem    `json:"items"`

	// Display-only, from the customer join.
	CustomerName string `json:"customer_name,omitempty"`
}

// ItemsTotal returns the sum of quantity * unit price across all items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// OrderItem captures the unit price at sale time, independent of the
// product's current price.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Display-only, from the product join.
	ProductName string `json:"product_name,omitempty"`
}

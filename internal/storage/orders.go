package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func orderFields(o *model.Order) []field {
	return []field{
		{"CustomerID", o.CustomerID},
		{"OrderDate", optTime(o.OrderDate)},
		{"TotalAmount", o.TotalAmount},
		{"Status", o.Status},
	}
}

func orderItemFields(it *model.OrderItem) []field {
	return []field{
		{"OrderID", it.OrderID},
		{"ProductID", it.ProductID},
		{"Quantity", it.Quantity},
		{"UnitPrice", it.UnitPrice},
	}
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.order_date, o.total_amount, o.status,
	       c.name AS customer_name
	FROM orders o
	LEFT JOIN customers c ON o.customer_id = c.id
`

func scanOrder(rows *sql.Rows) (*model.Order, error) {
	var o model.Order
	var orderDate, totalAmount, status, customerName sql.NullString
	if err := rows.Scan(&o.ID, &o.CustomerID, &orderDate, &totalAmount, &status, &customerName); err != nil {
		return nil, err
	}
	o.OrderDate = parseTime(orderDate)
	o.TotalAmount = parseDecimal(totalAmount)
	o.Status = model.OrderStatus(status.String)
	o.CustomerName = customerName.String
	return &o, nil
}

func (s *Store) listOrdersWithQuerier(ctx context.Context, q querier) ([]*model.Order, error) {
	return queryAll(ctx, q, orderSelect+` ORDER BY o.order_date DESC, o.id DESC`, scanOrder)
}

// ListOrders returns order headers without their line items, newest
// first.
func (s *Store) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.listOrdersWithQuerier(ctx, s.querier())
}

func (s *Store) getOrderWithQuerier(ctx context.Context, q querier, id int64) (*model.Order, error) {
	orders, err := queryAll(ctx, q, orderSelect+` WHERE o.id = ?`, scanOrder, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, model.ErrNotFound
	}
	order := orders[0]
	items, err := s.listOrderItemsWithQuerier(ctx, q, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// GetOrder loads an order together with its line items.
func (s *Store) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.getOrderWithQuerier(ctx, s.querier(), id)
}

func (s *Store) saveOrderHeaderWithQuerier(ctx context.Context, q querier, o *model.Order) error {
	if o.ID > 0 {
		return updateRecord(ctx, q, "orders", "ID", o.ID, orderFields(o))
	}
	id, err := insertRecord(ctx, q, "orders", orderFields(o))
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// SaveOrderHeader writes just the header row; items and stock are the
// reconciliation workflow's business.
func (s *Store) SaveOrderHeader(ctx context.Context, o *model.Order) error {
	return s.saveOrderHeaderWithQuerier(ctx, s.querier(), o)
}

func (s *Store) deleteOrderHeaderWithQuerier(ctx context.Context, q querier, id int64) error {
	return deleteRecord(ctx, q, "orders", "ID", id)
}

func (s *Store) DeleteOrderHeader(ctx context.Context, id int64) error {
	return s.deleteOrderHeaderWithQuerier(ctx, s.querier(), id)
}

func (s *Store) listOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64) ([]*model.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price,
		       p.name AS product_name
		FROM order_items i
		LEFT JOIN products p ON i.product_id = p.id
		WHERE i.order_id = ?
		ORDER BY i.id
	`
	return queryAll(ctx, q, query, func(rows *sql.Rows) (*model.OrderItem, error) {
		var it model.OrderItem
		var unitPrice, productName sql.NullString
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &unitPrice, &productName); err != nil {
			return nil, err
		}
		it.UnitPrice = parseDecimal(unitPrice)
		it.ProductName = productName.String
		return &it, nil
	}, orderID)
}

func (s *Store) ListOrderItems(ctx context.Context, orderID int64) ([]*model.OrderItem, error) {
	return s.listOrderItemsWithQuerier(ctx, s.querier(), orderID)
}

func (s *Store) insertOrderItemWithQuerier(ctx context.Context, q querier, it *model.OrderItem) error {
	id, err := insertRecord(ctx, q, "order_items", orderItemFields(it))
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (s *Store) InsertOrderItem(ctx context.Context, it *model.OrderItem) error {
	return s.insertOrderItemWithQuerier(ctx, s.querier(), it)
}

func (s *Store) deleteOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, orderID); err != nil {
		return fmt.Errorf("failed to delete items of order %d: %w", orderID, err)
	}
	return nil
}

// DeleteOrderItems removes every line item of an order. An order with no
// items is not an error.
func (s *Store) DeleteOrderItems(ctx context.Context, orderID int64) error {
	return s.deleteOrderItemsWithQuerier(ctx, s.querier(), orderID)
}

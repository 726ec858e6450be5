package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func productFields(p *model.Product) []field {
	return []field{
		{"SKU", p.SKU},
		{"Name", p.Name},
		{"CategoryID", optInt64(p.CategoryID)},
		{"SupplierID", optInt64(p.SupplierID)},
		{"UnitPrice", p.UnitPrice},
		{"StockQty", p.StockQty},
		{"ReorderLevel", p.ReorderLevel},
	}
}

// productSelect joins the display names in; they are never written back.
const productSelect = `
	SELECT p.id, p.sku, p.name, p.category_id, p.supplier_id,
	       p.unit_price, p.stock_qty, p.reorder_level,
	       c.name AS category_name, s.name AS supplier_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN suppliers s ON p.supplier_id = s.id
`

func scanProduct(rows *sql.Rows) (*model.Product, error) {
	var p model.Product
	var categoryID, supplierID sql.NullInt64
	var unitPrice, categoryName, supplierName sql.NullString
	err := rows.Scan(
		&p.ID, &p.SKU, &p.Name, &categoryID, &supplierID,
		&unitPrice, &p.StockQty, &p.ReorderLevel,
		&categoryName, &supplierName,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := categoryID.Int64
		p.CategoryID = &id
	}
	if supplierID.Valid {
		id := supplierID.Int64
		p.SupplierID = &id
	}
	p.UnitPrice = parseDecimal(unitPrice)
	p.CategoryName = categoryName.String
	p.SupplierName = supplierName.String
	return &p, nil
}

func (s *Store) listProductsWithQuerier(ctx context.Context, q querier) ([]*model.Product, error) {
	return queryAll(ctx, q, productSelect+` ORDER BY p.name`, scanProduct)
}

func (s *Store) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.listProductsWithQuerier(ctx, s.querier())
}

func (s *Store) listLowStockProductsWithQuerier(ctx context.Context, q querier) ([]*model.Product, error) {
	return queryAll(ctx, q, productSelect+` WHERE p.stock_qty <= p.reorder_level ORDER BY p.name`, scanProduct)
}

// ListLowStockProducts returns products at or below their reorder level.
func (s *Store) ListLowStockProducts(ctx context.Context) ([]*model.Product, error) {
	return s.listLowStockProductsWithQuerier(ctx, s.querier())
}

func (s *Store) getProductWithQuerier(ctx context.Context, q querier, id int64) (*model.Product, error) {
	products, err := queryAll(ctx, q, productSelect+` WHERE p.id = ?`, scanProduct, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, model.ErrNotFound
	}
	return products[0], nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.getProductWithQuerier(ctx, s.querier(), id)
}

func (s *Store) getProductBySKUWithQuerier(ctx context.Context, q querier, sku string) (*model.Product, error) {
	products, err := queryAll(ctx, q, productSelect+` WHERE p.sku = ?`, scanProduct, sku)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, model.ErrNotFound
	}
	return products[0], nil
}

func (s *Store) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return s.getProductBySKUWithQuerier(ctx, s.querier(), sku)
}

func (s *Store) saveProductWithQuerier(ctx context.Context, q querier, p *model.Product) error {
	if p.ID > 0 {
		return updateRecord(ctx, q, "products", "ID", p.ID, productFields(p))
	}
	id, err := insertRecord(ctx, q, "products", productFields(p))
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// SaveProduct inserts or updates by identity. Note the update path
// writes stock_qty as given, outside the adjustment and order ledgers;
// callers that want stock bookkeeping go through the inventory service.
func (s *Store) SaveProduct(ctx context.Context, p *model.Product) error {
	return s.saveProductWithQuerier(ctx, s.querier(), p)
}

func (s *Store) deleteProductWithQuerier(ctx context.Context, q querier, id int64) error {
	return deleteRecord(ctx, q, "products", "ID", id)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	return s.deleteProductWithQuerier(ctx, s.querier(), id)
}

func (s *Store) adjustProductStockWithQuerier(ctx context.Context, q querier, productID int64, delta int) error {
	result, err := q.ExecContext(ctx, `UPDATE products SET stock_qty = stock_qty + ? WHERE id = ?`, delta, productID)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %d: %w", productID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for product %d: %w", productID, err)
	}
	if affected == 0 {
		return fmt.Errorf("adjust stock, product %d: %w", productID, model.ErrNotFound)
	}
	return nil
}

// AdjustProductStock applies a signed delta to the product's stock
// quantity in place.
func (s *Store) AdjustProductStock(ctx context.Context, productID int64, delta int) error {
	return s.adjustProductStockWithQuerier(ctx, s.querier(), productID, delta)
}

package storage

import (
	"context"
	"database/sql"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func adjustmentFields(a *model.InventoryAdjustment) []field {
	return []field{
		{"ProductID", a.ProductID},
		{"AdjustmentDate", optTime(a.AdjustmentDate)},
		{"ChangeQty", a.ChangeQty},
		{"Reason", a.Reason},
	}
}

const adjustmentSelect = `
	SELECT a.id, a.product_id, a.adjustment_date, a.change_qty, a.reason,
	       p.name AS product_name
	FROM inventory_adjustments a
	LEFT JOIN products p ON a.product_id = p.id
`

func scanAdjustment(rows *sql.Rows) (*model.InventoryAdjustment, error) {
	var a model.InventoryAdjustment
	var date, reason, productName sql.NullString
	if err := rows.Scan(&a.ID, &a.ProductID, &date, &a.ChangeQty, &reason, &productName); err != nil {
		return nil, err
	}
	a.AdjustmentDate = parseTime(date)
	a.Reason = reason.String
	a.ProductName = productName.String
	return &a, nil
}

func (s *Store) listAdjustmentsWithQuerier(ctx context.Context, q querier) ([]*model.InventoryAdjustment, error) {
	return queryAll(ctx, q, adjustmentSelect+` ORDER BY a.adjustment_date DESC, a.id DESC`, scanAdjustment)
}

func (s *Store) ListAdjustments(ctx context.Context) ([]*model.InventoryAdjustment, error) {
	return s.listAdjustmentsWithQuerier(ctx, s.querier())
}

func (s *Store) getAdjustmentWithQuerier(ctx context.Context, q querier, id int64) (*model.InventoryAdjustment, error) {
	adjustments, err := queryAll(ctx, q, adjustmentSelect+` WHERE a.id = ?`, scanAdjustment, id)
	if err != nil {
		return nil, err
	}
	if len(adjustments) == 0 {
		return nil, model.ErrNotFound
	}
	return adjustments[0], nil
}

func (s *Store) GetAdjustment(ctx context.Context, id int64) (*model.InventoryAdjustment, error) {
	return s.getAdjustmentWithQuerier(ctx, s.querier(), id)
}

func (s *Store) saveAdjustmentRowWithQuerier(ctx context.Context, q querier, a *model.InventoryAdjustment) error {
	if a.ID > 0 {
		return updateRecord(ctx, q, "inventory_adjustments", "ID", a.ID, adjustmentFields(a))
	}
	id, err := insertRecord(ctx, q, "inventory_adjustments", adjustmentFields(a))
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// SaveAdjustmentRow persists only the audit row; the inventory service
// applies the stock delta around it.
func (s *Store) SaveAdjustmentRow(ctx context.Context, a *model.InventoryAdjustment) error {
	return s.saveAdjustmentRowWithQuerier(ctx, s.querier(), a)
}

func (s *Store) deleteAdjustmentRowWithQuerier(ctx context.Context, q querier, id int64) error {
	return deleteRecord(ctx, q, "inventory_adjustments", "ID", id)
}

func (s *Store) DeleteAdjustmentRow(ctx context.Context, id int64) error {
	return s.deleteAdjustmentRowWithQuerier(ctx, s.querier(), id)
}

package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

// Service runs the stock reconciliation workflows over the storage
// layer.
type Service struct {
	store storage.Storage
	log   *zap.Logger
}

// NewService creates an inventory service.
func NewService(store storage.Storage, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// SaveOrder persists the order and its line items and reconciles product
// stock, all in one transaction.
//
// For an existing order the previously persisted items' quantities are
// first restored to their products and the old item rows deleted; then
// the current item set is inserted and deducted. Saving an order back
// unchanged therefore nets to a zero stock delta.
func (s *Service) SaveOrder(ctx context.Context, o *model.Order) error {
	if o.CustomerID == 0 {
		return fmt.Errorf("order has no customer: %w", model.ErrValidation)
	}
	for _, it := range o.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("order item for product %d has quantity %d: %w", it.ProductID, it.Quantity, model.ErrValidation)
		}
	}

	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if o.Status == "" {
		o.Status = model.OrderStatusNew
	}
	// The total is always recomputed from the items, never trusted from
	// the caller.
	o.TotalAmount = o.ItemsTotal()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if o.ID > 0 {
		prev, err := tx.GetOrder(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("failed to load previous order %d: %w", o.ID, err)
		}
		for _, it := range prev.Items {
			if err := tx.AdjustProductStock(ctx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("failed to restore stock for product %d: %w", it.ProductID, err)
			}
		}
		if err := tx.SaveOrderHeader(ctx, o); err != nil {
			return err
		}
		if err := tx.DeleteOrderItems(ctx, o.ID); err != nil {
			return fmt.Errorf("failed to delete previous items of order %d: %w", o.ID, err)
		}
	} else {
		if err := tx.SaveOrderHeader(ctx, o); err != nil {
			return err
		}
	}

	for _, it := range o.Items {
		it.OrderID = o.ID
		it.ID = 0
		if err := tx.InsertOrderItem(ctx, it); err != nil {
			return err
		}
		if err := tx.AdjustProductStock(ctx, it.ProductID, -it.Quantity); err != nil {
			return fmt.Errorf("failed to deduct stock for product %d: %w", it.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order save: %w", err)
	}
	committed = true

	s.log.Info("order saved",
		zap.Int64("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.String("total", o.TotalAmount.String()))
	return nil
}

// DeleteOrder removes the order's line items and header in one
// transaction.
//
// Deletion does not restore the stock deducted when the order was saved,
// while editing an order does. The asymmetry matches long-standing
// behavior and is kept pending a product decision; see DESIGN.md.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := tx.DeleteOrderItems(ctx, id); err != nil {
		return err
	}
	if err := tx.DeleteOrderHeader(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order delete: %w", err)
	}
	committed = true

	s.log.Info("order deleted", zap.Int64("order_id", id))
	return nil
}

// SaveAdjustment persists a manual stock correction and applies the
// difference between its new and previous delta to the product, in one
// transaction. For a new adjustment the previous delta is zero, so the
// full change is applied.
func (s *Service) SaveAdjustment(ctx context.Context, a *model.InventoryAdjustment) error {
	if a.ProductID == 0 {
		return fmt.Errorf("adjustment has no product: %w", model.ErrValidation)
	}
	if a.AdjustmentDate.IsZero() {
		a.AdjustmentDate = time.Now()
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	previous := 0
	if a.ID > 0 {
		prev, err := tx.GetAdjustment(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("failed to load previous adjustment %d: %w", a.ID, err)
		}
		previous = prev.ChangeQty
	}

	if delta := a.ChangeQty - previous; delta != 0 {
		if err := tx.AdjustProductStock(ctx, a.ProductID, delta); err != nil {
			return err
		}
	}
	if err := tx.SaveAdjustmentRow(ctx, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit adjustment save: %w", err)
	}
	committed = true

	s.log.Info("adjustment saved",
		zap.Int64("adjustment_id", a.ID),
		zap.Int64("product_id", a.ProductID),
		zap.Int("change_qty", a.ChangeQty),
		zap.String("reason", a.Reason))
	return nil
}

// DeleteAdjustment reverses the adjustment's effect on stock and removes
// the audit row, in one transaction.
func (s *Service) DeleteAdjustment(ctx context.Context, id int64) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	a, err := tx.GetAdjustment(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load adjustment %d: %w", id, err)
	}

	if a.ChangeQty != 0 {
		if err := tx.AdjustProductStock(ctx, a.ProductID, -a.ChangeQty); err != nil {
			return err
		}
	}
	if err := tx.DeleteAdjustmentRow(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit adjustment delete: %w", err)
	}
	committed = true

	s.log.Info("adjustment deleted",
		zap.Int64("adjustment_id", id),
		zap.Int64("product_id", a.ProductID),
		zap.Int("reversed_qty", a.ChangeQty))
	return nil
}

package storage

import (
	"context"

	"github.com/stockroomhq/stockroom/pkg/model"
)

// Transaction implementations: every operation delegates to the internal
// helper bound to the transaction's querier, so reads inside a
// transaction observe its uncommitted writes.

func (t *storeTx) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return t.store.listCategoriesWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return t.store.getCategoryWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) SaveCategory(ctx context.Context, c *model.Category) error {
	return t.store.saveCategoryWithQuerier(ctx, t.querier(), c)
}

func (t *storeTx) DeleteCategory(ctx context.Context, id int64) error {
	return t.store.deleteCategoryWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	return t.store.listSuppliersWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	return t.store.getSupplierWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) SaveSupplier(ctx context.Context, sp *model.Supplier) error {
	return t.store.saveSupplierWithQuerier(ctx, t.querier(), sp)
}

func (t *storeTx) DeleteSupplier(ctx context.Context, id int64) error {
	return t.store.deleteSupplierWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return t.store.listCustomersWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return t.store.getCustomerWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) SaveCustomer(ctx context.Context, c *model.Customer) error {
	return t.store.saveCustomerWithQuerier(ctx, t.querier(), c)
}

func (t *storeTx) DeleteCustomer(ctx context.Context, id int64) error {
	return t.store.deleteCustomerWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return t.store.listProductsWithQuerier(ctx, t.querier())
}

func (t *storeTx) ListLowStockProducts(ctx context.Context) ([]*model.Product, error) {
	return t.store.listLowStockProductsWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return t.store.getProductWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return t.store.getProductBySKUWithQuerier(ctx, t.querier(), sku)
}

func (t *storeTx) SaveProduct(ctx context.Context, p *model.Product) error {
	return t.store.saveProductWithQuerier(ctx, t.querier(), p)
}

func (t *storeTx) DeleteProduct(ctx context.Context, id int64) error {
	return t.store.deleteProductWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) AdjustProductStock(ctx context.Context, productID int64, delta int) error {
	return t.store.adjustProductStockWithQuerier(ctx, t.querier(), productID, delta)
}

func (t *storeTx) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return t.store.listOrdersWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return t.store.getOrderWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) SaveOrderHeader(ctx context.Context, o *model.Order) error {
	return t.store.saveOrderHeaderWithQuerier(ctx, t.querier(), o)
}

func (t *storeTx) DeleteOrderHeader(ctx context.Context, id int64) error {
	return t.store.deleteOrderHeaderWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) ListOrderItems(ctx context.Context, orderID int64) ([]*model.OrderItem, error) {
	return t.store.listOrderItemsWithQuerier(ctx, t.querier(), orderID)
}

func (t *storeTx) InsertOrderItem(ctx context.Context, it *model.OrderItem) error {
	return t.store.insertOrderItemWithQuerier(ctx, t.querier(), it)
}

func (t *storeTx) DeleteOrderItems(ctx context.Context, orderID int64) error {
	return t.store.deleteOrderItemsWithQuerier(ctx, t.querier(), orderID)
}

func (t *storeTx) ListAdjustments(ctx context.Context) ([]*model.InventoryAdjustment, error) {
	return t.store.listAdjustmentsWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetAdjustment(ctx context.Context, id int64) (*model.InventoryAdjustment, error) {
	return t.store.getAdjustmentWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) SaveAdjustmentRow(ctx context.Context, a *model.InventoryAdjustment) error {
	return t.store.saveAdjustmentRowWithQuerier(ctx, t.querier(), a)
}

func (t *storeTx) DeleteAdjustmentRow(ctx context.Context, id int64) error {
	return t.store.deleteAdjustmentRowWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) ListReports(ctx context.Context) ([]*model.Report, error) {
	return t.store.listReportsWithQuerier(ctx, t.querier())
}

func (t *storeTx) SaveReport(ctx context.Context, r *model.Report) error {
	return t.store.saveReportWithQuerier(ctx, t.querier(), r)
}

func (t *storeTx) ListUsers(ctx context.Context) ([]*model.User, error) {
	return t.store.listUsersWithQuerier(ctx, t.querier())
}

func (t *storeTx) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return t.store.getUserWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return t.store.getUserByUsernameWithQuerier(ctx, t.querier(), username)
}

func (t *storeTx) SaveUser(ctx context.Context, u *model.User) error {
	return t.store.saveUserWithQuerier(ctx, t.querier(), u)
}

func (t *storeTx) DeactivateUser(ctx context.Context, id int64) error {
	return t.store.deactivateUserWithQuerier(ctx, t.querier(), id)
}

func (t *storeTx) QueryTable(ctx context.Context, query string, args ...any) ([]string, [][]string, error) {
	return queryTableWithQuerier(ctx, t.querier(), query, args...)
}

func (t *storeTx) Exec(ctx context.Context, stmt string) error {
	return execWithQuerier(ctx, t.querier(), stmt)
}

package storage

import (
	"context"

	"github.com/stockroomhq/stockroom/pkg/model"
)

// Storage defines the interface for persisting and querying inventory data
type Storage interface {
	// Category operations
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	SaveCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	// Supplier operations
	ListSuppliers(ctx context.Context) ([]*model.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	SaveSupplier(ctx context.Context, s *model.Supplier) error
	DeleteSupplier(ctx context.Context, id int64) error

	// Customer operations
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	SaveCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	// Product operations
	ListProducts(ctx context.Context) ([]*model.Product, error)
	ListLowStockProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*model.Product, error)
	SaveProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	AdjustProductStock(ctx context.Context, productID int64, delta int) error

	// Order operations. SaveOrderHeader and the item operations are the
	// primitives the reconciliation workflow composes inside one
	// transaction; they do not touch stock themselves.
	ListOrders(ctx context.Context) ([]*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	SaveOrderHeader(ctx context.Context, o *model.Order) error
	DeleteOrderHeader(ctx context.Context, id int64) error
	ListOrderItems(ctx context.Context, orderID int64) ([]*model.OrderItem, error)
	InsertOrderItem(ctx context.Context, item *model.OrderItem) error
	DeleteOrderItems(ctx context.Context, orderID int64) error

	// Inventory adjustment row operations; the stock delta is applied by
	// the workflow, not here.
	ListAdjustments(ctx context.Context) ([]*model.InventoryAdjustment, error)
	GetAdjustment(ctx context.Context, id int64) (*model.InventoryAdjustment, error)
	SaveAdjustmentRow(ctx context.Context, a *model.InventoryAdjustment) error
	DeleteAdjustmentRow(ctx context.Context, id int64) error

	// Report metadata operations
	ListReports(ctx context.Context) ([]*model.Report, error)
	SaveReport(ctx context.Context, r *model.Report) error

	// User operations
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SaveUser(ctx context.Context, u *model.User) error
	DeactivateUser(ctx context.Context, id int64) error

	// QueryTable runs an arbitrary read query and returns the column
	// names plus every row stringified. The report generator renders its
	// fixed queries through this.
	QueryTable(ctx context.Context, query string, args ...any) (cols []string, rows [][]string, err error)

	// Exec runs a single DDL or maintenance statement outside the
	// mapped CRUD path.
	Exec(ctx context.Context, stmt string) error

	// Database operations
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error
	Storage // Embed Storage interface for transaction operations
}

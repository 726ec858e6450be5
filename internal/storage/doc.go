// Package storage provides SQLite-based persistence for the stockroom
// inventory and order data.
//
// The storage layer manages:
//   - Catalog entities: categories, suppliers, customers, products
//   - Orders and their line items
//   - Inventory adjustments (the manual stock audit trail)
//   - Report metadata
//   - User accounts
//
// # Database Schema
//
// Tables:
//   - categories, suppliers, customers: catalog reference data
//   - products: stocked items with SKU, price, stock and reorder level
//   - orders, order_items: order headers and owned line items
//   - inventory_adjustments: signed stock deltas with a reason
//   - reports: metadata for generated report artifacts
//   - users: accounts with bcrypt password hashes
//
// Column names are derived from entity field names with columnName,
// which inserts an underscore before each uppercase letter that follows
// a lowercase letter and lowercases the result (CategoryID becomes
// category_id). The schema in migrations.go depends on this rule.
//
// # Statement Mapping
//
// Writes go through a small descriptor-driven mapper instead of
// per-entity SQL. Each entity file declares its []field descriptors;
// insertRecord and updateRecord synthesize the parameterized statement,
// skipping fields whose value is absent (nil). A field explicitly set to
// its zero value is still written, so clearing a column requires a
// pointer to the empty value rather than nil.
//
// # Basic Usage
//
//	store, err := storage.NewStore("stockroom.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	p := &model.Product{SKU: "WIDGET-1", Name: "Widget", StockQty: 10}
//	if err := store.SaveProduct(ctx, p); err != nil {
//	    ...
//	}
//
// # Transactions
//
// BeginTx returns a Tx exposing the same method set bound to one
// database transaction. The database runs with a single connection, so
// transactions are strictly serialized; nested transactions are not
// supported.
package storage

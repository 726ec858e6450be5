package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stockroomhq/stockroom/pkg/model"
)

// Category operations

func categoryFields(c *model.Category) []field {
	return []field{
		{"Name", c.Name},
		{"Description", optString(c.Description)},
	}
}

func (s *Store) listCategoriesWithQuerier(ctx context.Context, q querier) ([]*model.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY name`
	return queryAll(ctx, q, query, func(rows *sql.Rows) (*model.Category, error) {
		var c model.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			c.Description = &desc.String
		}
		return &c, nil
	})
}

func (s *Store) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.listCategoriesWithQuerier(ctx, s.querier())
}

func (s *Store) getCategoryWithQuerier(ctx context.Context, q querier, id int64) (*model.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE id = ?`
	var c model.Category
	var desc sql.NullString
	err := q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &desc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	return &c, nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.getCategoryWithQuerier(ctx, s.querier(), id)
}

func (s *Store) saveCategoryWithQuerier(ctx context.Context, q querier, c *model.Category) error {
	if c.ID > 0 {
		return updateRecord(ctx, q, "categories", "ID", c.ID, categoryFields(c))
	}
	id, err := insertRecord(ctx, q, "categories", categoryFields(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// SaveCategory inserts the category when it has no identity yet, updates
// it otherwise.
func (s *Store) SaveCategory(ctx context.Context, c *model.Category) error {
	return s.saveCategoryWithQuerier(ctx, s.querier(), c)
}

func (s *Store) deleteCategoryWithQuerier(ctx context.Context, q querier, id int64) error {
	// A category stays while products reference it.
	refs, err := queryScalar[int64](ctx, q, `SELECT COUNT(*) FROM products WHERE category_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("category %d is referenced by %d product(s): %w", id, refs, model.ErrConflict)
	}
	return deleteRecord(ctx, q, "categories", "ID", id)
}

// DeleteCategory removes the category, failing with ErrConflict while
// any product references it.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteCategoryWithQuerier(ctx, s.querier(), id)
}

// Supplier operations

func supplierFields(sp *model.Supplier) []field {
	return []field{
		{"Name", sp.Name},
		{"Contact", sp.Contact},
		{"Address", sp.Address},
	}
}

func (s *Store) listSuppliersWithQuerier(ctx context.Context, q querier) ([]*model.Supplier, error) {
	query := `SELECT id, name, contact, address FROM suppliers ORDER BY name`
	return queryAll(ctx, q, query, func(rows *sql.Rows) (*model.Supplier, error) {
		var sp model.Supplier
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Contact, &sp.Address); err != nil {
			return nil, err
		}
		return &sp, nil
	})
}

func (s *Store) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	return s.listSuppliersWithQuerier(ctx, s.querier())
}

func (s *Store) getSupplierWithQuerier(ctx context.Context, q querier, id int64) (*model.Supplier, error) {
	query := `SELECT id, name, contact, address FROM suppliers WHERE id = ?`
	var sp model.Supplier
	err := q.QueryRowContext(ctx, query, id).Scan(&sp.ID, &sp.Name, &sp.Contact, &sp.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *Store) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	return s.getSupplierWithQuerier(ctx, s.querier(), id)
}

func (s *Store) saveSupplierWithQuerier(ctx context.Context, q querier, sp *model.Supplier) error {
	if sp.ID > 0 {
		return updateRecord(ctx, q, "suppliers", "ID", sp.ID, supplierFields(sp))
	}
	id, err := insertRecord(ctx, q, "suppliers", supplierFields(sp))
	if err != nil {
		return err
	}
	sp.ID = id
	return nil
}

func (s *Store) SaveSupplier(ctx context.Context, sp *model.Supplier) error {
	return s.saveSupplierWithQuerier(ctx, s.querier(), sp)
}

func (s *Store) deleteSupplierWithQuerier(ctx context.Context, q querier, id int64) error {
	return deleteRecord(ctx, q, "suppliers", "ID", id)
}

func (s *Store) DeleteSupplier(ctx context.Context, id int64) error {
	return s.deleteSupplierWithQuerier(ctx, s.querier(), id)
}

// Customer operations

func customerFields(c *model.Customer) []field {
	return []field{
		{"Name", c.Name},
		{"Contact", c.Contact},
		{"Email", optString(c.Email)},
		{"Address", c.Address},
	}
}

func (s *Store) listCustomersWithQuerier(ctx context.Context, q querier) ([]*model.Customer, error) {
	query := `SELECT id, name, contact, email, address FROM customers ORDER BY name`
	return queryAll(ctx, q, query, scanCustomer)
}

func scanCustomer(rows *sql.Rows) (*model.Customer, error) {
	var c model.Customer
	var email sql.NullString
	if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &email, &c.Address); err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	return &c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return s.listCustomersWithQuerier(ctx, s.querier())
}

func (s *Store) getCustomerWithQuerier(ctx context.Context, q querier, id int64) (*model.Customer, error) {
	query := `SELECT id, name, contact, email, address FROM customers WHERE id = ?`
	var c model.Customer
	var email sql.NullString
	err := q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Contact, &email, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	return &c, nil
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.getCustomerWithQuerier(ctx, s.querier(), id)
}

func (s *Store) saveCustomerWithQuerier(ctx context.Context, q querier, c *model.Customer) error {
	if c.ID > 0 {
		return updateRecord(ctx, q, "customers", "ID", c.ID, customerFields(c))
	}
	id, err := insertRecord(ctx, q, "customers", customerFields(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (s *Store) SaveCustomer(ctx context.Context, c *model.Customer) error {
	return s.saveCustomerWithQuerier(ctx, s.querier(), c)
}

func (s *Store) deleteCustomerWithQuerier(ctx context.Context, q querier, id int64) error {
	return deleteRecord(ctx, q, "customers", "ID", id)
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	return s.deleteCustomerWithQuerier(ctx, s.querier(), id)
}

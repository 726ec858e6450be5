package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func TestColumnName(t *testing.T) {
	cases := map[string]string{
		"Name":           "name",
		"CategoryID":     "category_id",
		"SKU":            "sku",
		"UnitPrice":      "unit_price",
		"StockQty":       "stock_qty",
		"ReorderLevel":   "reorder_level",
		"OrderDate":      "order_date",
		"TotalAmount":    "total_amount",
		"AdjustmentDate": "adjustment_date",
		"ChangeQty":      "change_qty",
		"PasswordHash":   "password_hash",
		"FullName":       "full_name",
		"ReportType":     "report_type",
		"LowStockSKU":    "low_stock_sku",
		"GeneratedOn":    "generated_on",
		"ID":             "id",
	}
	for in, want := range cases {
		assert.Equal(t, want, columnName(in), "columnName(%q)", in)
	}
}

func TestBindValue(t *testing.T) {
	assert.Equal(t, "hello", bindValue("hello"))
	assert.Equal(t, 42, bindValue(42))
	assert.Equal(t, int64(42), bindValue(int64(42)))
	assert.Equal(t, true, bindValue(true))

	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 10:30:00", bindValue(ts))

	assert.Equal(t, "19.99", bindValue(decimal.RequireFromString("19.99")))
	assert.Equal(t, "Shipped", bindValue(model.OrderStatusShipped))
}

func TestParseTime(t *testing.T) {
	valid := func(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, want, parseTime(valid("2024-03-15 10:30:00")))
	assert.Equal(t, want, parseTime(valid("2024-03-15T10:30:00Z")))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parseTime(valid("2024-03-15")))

	assert.True(t, parseTime(valid("not a date")).IsZero())
	assert.True(t, parseTime(sql.NullString{}).IsZero())
}

func TestOptHelpers(t *testing.T) {
	assert.Nil(t, optString(nil))
	s := ""
	assert.Equal(t, "", optString(&s))

	assert.Nil(t, optInt64(nil))
	var n int64 = 7
	assert.Equal(t, int64(7), optInt64(&n))

	assert.Nil(t, optTime(time.Time{}))
	now := time.Now()
	assert.NotNil(t, optTime(now))
}

// Absent fields are omitted from the statement entirely, so the column
// default applies on insert.
func TestInsertOmitsAbsentFields(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	c := &model.Category{Name: "Beverages"}
	require.NoError(t, store.SaveCategory(ctx, c))
	require.Greater(t, c.ID, int64(0))

	got, err := store.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)

	// Pointer to empty string is present, so NULL is replaced.
	empty := ""
	c.Description = &empty
	require.NoError(t, store.SaveCategory(ctx, c))

	got, err = store.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)
}

func TestUpdateMissingRowNotFound(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	c := &model.Category{ID: 9999, Name: "Ghost"}
	err := store.SaveCategory(context.Background(), c)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateExcludedFieldUntouched(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()
	ctx := context.Background()

	u := &model.User{
		Username:     "clerk",
		PasswordHash: "$2a$10$hash",
		Email:        "clerk@example.com",
		Role:         model.RoleUser,
		Active:       true,
	}
	require.NoError(t, store.SaveUser(ctx, u))

	// Empty hash on update means the password column is left alone.
	u.PasswordHash = ""
	u.Email = "new@example.com"
	require.NoError(t, store.SaveUser(ctx, u))

	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestDeleteMissingRowNotFound(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	err := store.DeleteSupplier(context.Background(), 12345)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

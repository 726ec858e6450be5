package storage

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockroomhq/stockroom/pkg/model"
)

// timeFormat is the layout timestamps are written with. The row mappers
// must keep parsing it for as long as databases written with it exist.
const timeFormat = "2006-01-02 15:04:05"

// field pairs an entity field name with its value. A nil value marks the
// field as absent; absent fields are omitted from generated statements.
// Each entity file declares its own descriptors, so the full column set
// of every table is visible at compile time.
type field struct {
	name  string
	value any
}

// optString converts an optional string field into a mapper value.
func optString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// optInt64 converts an optional int64 field into a mapper value.
func optInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// optTime treats the zero time as absent.
func optTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// columnName converts an entity field name to its column name: an
// underscore is inserted before each uppercase letter that follows a
// lowercase letter, then the whole name is lowercased. CategoryID maps
// to category_id, SKU to sku, OrderDate to order_date. The schema in
// migrations.go depends on this exact rule.
func columnName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	prevLower := false
	for _, r := range name {
		upper := r >= 'A' && r <= 'Z'
		if upper && prevLower {
			b.WriteByte('_')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevLower = !upper && r >= 'a' && r <= 'z'
	}
	return b.String()
}

// bindValue converts a field value into a driver-friendly parameter.
// Timestamps are formatted with timeFormat and decimals written as their
// canonical string so that rescanning round-trips exactly.
func bindValue(v any) any {
	switch v := v.(type) {
	case int, int64, float64, bool, string:
		return v
	case time.Time:
		return v.Format(timeFormat)
	case decimal.Decimal:
		return v.String()
	case model.OrderStatus:
		return string(v)
	case model.ReportType:
		return string(v)
	case model.Role:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// presentFields filters out absent and excluded fields.
func presentFields(fields []field, exclude []string) []field {
	out := make([]field, 0, len(fields))
	for _, f := range fields {
		if f.value == nil || slices.Contains(exclude, f.name) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// insertRecord synthesizes and executes
// INSERT INTO table (c1, c2, ...) VALUES (?, ?, ...) from the present
// fields and returns the generated identity.
func insertRecord(ctx context.Context, q querier, table string, fields []field, exclude ...string) (int64, error) {
	present := presentFields(fields, exclude)
	if len(present) == 0 {
		return 0, fmt.Errorf("insert into %s: %w: no columns to write", table, model.ErrValidation)
	}

	cols := make([]string, len(present))
	marks := make([]string, len(present))
	args := make([]any, len(present))
	for i, f := range present {
		cols[i] = columnName(f.name)
		marks[i] = "?"
		args[i] = bindValue(f.value)
	}

	query := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated id for %s: %w", table, err)
	}
	return id, nil
}

// updateRecord synthesizes and executes
// UPDATE table SET c1 = ?, ... WHERE idColumn = ?. The identity column is
// always excluded from the SET list. Zero affected rows means the record
// no longer exists.
func updateRecord(ctx context.Context, q querier, table, idColumn string, id int64, fields []field, exclude ...string) error {
	present := presentFields(fields, append(exclude, idColumn))
	if len(present) == 0 {
		return fmt.Errorf("update %s: %w: no columns to write", table, model.ErrValidation)
	}

	sets := make([]string, len(present))
	args := make([]any, 0, len(present)+1)
	for i, f := range present {
		sets[i] = columnName(f.name) + " = ?"
		args = append(args, bindValue(f.value))
	}
	args = append(args, id)

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + columnName(idColumn) + " = ?"
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s: %w", table, err)
	}
	if affected == 0 {
		return fmt.Errorf("update %s id %d: %w", table, id, model.ErrNotFound)
	}
	return nil
}

// deleteRecord executes DELETE FROM table WHERE idColumn = ?.
func deleteRecord(ctx context.Context, q querier, table, idColumn string, id int64) error {
	query := "DELETE FROM " + table + " WHERE " + columnName(idColumn) + " = ?"
	result, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s: %w", table, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %s id %d: %w", table, id, model.ErrNotFound)
	}
	return nil
}

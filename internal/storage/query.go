package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockroomhq/stockroom/pkg/model"
)

// queryAll runs a parameterized query and maps every row with scan,
// preserving row order. An empty result set yields an empty slice, never
// nil.
func queryAll[T any](ctx context.Context, q querier, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// queryScalar returns the first column of the first row, or ErrNotFound
// when the query yields no rows.
func queryScalar[T any](ctx context.Context, q querier, query string, args ...any) (T, error) {
	var v T
	err := q.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return v, model.ErrNotFound
	}
	if err != nil {
		return v, err
	}
	return v, nil
}

// execWithQuerier runs a single raw statement.
func execWithQuerier(ctx context.Context, q querier, stmt string) error {
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// Exec runs a single DDL or maintenance statement.
func (s *Store) Exec(ctx context.Context, stmt string) error {
	return execWithQuerier(ctx, s.querier(), stmt)
}

// queryTableWithQuerier runs an arbitrary read query and stringifies
// every column of every row. NULLs come back as empty strings.
func queryTableWithQuerier(ctx context.Context, q querier, query string, args ...any) ([]string, [][]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

// QueryTable runs a read query and returns column names plus stringified
// rows.
func (s *Store) QueryTable(ctx context.Context, query string, args ...any) ([]string, [][]string, error) {
	return queryTableWithQuerier(ctx, s.querier(), query, args...)
}

// parseTime parses a stored timestamp defensively: the mapper's own
// layout first, then the formats SQLite defaults and older databases
// used. Unparseable input falls back to the zero time rather than
// failing the whole row.
func parseTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{timeFormat, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseDecimal parses a stored decimal, falling back to zero on
// malformed input.
func parseDecimal(s sql.NullString) decimal.Decimal {
	if !s.Valid || s.String == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.Zero
	}
	return d
}

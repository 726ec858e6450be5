// Package report resolves report types to their fixed queries and
// renders the results as CSV or XLSX artifacts, recording metadata for
// each generated file.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

// Format selects the artifact rendering.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatXLSX
}

// reportQueries maps each report type to its fixed SQL.
var reportQueries = map[model.ReportType]string{
	model.ReportInventory: `
		SELECT p.sku, p.name, c.name AS category, s.name AS supplier,
		       p.unit_price, p.stock_qty, p.reorder_level
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		ORDER BY p.name`,
	model.ReportLowStock: `
		SELECT p.sku, p.name, p.stock_qty, p.reorder_level
		FROM products p
		WHERE p.stock_qty <= p.reorder_level
		ORDER BY p.stock_qty`,
	model.ReportSales: `
		SELECT o.id, c.name AS customer, o.order_date, o.status, o.total_amount
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		ORDER BY o.order_date DESC`,
	model.ReportTopProducts: `
		SELECT p.name, SUM(i.quantity) AS total_sold
		FROM order_items i
		JOIN products p ON i.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC
		LIMIT 5`,
}

// Generator produces report and ticket artifacts.
type Generator struct {
	store      storage.Storage
	log        *zap.Logger
	reportsDir string
	ticketsDir string
}

// NewGenerator creates a generator writing under reportsDir and
// ticketsDir.
func NewGenerator(store storage.Storage, log *zap.Logger, reportsDir, ticketsDir string) *Generator {
	return &Generator{store: store, log: log, reportsDir: reportsDir, ticketsDir: ticketsDir}
}

// Generate runs the report's fixed query, writes the artifact as
// {type}_{timestamp}.{csv|xlsx} under the reports directory, and
// persists a metadata row pointing at it.
func (g *Generator) Generate(ctx context.Context, typ model.ReportType, format Format) (*model.Report, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown report type %q: %w", typ, model.ErrValidation)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("unknown report format %q: %w", format, model.ErrValidation)
	}

	cols, rows, err := g.store.QueryTable(ctx, reportQueries[typ])
	if err != nil {
		return nil, fmt.Errorf("failed to run %s report query: %w", typ, err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s_%s.%s", typ, now.Format("20060102_150405"), format)
	path := filepath.Join(g.reportsDir, name)

	if err := os.MkdirAll(g.reportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	switch format {
	case FormatCSV:
		err = writeCSV(path, cols, rows)
	case FormatXLSX:
		err = writeXLSX(path, string(typ), cols, rows)
	}
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		ReportType:  typ,
		GeneratedOn: now,
		Parameters:  fmt.Sprintf(`{"format":%q,"rows":%d}`, format, len(rows)),
		FilePath:    path,
	}
	if err := g.store.SaveReport(ctx, rep); err != nil {
		return nil, fmt.Errorf("failed to record report metadata: %w", err)
	}

	g.log.Info("report generated",
		zap.String("type", string(typ)),
		zap.String("format", string(format)),
		zap.Int("rows", len(rows)),
		zap.String("path", path))
	return rep, nil
}

// OrderTicket writes an XLSX ticket for one order under the tickets
// directory as order_{id}_{timestamp}.xlsx.
func (g *Generator) OrderTicket(ctx context.Context, orderID int64) (string, error) {
	order, err := g.store.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.ticketsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create tickets directory: %w", err)
	}
	name := fmt.Sprintf("order_%d_%s.xlsx", order.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(g.ticketsDir, name)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	header := [][]any{
		{"Order", order.ID},
		{"Customer", order.CustomerName},
		{"Date", order.OrderDate.Format("2006-01-02 15:04:05")},
		{"Status", string(order.Status)},
		{},
		{"Product", "Quantity", "Unit Price", "Line Total"},
	}
	rowIdx := 1
	for _, row := range header {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write ticket row: %w", err)
		}
		rowIdx++
	}
	for _, it := range order.Items {
		line := []any{
			it.ProductName,
			it.Quantity,
			it.UnitPrice.String(),
			it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).String(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return "", fmt.Errorf("failed to write ticket row: %w", err)
		}
		rowIdx++
	}
	total := []any{"Total", "", "", order.TotalAmount.String()}
	cell, _ := excelize.CoordinatesToCellName(1, rowIdx+1)
	if err := f.SetSheetRow(sheet, cell, &total); err != nil {
		return "", fmt.Errorf("failed to write ticket total: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save ticket: %w", err)
	}

	g.log.Info("order ticket generated", zap.Int64("order_id", orderID), zap.String("path", path))
	return path, nil
}

func writeCSV(path string, cols []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write report rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path, sheetTitle string, cols []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, sheetTitle); err == nil {
		sheet = sheetTitle
	}

	headerRow := make([]any, len(cols))
	for i, c := range cols {
		headerRow[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for i, row := range rows {
		line := make([]any, len(row))
		for j, v := range row {
			line[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

package model

import "time"

// ReportType selects the fixed query a report runs.
type ReportType string

const (
	ReportInventory   ReportType = "Inventory"
	ReportLowStock    ReportType = "LowStock"
	ReportSales       ReportType = "Sales"
	ReportTopProducts ReportType = "TopProducts"
)

// Valid reports whether t is one of the supported report types.
func (t ReportType) Valid() bool {
	switch t {
	case ReportInventory, ReportLowStock, ReportSales, ReportTopProducts:
		return true
	}
	return false
}

// Report records a generated report artifact. Parameters is an opaque
// string (JSON in practice); the artifact itself lives on disk at
// FilePath.
type Report struct {
	ID          int64      `json:"id"`
	ReportType  ReportType `json:"report_type"`
	GeneratedOn time.Time  `json:"generated_on"`
	Parameters  string     `json:"parameters"`
	FilePath    string     `json:"file_path"`
}

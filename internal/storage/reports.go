package storage

import (
	"context"
	"database/sql"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func reportFields(r *model.Report) []field {
	return []field{
		{"ReportType", r.ReportType},
		{"GeneratedOn", optTime(r.GeneratedOn)},
		{"Parameters", r.Parameters},
		{"FilePath", r.FilePath},
	}
}

func (s *Store) listReportsWithQuerier(ctx context.Context, q querier) ([]*model.Report, error) {
	query := `
		SELECT id, report_type, generated_on, parameters, file_path
		FROM reports
		ORDER BY generated_on DESC, id DESC
	`
	return queryAll(ctx, q, query, func(rows *sql.Rows) (*model.Report, error) {
		var r model.Report
		var typ, generatedOn, parameters, filePath sql.NullString
		if err := rows.Scan(&r.ID, &typ, &generatedOn, &parameters, &filePath); err != nil {
			return nil, err
		}
		r.ReportType = model.ReportType(typ.String)
		r.GeneratedOn = parseTime(generatedOn)
		r.Parameters = parameters.String
		r.FilePath = filePath.String
		return &r, nil
	})
}

func (s *Store) ListReports(ctx context.Context) ([]*model.Report, error) {
	return s.listReportsWithQuerier(ctx, s.querier())
}

func (s *Store) saveReportWithQuerier(ctx context.Context, q querier, r *model.Report) error {
	if r.ID > 0 {
		return updateRecord(ctx, q, "reports", "ID", r.ID, reportFields(r))
	}
	id, err := insertRecord(ctx, q, "reports", reportFields(r))
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func (s *Store) SaveReport(ctx context.Context, r *model.Report) error {
	return s.saveReportWithQuerier(ctx, s.querier(), r)
}

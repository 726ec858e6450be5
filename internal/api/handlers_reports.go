package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/report"
	"github.com/stockroomhq/stockroom/pkg/model"
)

func (s *Server) listReports(c echo.Context) error {
	reports, err := s.store.ListReports(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, reports)
}

type generateReportRequest struct {
	ReportType model.ReportType `json:"report_type"`
	Format     report.Format    `json:"format"`
}

func (s *Server) generateReport(c echo.Context) error {
	var req generateReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Format == "" {
		req.Format = report.FormatCSV
	}

	generated, err := s.reports.Generate(c.Request().Context(), req.ReportType, req.Format)
	if err != nil {
		return httpError(c, err)
	}

	reportsGeneratedTotal.WithLabelValues(string(req.ReportType), string(req.Format)).Inc()
	return c.JSON(http.StatusOK, generated)
}

// runImport accepts a SQL script as a multipart upload and executes it
// statement by statement. Failed statements are reported, not fatal.
func (s *Server) runImport(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing file upload"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return httpError(c, err)
	}
	defer f.Close()

	result, err := s.importer.Run(c.Request().Context(), f)
	if err != nil {
		return httpError(c, err)
	}

	requestLogger(c).Info("import finished",
		zap.String("file", fileHeader.Filename),
		zap.Int("executed", result.Executed),
		zap.Int("failed", result.Failed))
	return c.JSON(http.StatusOK, result)
}

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func (s *Server) listAdjustments(c echo.Context) error {
	adjustments, err := s.store.ListAdjustments(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, adjustments)
}

func (s *Server) getAdjustment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	adjustment, err := s.store.GetAdjustment(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, adjustment)
}

// saveAdjustment applies the stock delta alongside the row write; on
// edits only the difference from the stored quantity is applied.
func (s *Server) saveAdjustment(c echo.Context) error {
	var adjustment model.InventoryAdjustment
	if err := c.Bind(&adjustment); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		adjustment.ID = id
	}
	if err := s.inventory.SaveAdjustment(c.Request().Context(), &adjustment); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, adjustment)
}

func (s *Server) deleteAdjustment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.inventory.DeleteAdjustment(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

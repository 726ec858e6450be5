package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func (s *Server) listOrders(c echo.Context) error {
	orders, err := s.store.ListOrders(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	order, err := s.store.GetOrder(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// saveOrder runs the full reconciliation workflow: stock restored for a
// prior version of the order, then consumed for the submitted items.
func (s *Server) saveOrder(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		order.ID = id
	}
	if err := s.inventory.SaveOrder(c.Request().Context(), &order); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.inventory.DeleteOrder(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	requestLogger(c).Info("order deleted", zap.Int64("id", id))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) orderTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	path, err := s.reports.OrderTicket(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"file_path": path})
}

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func (s *Server) listCategories(c echo.Context) error {
	categories, err := s.store.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *Server) getCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	category, err := s.store.GetCategory(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) saveCategory(c echo.Context) error {
	var category model.Category
	if err := c.Bind(&category); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		category.ID = id
	}
	if err := s.store.SaveCategory(c.Request().Context(), &category); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.store.DeleteCategory(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	requestLogger(c).Info("category deleted", zap.Int64("id", id))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listSuppliers(c echo.Context) error {
	suppliers, err := s.store.ListSuppliers(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, suppliers)
}

func (s *Server) getSupplier(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	supplier, err := s.store.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, supplier)
}

func (s *Server) saveSupplier(c echo.Context) error {
	var supplier model.Supplier
	if err := c.Bind(&supplier); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		supplier.ID = id
	}
	if err := s.store.SaveSupplier(c.Request().Context(), &supplier); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, supplier)
}

func (s *Server) deleteSupplier(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.store.DeleteSupplier(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listCustomers(c echo.Context) error {
	customers, err := s.store.ListCustomers(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (s *Server) getCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	customer, err := s.store.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (s *Server) saveCustomer(c echo.Context) error {
	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		customer.ID = id
	}
	if err := s.store.SaveCustomer(c.Request().Context(), &customer); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.store.DeleteCustomer(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

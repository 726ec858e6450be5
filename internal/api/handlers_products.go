package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func (s *Server) listProducts(c echo.Context) error {
	products, err := s.store.ListProducts(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) listLowStockProducts(c echo.Context) error {
	products, err := s.store.ListLowStockProducts(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	product, err := s.store.GetProduct(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) getProductBySKU(c echo.Context) error {
	product, err := s.store.GetProductBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) saveProduct(c echo.Context) error {
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		product.ID = id
	}
	if err := s.store.SaveProduct(c.Request().Context(), &product); err != nil {
		return httpError(c, err)
	}
	requestLogger(c).Info("product saved",
		zap.Int64("id", product.ID),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.store.DeleteProduct(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

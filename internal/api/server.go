package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/config"
	"github.com/stockroomhq/stockroom/internal/importer"
	"github.com/stockroomhq/stockroom/internal/inventory"
	"github.com/stockroomhq/stockroom/internal/report"
	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/jwtauth"
)

// Deps collects everything the HTTP layer needs.
type Deps struct {
	Store     storage.Storage
	Inventory *inventory.Service
	Auth      *auth.Service
	Reports   *report.Generator
	Importer  *importer.Importer
	Settings  *config.Settings
	JWT       *jwtauth.JWTUtil
	Log       *zap.Logger
}

// Server wraps the Echo instance and its dependencies.
type Server struct {
	echo      *echo.Echo
	store     storage.Storage
	inventory *inventory.Service
	auth      *auth.Service
	reports   *report.Generator
	importer  *importer.Importer
	settings  *config.Settings
	jwt       *jwtauth.JWTUtil
	log       *zap.Logger
}

// NewServer builds the router with middleware and all routes registered.
func NewServer(d Deps) *Server {
	s := &Server{
		store:     d.Store,
		inventory: d.Inventory,
		auth:      d.Auth,
		reports:   d.Reports,
		importer:  d.Importer,
		settings:  d.Settings,
		jwt:       d.JWT,
		log:       d.Log,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(s.requestIDMiddleware)
	e.Use(accessLogMiddleware)
	e.Use(metricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.POST("/api/auth/login", s.login)

	api := e.Group("/api", s.authMiddleware)

	api.GET("/categories", s.listCategories)
	api.GET("/categories/:id", s.getCategory)
	api.POST("/categories", s.saveCategory)
	api.PUT("/categories/:id", s.saveCategory)
	api.DELETE("/categories/:id", s.deleteCategory)

	api.GET("/suppliers", s.listSuppliers)
	api.GET("/suppliers/:id", s.getSupplier)
	api.POST("/suppliers", s.saveSupplier)
	api.PUT("/suppliers/:id", s.saveSupplier)
	api.DELETE("/suppliers/:id", s.deleteSupplier)

	api.GET("/customers", s.listCustomers)
	api.GET("/customers/:id", s.getCustomer)
	api.POST("/customers", s.saveCustomer)
	api.PUT("/customers/:id", s.saveCustomer)
	api.DELETE("/customers/:id", s.deleteCustomer)

	api.GET("/products", s.listProducts)
	api.GET("/products/low-stock", s.listLowStockProducts)
	api.GET("/products/sku/:sku", s.getProductBySKU)
	api.GET("/products/:id", s.getProduct)
	api.POST("/products", s.saveProduct)
	api.PUT("/products/:id", s.saveProduct)
	api.DELETE("/products/:id", s.deleteProduct)

	api.GET("/orders", s.listOrders)
	api.GET("/orders/:id", s.getOrder)
	api.POST("/orders", s.saveOrder)
	api.PUT("/orders/:id", s.saveOrder)
	api.DELETE("/orders/:id", s.deleteOrder)
	api.POST("/orders/:id/ticket", s.orderTicket)

	api.GET("/adjustments", s.listAdjustments)
	api.GET("/adjustments/:id", s.getAdjustment)
	api.POST("/adjustments", s.saveAdjustment)
	api.PUT("/adjustments/:id", s.saveAdjustment)
	api.DELETE("/adjustments/:id", s.deleteAdjustment)

	api.GET("/reports", s.listReports)
	api.POST("/reports", s.generateReport)

	api.GET("/settings", s.listSettings)
	api.PUT("/settings", s.putSetting)

	admin := api.Group("", requireAdmin)
	admin.POST("/import", s.runImport)
	admin.GET("/users", s.listUsers)
	admin.GET("/users/:id", s.getUser)
	admin.POST("/users", s.saveUser)
	admin.PUT("/users/:id", s.saveUser)
	admin.DELETE("/users/:id", s.deactivateUser)

	s.echo = e
	return s
}

// Start begins serving on the given port. It blocks until Shutdown is
// called or the listener fails.
func (s *Server) Start(port string) error {
	return s.echo.Start(":" + port)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

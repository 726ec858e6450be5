package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/pkg/model"
)

const (
	ctxRequestID = "request_id"
	ctxLogger    = "logger"
	ctxUserID    = "user_id"
	ctxUsername  = "username"
	ctxRole      = "role"
)

// requestIDMiddleware tags every request with a unique ID and a scoped
// logger so handler log lines can be correlated.
func (s *Server) requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.New().String()
		c.Request().Header.Set("X-Request-ID", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)
		c.Set(ctxRequestID, requestID)
		c.Set(ctxLogger, s.log.With(zap.String("request_id", requestID)))
		return next(c)
	}
}

// metricsMiddleware records request count and duration per route.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		return err
	}
}

// accessLogMiddleware emits one structured line per completed request.
func accessLogMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		log := requestLogger(c)
		log.Info("request completed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("duration", time.Since(start)))
		return err
	}
}

// authMiddleware validates the bearer token and stores the caller's
// identity in the request context.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := requestLogger(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := s.jwt.ValidateToken(parts[1])
		if err != nil {
			log.Warn("invalid token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		return next(c)
	}
}

// requireAdmin guards routes that mutate user accounts.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ctxRole).(string)
		if role != string(model.RoleAdmin) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin role required"})
		}
		return next(c)
	}
}

// requestLogger returns the request-scoped logger, falling back to the
// global logger when middleware has not run.
func requestLogger(c echo.Context) *zap.Logger {
	if log, ok := c.Get(ctxLogger).(*zap.Logger); ok {
		return log
	}
	return zap.L()
}

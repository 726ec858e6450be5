package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/pkg/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user, err := s.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		loginAttemptsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, model.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return httpError(c, err)
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return httpError(c, err)
	}

	loginAttemptsTotal.WithLabelValues("success").Inc()
	requestLogger(c).Info("user logged in", zap.String("username", user.Username))
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.store.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) getUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	user, err := s.store.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

type saveUserRequest struct {
	model.User
	Password string `json:"password"`
}

func (s *Server) saveUser(c echo.Context) error {
	var req saveUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := pathID(c)
		if err != nil {
			return httpError(c, err)
		}
		req.User.ID = id
	}
	if err := s.auth.SaveUser(c.Request().Context(), &req.User, req.Password); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, req.User)
}

// deactivateUser disables the account; user rows are never removed.
func (s *Server) deactivateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(c, err)
	}
	if err := s.auth.DeactivateUser(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type putSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (s *Server) listSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.settings.All())
}

func (s *Server) putSetting(c echo.Context) error {
	var req putSettingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "key is required"})
	}
	if err := s.settings.Set(req.Key, req.Value); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, s.settings.All())
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
)

// Auth handlers
func (s *Server) login(c echo.Context) error {
	var req admin.LoginRequest
	if err := c.Bind(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, err.Error())
	}

	tokens, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		return helpers.Fail(c, http.StatusUnauthorized, "invalid credentials")
	}
	return helpers.OK(c, tokens)
}

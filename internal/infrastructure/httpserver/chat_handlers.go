package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// Chat handler
func (s *Server) sendChatMessage(c echo.Context) error {
	var req chat.MessageRequest
	if err := c.Bind(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	resp, err := s.chatSvc.SendMessage(c.Request().Context(), &req)
	if err != nil {
		var se *upstream.StatusError
		if !errors.As(err, &se) {
			return helpers.Fail(c, http.StatusBadRequest, err.Error())
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, resp)
}

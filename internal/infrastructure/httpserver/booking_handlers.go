package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// Booking handlers
func (s *Server) createBooking(c echo.Context) error {
	var req booking.CreateRequest
	if err := c.Bind(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, err.Error())
	}

	created, err := s.bookingSvc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		var se *upstream.StatusError
		if !errors.As(err, &se) {
			// Validation failures happen before any upstream call.
			return helpers.Fail(c, http.StatusBadRequest, err.Error())
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.Created(c, created)
}

func (s *Server) getBooking(c echo.Context) error {
	id := c.Param("id")

	b, err := s.bookingSvc.GetBooking(c.Request().Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "booking not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, b)
}

func (s *Server) listGuestBookings(c echo.Context) error {
	guestEmail := strings.TrimSpace(c.QueryParam("guest_email"))
	if guestEmail == "" {
		return helpers.Fail(c, http.StatusBadRequest, "guest_email query parameter is required")
	}

	bookings, err := s.bookingSvc.ListGuestBookings(c.Request().Context(), guestEmail)
	if err != nil {
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, bookings)
}

func (s *Server) cancelBooking(c echo.Context) error {
	id := c.Param("id")

	cancelled, err := s.bookingSvc.CancelBooking(c.Request().Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "booking not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, cancelled)
}

package helpers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// Response is the uniform envelope the gateway emits, mirroring the shape
// the backend microservices use so clients see one format end to end.
type Response struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
	Errors  []string       `json:"errors,omitempty"`
	Meta    *upstream.Meta `json:"meta,omitempty"`
}

func newMeta(pagination *upstream.Pagination) *upstream.Meta {
	return &upstream.Meta{
		Pagination: pagination,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    "1.0",
	}
}

// OK writes a success envelope with the given payload.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Meta: newMeta(nil)})
}

// OKPaged writes a success envelope carrying pagination metadata.
func OKPaged(c echo.Context, data any, pagination *upstream.Pagination) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Meta: newMeta(pagination)})
}

// Created writes a success envelope with status 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data, Meta: newMeta(nil)})
}

// Message writes a success envelope carrying only a message.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Message: message, Meta: newMeta(nil)})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Errors: []string{message}, Meta: newMeta(nil)})
}

// FailFromError maps an error to a failure envelope. Upstream status
// errors keep their original HTTP status; everything else is a 500.
func FailFromError(c echo.Context, err error) error {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return Fail(c, se.Status, se.Message)
	}
	return Fail(c, http.StatusInternalServerError, err.Error())
}

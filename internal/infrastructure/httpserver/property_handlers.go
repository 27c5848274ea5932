package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// Property handlers
func (s *Server) searchProperties(c echo.Context) error {
	spec := parseSearchSpec(c)

	result, stats, err := s.propertySvc.Search(c.Request().Context(), spec)
	if err != nil {
		return helpers.FailFromError(c, err)
	}

	return helpers.OKPaged(c, map[string]any{
		"items":     result,
		"total":     stats.Matched,
		"excluded":  stats.DistanceExcluded,
		"malformed": stats.Malformed,
	}, &upstream.Pagination{
		Page:       1,
		Limit:      stats.Matched,
		Total:      stats.Matched,
		TotalPages: 1,
	})
}

func (s *Server) getProperty(c echo.Context) error {
	id := c.Param("id")

	p, err := s.propertySvc.GetProperty(c.Request().Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "property not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, p)
}

func (s *Server) createProperty(c echo.Context) error {
	var req property.CreateRequest
	if err := c.Bind(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, err.Error())
	}

	created, err := s.propertySvc.CreateProperty(c.Request().Context(), &req)
	if err != nil {
		return helpers.FailFromError(c, err)
	}
	return helpers.Created(c, created)
}

func (s *Server) updateProperty(c echo.Context) error {
	id := c.Param("id")

	var req property.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return helpers.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.propertySvc.UpdateProperty(c.Request().Context(), id, &req)
	if err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "property not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, updated)
}

func (s *Server) deleteProperty(c echo.Context) error {
	id := c.Param("id")

	if err := s.propertySvc.DeleteProperty(c.Request().Context(), id); err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "property not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.Message(c, "property deleted")
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// POI handlers
func (s *Server) discoverPOIs(c echo.Context) error {
	spec := parseSearchSpec(c)

	result, stats, err := s.poiSvc.Discover(c.Request().Context(), spec)
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

func (s *Server) getPOI(c echo.Context) error {
	id := c.Param("id")

	p, err := s.poiSvc.GetPOI(c.Request().Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return helpers.Fail(c, http.StatusNotFound, "poi not found")
		}
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, p)
}

func (s *Server) listPOICategories(c echo.Context) error {
	categories, err := s.poiSvc.ListCategories(c.Request().Context())
	if err != nil {
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, categories)
}

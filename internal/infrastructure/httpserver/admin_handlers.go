package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/helpers"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

// parseEventFilter builds the analytics filter from the query string.
func parseEventFilter(c echo.Context) *analytics.EventFilter {
	filter := &analytics.EventFilter{}

	if v := c.QueryParam("screen"); v != "" {
		screen := analytics.Screen(v)
		filter.Screen = &screen
	}
	if v := c.QueryParam("start"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.StartTime = &t
		}
	}
	if v := c.QueryParam("end"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.EndTime = &t
		}
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		filter.Offset = v
	}
	return filter
}

// Admin analytics handlers
func (s *Server) getSearchEvents(c echo.Context) error {
	filter := parseEventFilter(c)

	events, total, err := s.analyticsSvc.GetEvents(c.Request().Context(), filter)
	if err != nil {
		return helpers.FailFromError(c, err)
	}

	page := 1
	if filter.Limit > 0 && filter.Offset > 0 {
		page = filter.Offset/filter.Limit + 1
	}
	return helpers.OKPaged(c, events, &upstream.Pagination{
		Page:    page,
		Limit:   filter.Limit,
		Total:   total,
		HasNext: filter.Offset+len(events) < total,
		HasPrev: filter.Offset > 0,
	})
}

func (s *Server) getSearchSummary(c echo.Context) error {
	summary, err := s.analyticsSvc.GetSummary(c.Request().Context(), parseEventFilter(c))
	if err != nil {
		return helpers.FailFromError(c, err)
	}
	return helpers.OK(c, summary)
}

// purgeCaches flushes the named request cache, or all of them when no
// name is given. The acting operator is taken from the JWT context and
// recorded with every purge.
func (s *Server) purgeCaches(c echo.Context) error {
	operatorID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	operatorEmail, err := helpers.GetUserEmailFromContext(c)
	if err != nil {
		return err
	}
	log := s.logger.WithFields(logrus.Fields{
		"user_id": operatorID,
		"email":   operatorEmail,
	})

	name := c.QueryParam("name")
	if name != "" {
		cache, ok := s.caches[name]
		if !ok {
			return helpers.Fail(c, http.StatusNotFound, "unknown cache: "+name)
		}
		if err := cache.Flush(c.Request().Context()); err != nil {
			return helpers.FailFromError(c, err)
		}
		log.WithField("cache", name).Info("Request cache purged")
		return helpers.Message(c, "cache purged: "+name)
	}

	for n, cache := range s.caches {
		if err := cache.Flush(c.Request().Context()); err != nil {
			return helpers.FailFromError(c, err)
		}
		log.WithField("cache", n).Info("Request cache purged")
	}
	return helpers.Message(c, "all caches purged")
}

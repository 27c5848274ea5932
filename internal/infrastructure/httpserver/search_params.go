package httpserver

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

var sortKeys = map[string]search.SortKey{
	"rating":   search.SortByRating,
	"reviews":  search.SortByReviews,
	"distance": search.SortByDistance,
	"price":    search.SortByPrice,
	"name":     search.SortByName,
}

// parseSearchSpec builds the filter/sort configuration from the request
// query string. Unknown sort keys are ignored rather than rejected; the
// result then keeps the order the upstream service delivered.
func parseSearchSpec(c echo.Context) search.Spec {
	spec := search.Spec{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
	}

	if b, err := strconv.ParseBool(c.QueryParam("free_entry")); err == nil {
		spec.FreeEntryOnly = b
	}
	if b, err := strconv.ParseBool(c.QueryParam("open_now")); err == nil {
		spec.OpenNow = b
	}
	if b, err := strconv.ParseBool(c.QueryParam("wheelchair")); err == nil {
		spec.WheelchairAccessible = b
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_distance_km"), 64); err == nil && v > 0 {
		spec.MaxDistanceKm = v
	}

	if key, ok := sortKeys[strings.ToLower(c.QueryParam("sort"))]; ok {
		spec.SortBy = key
		spec.SortDir = search.SortAsc
		if strings.EqualFold(c.QueryParam("order"), string(search.SortDesc)) {
			spec.SortDir = search.SortDesc
		}
	}

	return spec
}

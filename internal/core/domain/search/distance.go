package search

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDistanceKm converts a backend distance display string into
// kilometers. Accepted forms are a number followed by "km" or "m",
// optionally separated by whitespace ("500m", "2.5km", "1.2 km").
func ParseDistanceKm(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("empty distance")
	}

	var num string
	var scale float64
	switch {
	case strings.HasSuffix(v, "km"):
		num = strings.TrimSpace(strings.TrimSuffix(v, "km"))
		scale = 1
	case strings.HasSuffix(v, "m"):
		num = strings.TrimSpace(strings.TrimSuffix(v, "m"))
		scale = 0.001
	default:
		return 0, fmt.Errorf("distance %q: missing km/m unit", s)
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("distance %q: %w", s, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("distance %q: negative", s)
	}
	return f * scale, nil
}

package analytics

import (
	"time"

	"github.com/google/uuid"
)

// SearchEvent records one executed discovery search: what was asked for
// and what the pipeline did with it. Exclusion counts make the fail-safe
// distance policy observable instead of silent.
type SearchEvent struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Screen         Screen         `json:"screen" db:"screen"`
	Query          string         `json:"query" db:"query"`
	Category       string         `json:"category" db:"category"`
	Filters        map[string]any `json:"filters" db:"-"`
	ResultCount    int            `json:"result_count" db:"result_count"`
	ExcludedCount  int            `json:"excluded_count" db:"excluded_count"`
	MalformedCount int            `json:"malformed_count" db:"malformed_count"`
	DurationMillis int64          `json:"duration_ms" db:"duration_ms"`
	Timestamp      time.Time      `json:"timestamp" db:"timestamp"`
}

// Screen identifies which discovery surface issued the search.
type Screen string

const (
	ScreenProperties Screen = "properties"
	ScreenPOIs       Screen = "pois"
)

// EventFilter narrows listing/aggregation of search events.
type EventFilter struct {
	Screen    *Screen
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Offset    int
}

// QueryCount is one row of the top-queries aggregation for the admin
// dashboard.
type QueryCount struct {
	Query string `json:"query" db:"query"`
	Count int    `json:"count" db:"count"`
}

// Summary aggregates search activity for the admin dashboard.
type Summary struct {
	TotalSearches  int            `json:"total_searches"`
	ByScreen       map[Screen]int `json:"by_screen"`
	TopQueries     []QueryCount   `json:"top_queries"`
	TotalExcluded  int            `json:"total_excluded"`
	TotalMalformed int            `json:"total_malformed"`
}

package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
)

// AnalyticsRepository defines search-event persistence.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *analytics.SearchEvent) error
	List(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, error)
	Count(ctx context.Context, filter *analytics.EventFilter) (int, error)
	TopQueries(ctx context.Context, filter *analytics.EventFilter, limit int) ([]analytics.QueryCount, error)
	// SumExclusions totals excluded and malformed counts over matching
	// events.
	SumExclusions(ctx context.Context, filter *analytics.EventFilter) (excluded int, malformed int, err error)
}

// AnalyticsService defines search-analytics business logic.
type AnalyticsService interface {
	// RecordSearch persists one executed search. Failures are logged,
	// not propagated: analytics must never break a discovery screen.
	RecordSearch(ctx context.Context, event *analytics.SearchEvent)
	GetEvents(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, int, error)
	GetSummary(ctx context.Context, filter *analytics.EventFilter) (*analytics.Summary, error)
}

package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
)

type PropertyService struct {
	client    ports.PropertyClient
	cache     ports.Cache
	analytics ports.AnalyticsService
	searchTTL time.Duration
	detailTTL time.Duration
	logger    *logrus.Logger
}

func NewPropertyService(client ports.PropertyClient, cache ports.Cache, analyticsSvc ports.AnalyticsService, searchTTL, detailTTL time.Duration, logger *logrus.Logger) ports.PropertyService {
	return &PropertyService{
		client:    client,
		cache:     cache,
		analytics: analyticsSvc,
		searchTTL: searchTTL,
		detailTTL: detailTTL,
		logger:    logger,
	}
}

// Search fetches the candidate set cache-aside from the upstream property
// service and derives the visible list with the filter/sort pipeline.
// Only the category narrows the upstream query; every other predicate is
// applied locally so one cached candidate set serves many filter
// combinations within the TTL window.
func (s *PropertyService) Search(ctx context.Context, spec search.Spec) ([]property.Property, search.Stats, error) {
	params := map[string]any{}
	if spec.Category != "" {
		params["category"] = spec.Category
	}
	key := requestcache.Key(http.MethodGet, "search", params)

	all, err := loadThroughCache(s.cache, ctx, "property", key, s.searchTTL, func() ([]property.Property, error) {
		items, _, err := s.client.Search(ctx, params)
		return items, err
	})
	if err != nil {
		return nil, search.Stats{}, err
	}

	started := time.Now()
	result, stats := search.Apply(all, spec)
	observeExclusions(string(analytics.ScreenProperties), stats)

	if s.analytics != nil {
		s.analytics.RecordSearch(ctx, &analytics.SearchEvent{
			Screen:         analytics.ScreenProperties,
			Query:          spec.Query,
			Category:       spec.Category,
			Filters:        filtersForEvent(spec),
			ResultCount:    stats.Matched,
			ExcludedCount:  stats.DistanceExcluded,
			MalformedCount: stats.Malformed,
			DurationMillis: time.Since(started).Milliseconds(),
		})
	}
	return result, stats, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*property.Property, error) {
	if id == "" {
		return nil, fmt.Errorf("property id is required")
	}
	key := requestcache.Key(http.MethodGet, "properties/"+id, nil)
	p, err := loadThroughCache(s.cache, ctx, "property", key, s.detailTTL, func() (property.Property, error) {
		got, err := s.client.Get(ctx, id)
		if err != nil {
			return property.Property{}, err
		}
		return *got, nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *property.CreateRequest) (*property.Property, error) {
	created, err := s.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	// New listings change every aggregate result set.
	invalidateSilently(s.cache, ctx, "search")
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"property_id": created.ID}).Info("property created; search cache invalidated")
	}
	return created, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error) {
	if id == "" {
		return nil, fmt.Errorf("property id is required")
	}
	updated, err := s.client.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	invalidateSilently(s.cache, ctx, "properties/"+id, "search")
	return updated, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("property id is required")
	}
	if err := s.client.Delete(ctx, id); err != nil {
		return err
	}
	invalidateSilently(s.cache, ctx, "properties/"+id, "search")
	return nil
}

// filtersForEvent snapshots the active toggles for the analytics record.
func filtersForEvent(spec search.Spec) map[string]any {
	f := map[string]any{}
	if spec.FreeEntryOnly {
		f["free_entry"] = true
	}
	if spec.OpenNow {
		f["open_now"] = true
	}
	if spec.WheelchairAccessible {
		f["wheelchair"] = true
	}
	if spec.MaxDistanceKm > 0 {
		f["max_distance_km"] = spec.MaxDistanceKm
	}
	if spec.SortBy != "" {
		f["sort"] = string(spec.SortBy) + ":" + string(spec.SortDir)
	}
	return f
}

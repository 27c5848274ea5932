package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
)

type POIService struct {
	client    ports.POIClient
	cache     ports.Cache
	analytics ports.AnalyticsService
	searchTTL time.Duration
	detailTTL time.Duration
	logger    *logrus.Logger
}

func NewPOIService(client ports.POIClient, cache ports.Cache, analyticsSvc ports.AnalyticsService, searchTTL, detailTTL time.Duration, logger *logrus.Logger) ports.POIService {
	return &POIService{
		client:    client,
		cache:     cache,
		analytics: analyticsSvc,
		searchTTL: searchTTL,
		detailTTL: detailTTL,
		logger:    logger,
	}
}

// Discover mirrors PropertyService.Search for points of interest: one
// cached candidate set per category, every other predicate and the sort
// applied locally by the pipeline.
func (s *POIService) Discover(ctx context.Context, spec search.Spec) ([]poi.POI, search.Stats, error) {
	params := map[string]any{}
	if spec.Category != "" {
		params["category"] = spec.Category
	}
	key := requestcache.Key(http.MethodGet, "search", params)

	all, err := loadThroughCache(s.cache, ctx, "poi", key, s.searchTTL, func() ([]poi.POI, error) {
		items, _, err := s.client.List(ctx, params)
		return items, err
	})
	if err != nil {
		return nil, search.Stats{}, err
	}

	started := time.Now()
	result, stats := search.Apply(all, spec)
	observeExclusions(string(analytics.ScreenPOIs), stats)

	if s.analytics != nil {
		s.analytics.RecordSearch(ctx, &analytics.SearchEvent{
			Screen:         analytics.ScreenPOIs,
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

func (s *POIService) GetPOI(ctx context.Context, id string) (*poi.POI, error) {
	if id == "" {
		return nil, fmt.Errorf("poi id is required")
	}
	key := requestcache.Key(http.MethodGet, "pois/"+id, nil)
	p, err := loadThroughCache(s.cache, ctx, "poi", key, s.detailTTL, func() (poi.POI, error) {
		got, err := s.client.Get(ctx, id)
		if err != nil {
			return poi.POI{}, err
		}
		return *got, nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCategories caches the category list at detail TTL; it changes far
// slower than listings do.
func (s *POIService) ListCategories(ctx context.Context) ([]poi.Category, error) {
	key := requestcache.Key(http.MethodGet, "pois/categories", nil)
	return loadThroughCache(s.cache, ctx, "poi", key, s.detailTTL, func() ([]poi.Category, error) {
		return s.client.Categories(ctx)
	})
}

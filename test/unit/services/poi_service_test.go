package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
	"github.com/voyago/tourism-platform/go/test/mocks"
)

func testPOIs() []poi.POI {
	return []poi.POI{
		{ID: "m1", Name: "Maritime Museum", Description: "Ships and navigation history", Category: "museum", Rating: 4.4, FreeEntry: false, CurrentlyOpen: true, WheelchairAccessible: true, Distance: "800m", Tags: []string{"history"}},
		{ID: "m2", Name: "City Art Gallery", Description: "Contemporary art", Category: "museum", Rating: 4.8, FreeEntry: true, CurrentlyOpen: false, WheelchairAccessible: true, Distance: "1.2km", Tags: []string{"art"}},
		{ID: "g1", Name: "Botanical Garden", Description: "Rare plants", Category: "park", Rating: 4.6, FreeEntry: true, CurrentlyOpen: true, WheelchairAccessible: false, Distance: "3km", Tags: []string{"nature"}},
	}
}

func TestDiscover_ConjunctiveFilters(t *testing.T) {
	client := &mocks.POIClientMock{
		ListFn: func(ctx context.Context, params map[string]any) ([]poi.POI, int, error) {
			return testPOIs(), 3, nil
		},
	}
	svc := impl.NewPOIService(client, requestcache.NewMemory(), nil, time.Minute, time.Minute, logrus.New())

	// Free entry AND currently open: only the garden satisfies both.
	result, _, err := svc.Discover(context.Background(), search.Spec{FreeEntryOnly: true, OpenNow: true})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "g1", result[0].ID)
}

func TestDiscover_CachePerCategory(t *testing.T) {
	var seenParams []map[string]any
	client := &mocks.POIClientMock{
		ListFn: func(ctx context.Context, params map[string]any) ([]poi.POI, int, error) {
			seenParams = append(seenParams, params)
			return testPOIs(), 3, nil
		},
	}
	svc := impl.NewPOIService(client, requestcache.NewMemory(), nil, time.Minute, time.Minute, logrus.New())

	_, _, err := svc.Discover(context.Background(), search.Spec{Category: "museum"})
	require.NoError(t, err)
	// Different local-only filter, same category: must reuse the cached set.
	_, _, err = svc.Discover(context.Background(), search.Spec{Category: "museum", FreeEntryOnly: true})
	require.NoError(t, err)
	// New category is a different candidate set.
	_, _, err = svc.Discover(context.Background(), search.Spec{Category: "park"})
	require.NoError(t, err)

	require.Len(t, seenParams, 2)
	require.Equal(t, "museum", seenParams[0]["category"])
	require.Equal(t, "park", seenParams[1]["category"])
}

func TestDiscover_RecordsAnalyticsWithScreen(t *testing.T) {
	client := &mocks.POIClientMock{
		ListFn: func(ctx context.Context, params map[string]any) ([]poi.POI, int, error) {
			return testPOIs(), 3, nil
		},
	}
	var recorded *analytics.SearchEvent
	analyticsSvc := &mocks.AnalyticsServiceMock{
		RecordSearchFn: func(ctx context.Context, event *analytics.SearchEvent) { recorded = event },
	}
	svc := impl.NewPOIService(client, requestcache.NewMemory(), analyticsSvc, time.Minute, time.Minute, logrus.New())

	_, _, err := svc.Discover(context.Background(), search.Spec{Query: "art"})
	require.NoError(t, err)
	require.NotNil(t, recorded)
	require.Equal(t, analytics.ScreenPOIs, recorded.Screen)
}

func TestListCategories_Cached(t *testing.T) {
	calls := 0
	client := &mocks.POIClientMock{
		CategoriesFn: func(ctx context.Context) ([]poi.Category, error) {
			calls++
			return []poi.Category{{Slug: "museum", Label: "Museums", Count: 2}}, nil
		},
	}
	svc := impl.NewPOIService(client, requestcache.NewMemory(), nil, time.Minute, time.Minute, logrus.New())

	first, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	second, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, first, second)
}

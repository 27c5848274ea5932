package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/test/mocks"
)

func TestRecordSearch_FillsIDAndTimestamp(t *testing.T) {
	var stored *analytics.SearchEvent
	repo := &mocks.AnalyticsRepositoryMock{
		CreateFn: func(ctx context.Context, event *analytics.SearchEvent) error {
			stored = event
			return nil
		},
	}
	svc := impl.NewAnalyticsService(repo, logrus.New())

	svc.RecordSearch(context.Background(), &analytics.SearchEvent{Screen: analytics.ScreenProperties, Query: "beach"})

	require.NotNil(t, stored)
	require.NotEqual(t, uuid.Nil, stored.ID)
	require.False(t, stored.Timestamp.IsZero())
}

func TestRecordSearch_SwallowsStorageErrors(t *testing.T) {
	repo := &mocks.AnalyticsRepositoryMock{
		CreateFn: func(ctx context.Context, event *analytics.SearchEvent) error {
			return fmt.Errorf("db down")
		},
	}
	svc := impl.NewAnalyticsService(repo, logrus.New())

	// Must not panic or propagate; analytics is best-effort.
	svc.RecordSearch(context.Background(), &analytics.SearchEvent{Screen: analytics.ScreenPOIs})
}

func TestGetSummary_Aggregates(t *testing.T) {
	repo := &mocks.AnalyticsRepositoryMock{
		CountFn: func(ctx context.Context, filter *analytics.EventFilter) (int, error) {
			if filter.Screen == nil {
				return 10, nil
			}
			if *filter.Screen == analytics.ScreenProperties {
				return 7, nil
			}
			return 3, nil
		},
		TopQueriesFn: func(ctx context.Context, filter *analytics.EventFilter, limit int) ([]analytics.QueryCount, error) {
			return []analytics.QueryCount{{Query: "museum", Count: 4}}, nil
		},
		SumExclusionsFn: func(ctx context.Context, filter *analytics.EventFilter) (int, int, error) {
			return 5, 2, nil
		},
	}
	svc := impl.NewAnalyticsService(repo, logrus.New())

	summary, err := svc.GetSummary(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 10, summary.TotalSearches)
	require.Equal(t, 7, summary.ByScreen[analytics.ScreenProperties])
	require.Equal(t, 3, summary.ByScreen[analytics.ScreenPOIs])
	require.Equal(t, 5, summary.TotalExcluded)
	require.Equal(t, 2, summary.TotalMalformed)
	require.Len(t, summary.TopQueries, 1)
}

func TestGetEvents_DefaultsLimit(t *testing.T) {
	var seen *analytics.EventFilter
	repo := &mocks.AnalyticsRepositoryMock{
		ListFn: func(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, error) {
			seen = filter
			return nil, nil
		},
	}
	svc := impl.NewAnalyticsService(repo, logrus.New())

	_, _, err := svc.GetEvents(context.Background(), &analytics.EventFilter{Limit: 0})
	require.NoError(t, err)
	require.Equal(t, 50, seen.Limit)
}

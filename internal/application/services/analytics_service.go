package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

type AnalyticsService struct {
	repo   ports.AnalyticsRepository
	logger *logrus.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, logger *logrus.Logger) ports.AnalyticsService {
	return &AnalyticsService{repo: repo, logger: logger}
}

// RecordSearch persists one executed search. A storage failure is logged
// and swallowed so analytics can never break a discovery screen.
func (s *AnalyticsService) RecordSearch(ctx context.Context, event *analytics.SearchEvent) {
	if s.repo == nil {
		return
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"screen": event.Screen,
			"query":  event.Query,
		}).Warn("Failed to record search event")
	}
}

func (s *AnalyticsService) GetEvents(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, int, error) {
	if filter == nil {
		filter = &analytics.EventFilter{}
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// GetSummary aggregates search activity for the dashboard.
func (s *AnalyticsService) GetSummary(ctx context.Context, filter *analytics.EventFilter) (*analytics.Summary, error) {
	if filter == nil {
		filter = &analytics.EventFilter{}
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	byScreen := make(map[analytics.Screen]int)
	for _, screen := range []analytics.Screen{analytics.ScreenProperties, analytics.ScreenPOIs} {
		sc := screen
		f := *filter
		f.Screen = &sc
		n, err := s.repo.Count(ctx, &f)
		if err != nil {
			return nil, err
		}
		byScreen[screen] = n
	}

	top, err := s.repo.TopQueries(ctx, filter, 10)
	if err != nil {
		return nil, err
	}

	excluded, malformed, err := s.repo.SumExclusions(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &analytics.Summary{
		TotalSearches:  total,
		ByScreen:       byScreen,
		TopQueries:     top,
		TotalExcluded:  excluded,
		TotalMalformed: malformed,
	}, nil
}

package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/configs"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

type RateLimiterService struct {
	repo   ports.RateLimitRepository
	cfg    *configs.RateLimitConfig
	logger *logrus.Logger
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *configs.RateLimitConfig, logger *logrus.Logger) ports.RateLimiterService {
	return &RateLimiterService{repo: repo, cfg: cfg, logger: logger}
}

// Allow applies a fixed-window counter per client key. Callers fail open
// on err so a limiter outage never takes the gateway down with it.
func (s *RateLimiterService) Allow(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
	limit := s.cfg.RequestsPerMinute
	count, windowStart, err := s.repo.IncrementWindow(ctx, clientKey, s.cfg.Window, s.cfg.KeyPrefix, s.cfg.Window)
	if err != nil {
		return false, 0, limit, time.Time{}, err
	}

	reset := windowStart.Add(s.cfg.Window)
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	if count > limit {
		s.logger.WithFields(logrus.Fields{"client": clientKey, "count": count}).Debug("Rate limit exceeded")
		return false, 0, limit, reset, nil
	}
	return true, remaining, limit, reset, nil
}

package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/voyago/tourism-platform/go/internal/core/ports"
	infraDB "github.com/voyago/tourism-platform/go/internal/infrastructure/db"
)

// dbHealthChecker wraps the database for health checks.
type dbHealthChecker struct{ db *infraDB.Database }

func (d *dbHealthChecker) Name() string                    { return "database" }
func (d *dbHealthChecker) Check(ctx context.Context) error { return d.db.DB.PingContext(ctx) }

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// upstreamHealthChecker probes an upstream service's health endpoint.
type upstreamHealthChecker struct {
	name    string
	baseURL string
	client  *http.Client
}

func (u *upstreamHealthChecker) Name() string { return u.name }

func (u *upstreamHealthChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s health endpoint returned %d", u.name, resp.StatusCode)
	}
	return nil
}

// NewDBHealthChecker creates a health checker for the database.
func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker { return &dbHealthChecker{db: db} }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// NewUpstreamHealthChecker creates a health checker for one upstream service.
func NewUpstreamHealthChecker(name, baseURL string, client *http.Client) ports.HealthChecker {
	if client == nil {
		client = &http.Client{}
	}
	return &upstreamHealthChecker{name: name, baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

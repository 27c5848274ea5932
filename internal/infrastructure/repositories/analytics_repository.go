package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/db"
)

type analyticsRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository
func NewAnalyticsRepository(database *db.Database, logger *logrus.Logger) ports.AnalyticsRepository {
	return &analyticsRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new search event into the database
func (r *analyticsRepository) Create(ctx context.Context, event *analytics.SearchEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var filtersJSON []byte
	var err error
	if event.Filters != nil {
		filtersJSON, err = json.Marshal(event.Filters)
		if err != nil {
			return err
		}
	}

	query := `
		INSERT INTO search_events (
			id, screen, query, category, filters,
			result_count, excluded_count, malformed_count, duration_ms, timestamp
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err = r.db.DB.ExecContext(ctx, query,
		event.ID,
		event.Screen,
		event.Query,
		event.Category,
		filtersJSON,
		event.ResultCount,
		event.ExcludedCount,
		event.MalformedCount,
		event.DurationMillis,
		event.Timestamp,
	)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"screen": event.Screen, "query": event.Query}).WithError(err).Error("db: failed to insert search event")
		}
		return err
	}
	return nil
}

// List retrieves search events based on the provided filter
func (r *analyticsRepository) List(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, error) {
	query, args := r.buildListQuery(filter, false)
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to execute search event list query")
		}
		return nil, err
	}
	defer rows.Close()

	var events []*analytics.SearchEvent
	for rows.Next() {
		event := &analytics.SearchEvent{}
		var filtersJSON sql.NullString

		err := rows.Scan(
			&event.ID,
			&event.Screen,
			&event.Query,
			&event.Category,
			&filtersJSON,
			&event.ResultCount,
			&event.ExcludedCount,
			&event.MalformedCount,
			&event.DurationMillis,
			&event.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		if filtersJSON.Valid && filtersJSON.String != "" {
			var filters map[string]any
			if err := json.Unmarshal([]byte(filtersJSON.String), &filters); err == nil {
				event.Filters = filters
			}
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: error iterating search event rows")
		}
		return nil, err
	}

	return events, nil
}

// Count returns the total number of search events matching the filter
func (r *analyticsRepository) Count(ctx context.Context, filter *analytics.EventFilter) (int, error) {
	query, args := r.buildListQuery(filter, true)

	var count int
	err := r.db.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to execute search event count query")
		}
		return 0, err
	}
	return count, nil
}

// TopQueries returns the most frequent non-empty query strings matching the filter
func (r *analyticsRepository) TopQueries(ctx context.Context, filter *analytics.EventFilter, limit int) ([]analytics.QueryCount, error) {
	if limit <= 0 {
		limit = 10
	}

	conditions, args, argIndex := r.buildConditions(filter)
	conditions = append(conditions, "query <> ''")

	query := "SELECT query, COUNT(*) AS count FROM search_events WHERE " +
		strings.Join(conditions, " AND ") +
		" GROUP BY query ORDER BY count DESC, query ASC LIMIT $" + strconv.Itoa(argIndex)
	args = append(args, limit)

	var result []analytics.QueryCount
	if err := r.db.DB.SelectContext(ctx, &result, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to execute top queries aggregation")
		}
		return nil, err
	}
	return result, nil
}

// SumExclusions totals the excluded and malformed counters over matching events
func (r *analyticsRepository) SumExclusions(ctx context.Context, filter *analytics.EventFilter) (int, int, error) {
	conditions, args, _ := r.buildConditions(filter)

	query := "SELECT COALESCE(SUM(excluded_count), 0), COALESCE(SUM(malformed_count), 0) FROM search_events"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var excluded, malformed int
	row := r.db.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&excluded, &malformed); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to execute exclusion aggregation")
		}
		return 0, 0, err
	}
	return excluded, malformed, nil
}

// buildConditions renders the shared WHERE fragment for the filter
func (r *analyticsRepository) buildConditions(filter *analytics.EventFilter) ([]string, []interface{}, int) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.Screen != nil {
			conditions = append(conditions, "screen = $"+strconv.Itoa(argIndex))
			args = append(args, string(*filter.Screen))
			argIndex++
		}

		if filter.StartTime != nil {
			conditions = append(conditions, "timestamp >= $"+strconv.Itoa(argIndex))
			args = append(args, *filter.StartTime)
			argIndex++
		}

		if filter.EndTime != nil {
			conditions = append(conditions, "timestamp <= $"+strconv.Itoa(argIndex))
			args = append(args, *filter.EndTime)
			argIndex++
		}
	}

	return conditions, args, argIndex
}

// buildListQuery constructs the SQL query and arguments for listing/counting search events
func (r *analyticsRepository) buildListQuery(filter *analytics.EventFilter, isCount bool) (string, []interface{}) {
	var selectClause string
	if isCount {
		selectClause = "SELECT COUNT(*)"
	} else {
		selectClause = `SELECT
			id, screen, query, category, filters,
			result_count, excluded_count, malformed_count, duration_ms, timestamp`
	}

	query := selectClause + " FROM search_events"
	conditions, args, argIndex := r.buildConditions(filter)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if !isCount {
		query += " ORDER BY timestamp DESC"

		if filter != nil {
			if filter.Limit > 0 {
				query += " LIMIT $" + strconv.Itoa(argIndex)
				args = append(args, filter.Limit)
				argIndex++
			}

			if filter.Offset > 0 {
				query += " OFFSET $" + strconv.Itoa(argIndex)
				args = append(args, filter.Offset)
				argIndex++
			}
		}
	}

	return query, args
}

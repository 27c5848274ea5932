package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// StatusError is a normalized upstream failure: one readable message plus
// the upstream HTTP status for edge mapping.
type StatusError struct {
	Service string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: %s (status %d)", e.Service, e.Message, e.Status)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// client is the shared HTTP plumbing for all upstream service clients:
// per-call deadline, envelope decoding and error normalization. The
// deadline doubles as the cancellation mechanism for superseded requests:
// callers that abandon a request cancel its context and the transport
// drops the in-flight call.
type client struct {
	service string
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *logrus.Logger
}

func newClient(service, baseURL string, httpClient *http.Client, timeout time.Duration, logger *logrus.Logger) *client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		timeout: timeout,
		logger:  logger,
	}
}

// do executes one request and unwraps the envelope into out (which may be
// nil for operations without a payload). It returns the envelope meta for
// callers that need pagination.
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*Meta, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("upstream %s: encode request: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: build request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", c.service, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: read response: %w", c.service, err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &StatusError{Service: c.service, Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("upstream %s: decode envelope: %w", c.service, err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" && len(env.Errors) > 0 {
			msg = strings.Join(env.Errors, "; ")
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		status := resp.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"service": c.service, "method": method, "path": path, "status": resp.StatusCode}).Warn("upstream call failed")
		}
		return nil, &StatusError{Service: c.service, Status: status, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("upstream %s: decode data: %w", c.service, err)
		}
	}
	return env.Meta, nil
}

// getList fetches a paginated list payload and returns the items plus the
// upstream total.
func getList[T any](ctx context.Context, c *client, path string, query url.Values) ([]T, int, error) {
	var page pagedItems[T]
	if _, err := c.do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, 0, err
	}
	total := page.Pagination.Total
	if total == 0 {
		total = len(page.Items)
	}
	return page.Items, total, nil
}

// queryFromParams flattens normalized request params into URL query
// values.
func queryFromParams(params map[string]any) url.Values {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, fmt.Sprintf("%v", v))
	}
	return q
}

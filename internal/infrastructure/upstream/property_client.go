package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// PropertyClient implements ports.PropertyClient over the upstream
// property service REST API.
type PropertyClient struct {
	c *client
}

func NewPropertyClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *logrus.Logger) *PropertyClient {
	return &PropertyClient{c: newClient("property", baseURL, httpClient, timeout, logger)}
}

func (p *PropertyClient) Search(ctx context.Context, params map[string]any) ([]property.Property, int, error) {
	return getList[property.Property](ctx, p.c, "/properties", queryFromParams(params))
}

func (p *PropertyClient) Get(ctx context.Context, id string) (*property.Property, error) {
	var out property.Property
	if _, err := p.c.do(ctx, http.MethodGet, "/properties/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PropertyClient) Create(ctx context.Context, req *property.CreateRequest) (*property.Property, error) {
	var out property.Property
	if _, err := p.c.do(ctx, http.MethodPost, "/properties", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PropertyClient) Update(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error) {
	var out property.Property
	if _, err := p.c.do(ctx, http.MethodPut, "/properties/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PropertyClient) Delete(ctx context.Context, id string) error {
	_, err := p.c.do(ctx, http.MethodDelete, "/properties/"+id, nil, nil, nil)
	return err
}

var _ ports.PropertyClient = (*PropertyClient)(nil)

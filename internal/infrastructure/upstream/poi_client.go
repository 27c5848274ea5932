package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// POIClient implements ports.POIClient over the upstream POI service.
type POIClient struct {
	c *client
}

func NewPOIClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *logrus.Logger) *POIClient {
	return &POIClient{c: newClient("poi", baseURL, httpClient, timeout, logger)}
}

func (p *POIClient) List(ctx context.Context, params map[string]any) ([]poi.POI, int, error) {
	return getList[poi.POI](ctx, p.c, "/pois", queryFromParams(params))
}

func (p *POIClient) Get(ctx context.Context, id string) (*poi.POI, error) {
	var out poi.POI
	if _, err := p.c.do(ctx, http.MethodGet, "/pois/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *POIClient) Categories(ctx context.Context) ([]poi.Category, error) {
	var out []poi.Category
	if _, err := p.c.do(ctx, http.MethodGet, "/pois/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ports.POIClient = (*POIClient)(nil)

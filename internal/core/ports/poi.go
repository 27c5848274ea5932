package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

// POIService defines point-of-interest discovery business logic.
type POIService interface {
	Discover(ctx context.Context, spec search.Spec) ([]poi.POI, search.Stats, error)
	GetPOI(ctx context.Context, id string) (*poi.POI, error)
	ListCategories(ctx context.Context) ([]poi.Category, error)
}

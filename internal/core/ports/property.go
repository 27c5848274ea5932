package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

// PropertyService defines the property catalog business logic.
type PropertyService interface {
	// Search fetches the candidate set (cache-aside over the upstream
	// service) and runs the filter/sort pipeline on it.
	Search(ctx context.Context, spec search.Spec) ([]property.Property, search.Stats, error)
	GetProperty(ctx context.Context, id string) (*property.Property, error)
	CreateProperty(ctx context.Context, req *property.CreateRequest) (*property.Property, error)
	UpdateProperty(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

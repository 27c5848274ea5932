package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
)

// PropertyClient talks to the upstream property service.
type PropertyClient interface {
	Search(ctx context.Context, params map[string]any) ([]property.Property, int, error)
	Get(ctx context.Context, id string) (*property.Property, error)
	Create(ctx context.Context, req *property.CreateRequest) (*property.Property, error)
	Update(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error)
	Delete(ctx context.Context, id string) error
}

// POIClient talks to the upstream POI service.
type POIClient interface {
	List(ctx context.Context, params map[string]any) ([]poi.POI, int, error)
	Get(ctx context.Context, id string) (*poi.POI, error)
	Categories(ctx context.Context) ([]poi.Category, error)
}

// BookingClient talks to the upstream booking service.
type BookingClient interface {
	Create(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error)
	Get(ctx context.Context, id string) (*booking.Booking, error)
	ListByGuest(ctx context.Context, guestEmail string) ([]booking.Booking, error)
	Cancel(ctx context.Context, id string) (*booking.Booking, error)
}

// ChatClient talks to the AI assistant upstream.
type ChatClient interface {
	Send(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error)
}

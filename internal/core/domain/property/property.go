package property

import (
	"time"

	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

// Property is a bookable stay listing owned by the upstream property
// service. Instances are decoded from upstream responses and treated as
// immutable within a request.
type Property struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	PriceNight  float64   `json:"price_per_night"`
	Currency    string    `json:"currency"`
	MaxGuests   int       `json:"max_guests"`
	Bedrooms    int       `json:"bedrooms"`
	Distance    string    `json:"distance"` // display string, e.g. "1.2km"
	Tags        []string  `json:"tags"`
	Amenities   []string  `json:"amenities"`
	Photos      []string  `json:"photos"`
	Location    Location  `json:"location"`
	HostName    string    `json:"host_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

// SearchFields implements search.Entity. Properties have no entry-fee or
// opening-hours notion, so the POI-only toggles report as satisfied and a
// spec that activates them simply never excludes a property on that axis.
func (p Property) SearchFields() search.Fields {
	return search.Fields{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Tags:                 p.Tags,
		Category:             p.Category,
		Rating:               p.Rating,
		ReviewCount:          p.ReviewCount,
		Price:                p.PriceNight,
		Distance:             p.Distance,
		FreeEntry:            true,
		CurrentlyOpen:        true,
		WheelchairAccessible: true,
	}
}

// CreateRequest is the payload proxied to the upstream property service.
type CreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	PriceNight  float64  `json:"price_per_night" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"required,len=3"`
	MaxGuests   int      `json:"max_guests" validate:"required,gt=0"`
	Bedrooms    int      `json:"bedrooms"`
	Tags        []string `json:"tags"`
	Amenities   []string `json:"amenities"`
	Location    Location `json:"location"`
	HostName    string   `json:"host_name"`
}

// UpdateRequest carries partial updates; nil fields are left untouched.
type UpdateRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	PriceNight  *float64  `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	MaxGuests   *int      `json:"max_guests,omitempty" validate:"omitempty,gt=0"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

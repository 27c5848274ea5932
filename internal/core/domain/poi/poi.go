package poi

import (
	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

// POI is a point of interest served by the upstream POI service.
type POI struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Rating               float64  `json:"rating"`
	ReviewCount          int      `json:"review_count"`
	EntryPrice           float64  `json:"entry_price"`
	FreeEntry            bool     `json:"free_entry"`
	CurrentlyOpen        bool     `json:"currently_open"`
	WheelchairAccessible bool     `json:"wheelchair_accessible"`
	Distance             string   `json:"distance"` // display string, e.g. "500m"
	Tags                 []string `json:"tags"`
	ImageURL             string   `json:"image_url"`
	Location             Location `json:"location"`
	OpeningHours         string   `json:"opening_hours"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Category is a POI grouping as reported by the upstream service.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SearchFields implements search.Entity.
func (p POI) SearchFields() search.Fields {
	return search.Fields{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Tags:                 p.Tags,
		Category:             p.Category,
		Rating:               p.Rating,
		ReviewCount:          p.ReviewCount,
		Price:                p.EntryPrice,
		Distance:             p.Distance,
		FreeEntry:            p.FreeEntry,
		CurrentlyOpen:        p.CurrentlyOpen,
		WheelchairAccessible: p.WheelchairAccessible,
	}
}

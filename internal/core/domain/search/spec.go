package search

// SortKey selects the field the result list is ordered by.
type SortKey string

const (
	SortByRating   SortKey = "rating"
	SortByReviews  SortKey = "reviews"
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
	SortByName     SortKey = "name"
)

// SortDirection is the ordering direction for a sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Spec is the filter/sort configuration derived from one user interaction.
// Every active predicate is combined as a conjunction: an entity survives
// only if it satisfies all of them. Zero values mean "inactive"; there is
// no implicit merge of partial specs.
type Spec struct {
	// Query is matched case-insensitively as a substring against name,
	// description and tags; a hit on any one of those fields is enough.
	Query string
	// Category must match the entity category exactly (case-insensitive)
	// when non-empty.
	Category string

	FreeEntryOnly        bool
	OpenNow              bool
	WheelchairAccessible bool

	// MaxDistanceKm caps entity distance when > 0. Entities whose distance
	// cannot be parsed are excluded while this filter is active.
	MaxDistanceKm float64

	SortBy  SortKey
	SortDir SortDirection
}

// Active reports whether any filtering predicate is switched on.
func (s Spec) Active() bool {
	return s.Query != "" || s.Category != "" || s.FreeEntryOnly || s.OpenNow ||
		s.WheelchairAccessible || s.MaxDistanceKm > 0
}

// Fields is the flattened, filterable view of a display entity. Domain
// types expose it through the Entity interface so the pipeline stays
// independent of the concrete property/POI shapes.
type Fields struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Category    string
	Rating      float64
	ReviewCount int
	Price       float64
	// Distance is the display string as delivered by the backend, unit
	// suffix included ("500m", "2.5km"). Parsed lazily by the pipeline.
	Distance string

	FreeEntry            bool
	CurrentlyOpen        bool
	WheelchairAccessible bool
}

// Entity is any domain record the pipeline can filter and sort.
type Entity interface {
	SearchFields() Fields
}

// Stats counts what one pipeline run did. Exclusions are reported rather
// than silently dropped so callers can log and export them.
type Stats struct {
	Input            int
	Matched          int
	Malformed        int
	DistanceExcluded int
	Filtered         int
}

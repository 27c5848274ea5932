package search

import (
	"sort"
	"strings"
)

// Apply derives the visible, ordered subset of entities for one spec. It
// is pure: the input slice is never mutated and identical inputs produce
// identical output ordering. Ties under the sort key keep their original
// relative order.
func Apply[T Entity](entities []T, spec Spec) ([]T, Stats) {
	stats := Stats{Input: len(entities)}

	type candidate struct {
		item   T
		fields Fields
	}

	filtering := spec.Active()

	kept := make([]candidate, 0, len(entities))
	for _, e := range entities {
		f := e.SearchFields()

		// Entities missing identity or name are dropped rather than
		// allowed to break rendering downstream.
		if f.ID == "" || f.Name == "" {
			stats.Malformed++
			continue
		}

		if !filtering {
			kept = append(kept, candidate{item: e, fields: f})
			continue
		}

		if spec.MaxDistanceKm > 0 {
			km, err := ParseDistanceKm(f.Distance)
			if err != nil {
				// Fail-safe: an unlocatable entity must not appear under
				// a distance cap.
				stats.DistanceExcluded++
				continue
			}
			if km > spec.MaxDistanceKm {
				stats.Filtered++
				continue
			}
		}

		if !matchesPredicates(f, spec) || !matchesCategory(f, spec) || !matchesQuery(f, spec) {
			stats.Filtered++
			continue
		}

		kept = append(kept, candidate{item: e, fields: f})
	}

	if less := comparator(spec); less != nil {
		sort.SliceStable(kept, func(i, j int) bool {
			return less(kept[i].fields, kept[j].fields)
		})
	}

	out := make([]T, len(kept))
	for i, c := range kept {
		out[i] = c.item
	}
	stats.Matched = len(out)
	return out, stats
}

func matchesPredicates(f Fields, spec Spec) bool {
	if spec.FreeEntryOnly && !f.FreeEntry {
		return false
	}
	if spec.OpenNow && !f.CurrentlyOpen {
		return false
	}
	if spec.WheelchairAccessible && !f.WheelchairAccessible {
		return false
	}
	return true
}

func matchesCategory(f Fields, spec Spec) bool {
	if spec.Category == "" {
		return true
	}
	return strings.EqualFold(f.Category, spec.Category)
}

// matchesQuery is the one OR step of the pipeline: the query needs to hit
// any of name, description or a tag.
func matchesQuery(f Fields, spec Spec) bool {
	q := strings.ToLower(strings.TrimSpace(spec.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Description), q) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// comparator returns the strict less function for the spec's sort key, or
// nil when no sorting was requested. Entities whose distance does not
// parse sort last under the distance key.
func comparator(spec Spec) func(a, b Fields) bool {
	var less func(a, b Fields) bool

	switch spec.SortBy {
	case SortByRating:
		less = func(a, b Fields) bool { return a.Rating < b.Rating }
	case SortByReviews:
		less = func(a, b Fields) bool { return a.ReviewCount < b.ReviewCount }
	case SortByPrice:
		less = func(a, b Fields) bool { return a.Price < b.Price }
	case SortByName:
		less = func(a, b Fields) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByDistance:
		less = func(a, b Fields) bool {
			da, errA := ParseDistanceKm(a.Distance)
			db, errB := ParseDistanceKm(b.Distance)
			if errA != nil && errB != nil {
				return false
			}
			if errA != nil {
				return false
			}
			if errB != nil {
				return true
			}
			return da < db
		}
	default:
		return nil
	}

	if spec.SortDir == SortDesc {
		asc := less
		return func(a, b Fields) bool { return asc(b, a) }
	}
	return less
}

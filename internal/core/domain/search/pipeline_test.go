package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fake is a minimal Entity for pipeline tests.
type fake struct {
	f Fields
}

func (e fake) SearchFields() Fields { return e.f }

func mk(id string, mut func(*Fields)) fake {
	f := Fields{
		ID:                   id,
		Name:                 "entity " + id,
		FreeEntry:            true,
		CurrentlyOpen:        true,
		WheelchairAccessible: true,
	}
	if mut != nil {
		mut(&f)
	}
	return fake{f: f}
}

func ids[T Entity](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.SearchFields().ID
	}
	return out
}

func TestApply_PredicatesAreConjunctive(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.CurrentlyOpen = true; f.FreeEntry = true }),
		mk("b", func(f *Fields) { f.CurrentlyOpen = true; f.FreeEntry = false }),
		mk("c", func(f *Fields) { f.CurrentlyOpen = false; f.FreeEntry = true }),
	}

	out, stats := Apply(entities, Spec{OpenNow: true, FreeEntryOnly: true})

	assert.Equal(t, []string{"a"}, ids(out))
	assert.Equal(t, 2, stats.Filtered)
}

func TestApply_TextMatchIsAnyFieldCaseInsensitive(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.Name = "City Museum" }),
		mk("b", func(f *Fields) { f.Description = "next to the museum quarter" }),
		mk("c", func(f *Fields) { f.Tags = []string{"Museums", "history"} }),
		mk("d", nil),
	}

	out, _ := Apply(entities, Spec{Query: "MUSEUM"})

	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func TestApply_CategoryConjoinsWithText(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.Category = "museums"; f.Name = "Modern Art" }),
		mk("b", func(f *Fields) { f.Category = "parks"; f.Name = "Modern Sculpture Park" }),
	}

	out, _ := Apply(entities, Spec{Query: "modern", Category: "museums"})

	assert.Equal(t, []string{"a"}, ids(out))
}

func TestApply_DistanceFilter(t *testing.T) {
	entities := []fake{
		mk("near", func(f *Fields) { f.Distance = "500m" }),
		mk("far", func(f *Fields) { f.Distance = "2.5km" }),
		mk("unknown", func(f *Fields) { f.Distance = "unknown" }),
		mk("none", nil),
	}

	out, stats := Apply(entities, Spec{MaxDistanceKm: 1})

	assert.Equal(t, []string{"near"}, ids(out))
	// Unparseable and absent distances fail safe under an active
	// distance filter.
	assert.Equal(t, 2, stats.DistanceExcluded)
	assert.Equal(t, 1, stats.Filtered)
}

func TestApply_NoDistanceFilterKeepsUnlocated(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.Distance = "unknown" }),
	}
	out, stats := Apply(entities, Spec{})
	assert.Len(t, out, 1)
	assert.Zero(t, stats.DistanceExcluded)
}

func TestApply_SortIsStable(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.Rating = 5 }),
		mk("b", func(f *Fields) { f.Rating = 5 }),
		mk("c", func(f *Fields) { f.Rating = 4 }),
		mk("d", func(f *Fields) { f.Rating = 5 }),
	}

	out, _ := Apply(entities, Spec{SortBy: SortByRating, SortDir: SortDesc})

	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(out))
}

func TestApply_SortKeys(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.Name = "Zoo"; f.Price = 30; f.Distance = "2km"; f.ReviewCount = 10 }),
		mk("b", func(f *Fields) { f.Name = "aquarium"; f.Price = 10; f.Distance = "500m"; f.ReviewCount = 90 }),
		mk("c", func(f *Fields) { f.Name = "Gallery"; f.Price = 20; f.Distance = "1.5km"; f.ReviewCount = 40 }),
	}

	out, _ := Apply(entities, Spec{SortBy: SortByName, SortDir: SortAsc})
	assert.Equal(t, []string{"b", "c", "a"}, ids(out), "name sort is case-insensitive lexicographic")

	out, _ = Apply(entities, Spec{SortBy: SortByPrice, SortDir: SortDesc})
	assert.Equal(t, []string{"a", "c", "b"}, ids(out))

	out, _ = Apply(entities, Spec{SortBy: SortByDistance, SortDir: SortAsc})
	assert.Equal(t, []string{"b", "c", "a"}, ids(out))

	out, _ = Apply(entities, Spec{SortBy: SortByReviews, SortDir: SortDesc})
	assert.Equal(t, []string{"b", "c", "a"}, ids(out))
}

func TestApply_UnparseableDistanceSortsLast(t *testing.T) {
	entities := []fake{
		mk("x", func(f *Fields) { f.Distance = "n/a" }),
		mk("y", func(f *Fields) { f.Distance = "300m" }),
	}
	out, _ := Apply(entities, Spec{SortBy: SortByDistance})
	assert.Equal(t, []string{"y", "x"}, ids(out))
}

func TestApply_MalformedEntitiesAreDroppedAndCounted(t *testing.T) {
	entities := []fake{
		mk("a", nil),
		{f: Fields{ID: "", Name: "ghost"}},
		{f: Fields{ID: "noname", Name: ""}},
	}

	out, stats := Apply(entities, Spec{})

	assert.Equal(t, []string{"a"}, ids(out))
	assert.Equal(t, 2, stats.Malformed)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 3, stats.Input)
}

func TestSpecActive(t *testing.T) {
	assert.False(t, Spec{}.Active())
	assert.False(t, Spec{SortBy: SortByRating, SortDir: SortDesc}.Active(), "sorting alone is not a filter")

	active := []Spec{
		{Query: "museum"},
		{Category: "hotel"},
		{FreeEntryOnly: true},
		{OpenNow: true},
		{WheelchairAccessible: true},
		{MaxDistanceKm: 2},
	}
	for _, s := range active {
		assert.True(t, s.Active(), "%+v", s)
	}
}

func TestApply_InactiveSpecKeepsEverything(t *testing.T) {
	entities := []fake{
		mk("a", func(f *Fields) { f.FreeEntry = false; f.CurrentlyOpen = false }),
		mk("b", func(f *Fields) { f.Distance = "somewhere uphill" }),
	}

	out, stats := Apply(entities, Spec{})

	assert.Equal(t, []string{"a", "b"}, ids(out))
	assert.Zero(t, stats.Filtered)
	assert.Zero(t, stats.DistanceExcluded)
}

func TestApply_PureAndRederivable(t *testing.T) {
	entities := []fake{
		mk("b", func(f *Fields) { f.Rating = 2 }),
		mk("a", func(f *Fields) { f.Rating = 5 }),
	}
	snapshot := []string{"b", "a"}

	out1, _ := Apply(entities, Spec{SortBy: SortByRating, SortDir: SortDesc})
	out2, _ := Apply(entities, Spec{SortBy: SortByRating, SortDir: SortDesc})

	assert.Equal(t, out1, out2)
	require.NotSame(t, &out1[0], &out2[0], "each run returns a fresh slice")
	assert.Equal(t, snapshot, ids(entities), "input order must be untouched")
}

func TestApply_EndToEndMuseumsByRating(t *testing.T) {
	entities := []fake{
		mk("p1", func(f *Fields) { f.Category = "parks"; f.Rating = 4.9 }),
		mk("m1", func(f *Fields) { f.Category = "museums"; f.Rating = 4.2 }),
		mk("r1", func(f *Fields) { f.Category = "restaurants"; f.Rating = 4.8 }),
		mk("m2", func(f *Fields) { f.Category = "museums"; f.Rating = 4.7 }),
		mk("m3", func(f *Fields) { f.Category = "museums"; f.Rating = 4.7 }),
		mk("p2", func(f *Fields) { f.Category = "parks"; f.Rating = 3.9 }),
	}

	out, stats := Apply(entities, Spec{Category: "museums", SortBy: SortByRating, SortDir: SortDesc})

	// Museum subset only, descending rating, the m2/m3 tie broken by
	// original index.
	assert.Equal(t, []string{"m2", "m3", "m1"}, ids(out))
	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 3, stats.Filtered)
}

func TestParseDistanceKm(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"500m", 0.5, false},
		{"2.5km", 2.5, false},
		{"1.2 km", 1.2, false},
		{" 750 m ", 0.75, false},
		{"3KM", 3, false},
		{"unknown", 0, true},
		{"", 0, true},
		{"12", 0, true},
		{"-1km", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDistanceKm(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "input %q", tc.in)
	}
}

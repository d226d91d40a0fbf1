package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftmap/spotquery/pkg/spot"
)

func TestSortByRatingDescending(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newRatedSpot("low", 0, 0, 2),
		newRatedSpot("high", 0, 0, 5),
		newRatedSpot("mid", 0, 0, 3.5),
	}

	got := eng.Sort(spots, SortByRating, nil)
	assert.Equal(t, []string{"high", "mid", "low"}, ids(got))
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newRatedSpot("first", 0, 0, 4),
		newRatedSpot("second", 0, 0, 4),
		newRatedSpot("third", 0, 0, 4),
	}

	got := eng.Sort(spots, SortByRating, nil)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newRatedSpot("a", 0, 0, 1),
		newRatedSpot("b", 0, 0, 5),
	}

	got := eng.Sort(spots, SortByRating, nil)
	assert.Equal(t, []string{"b", "a"}, ids(got))
	assert.Equal(t, []string{"a", "b"}, ids(spots))
}

func TestSortByDistance(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newSpot("lyon", 45.76, 4.83),
		newSpot("paris", 48.86, 2.36),
		{ID: "nogeo"}, // sorts last
		newSpot("versailles", 48.80, 2.13),
	}

	got := eng.Sort(spots, SortByDistance, userAt(48.8566, 2.3522))
	assert.Equal(t, []string{"paris", "versailles", "lyon", "nogeo"}, ids(got))
}

func TestSortByDistanceWithoutUserIsNoop(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newSpot("b", 45.76, 4.83),
		newSpot("a", 48.86, 2.36),
	}

	got := eng.Sort(spots, SortByDistance, nil)
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestSortByRecent(t *testing.T) {
	eng := newTestEngine()
	fresh := &spot.Spot{ID: "fresh", LastActivity: 3000}
	createdOnly := &spot.Spot{ID: "createdOnly", Created: 2000}
	stale := &spot.Spot{ID: "stale", Created: 100, LastActivity: 1000}

	got := eng.Sort([]*spot.Spot{stale, createdOnly, fresh}, SortByRecent, nil)
	assert.Equal(t, []string{"fresh", "createdOnly", "stale"}, ids(got))
}

func TestSortByWaitMissingWaitSortsLast(t *testing.T) {
	eng := newTestEngine()
	unknown := &spot.Spot{ID: "unknown"}
	quick := &spot.Spot{ID: "quick", AverageWait: float64Ptr(5)}
	slow := &spot.Spot{ID: "slow", AverageWait: float64Ptr(40)}

	got := eng.Sort([]*spot.Spot{unknown, slow, quick}, SortByWait, nil)
	assert.Equal(t, []string{"quick", "slow", "unknown"}, ids(got))
}

func TestSortByName(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		{ID: "c", Name: "Châtelet"},
		{ID: "a", Name: "Aire de Beaune"},
		{ID: "b", Name: "Bercy"},
	}

	got := eng.Sort(spots, SortByName, nil)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSortUnknownKeyFallsBackToRating(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{
		newRatedSpot("low", 0, 0, 1),
		newRatedSpot("high", 0, 0, 5),
	}

	got := eng.Sort(spots, SortKey("bogus"), nil)
	assert.Equal(t, ids(eng.Sort(spots, SortByRating, nil)), ids(got))
}

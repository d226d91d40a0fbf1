package engine

import (
	"math"
	"sort"

	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByRating   SortKey = "rating"
	SortByDistance SortKey = "distance"
	SortByRecent   SortKey = "recent"
	SortByWait     SortKey = "wait"
	SortByName     SortKey = "name"
)

// Sort returns a new, stably sorted copy of spots; the input is never
// mutated and equal keys preserve their original relative order. an
// unknown key sorts like rating.
func (e *Engine) Sort(spots []*spot.Spot, key SortKey, user *geo.Coordinate) []*spot.Spot {
	out := make([]*spot.Spot, len(spots))
	copy(out, spots)

	switch key {
	case SortByDistance:
		if user == nil {
			return out
		}
		// precompute keys so the comparator stays cheap; spots without
		// coordinates sort last instead of entering the distance math.
		dist := make([]float64, len(out))
		for i, s := range out {
			if s.HasCoordinates() {
				dist[i] = geo.HaversineDistance(*user, *s.Coord)
			} else {
				dist[i] = math.Inf(1)
			}
		}
		idx := make([]int, len(out))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return dist[idx[a]] < dist[idx[b]]
		})
		sorted := make([]*spot.Spot, len(out))
		for i, j := range idx {
			sorted[i] = out[j]
		}
		return sorted

	case SortByRecent:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].Recency() > out[b].Recency()
		})

	case SortByWait:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].EffectiveWait() < out[b].EffectiveWait()
		})

	case SortByName:
		cl := collate.New(language.English)
		sort.SliceStable(out, func(a, b int) bool {
			return cl.CompareString(out[a].Name, out[b].Name) < 0
		})

	default: // rating, and any unrecognized key
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].EffectiveRating() > out[b].EffectiveRating()
		})
	}

	return out
}

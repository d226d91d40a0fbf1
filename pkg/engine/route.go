package engine

import (
	"sort"

	"github.com/liftmap/spotquery/pkg"
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spatialindex"
	"github.com/liftmap/spotquery/pkg/spot"
	"github.com/liftmap/spotquery/pkg/util"
)

// RouteMatch is a spot found inside the corridor around a route, annotated
// with its distance to the route and its normalized position along it.
type RouteMatch struct {
	Spot *spot.Spot `json:"spot"`
	// DistToRoute is the distance in km from the spot to its nearest
	// sampled route point, rounded to 2 decimals.
	DistToRoute float64 `json:"distToRoute"`
	// RouteProgress is the nearest sample's cumulative route distance over
	// the total route length (0=start, 1=end), rounded to 3 decimals.
	RouteProgress float64 `json:"routeProgress"`
}

// MatchAlongPolyline finds every coordinate-bearing spot within corridorKM
// of the route polyline and orders the matches by route progress.
//
// the distance used is spot-to-nearest-sampled-point, not a true
// point-to-segment projection. with the polyline capped at
// MAX_ROUTE_SAMPLE_POINTS the error stays below the sampling interval,
// which is well inside typical corridor widths.
func (e *Engine) MatchAlongPolyline(spots []*spot.Spot, polyline []geo.Coordinate,
	corridorKM float64) []RouteMatch {
	if len(polyline) < 2 {
		// degenerate geometry: nothing to match against.
		return []RouteMatch{}
	}

	samples := downsamplePolyline(polyline)
	cumulative := cumulativeDistances(samples)
	totalKM := cumulative[len(cumulative)-1]

	// per-call index over the sampled route points; nothing persists
	// between commands.
	index := spatialindex.NewRouteIndex(samples, cumulative)

	matches := make([]RouteMatch, 0)
	for _, s := range spot.Geocoded(spots) {
		candidates := index.SearchWithinRadius(s.Coord.Lat, s.Coord.Lng, corridorKM)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := geo.HaversineDistance(*s.Coord, best.GetCoordinate())
		for _, cand := range candidates[1:] {
			d := geo.HaversineDistance(*s.Coord, cand.GetCoordinate())
			// ties resolve to the earliest sample on the route.
			if d < bestDist || (d == bestDist && cand.GetIndex() < best.GetIndex()) {
				best = cand
				bestDist = d
			}
		}

		// the search window is a box around the corridor circle, so corner
		// candidates can still be too far out.
		if bestDist > corridorKM {
			continue
		}

		progress := 0.0
		if totalKM > 0 {
			progress = best.GetCumulativeKM() / totalKM
		}

		matches = append(matches, RouteMatch{
			Spot:          s,
			DistToRoute:   util.RoundFloat(bestDist, pkg.DIST_TO_ROUTE_PRECISION),
			RouteProgress: util.RoundFloat(progress, pkg.ROUTE_PROGRESS_PRECISION),
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].RouteProgress < matches[b].RouteProgress
	})
	return matches
}

// MatchAlongStraightRoute is the legacy corridor variant used when no road
// geometry is available: a spot is "on the way" when the detour
// dist(from, spot) + dist(spot, to) - dist(from, to) stays under the
// corridor width. matches are ordered by distance from the start.
func (e *Engine) MatchAlongStraightRoute(spots []*spot.Spot, from, to geo.Coordinate,
	corridorWidthKM float64) []*spot.Spot {
	direct := geo.HaversineDistance(from, to)

	type candidate struct {
		spot      *spot.Spot
		fromStart float64
	}

	candidates := make([]candidate, 0)
	for _, s := range spot.Geocoded(spots) {
		fromStart := geo.HaversineDistance(from, *s.Coord)
		detour := fromStart + geo.HaversineDistance(*s.Coord, to) - direct
		if detour < corridorWidthKM {
			candidates = append(candidates, candidate{spot: s, fromStart: fromStart})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].fromStart < candidates[b].fromStart
	})

	out := make([]*spot.Spot, len(candidates))
	for i, c := range candidates {
		out[i] = c.spot
	}
	return out
}

// downsamplePolyline thins the polyline to at most MAX_ROUTE_SAMPLE_POINTS
// points with a fixed stride, always retaining the final point so the
// parametrization covers the whole route.
func downsamplePolyline(polyline []geo.Coordinate) []geo.Coordinate {
	stride := util.Max(1, len(polyline)/pkg.MAX_ROUTE_SAMPLE_POINTS)

	samples := make([]geo.Coordinate, 0, len(polyline)/stride+1)
	lastTaken := -1
	for i := 0; i < len(polyline); i += stride {
		samples = append(samples, polyline[i])
		lastTaken = i
	}
	if lastTaken != len(polyline)-1 {
		samples = append(samples, polyline[len(polyline)-1])
	}
	return samples
}

// cumulativeDistances builds the prefix-sum array of haversine distances
// between consecutive samples; the last entry is the total route length.
func cumulativeDistances(samples []geo.Coordinate) []float64 {
	cumulative := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		cumulative[i] = cumulative[i-1] + geo.HaversineDistance(samples[i-1], samples[i])
	}
	return cumulative
}

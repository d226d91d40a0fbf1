package engine

import (
	"math"

	"github.com/liftmap/spotquery/pkg"
	"github.com/liftmap/spotquery/pkg/spot"
)

// Cluster is a spatial aggregate of the spots sharing one grid cell at a
// given zoom level.
type Cluster struct {
	CenterLat float64      `json:"centerLat"`
	CenterLng float64      `json:"centerLng"`
	Count     int          `json:"count"`
	Samples   []*spot.Spot `json:"samples"`
	Top       *spot.Spot   `json:"top"`
}

type cellKey struct {
	x, y int
}

type cellAccumulator struct {
	sumLat, sumLng float64
	count          int
	samples        []*spot.Spot
	top            *spot.Spot
	topRating      float64
}

// Cluster buckets the coordinate-bearing spots into grid cells of
// 360/2^zoom degrees. every such spot lands in exactly one cell, so the
// cluster counts always sum to the geocoded input count. the centroid is
// the plain arithmetic mean of member coordinates, which is fine at
// display zoom. clusters are emitted in first-member insertion order so
// the output is deterministic for a fixed zoom.
func (e *Engine) Cluster(spots []*spot.Spot, zoom int) []Cluster {
	cellSize := 360.0 / math.Pow(2, float64(zoom))

	cells := make(map[cellKey]*cellAccumulator)
	order := make([]cellKey, 0)

	for _, s := range spot.Geocoded(spots) {
		key := cellKey{
			x: int(math.Floor(s.Coord.Lng / cellSize)),
			y: int(math.Floor(s.Coord.Lat / cellSize)),
		}

		acc, ok := cells[key]
		if !ok {
			acc = &cellAccumulator{}
			cells[key] = acc
			order = append(order, key)
		}

		acc.sumLat += s.Coord.Lat
		acc.sumLng += s.Coord.Lng
		acc.count++
		if len(acc.samples) < pkg.MAX_CLUSTER_SAMPLE_MEMBERS {
			acc.samples = append(acc.samples, s)
		}
		// representative = highest-rated member of the full set, not just
		// the samples. strict > keeps the earliest member on ties.
		if acc.top == nil || s.EffectiveRating() > acc.topRating {
			acc.top = s
			acc.topRating = s.EffectiveRating()
		}
	}

	out := make([]Cluster, 0, len(order))
	for _, key := range order {
		acc := cells[key]
		out = append(out, Cluster{
			CenterLat: acc.sumLat / float64(acc.count),
			CenterLng: acc.sumLng / float64(acc.count),
			Count:     acc.count,
			Samples:   acc.samples,
			Top:       acc.top,
		})
	}
	return out
}

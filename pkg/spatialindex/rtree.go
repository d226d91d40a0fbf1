package spatialindex

import (
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/tidwall/rtree"
)

// RouteSample is one downsampled route point together with its position on
// the parametrized route (cumulative haversine distance from the start).
type RouteSample struct {
	index        int
	coord        geo.Coordinate
	cumulativeKM float64
}

func (rs RouteSample) GetIndex() int {
	return rs.index
}

func (rs RouteSample) GetCoordinate() geo.Coordinate {
	return rs.coord
}

func (rs RouteSample) GetCumulativeKM() float64 {
	return rs.cumulativeKM
}

func newRouteSample(index int, coord geo.Coordinate, cumulativeKM float64) RouteSample {
	return RouteSample{
		index:        index,
		coord:        coord,
		cumulativeKM: cumulativeKM,
	}
}

// RouteIndex is an r-tree over downsampled route points. it is rebuilt per
// corridor-match call; nothing is persisted between commands.
type RouteIndex struct {
	tr *rtree.RTreeG[RouteSample]
}

// NewRouteIndex builds the index from the downsampled route points and their
// cumulative distances. len(cumulative) == len(samples).
func NewRouteIndex(samples []geo.Coordinate, cumulative []float64) *RouteIndex {
	var tr rtree.RTreeG[RouteSample]
	for i, c := range samples {
		p := [2]float64{c.Lng, c.Lat}
		tr.Insert(p, p, newRouteSample(i, c, cumulative[i]))
	}
	return &RouteIndex{
		tr: &tr,
	}
}

// SearchWithinRadius returns every route sample whose bounding box falls
// inside the conservative search window of radius (km) around the query
// point. the window fully covers the radius circle, so the sample nearest to
// a point within the corridor is always among the results.
func (rt *RouteIndex) SearchWithinRadius(qLat, qLng, radius float64) []RouteSample {
	minLat, minLng, maxLat, maxLng := geo.BoundingBox(qLat, qLng, radius)

	results := make([]RouteSample, 0, 10)
	rt.tr.Search([2]float64{minLng, minLat}, [2]float64{maxLng, maxLat},
		func(min, max [2]float64, data RouteSample) bool {
			results = append(results, data)
			return true
		})
	return results
}

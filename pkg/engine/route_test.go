package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
)

// northboundRoute builds a polyline heading due north from (48, 5) with
// one point per kilometer of route length.
func northboundRoute(lengthKM int) []geo.Coordinate {
	latStepPerKM := 1.0 / (6371.0 * math.Pi / 180.0)
	polyline := make([]geo.Coordinate, 0, lengthKM+1)
	for i := 0; i <= lengthKM; i++ {
		polyline = append(polyline, geo.NewCoordinate(48.0+float64(i)*latStepPerKM, 5.0))
	}
	return polyline
}

// eastOf returns a point the given distance east of the reference.
func eastOf(ref geo.Coordinate, km float64) (float64, float64) {
	kmPerDegLng := 6371.0 * math.Pi / 180.0 * math.Cos(ref.Lat*math.Pi/180.0)
	return ref.Lat, ref.Lng + km/kmPerDegLng
}

func TestMatchAlongPolylineCorridor(t *testing.T) {
	eng := newTestEngine()
	route := northboundRoute(100)
	mid := route[50]

	insideLat, insideLng := eastOf(mid, 4.9)
	outsideLat, outsideLng := eastOf(mid, 5.1)
	spots := []*spot.Spot{
		newSpot("inside", insideLat, insideLng),
		newSpot("outside", outsideLat, outsideLng),
		{ID: "nogeo"},
	}

	matches := eng.MatchAlongPolyline(spots, route, 5.0)
	require.Len(t, matches, 1)
	assert.Equal(t, "inside", matches[0].Spot.ID)
	assert.InDelta(t, 4.9, matches[0].DistToRoute, 0.02)
	assert.InDelta(t, 0.5, matches[0].RouteProgress, 0.011)
}

func TestMatchAlongPolylineOrdersByProgress(t *testing.T) {
	eng := newTestEngine()
	route := northboundRoute(100)

	nearEndLat, nearEndLng := eastOf(route[90], 1)
	nearStartLat, nearStartLng := eastOf(route[10], 1)
	nearMidLat, nearMidLng := eastOf(route[50], 1)
	spots := []*spot.Spot{
		newSpot("end", nearEndLat, nearEndLng),
		newSpot("start", nearStartLat, nearStartLng),
		newSpot("mid", nearMidLat, nearMidLng),
	}

	matches := eng.MatchAlongPolyline(spots, route, 5.0)
	require.Len(t, matches, 3)
	assert.Equal(t, "start", matches[0].Spot.ID)
	assert.Equal(t, "mid", matches[1].Spot.ID)
	assert.Equal(t, "end", matches[2].Spot.ID)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].RouteProgress, matches[i].RouteProgress)
	}
}

func TestMatchAlongPolylineDegenerateGeometry(t *testing.T) {
	eng := newTestEngine()
	spots := []*spot.Spot{newSpot("a", 48, 5)}

	assert.Empty(t, eng.MatchAlongPolyline(spots, nil, 5))
	assert.Empty(t, eng.MatchAlongPolyline(spots, []geo.Coordinate{geo.NewCoordinate(48, 5)}, 5))
}

func TestMatchAlongPolylineZeroLengthRoute(t *testing.T) {
	eng := newTestEngine()
	p := geo.NewCoordinate(48, 5)
	spots := []*spot.Spot{newSpot("here", 48, 5)}

	matches := eng.MatchAlongPolyline(spots, []geo.Coordinate{p, p}, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].DistToRoute)
	assert.Equal(t, 0.0, matches[0].RouteProgress)
}

func TestMatchAlongPolylineDownsamplesLongRoutes(t *testing.T) {
	eng := newTestEngine()
	// 1002 points forces a downsampling stride of 2 that skips the final
	// point; it must be retained anyway so a spot at the destination still
	// reports progress 1.
	route := northboundRoute(1001)
	end := route[len(route)-1]
	spots := []*spot.Spot{newSpot("dest", end.Lat, end.Lng)}

	matches := eng.MatchAlongPolyline(spots, route, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].RouteProgress)
	assert.Equal(t, 0.0, matches[0].DistToRoute)
}

func TestMatchAlongStraightRoute(t *testing.T) {
	eng := newTestEngine()
	route := northboundRoute(100)
	from, to := route[0], route[len(route)-1]

	onWayLat, onWayLng := eastOf(route[30], 2)
	spots := []*spot.Spot{
		newSpot("far", 48.5, 8.0), // ~220 km east of the corridor
		newSpot("onway", onWayLat, onWayLng),
		newSpot("nearstart", route[5].Lat, route[5].Lng),
		{ID: "nogeo"},
	}

	got := eng.MatchAlongStraightRoute(spots, from, to, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "nearstart", got[0].ID)
	assert.Equal(t, "onway", got[1].ID)
}

func TestMatchAlongStraightRouteEmptyCorridor(t *testing.T) {
	eng := newTestEngine()
	route := northboundRoute(100)

	farLat, farLng := eastOf(route[50], 80)
	got := eng.MatchAlongStraightRoute([]*spot.Spot{newSpot("far", farLat, farLng)},
		route[0], route[len(route)-1], 10)
	assert.Empty(t, got)
}

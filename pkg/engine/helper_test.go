package engine

import (
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return New(zap.NewNop())
}

func float64Ptr(v float64) *float64 { return &v }

func newSpot(id string, lat, lng float64) *spot.Spot {
	s := &spot.Spot{ID: id, Name: id}
	s.SetCoordinate(lat, lng)
	return s
}

func newRatedSpot(id string, lat, lng, rating float64) *spot.Spot {
	s := newSpot(id, lat, lng)
	s.Rating = float64Ptr(rating)
	return s
}

func ids(spots []*spot.Spot) []string {
	out := make([]string, len(spots))
	for i, s := range spots {
		out[i] = s.ID
	}
	return out
}

func userAt(lat, lng float64) *geo.Coordinate {
	c := geo.NewCoordinate(lat, lng)
	return &c
}

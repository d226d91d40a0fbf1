package engine

import (
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
	"go.uber.org/zap"
)

// Engine evaluates geospatial queries over an in-memory spot collection.
// it holds no state between calls: every operation is a pure function of
// its input, so identical input always yields identical output and any
// number of engine instances may serve the same caller.
type Engine struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Engine {
	return &Engine{
		log: log,
	}
}

type SpotDistance struct {
	Spot       *spot.Spot `json:"spot"`
	DistanceKM float64    `json:"distance"`
}

// Distances computes the distance from the user to every coordinate-bearing
// spot, in input order. spots without usable coordinates are left out.
func (e *Engine) Distances(spots []*spot.Spot, user geo.Coordinate) []SpotDistance {
	geocoded := spot.Geocoded(spots)
	out := make([]SpotDistance, 0, len(geocoded))
	for _, s := range geocoded {
		out = append(out, SpotDistance{
			Spot:       s,
			DistanceKM: geo.HaversineDistance(user, *s.Coord),
		})
	}
	return out
}

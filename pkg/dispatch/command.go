package dispatch

import (
	"github.com/liftmap/spotquery/pkg/engine"
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
)

type Type string

const (
	TypeFilter        Type = "filter"
	TypeSort          Type = "sort"
	TypeFilterAndSort Type = "filterAndSort"
	TypeDistances     Type = "distances"
	TypeRoute         Type = "route"
	TypeRouteCorridor Type = "routeCorridor"
	TypeCluster       Type = "cluster"
	TypeHaversine     Type = "haversine"
)

// Command is the tagged request crossing the engine boundary. Type selects
// the operation; only the parameters relevant to that type need to be set.
type Command struct {
	Type Type   `json:"type"`
	ID   string `json:"id,omitempty"`

	Spots []*spot.Spot `json:"spots,omitempty"`

	Criteria     *engine.Criteria `json:"criteria,omitempty"`
	SortKey      engine.SortKey   `json:"sortKey,omitempty"`
	UserLocation *geo.Coordinate  `json:"userLocation,omitempty"`

	From *geo.Coordinate `json:"from,omitempty"`
	To   *geo.Coordinate `json:"to,omitempty"`

	Zoom int `json:"zoom,omitempty"`

	CorridorWidthKM float64 `json:"corridorWidthKm,omitempty"`

	// route geometry for routeCorridor: either decoded coordinates or a
	// Google encoded polyline string as supplied by the routing service.
	Polyline        []geo.Coordinate `json:"polyline,omitempty"`
	EncodedPolyline string           `json:"encodedPolyline,omitempty"`
	CorridorKM      float64          `json:"corridorKm,omitempty"`
}

// Response is the reply envelope. Count is set only when the result payload
// is a list. DurationMS is measured wall-clock time, never enforced.
type Response struct {
	ID         string      `json:"id,omitempty"`
	Type       Type        `json:"type"`
	Result     interface{} `json:"result"`
	Count      *int        `json:"count,omitempty"`
	DurationMS float64     `json:"durationMs"`
}

// ErrorResult is an error-shaped result payload. faults never escape the
// dispatcher as thrown errors; they travel inside the envelope.
type ErrorResult struct {
	Error string `json:"error"`
}

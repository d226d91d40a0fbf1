package controllers

import (
	"github.com/liftmap/spotquery/pkg/dispatch"
	"github.com/liftmap/spotquery/pkg/engine"
	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
)

type coordinateRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

func (c *coordinateRequest) toCoordinate() *geo.Coordinate {
	if c == nil {
		return nil
	}
	coord := geo.NewCoordinate(c.Lat, c.Lng)
	return &coord
}

type queryRequest struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id"`

	Spots    []*spot.Spot     `json:"spots"`
	Criteria *engine.Criteria `json:"criteria"`
	SortKey  string           `json:"sortKey"`

	UserLocation *coordinateRequest `json:"userLocation" validate:"omitempty"`
	From         *coordinateRequest `json:"from" validate:"omitempty"`
	To           *coordinateRequest `json:"to" validate:"omitempty"`

	Zoom int `json:"zoom" validate:"min=0,max=30"`

	CorridorWidthKM float64 `json:"corridorWidthKm" validate:"min=0"`

	Polyline        []coordinateRequest `json:"polyline" validate:"omitempty,dive"`
	EncodedPolyline string              `json:"encodedPolyline"`
	CorridorKM      float64             `json:"corridorKm" validate:"min=0"`
}

func (r *queryRequest) ToCommand() dispatch.Command {
	var polyline []geo.Coordinate
	if len(r.Polyline) > 0 {
		polyline = make([]geo.Coordinate, len(r.Polyline))
		for i, c := range r.Polyline {
			polyline[i] = geo.NewCoordinate(c.Lat, c.Lng)
		}
	}

	return dispatch.Command{
		Type:            dispatch.Type(r.Type),
		ID:              r.ID,
		Spots:           r.Spots,
		Criteria:        r.Criteria,
		SortKey:         engine.SortKey(r.SortKey),
		UserLocation:    r.UserLocation.toCoordinate(),
		From:            r.From.toCoordinate(),
		To:              r.To.toCoordinate(),
		Zoom:            r.Zoom,
		CorridorWidthKM: r.CorridorWidthKM,
		Polyline:        polyline,
		EncodedPolyline: r.EncodedPolyline,
		CorridorKM:      r.CorridorKM,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

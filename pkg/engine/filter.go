package engine

import (
	"strings"

	"github.com/liftmap/spotquery/pkg/geo"
	"github.com/liftmap/spotquery/pkg/spot"
)

// Bounds is an inclusive lat/lng box. no antimeridian wraparound handling.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

func (b Bounds) Contains(c geo.Coordinate) bool {
	return c.Lat >= b.South && c.Lat <= b.North &&
		c.Lng >= b.West && c.Lng <= b.East
}

// Criteria is a set of optional, independent filter fields. every supplied
// field must match (logical AND); the zero value matches every spot.
type Criteria struct {
	Country       string          `json:"country,omitempty"`
	MinRating     *float64        `json:"minRating,omitempty"`
	MaxWait       *float64        `json:"maxWait,omitempty"`
	VerifiedOnly  bool            `json:"verifiedOnly,omitempty"`
	Query         string          `json:"query,omitempty"`
	Bounds        *Bounds         `json:"bounds,omitempty"`
	UserLocation  *geo.Coordinate `json:"userLocation,omitempty"`
	MaxDistanceKM *float64        `json:"maxDistance,omitempty"`
	Amenities     []string        `json:"amenities,omitempty"`
}

// Filter returns the subset of spots matching the criteria, preserving the
// input's relative order.
func (e *Engine) Filter(spots []*spot.Spot, c Criteria) []*spot.Spot {
	out := make([]*spot.Spot, 0, len(spots))
	for _, s := range spots {
		if matches(s, c) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s *spot.Spot, c Criteria) bool {
	if c.Country != "" &&
		!strings.EqualFold(s.Country, c.Country) &&
		!strings.EqualFold(s.CountryCode, c.Country) {
		return false
	}

	if c.MinRating != nil && s.EffectiveRating() < *c.MinRating {
		return false
	}

	if c.MaxWait != nil && s.EffectiveWait() > *c.MaxWait {
		return false
	}

	if c.VerifiedOnly && !s.Verified && s.Validations == 0 {
		return false
	}

	if c.Query != "" && !matchesQuery(s, c.Query) {
		return false
	}

	if c.Bounds != nil {
		if !s.HasCoordinates() || !c.Bounds.Contains(*s.Coord) {
			return false
		}
	}

	// the distance criterion needs both the user location and a limit;
	// with either one missing it is inert.
	if c.UserLocation != nil && c.MaxDistanceKM != nil {
		if !s.HasCoordinates() {
			return false
		}
		if geo.HaversineDistance(*c.UserLocation, *s.Coord) > *c.MaxDistanceKM {
			return false
		}
	}

	for _, tag := range c.Amenities {
		if !s.HasAmenity(tag) {
			return false
		}
	}

	return true
}

// matchesQuery. case-insensitive substring match, ORed across the spot's
// textual fields.
func matchesQuery(s *spot.Spot, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{s.Name, s.City, s.Description, s.Country} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

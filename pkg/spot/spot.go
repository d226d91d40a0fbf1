package spot

import (
	"encoding/json"

	"github.com/liftmap/spotquery/pkg"
	"github.com/liftmap/spotquery/pkg/geo"
)

// Spot is a point-of-interest record representing a pickup location.
// the engine treats spots as read-only: stages filter, copy, or annotate
// them into new collections and never mutate the input.
type Spot struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	// Rating is the live aggregate, ImportedRating the value carried over
	// from legacy imports. EffectiveRating resolves the fallback chain.
	Rating         *float64 `json:"rating,omitempty"`
	ImportedRating *float64 `json:"importedRating,omitempty"`

	AverageWait *float64 `json:"averageWait,omitempty"` // minutes

	Verified    bool     `json:"verified,omitempty"`
	Validations int      `json:"validations,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`

	Created      int64 `json:"created,omitempty"` // unix millis
	LastActivity int64 `json:"lastActivity,omitempty"`

	// Coord is normalized once at the ingress boundary; nil means the record
	// has no usable coordinates and is excluded from geospatial stages.
	Coord *geo.Coordinate `json:"-"`
}

// spotJSON mirrors Spot on the wire. upstream sources are heterogeneous:
// records merged from the local cache carry nested coordinates.{lat,lng},
// records from the live loader carry flat lat/lng fields.
type spotJSON struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	Rating         *float64 `json:"rating,omitempty"`
	ImportedRating *float64 `json:"importedRating,omitempty"`

	AverageWait *float64 `json:"averageWait,omitempty"`

	Verified    bool     `json:"verified,omitempty"`
	Validations int      `json:"validations,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`

	Created      int64 `json:"created,omitempty"`
	LastActivity int64 `json:"lastActivity,omitempty"`

	Coordinates *geo.Coordinate `json:"coordinates,omitempty"`
	Lat         *float64        `json:"lat,omitempty"`
	Lng         *float64        `json:"lng,omitempty"`
}

func (s *Spot) UnmarshalJSON(data []byte) error {
	var raw spotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Spot{
		ID:             raw.ID,
		Name:           raw.Name,
		City:           raw.City,
		Description:    raw.Description,
		Country:        raw.Country,
		CountryCode:    raw.CountryCode,
		Rating:         raw.Rating,
		ImportedRating: raw.ImportedRating,
		AverageWait:    raw.AverageWait,
		Verified:       raw.Verified,
		Validations:    raw.Validations,
		Amenities:      raw.Amenities,
		Created:        raw.Created,
		LastActivity:   raw.LastActivity,
	}

	// nested coordinates win over the flat fallback fields.
	switch {
	case raw.Coordinates != nil:
		s.SetCoordinate(raw.Coordinates.Lat, raw.Coordinates.Lng)
	case raw.Lat != nil && raw.Lng != nil:
		s.SetCoordinate(*raw.Lat, *raw.Lng)
	}
	return nil
}

func (s *Spot) MarshalJSON() ([]byte, error) {
	raw := spotJSON{
		ID:             s.ID,
		Name:           s.Name,
		City:           s.City,
		Description:    s.Description,
		Country:        s.Country,
		CountryCode:    s.CountryCode,
		Rating:         s.Rating,
		ImportedRating: s.ImportedRating,
		AverageWait:    s.AverageWait,
		Verified:       s.Verified,
		Validations:    s.Validations,
		Amenities:      s.Amenities,
		Created:        s.Created,
		LastActivity:   s.LastActivity,
		Coordinates:    s.Coord,
	}
	return json.Marshal(raw)
}

// SetCoordinate normalizes a raw coordinate pair into the optional
// coordinate; invalid pairs leave the spot without coordinates.
func (s *Spot) SetCoordinate(lat, lng float64) {
	if !geo.Valid(lat, lng) {
		return
	}
	c := geo.NewCoordinate(lat, lng)
	s.Coord = &c
}

func (s *Spot) HasCoordinates() bool {
	return s.Coord != nil
}

// EffectiveRating resolves rating -> importedRating -> 0.
func (s *Spot) EffectiveRating() float64 {
	if s.Rating != nil {
		return *s.Rating
	}
	if s.ImportedRating != nil {
		return *s.ImportedRating
	}
	return 0
}

// EffectiveWait resolves averageWait -> MISSING_WAIT_SENTINEL_MINUTES, so a
// spot without a reported wait fails any finite maxWait filter and sorts last.
func (s *Spot) EffectiveWait() float64 {
	if s.AverageWait != nil {
		return *s.AverageWait
	}
	return pkg.MISSING_WAIT_SENTINEL_MINUTES
}

// Recency resolves lastActivity -> created -> 0.
func (s *Spot) Recency() int64 {
	if s.LastActivity != 0 {
		return s.LastActivity
	}
	return s.Created
}

func (s *Spot) HasAmenity(tag string) bool {
	for _, a := range s.Amenities {
		if a == tag {
			return true
		}
	}
	return false
}

// Geocoded partitions out the spots carrying usable coordinates. computed
// once up front and consumed uniformly by every geospatial stage.
func Geocoded(spots []*Spot) []*Spot {
	out := make([]*Spot, 0, len(spots))
	for _, s := range spots {
		if s.HasCoordinates() {
			out = append(out, s)
		}
	}
	return out
}

package geo

import (
	"github.com/golang/geo/s2"
)

// Valid reports whether (lat, lng) is a usable geographic coordinate.
// the source dataset contains partially-geocoded legacy records, so
// callers treat invalid coordinates as "absent", never as an error.
func Valid(lat, lng float64) bool {
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}

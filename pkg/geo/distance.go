package geo

import (
	"math"

	"github.com/liftmap/spotquery/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLng() float64 {
	return c.Lng
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lng: lng,
	}
}

const (
	earthRadiusKM = 6371.0

	// deliberately below the true ~111.195 km/degree so BoundingBox windows
	// are slightly oversized, never undersized.
	kmPerLatDegree = 111.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// HaversineDistance. haversine distance in km between two coordinates.
func HaversineDistance(a, b Coordinate) float64 {
	return CalculateHaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// BoundingBox returns an axis-aligned box that fully covers the circle of
// radiusKM around (lat, lng). Used as a conservative r-tree search window.
func BoundingBox(lat, lng, radiusKM float64) (minLat, minLng, maxLat, maxLng float64) {
	latDelta := radiusKM / kmPerLatDegree
	lngDelta := radiusKM / (kmPerLatDegree * math.Cos(util.DegreeToRadians(lat)))

	return lat - latDelta, lng - lngDelta, lat + latDelta, lng + lngDelta
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}

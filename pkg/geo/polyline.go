package geo

import (
	gopolyline "github.com/twpayne/go-polyline"
)

// DecodePolyline decodes a Google encoded polyline string into coordinates.
// malformed trailing input is rejected.
func DecodePolyline(encoded string) ([]Coordinate, error) {
	buf := []byte(encoded)
	coords, _, err := gopolyline.DecodeCoords(buf)
	if err != nil {
		return nil, err
	}
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = NewCoordinate(c[0], c[1])
	}
	return out, nil
}

// EncodePolyline encodes coordinates into a Google encoded polyline string.
func EncodePolyline(coords []Coordinate) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c.Lat, c.Lng}
	}
	return string(gopolyline.EncodeCoords(flat))
}

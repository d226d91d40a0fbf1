package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	points := []Coordinate{
		NewCoordinate(0, 0),
		NewCoordinate(48.8566, 2.3522),
		NewCoordinate(-33.8688, 151.2093),
		NewCoordinate(90, 0),
	}
	for _, p := range points {
		assert.Equal(t, 0.0, HaversineDistance(p, p))
	}
}

func TestHaversineSymmetry(t *testing.T) {
	paris := NewCoordinate(48.8566, 2.3522)
	lyon := NewCoordinate(45.7640, 4.8357)

	assert.Equal(t, HaversineDistance(paris, lyon), HaversineDistance(lyon, paris))
}

func TestHaversineKnownDistance(t *testing.T) {
	paris := NewCoordinate(48.8566, 2.3522)
	lyon := NewCoordinate(45.7640, 4.8357)

	// great-circle distance Paris-Lyon is roughly 392 km.
	assert.InDelta(t, 392.0, HaversineDistance(paris, lyon), 2.0)
}

func TestBoundingBoxCoversRadius(t *testing.T) {
	lat, lng, radius := 48.8566, 2.3522, 10.0
	minLat, minLng, maxLat, maxLng := BoundingBox(lat, lng, radius)

	require.Less(t, minLat, lat)
	require.Greater(t, maxLat, lat)
	require.Less(t, minLng, lng)
	require.Greater(t, maxLng, lng)

	// the box corners must be at least radius away from the center.
	corner := NewCoordinate(maxLat, maxLng)
	assert.GreaterOrEqual(t, HaversineDistance(NewCoordinate(lat, lng), corner), radius)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(48.8566, 2.3522))
	assert.True(t, Valid(0, 0))
	assert.False(t, Valid(91, 0))
	assert.False(t, Valid(0, 181))
	assert.False(t, Valid(-100, -200))
}

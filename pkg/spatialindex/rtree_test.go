package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftmap/spotquery/pkg/geo"
)

func TestSearchWithinRadius(t *testing.T) {
	samples := []geo.Coordinate{
		geo.NewCoordinate(48.0, 5.0),
		geo.NewCoordinate(48.5, 5.0),
		geo.NewCoordinate(49.0, 5.0),
	}
	cumulative := []float64{0, 55.6, 111.2}
	index := NewRouteIndex(samples, cumulative)

	// a tight window around the middle sample finds only that sample.
	got := index.SearchWithinRadius(48.5, 5.0, 5)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].GetIndex())
	assert.Equal(t, 55.6, got[0].GetCumulativeKM())
	assert.Equal(t, 48.5, got[0].GetCoordinate().Lat)

	// a window spanning the whole route finds all samples.
	got = index.SearchWithinRadius(48.5, 5.0, 200)
	assert.Len(t, got, 3)

	// far away from the route nothing is found.
	got = index.SearchWithinRadius(-30, 100, 5)
	assert.Empty(t, got)
}

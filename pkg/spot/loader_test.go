package spot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpots() []*Spot {
	a := &Spot{ID: "a", Name: "Gare de Lyon", Country: "France", Rating: float64Ptr(4.2)}
	a.SetCoordinate(48.8443, 2.3743)
	b := &Spot{ID: "b", Name: "No Geo", ImportedRating: float64Ptr(3.1)}
	return []*Spot{a, b}
}

func TestLoad(t *testing.T) {
	spots, err := Load([]byte(`[{"id":"a","lat":1,"lng":2},{"id":"b"}]`))
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.True(t, spots[0].HasCoordinates())
	assert.False(t, spots[1].HasCoordinates())
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load([]byte(`{"not":"an array"`))
	assert.Error(t, err)
}

func TestWriteLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spots.json")
	require.NoError(t, WriteFile(path, testSpots()))

	spots, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "Gare de Lyon", spots[0].Name)
	assert.True(t, spots[0].HasCoordinates())
	assert.Equal(t, 4.2, spots[0].EffectiveRating())
	assert.Equal(t, 3.1, spots[1].EffectiveRating())
}

func TestWriteLoadFileBzip2RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spots.json.bz2")
	require.NoError(t, WriteFile(path, testSpots()))

	spots, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "a", spots[0].ID)
	assert.InDelta(t, 48.8443, spots[0].Coord.Lat, 1e-9)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

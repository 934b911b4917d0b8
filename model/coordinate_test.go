package model_test

import (
	"testing"

	"github.com/katalvlaran/chway/model"
	"github.com/stretchr/testify/require"
)

func TestCoordinateValidate_Boundary(t *testing.T) {
	const P = model.CoordinatePrecision

	ok := model.Coordinate{Lat: 90 * P, Lon: 180 * P}
	require.NoError(t, ok.Validate())

	badLat := model.Coordinate{Lat: 90*P + 1, Lon: 0}
	require.ErrorIs(t, badLat.Validate(), model.ErrLatOutOfRange)

	badLon := model.Coordinate{Lat: 0, Lon: 180*P + 1}
	require.ErrorIs(t, badLon.Validate(), model.ErrLonOutOfRange)

	negOK := model.Coordinate{Lat: -90 * P, Lon: -180 * P}
	require.NoError(t, negOK.Validate())
}

func TestCoordinateSentinel(t *testing.T) {
	require.True(t, model.SentinelCoordinate.IsSentinel())
	require.False(t, model.Coordinate{}.IsSentinel())
}

func TestCoordinateFromFloatRoundTrip(t *testing.T) {
	c := model.FromFloat(38.5, -120.2)
	lat, lon := c.AsFloat()
	require.InDelta(t, 38.5, lat, 1e-6)
	require.InDelta(t, -120.2, lon, 1e-6)
}

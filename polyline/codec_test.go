package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/model"
)

func TestEncode_StandardExample(t *testing.T) {
	// The canonical published example, at this module's 10^6 storage precision.
	coords := []model.Coordinate{
		{Lat: 38500000, Lon: -120200000},
		{Lat: 40700000, Lon: -120950000},
		{Lat: 43252000, Lon: -126453000},
	}
	got := Encode(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
}

func TestDecode_RoundTrip(t *testing.T) {
	coords := []model.Coordinate{
		{Lat: 38500000, Lon: -120200000},
		{Lat: 40700000, Lon: -120950000},
		{Lat: 43252000, Lon: -126453000},
		{Lat: 0, Lon: 0},
		{Lat: -90000000, Lon: 179999990},
	}
	encoded := Encode(coords)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i := range coords {
		assert.Equal(t, coords[i], decoded[i])
	}
}

func TestEncodeDecode_Idempotent(t *testing.T) {
	// encode(decode(s)) == s for any s this package emits.
	coords := []model.Coordinate{{Lat: 1000000, Lon: 2000000}, {Lat: 1000010, Lon: 1999990}}
	s1 := Encode(coords)
	decoded, err := Decode(s1)
	require.NoError(t, err)
	s2 := Encode(decoded)
	assert.Equal(t, s1, s2)
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode(string([]byte{0x7e}))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestJSONArray(t *testing.T) {
	coords := []model.Coordinate{{Lat: 38500000, Lon: -120200000}}
	arr := JSONArray(coords)
	require.Len(t, arr, 1)
	assert.InDelta(t, 38.5, arr[0][0], 1e-9)
	assert.InDelta(t, -120.2, arr[0][1], 1e-9)
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
}

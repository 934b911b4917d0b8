package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/request"
)

func TestNewViaRouteRequest_Defaults(t *testing.T) {
	coords := []model.Coordinate{model.FromFloat(52.5, 13.4), model.FromFloat(52.6, 13.5)}
	req := request.NewViaRouteRequest(coords)

	assert.Equal(t, request.DefaultZoom, req.Zoom)
	assert.Equal(t, request.CompressionPolyline, req.Compression)
	assert.False(t, req.Alternatives)
	assert.False(t, req.Geometry)
	assert.False(t, req.Instructions)
	assert.Equal(t, coords, req.Coordinates)
}

func TestCommand_ClosedSet(t *testing.T) {
	commands := []request.Command{
		request.CommandViaRoute,
		request.CommandNearest,
		request.CommandLocate,
		request.CommandTimestamp,
		request.CommandHello,
	}
	seen := make(map[request.Command]bool)
	for _, c := range commands {
		assert.False(t, seen[c], "duplicate command %q", c)
		seen[c] = true
	}
	assert.Len(t, seen, 5)
}

func TestRouteResponse_ZeroValueIsEmpty(t *testing.T) {
	var resp request.RouteResponse
	assert.Equal(t, 0, resp.Status)
	assert.Nil(t, resp.Instructions)
}

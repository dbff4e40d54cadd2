package geom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolyline_TooFewPoints(t *testing.T) {
	_, err := NewPolyline([]Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestAreaAndCentroid_Rectangle(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 0}, {4, 0}, {4, 6}, {0, 6}})
	require.NoError(t, err)

	area, cx, cy := p.AreaAndCentroid()
	assert.InDelta(t, 24.0, area, 1e-12)
	assert.InDelta(t, 2.0, cx, 1e-12)
	assert.InDelta(t, 3.0, cy, 1e-12)

	// clockwise gives the same absolute area
	cw, err := NewPolyline([]Point{{0, 0}, {0, 6}, {4, 6}, {4, 0}})
	require.NoError(t, err)
	area, _, _ = cw.AreaAndCentroid()
	assert.InDelta(t, 24.0, area, 1e-12)
}

func TestBounds(t *testing.T) {
	p, err := NewPolyline([]Point{{0, -45}, {100, -45}, {100, -35}, {10, 55}})
	require.NoError(t, err)

	b := p.Bounds()
	assert.Equal(t, Bounds{MinX: 0, MaxX: 100, MinY: -45, MaxY: 55}, b)
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 100.0, b.Height())

	u := b.Union(Bounds{MinX: -10, MaxX: 50, MinY: 0, MaxY: 80})
	assert.Equal(t, Bounds{MinX: -10, MaxX: 100, MinY: -45, MaxY: 80}, u)
}

func TestTranslate_DoesNotMutate(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 0}, {1, 1}})
	require.NoError(t, err)

	moved := p.Translate(1, -1)
	assert.Equal(t, []Point{{1, -1}, {2, 0}}, moved.Points())
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, p.Points())
}

func TestJSON_StartAndNextPoints(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 0.1}, {0.012, 0.1}, {0.012, -0.1}})
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_point":[0,0.1],"next_points":[[0.012,0.1],[0.012,-0.1]]}`, string(data))

	var back Polyline
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p.Points(), back.Points())
}

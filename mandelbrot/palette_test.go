package mandelbrot

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorTableEnds(t *testing.T) {
	points := DefaultControlPoints()
	table, err := NewColorTable(points, 1000)
	require.NoError(t, err)
	require.Len(t, table, 1000)

	first, err := colorful.Hex(points[0].Color)
	require.NoError(t, err)
	last, err := colorful.Hex(points[len(points)-1].Color)
	require.NoError(t, err)

	assert.InDelta(t, first.R, table[0].R, 1e-9)
	assert.InDelta(t, first.G, table[0].G, 1e-9)
	assert.InDelta(t, first.B, table[0].B, 1e-9)
	assert.InDelta(t, last.R, table[999].R, 1e-9)
	assert.InDelta(t, last.G, table[999].G, 1e-9)
	assert.InDelta(t, last.B, table[999].B, 1e-9)
}

func TestColorTableDoesNotOvershoot(t *testing.T) {
	points := DefaultControlPoints()
	table, err := NewColorTable(points, 1000)
	require.NoError(t, err)

	colors := make([]colorful.Color, len(points))
	for i, point := range points {
		colors[i], err = colorful.Hex(point.Color)
		require.NoError(t, err)
	}

	channel := func(c colorful.Color, n int) float64 {
		return [3]float64{c.R, c.G, c.B}[n]
	}

	for k, c := range table {
		position := float64(k) / 999
		segment := 0
		for segment < len(points)-2 && position > points[segment+1].Stop {
			segment++
		}
		for n := 0; n < 3; n++ {
			low := math.Min(channel(colors[segment], n), channel(colors[segment+1], n))
			high := math.Max(channel(colors[segment], n), channel(colors[segment+1], n))
			value := channel(c, n)
			assert.GreaterOrEqual(t, value, low-1e-9, "entry %d channel %d", k, n)
			assert.LessOrEqual(t, value, high+1e-9, "entry %d channel %d", k, n)
		}
	}
}

func TestColorTableHitsControlPoints(t *testing.T) {
	points := []ControlPoint{
		{Stop: 0, Color: "#000000"},
		{Stop: 0.5, Color: "#ff8000"},
		{Stop: 1, Color: "#ffffff"},
	}
	table, err := NewColorTable(points, 3)
	require.NoError(t, err)

	middle, err := colorful.Hex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, middle.R, table[1].R, 1e-9)
	assert.InDelta(t, middle.G, table[1].G, 1e-9)
	assert.InDelta(t, middle.B, table[1].B, 1e-9)
}

func TestColorTableSingleEntry(t *testing.T) {
	table, err := NewColorTable(DefaultControlPoints(), 1)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "#000764", table[0].Hex())
}

func TestColorTableRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		points []ControlPoint
		size   int
	}{
		{"zero size", DefaultControlPoints(), 0},
		{"one point", []ControlPoint{{Stop: 0, Color: "#000000"}}, 10},
		{"first stop not zero", []ControlPoint{{Stop: 0.1, Color: "#000000"}, {Stop: 1, Color: "#ffffff"}}, 10},
		{"last stop not one", []ControlPoint{{Stop: 0, Color: "#000000"}, {Stop: 0.9, Color: "#ffffff"}}, 10},
		{"unordered", []ControlPoint{{Stop: 0, Color: "#000000"}, {Stop: 0.6, Color: "#00ff00"}, {Stop: 0.4, Color: "#ff0000"}, {Stop: 1, Color: "#ffffff"}}, 10},
		{"repeated stop", []ControlPoint{{Stop: 0, Color: "#000000"}, {Stop: 0, Color: "#00ff00"}, {Stop: 1, Color: "#ffffff"}}, 10},
		{"bad color", []ControlPoint{{Stop: 0, Color: "black"}, {Stop: 1, Color: "#ffffff"}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewColorTable(tt.points, tt.size)
			assert.Error(t, err)
		})
	}
}

package surface

import (
	"testing"

	"MandelbrotExplorer/render"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasReplaysEvents(t *testing.T) {
	c := NewCanvas()
	assert.Empty(t, c.PollEvents())

	x, y := c.CursorPosition()
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.5, y)

	c.Push(
		Event{Kind: Press, Button: ButtonLeft, Position: Position{X: 0.2, Y: 0.3}},
		Event{Kind: Key, Rune: ' '},
	)
	x, y = c.CursorPosition()
	assert.Equal(t, 0.2, x)
	assert.Equal(t, 0.3, y)

	events := c.PollEvents()
	require.Len(t, events, 2)
	assert.Equal(t, Press, events[0].Kind)
	assert.Equal(t, Key, events[1].Kind)
	assert.Empty(t, c.PollEvents())
}

func TestCanvasKeepsCopyOfFrame(t *testing.T) {
	c := NewCanvas()
	assert.Nil(t, c.Frame())
	assert.Error(t, c.Present(nil))

	red := colorful.Color{R: 1}
	buffer := render.NewBuffer(3, 2)
	buffer.Set(2, 1, red)
	require.NoError(t, c.Present(buffer))

	buffer.Set(2, 1, colorful.Color{})
	require.NotNil(t, c.Frame())
	assert.Equal(t, red, c.Frame().Get(2, 1))

	require.NoError(t, c.Present(render.NewBuffer(5, 5)))
	assert.Equal(t, 5, c.Frame().Width)
}

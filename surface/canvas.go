package surface

import (
	"MandelbrotExplorer/render"

	"github.com/pkg/errors"
)

var _ Surface = (*Canvas)(nil)

// Canvas is an off-screen surface. It keeps a copy of the last presented
// frame and replays events queued with Push.
type Canvas struct {
	cursor  Position
	frame   *render.Buffer
	pending []Event
}

func NewCanvas() *Canvas {
	return &Canvas{cursor: Position{X: 0.5, Y: 0.5}}
}

// Push queues events for the next PollEvents call. Pointer events also move
// the cursor.
func (c *Canvas) Push(events ...Event) {
	for _, ev := range events {
		if ev.Kind != Key && ev.Kind != Quit {
			c.cursor = ev.Position
		}
	}
	c.pending = append(c.pending, events...)
}

func (c *Canvas) PollEvents() []Event {
	events := c.pending
	c.pending = nil
	return events
}

func (c *Canvas) CursorPosition() (float64, float64) {
	return c.cursor.X, c.cursor.Y
}

func (c *Canvas) Present(buffer *render.Buffer) error {
	if buffer == nil || buffer.Width <= 0 || buffer.Height <= 0 {
		return errors.New("nothing to present")
	}
	if c.frame == nil || c.frame.Width != buffer.Width || c.frame.Height != buffer.Height {
		c.frame = render.NewBuffer(buffer.Width, buffer.Height)
	}
	copy(c.frame.Pix, buffer.Pix)
	return nil
}

// Frame returns the last presented frame, or nil before the first one.
func (c *Canvas) Frame() *render.Buffer {
	return c.frame
}

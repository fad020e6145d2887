package explorer

import (
	"fmt"
	"io"

	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/surface"
	"MandelbrotExplorer/viewport"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Idle State = iota
	Dragging
)

type State int

func (s State) String() string {
	if s < Idle || s > Dragging {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return []string{
		"Idle", "Dragging",
	}[s]
}

// DragState is captured when the button goes down and dropped when it comes
// back up.
type DragState struct {
	Pointer surface.Position
	Center  viewport.Point
}

// Controller turns input events into viewport changes. It is the only writer
// of the viewport and runs between frames, never during one.
type Controller struct {
	drag     DragState
	logger   bslogger.Logger
	reports  io.Writer
	state    State
	viewport *viewport.Viewport
	zoomRate float64
}

func NewController(v *viewport.Viewport, zoomRate float64, reports io.Writer) *Controller {
	if reports == nil {
		reports = io.Discard
	}
	return &Controller{
		logger:   misc.NewLogger("Controller"),
		reports:  reports,
		state:    Idle,
		viewport: v,
		zoomRate: zoomRate,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Drag returns the drag state and whether a drag is in progress.
func (c *Controller) Drag() (DragState, bool) {
	return c.drag, c.state == Dragging
}

// Handle applies one event. It returns false once the user asked to quit.
func (c *Controller) Handle(ev surface.Event) bool {
	switch ev.Kind {
	case surface.Press:
		if c.state == Idle && ev.Button == surface.ButtonLeft {
			c.drag = DragState{Pointer: ev.Position, Center: c.viewport.Center}
			c.state = Dragging
		}
	case surface.Move:
		c.Follow(ev.Position)
	case surface.Release:
		if c.state == Dragging && ev.Button == surface.ButtonLeft {
			c.Follow(ev.Position)
			c.drag = DragState{}
			c.state = Idle
		}
	case surface.Wheel:
		c.zoom(ev.Position, ev.WheelDelta)
	case surface.Key:
		return c.key(ev.Rune)
	case surface.Quit:
		return false
	}
	return true
}

// Follow moves the viewport with the pointer while a drag is in progress.
func (c *Controller) Follow(pointer surface.Position) {
	if c.state != Dragging {
		return
	}
	c.viewport.Drag(c.drag.Center, c.drag.Pointer.X, c.drag.Pointer.Y, pointer.X, pointer.Y)
}

// Report writes the current center and zoom as one line.
func (c *Controller) Report() {
	if _, err := fmt.Fprintln(c.reports, c.viewport.String()); err != nil {
		c.logger.Warningf("Unable to write report: %s", err)
	}
}

func (c *Controller) key(r rune) bool {
	switch r {
	case ' ':
		c.Report()
	case '+', '=':
		c.zoom(surface.Position{X: 0.5, Y: 0.5}, 1)
	case '-', '_':
		c.zoom(surface.Position{X: 0.5, Y: 0.5}, -1)
	case 'q', 'Q':
		return false
	}
	return true
}

func (c *Controller) zoom(pointer surface.Position, delta float64) {
	var zoomNew float64
	switch {
	case delta > 0:
		zoomNew = c.viewport.Zoom * c.zoomRate
	case delta < 0:
		zoomNew = c.viewport.Zoom / c.zoomRate
	default:
		return
	}

	if err := c.viewport.ZoomAt(pointer.X, pointer.Y, zoomNew); err != nil {
		c.logger.Debugf("Ignoring zoom: %s", err)
		return
	}

	// The plane point under a dragging pointer moved, start the drag over from here
	if c.state == Dragging {
		c.drag = DragState{Pointer: pointer, Center: c.viewport.Center}
	}
}

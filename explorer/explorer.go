// Package explorer runs the interactive loop: it drains input events into
// the Controller, renders one frame and hands it to the surface, at a fixed
// frame rate.
package explorer

import (
	"context"
	"io"
	"time"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/render"
	"MandelbrotExplorer/surface"
	"MandelbrotExplorer/viewport"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
)

const heartBeatInterval = 30 * time.Second

type Explorer struct {
	buffer     *render.Buffer
	controller *Controller
	frameTime  time.Duration
	frames     uint
	logger     bslogger.Logger
	renderer   *render.Renderer
	settings   Settings
	surface    surface.Surface
	viewport   *viewport.Viewport
}

// NewExplorer builds the color table, renderer and controller described by
// settings. Reports requested by the user are written to reports.
func NewExplorer(settings Settings, s surface.Surface, reports io.Writer) (*Explorer, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	v, err := viewport.New(settings.Width, settings.Height, viewport.Point{Re: settings.CenterX, Im: settings.CenterY}, settings.Zoom)
	if err != nil {
		return nil, errors.Wrap(err, "creating viewport")
	}

	table, err := mandelbrot.NewColorTable(settings.MandelbrotSettings.ControlPoints, int(settings.MandelbrotSettings.ColorTableSize))
	if err != nil {
		return nil, errors.Wrap(err, "building color table")
	}

	m := mandelbrot.NewMandelbrot(settings.MandelbrotSettings)
	renderer, err := render.NewRenderer(m, table, settings.TaskGeneration, settings.Width, settings.Height, settings.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "creating renderer")
	}

	explorer := &Explorer{
		buffer:     render.NewBuffer(settings.Width, settings.Height),
		controller: NewController(&v, settings.ZoomRate, reports),
		logger:     misc.NewLogger("Explorer"),
		renderer:   renderer,
		settings:   settings,
		surface:    s,
		viewport:   &v,
	}
	explorer.logger.Infof("Built color table with %d colors", len(table))
	return explorer, nil
}

func (e *Explorer) Viewport() viewport.Viewport {
	return *e.viewport
}

func (e *Explorer) Controller() *Controller {
	return e.controller
}

func (e *Explorer) Frames() uint {
	return e.frames
}

// Step drains the pending events, then renders and presents one frame. It
// returns false when the user asked to quit; no frame is drawn in that case.
func (e *Explorer) Step() (bool, error) {
	for _, ev := range e.surface.PollEvents() {
		if !e.controller.Handle(ev) {
			return false, nil
		}
	}
	if _, dragging := e.controller.Drag(); dragging {
		x, y := e.surface.CursorPosition()
		e.controller.Follow(surface.Position{X: x, Y: y})
	}

	startTime := time.Now()
	if err := e.renderer.Render(e.viewport, e.buffer); err != nil {
		return false, errors.Wrap(err, "rendering frame")
	}
	e.frameTime = time.Since(startTime)

	if err := e.surface.Present(e.buffer); err != nil {
		return false, errors.Wrap(err, "presenting frame")
	}
	e.frames++
	return true, nil
}

// Run calls Step at the configured frame rate until the user quits, ctx is
// done or a frame fails.
func (e *Explorer) Run(ctx context.Context) error {
	e.logger.Info("Starting explorer")

	frame := time.NewTicker(time.Second / time.Duration(e.settings.FrameRate))
	defer frame.Stop()
	heartBeat := time.NewTicker(heartBeatInterval)
	defer heartBeat.Stop()

	step := func() (bool, error) {
		running, err := e.Step()
		if err == nil && !running {
			e.logger.Infof("Stopping explorer after %d frames at %s", e.frames, e.viewport)
		}
		return running, err
	}

	if running, err := step(); !running || err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			e.logger.Infof("Stopping explorer after %d frames: %s", e.frames, ctx.Err())
			return nil
		case <-heartBeat.C:
			e.logger.Debugf("Frames [Rendered: %d] [Last: %s] | %s", e.frames, e.frameTime, e.viewport)
		case <-frame.C:
			if running, err := step(); !running || err != nil {
				return err
			}
		}
	}
}

// Package render turns the viewport into colored pixels. A frame is cut into
// tasks once; every frame fans those tasks out over a bounded group of
// goroutines and joins them before returning.
package render

import (
	"image"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/task"
	"MandelbrotExplorer/viewport"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Renderer struct {
	height     int
	logger     bslogger.Logger
	mandelbrot *mandelbrot.Mandelbrot
	table      mandelbrot.ColorTable
	tasks      []task.Task
	width      int
	workers    int
}

func NewRenderer(m *mandelbrot.Mandelbrot, table mandelbrot.ColorTable, generation task.Generation, width int, height int, workers int) (*Renderer, error) {
	if len(table) == 0 {
		return nil, errors.New("color table is empty")
	}
	if workers < 1 {
		return nil, errors.Errorf("need at least one worker, got %d", workers)
	}
	tasks, err := task.Split(generation, width, height)
	if err != nil {
		return nil, errors.Wrap(err, "splitting frame")
	}

	renderer := &Renderer{
		height:     height,
		logger:     misc.NewLogger("Renderer"),
		mandelbrot: m,
		table:      table,
		tasks:      tasks,
		width:      width,
		workers:    workers,
	}
	renderer.logger.Infof("Rendering %dx%d frames as %d %s tasks on %d workers", width, height, len(tasks), generation, workers)
	return renderer, nil
}

// Render fills every pixel of buffer for the given viewport. The buffer is
// owned by the renderer until Render returns.
func (r *Renderer) Render(v *viewport.Viewport, buffer *Buffer) error {
	if v.Width != r.width || v.Height != r.height {
		return errors.Errorf("viewport is %dx%d, renderer expects %dx%d", v.Width, v.Height, r.width, r.height)
	}
	if buffer.Width != r.width || buffer.Height != r.height || len(buffer.Pix) != r.width*r.height {
		return errors.Errorf("buffer is %dx%d, renderer expects %dx%d", buffer.Width, buffer.Height, r.width, r.height)
	}

	view := *v
	var group errgroup.Group
	group.SetLimit(r.workers)
	for _, t := range r.tasks {
		t := t
		group.Go(func() error {
			r.renderTask(&view, t.Bounds, buffer)
			return nil
		})
	}
	return group.Wait()
}

func (r *Renderer) renderTask(v *viewport.Viewport, bounds image.Rectangle, buffer *Buffer) {
	size := len(r.table)
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			x, y := v.PixelToPlane(i, j)
			count := r.mandelbrot.EscapeTime(x, y)
			buffer.Set(i, j, r.table[r.mandelbrot.ColorIndex(count, size)])
		}
	}
}

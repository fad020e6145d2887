package mandelbrot

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// ControlPoint pins a color to a position in [0, 1] of the color table.
type ControlPoint struct {
	Stop  float64 `toml:"stop"`
	Color string  `toml:"color"`
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("{%g %s}", cp.Stop, cp.Color)
}

// ColorTable maps a normalized escape value to a color. It is never modified
// after NewColorTable returns, so render workers share it without locking.
type ColorTable []colorful.Color

// NewColorTable samples size evenly spaced colors from the gradient through
// points. Each channel is interpolated on its own with a monotone piecewise
// cubic (PCHIP), so no channel leaves the range spanned by its neighbouring
// points.
func NewColorTable(points []ControlPoint, size int) (ColorTable, error) {
	if size < 1 {
		return nil, errors.Errorf("color table size must be positive, got %d", size)
	}
	if err := verifyControlPoints(points); err != nil {
		return nil, err
	}

	stops := make([]float64, len(points))
	channels := [3][]float64{
		make([]float64, len(points)),
		make([]float64, len(points)),
		make([]float64, len(points)),
	}
	for i, point := range points {
		c, _ := colorful.Hex(point.Color)
		stops[i] = point.Stop
		channels[0][i] = c.R
		channels[1][i] = c.G
		channels[2][i] = c.B
	}

	var curves [3]interp.PiecewiseCubic
	for i := range curves {
		curves[i].FitWithDerivatives(stops, channels[i], pchipSlopes(stops, channels[i]))
	}

	table := make(ColorTable, size)
	for k := range table {
		position := 0.0
		if size > 1 {
			position = float64(k) / float64(size-1)
		}
		table[k] = colorful.Color{
			R: curves[0].Predict(position),
			G: curves[1].Predict(position),
			B: curves[2].Predict(position),
		}.Clamped()
	}
	return table, nil
}

func verifyControlPoints(points []ControlPoint) error {
	if len(points) < 2 {
		return errors.Errorf("need at least 2 control points, got %d", len(points))
	}
	if points[0].Stop != 0 {
		return errors.Errorf("first stop must be 0, got %g", points[0].Stop)
	}
	if last := points[len(points)-1].Stop; last != 1 {
		return errors.Errorf("last stop must be 1, got %g", last)
	}
	for i, point := range points {
		if i > 0 && point.Stop <= points[i-1].Stop {
			return errors.Errorf("stops must be strictly increasing, %g follows %g", point.Stop, points[i-1].Stop)
		}
		if _, err := colorful.Hex(point.Color); err != nil {
			return errors.Wrapf(err, "control point %d", i)
		}
	}
	return nil
}

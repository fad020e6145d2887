package mandelbrot

import (
	"fmt"

	"MandelbrotExplorer/misc"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
)

type Settings struct {
	logger bslogger.Logger

	ColorTableSize uint           `toml:"color_table_size"`
	ControlPoints  []ControlPoint `toml:"control_points"`
	MaxIterations  uint           `toml:"max_iterations"`
	SmoothColoring bool           `toml:"smooth_coloring"`
}

// DefaultControlPoints is the blue, white and orange gradient the explorer starts with.
func DefaultControlPoints() []ControlPoint {
	return []ControlPoint{
		{Stop: 0, Color: "#000764"},
		{Stop: 0.16, Color: "#206bcb"},
		{Stop: 0.42, Color: "#edffff"},
		{Stop: 0.6425, Color: "#ffaa00"},
		{Stop: 0.8575, Color: "#000200"},
		{Stop: 1, Color: "#000764"},
	}
}

func DefaultSettings() Settings {
	return Settings{
		ColorTableSize: 1000,
		ControlPoints:  DefaultControlPoints(),
		MaxIterations:  500,
		SmoothColoring: true,
	}
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Color Table Size: %d\n", s.ColorTableSize)
	output += fmt.Sprintf("Control Points: %v\n", s.ControlPoints)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Smooth Coloring: %t\n", s.SmoothColoring)
	return output
}

// Verify rejects settings that would make the color index undefined or the
// color table impossible to build.
func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("MandelbrotSettings")

	if s.MaxIterations == 0 {
		return errors.New("max_iterations must be greater than zero")
	}
	if s.ColorTableSize == 0 {
		return errors.New("color_table_size must be greater than zero")
	}
	if err := verifyControlPoints(s.ControlPoints); err != nil {
		return errors.Wrap(err, "control_points")
	}

	if s.MaxIterations == 1 && s.SmoothColoring {
		s.logger.Warning("Every point reaches max_iterations immediately, smooth coloring has no effect")
	}

	s.logger.Debug(s.String())
	return nil
}

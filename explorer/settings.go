package explorer

import (
	"fmt"
	"math"
	"runtime"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const maxFrameRate = 1000

type Settings struct {
	logger bslogger.Logger

	CenterX            float64             `toml:"center_x"`
	CenterY            float64             `toml:"center_y"`
	FrameRate          int                 `toml:"frame_rate"`
	Height             int                 `toml:"height"`
	MandelbrotSettings mandelbrot.Settings `toml:"mandelbrot"`
	TaskGeneration     task.Generation     `toml:"task_generation"`
	Width              int                 `toml:"width"`
	Workers            int                 `toml:"workers"`
	Zoom               float64             `toml:"zoom"`
	ZoomRate           float64             `toml:"zoom_rate"`
}

func DefaultSettings() Settings {
	return Settings{
		CenterX:            -0.5,
		CenterY:            0,
		FrameRate:          10,
		Height:             360,
		MandelbrotSettings: mandelbrot.DefaultSettings(),
		TaskGeneration:     task.Row,
		Width:              640,
		Workers:            0,
		Zoom:               150,
		ZoomRate:           1.2,
	}
}

// LoadSettings overlays the TOML file settingsFile, if one is given, on the
// defaults and verifies the result.
func LoadSettings(settingsFile string) (Settings, error) {
	s := DefaultSettings()
	s.logger = misc.NewLogger("ExplorerSettings")

	if settingsFile != "" {
		// A gradient in the file replaces the default one instead of being
		// merged into it point by point
		s.MandelbrotSettings.ControlPoints = nil

		metadata, err := toml.DecodeFile(settingsFile, &s)
		if err != nil {
			return s, errors.Wrapf(err, "reading settings file %s", settingsFile)
		}
		if !metadata.IsDefined("mandelbrot", "control_points") {
			s.MandelbrotSettings.ControlPoints = mandelbrot.DefaultControlPoints()
		}
		for _, key := range metadata.Undecoded() {
			s.logger.Warningf("Ignoring unknown setting %s in %s", key, settingsFile)
		}
		s.logger.Infof("Loaded settings from %s", settingsFile)
	}

	if err := s.Verify(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "\nExplorer settings\n"
	output += fmt.Sprintf("Canvas: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Center: (%v, %v)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Zoom: %v\n", s.Zoom)
	output += fmt.Sprintf("Zoom Rate: %v\n", s.ZoomRate)
	output += fmt.Sprintf("Frame Rate: %d\n", s.FrameRate)
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("ExplorerSettings")

	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("canvas must have a positive size, got %dx%d", s.Width, s.Height)
	}
	if math.IsNaN(s.CenterX) || math.IsInf(s.CenterX, 0) || math.IsNaN(s.CenterY) || math.IsInf(s.CenterY, 0) {
		return errors.Errorf("center must be finite, got (%v, %v)", s.CenterX, s.CenterY)
	}
	if !(s.Zoom > 0) || math.IsInf(s.Zoom, 1) {
		return errors.Errorf("zoom must be positive and finite, got %v", s.Zoom)
	}
	if !(s.ZoomRate > 1) || math.IsInf(s.ZoomRate, 1) {
		return errors.Errorf("zoom_rate must be greater than 1, got %v", s.ZoomRate)
	}
	if s.FrameRate <= 0 || s.FrameRate > maxFrameRate {
		return errors.Errorf("frame_rate must be between 1 and %d, got %d", maxFrameRate, s.FrameRate)
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		return errors.Errorf("unknown task_generation %d", int(s.TaskGeneration))
	}
	if s.Workers <= 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	if err := s.MandelbrotSettings.Verify(); err != nil {
		return errors.Wrap(err, "mandelbrot")
	}

	s.logger.Debug(s.String())
	return nil
}

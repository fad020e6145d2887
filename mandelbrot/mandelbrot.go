package mandelbrot

import (
	"math"
)

// Orbits are sampled this often when looking for a cycle.
const periodLength = 20

type Mandelbrot struct {
	mathLog2      float64
	maxIterations float64
	settings      Settings
}

func NewMandelbrot(settings Settings) *Mandelbrot {
	return &Mandelbrot{
		mathLog2:      math.Log(2),
		maxIterations: float64(settings.MaxIterations),
		settings:      settings,
	}
}

func (m *Mandelbrot) MaxIterations() float64 {
	return m.maxIterations
}

// EscapeTime iterates z = z^2 + c from z = c and returns the continuous
// iteration count at which |z| passed 2, or MaxIterations if it never did.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
func (m *Mandelbrot) EscapeTime(x float64, y float64) float64 {
	zx, zy := x, y
	x2, y2 := x*x, y*y
	iteration := 1.0
	period, oldX, oldY := 0, zx, zy

	for x2+y2 <= 4 && iteration < m.maxIterations {
		zy = 2*zx*zy + y
		zx = x2 - y2 + x
		x2 = zx * zx
		y2 = zy * zy
		iteration++

		// A repeated iterate means the orbit is a cycle and can never escape
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if zx == oldX && zy == oldY {
			return m.maxIterations
		}

		period++
		if period > periodLength {
			period = 0
			oldX = zx
			oldY = zy
		}
	}

	if iteration >= m.maxIterations {
		return m.maxIterations
	}

	if m.settings.SmoothColoring {
		zn := math.Log(x2+y2) / 2
		nu := math.Log(zn/m.mathLog2) / m.mathLog2
		iteration = iteration + 1 - nu
	}
	return iteration
}

// ColorIndex maps an escape count onto a table of size entries. Points that
// never escaped use entry 0; everything else is clamped into range.
func (m *Mandelbrot) ColorIndex(count float64, size int) int {
	if count >= m.maxIterations {
		return 0
	}
	// Compared as a float so that -Inf and NaN never reach the int conversion
	index := math.Floor(count / m.maxIterations * float64(size))
	if !(index > 0) {
		return 0
	}
	if index > float64(size-1) {
		return size - 1
	}
	return int(index)
}

// Package viewport maps canvas pixels to points of the complex plane and
// holds the pan and zoom arithmetic that moves the mapping around.
package viewport

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Point is a point of the complex plane.
type Point struct {
	Re float64
	Im float64
}

// Viewport is the canvas-to-plane mapping: Center sits in the middle of a
// Width x Height canvas and Zoom is the number of pixels per plane unit.
type Viewport struct {
	Center Point
	Zoom   float64
	Width  int
	Height int
}

func New(width int, height int, center Point, zoom float64) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, errors.Errorf("canvas must have a positive size, got %dx%d", width, height)
	}
	if !validZoom(zoom) {
		return Viewport{}, errors.Errorf("zoom must be positive and finite, got %g", zoom)
	}
	return Viewport{Center: center, Zoom: zoom, Width: width, Height: height}, nil
}

func validZoom(zoom float64) bool {
	return zoom > 0 && !math.IsInf(zoom, 1)
}

// PixelToPlane returns the plane point under the center of pixel (i, j).
func (v *Viewport) PixelToPlane(i int, j int) (float64, float64) {
	x := v.Center.Re + (float64(i)-float64(v.Width)/2+0.5)/v.Zoom
	y := v.Center.Im + (float64(j)-float64(v.Height)/2+0.5)/v.Zoom
	return x, y
}

// PlaneToPixel is the inverse of PixelToPlane. The result is fractional;
// pixel centers land on whole numbers.
func (v *Viewport) PlaneToPixel(x float64, y float64) (float64, float64) {
	i := (x-v.Center.Re)*v.Zoom + float64(v.Width)/2 - 0.5
	j := (y-v.Center.Im)*v.Zoom + float64(v.Height)/2 - 0.5
	return i, j
}

// Drag moves the center so that the plane point that was under the pointer
// at (startX, startY) when the drag began is under it again at (x, y).
// Pointer positions are normalized to [0, 1] across the canvas.
func (v *Viewport) Drag(startCenter Point, startX, startY, x, y float64) {
	v.Center.Re = startCenter.Re + (startX-x)*float64(v.Width)/v.Zoom
	v.Center.Im = startCenter.Im + (startY-y)*float64(v.Height)/v.Zoom
}

// ZoomAt changes the zoom to zoomNew while keeping the plane point under the
// normalized pointer position (x, y) fixed. Zoom levels that are not
// positive and finite are refused.
func (v *Viewport) ZoomAt(x, y, zoomNew float64) error {
	if !validZoom(zoomNew) {
		return errors.Errorf("zoom must be positive and finite, got %g", zoomNew)
	}
	scale := 1/v.Zoom - 1/zoomNew
	v.Center.Re += (x - 0.5) * float64(v.Width) * scale
	v.Center.Im += (y - 0.5) * float64(v.Height) * scale
	v.Zoom = zoomNew
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("center_x=%v, center_y=%v, zoom=%v", v.Center.Re, v.Center.Im, v.Zoom)
}

package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Buffer is the pixel buffer a frame is rendered into. It is allocated once
// and every frame overwrites all of it.
type Buffer struct {
	Width  int
	Height int
	Pix    []colorful.Color
}

func NewBuffer(width int, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]colorful.Color, width*height),
	}
}

func (b *Buffer) Set(x int, y int, c colorful.Color) {
	b.Pix[y*b.Width+x] = c
}

func (b *Buffer) Get(x int, y int) colorful.Color {
	return b.Pix[y*b.Width+x]
}

func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer) At(x int, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	r, g, bl := b.Get(x, y).RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

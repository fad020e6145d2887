// Package surface is the display and input side of the explorer: it hands
// out pointer and key events and shows finished frames.
package surface

import (
	"fmt"

	"MandelbrotExplorer/render"
)

const (
	Press Kind = iota
	Release
	Move
	Wheel
	Key
	Quit
)

type Kind int

func (k Kind) String() string {
	if k < Press || k > Quit {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return []string{
		"Press", "Release", "Move", "Wheel", "Key", "Quit",
	}[k]
}

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

type Button int

// Position is a pointer position normalized to [0, 1] across the canvas,
// (0, 0) being the top left corner.
type Position struct {
	X float64
	Y float64
}

type Event struct {
	Kind       Kind
	Button     Button
	Position   Position
	WheelDelta float64
	Rune       rune
}

func (e Event) String() string {
	output := "{Event "
	output += fmt.Sprintf("Kind: %s ", e.Kind)
	output += fmt.Sprintf("Button: %d ", e.Button)
	output += fmt.Sprintf("Position: (%.3f, %.3f) ", e.Position.X, e.Position.Y)
	output += fmt.Sprintf("WheelDelta: %g ", e.WheelDelta)
	output += fmt.Sprintf("Rune: %q}", e.Rune)
	return output
}

// Surface is what the render loop needs from a display. PollEvents never
// blocks; it returns the events gathered since the previous call.
type Surface interface {
	PollEvents() []Event
	CursorPosition() (float64, float64)
	Present(buffer *render.Buffer) error
}

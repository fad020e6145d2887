package surface

import (
	"strings"
	"sync"

	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/render"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	eventBuffer = 256

	// Foreground paints the top half of a cell, background the bottom half
	halfBlock = '▀'
)

var _ Surface = (*Terminal)(nil)

// Terminal shows frames in a true-color terminal, two canvas rows per
// terminal row, and turns tcell mouse and key events into Events. Frames are
// resampled to whatever size the terminal currently has.
type Terminal struct {
	closeOnce sync.Once
	cursor    Position
	events    chan tcell.Event
	logger    bslogger.Logger
	pressed   bool
	screen    tcell.Screen
	status    string
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return newTerminal(screen)
}

func newTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing terminal screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		cursor: Position{X: 0.5, Y: 0.5},
		events: make(chan tcell.Event, eventBuffer),
		logger: misc.NewLogger("Terminal"),
		screen: screen,
	}
	go t.readEvents()
	return t, nil
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen was finalized
			close(t.events)
			return
		}
		t.events <- ev
	}
}

func (t *Terminal) PollEvents() []Event {
	var events []Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return events
			}
			events = append(events, t.translate(ev)...)
		default:
			return events
		}
	}
}

func (t *Terminal) CursorPosition() (float64, float64) {
	return t.cursor.X, t.cursor.Y
}

func (t *Terminal) Present(buffer *render.Buffer) error {
	if buffer == nil || buffer.Width <= 0 || buffer.Height <= 0 {
		return errors.New("nothing to present")
	}

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	for row := 0; row < rows; row++ {
		top := (4*row + 1) * buffer.Height / (4 * rows)
		bottom := (4*row + 3) * buffer.Height / (4 * rows)
		for col := 0; col < cols; col++ {
			i := (2*col + 1) * buffer.Width / (2 * cols)
			style := tcell.StyleDefault.
				Foreground(tcellColor(buffer.Get(i, top))).
				Background(tcellColor(buffer.Get(i, bottom)))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	if t.status != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		col := 0
		for _, r := range t.status {
			if col >= cols {
				break
			}
			t.screen.SetContent(col, 0, r, nil, style)
			col++
		}
	}

	t.screen.Show()
	return nil
}

// Write shows the last non-empty line of p on the top terminal row from the
// next frame on.
func (t *Terminal) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSpace(string(p)), "\n")
	if last := strings.TrimSpace(lines[len(lines)-1]); last != "" {
		t.status = last
	}
	return len(p), nil
}

func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.screen.Fini()
	})
}

func (t *Terminal) translate(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return t.translateMouse(x, y, ev.Buttons())
	case *tcell.EventKey:
		if event, ok := translateKey(ev.Key(), ev.Rune()); ok {
			return []Event{event}
		}
	case *tcell.EventResize:
		t.logger.Debug("Terminal resized")
		t.screen.Sync()
	}
	return nil
}

func (t *Terminal) translateMouse(x int, y int, buttons tcell.ButtonMask) []Event {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	position := Position{
		X: (float64(x) + 0.5) / float64(cols),
		Y: (float64(y) + 0.5) / float64(rows),
	}
	t.cursor = position

	// Wheel reports say nothing about the other buttons
	var events []Event
	if buttons&tcell.WheelUp != 0 {
		events = append(events, Event{Kind: Wheel, Position: position, WheelDelta: 1})
	}
	if buttons&tcell.WheelDown != 0 {
		events = append(events, Event{Kind: Wheel, Position: position, WheelDelta: -1})
	}
	if len(events) > 0 {
		return events
	}

	left := buttons&tcell.Button1 != 0
	defer func() { t.pressed = left }()

	switch {
	case left && !t.pressed:
		return []Event{{Kind: Press, Button: ButtonLeft, Position: position}}
	case !left && t.pressed:
		return []Event{{Kind: Release, Button: ButtonLeft, Position: position}}
	case left:
		return []Event{{Kind: Move, Button: ButtonLeft, Position: position}}
	}
	return []Event{{Kind: Move, Button: ButtonNone, Position: position}}
}

func translateKey(key tcell.Key, r rune) (Event, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Event{Kind: Quit}, true
	case tcell.KeyRune:
		return Event{Kind: Key, Rune: r}, true
	}
	return Event{}, false
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

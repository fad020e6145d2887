package surface

import (
	"testing"

	"MandelbrotExplorer/render"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(screen)
	require.NoError(t, err)
	screen.SetSize(cols, rows)
	t.Cleanup(term.Close)
	return term, screen
}

func TestTranslateMouseDrag(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 5)

	events := term.translateMouse(0, 0, tcell.Button1)
	require.Len(t, events, 1)
	assert.Equal(t, Press, events[0].Kind)
	assert.Equal(t, ButtonLeft, events[0].Button)
	assert.InDelta(t, 0.05, events[0].Position.X, 1e-12)
	assert.InDelta(t, 0.1, events[0].Position.Y, 1e-12)

	events = term.translateMouse(5, 2, tcell.Button1)
	require.Len(t, events, 1)
	assert.Equal(t, Move, events[0].Kind)
	assert.Equal(t, ButtonLeft, events[0].Button)

	x, y := term.CursorPosition()
	assert.InDelta(t, 0.55, x, 1e-12)
	assert.InDelta(t, 0.5, y, 1e-12)

	events = term.translateMouse(6, 2, tcell.ButtonNone)
	require.Len(t, events, 1)
	assert.Equal(t, Release, events[0].Kind)

	events = term.translateMouse(7, 2, tcell.ButtonNone)
	require.Len(t, events, 1)
	assert.Equal(t, Move, events[0].Kind)
	assert.Equal(t, ButtonNone, events[0].Button)
}

func TestTranslateMouseWheel(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 5)

	events := term.translateMouse(4, 4, tcell.WheelUp)
	require.Len(t, events, 1)
	assert.Equal(t, Wheel, events[0].Kind)
	assert.Equal(t, 1.0, events[0].WheelDelta)
	assert.InDelta(t, 0.45, events[0].Position.X, 1e-12)
	assert.InDelta(t, 0.9, events[0].Position.Y, 1e-12)

	events = term.translateMouse(4, 4, tcell.WheelDown)
	require.Len(t, events, 1)
	assert.Equal(t, -1.0, events[0].WheelDelta)

	// A wheel report in the middle of a drag does not end the drag
	term.translateMouse(1, 1, tcell.Button1)
	term.translateMouse(1, 1, tcell.WheelUp)
	events = term.translateMouse(2, 1, tcell.Button1)
	require.Len(t, events, 1)
	assert.Equal(t, Move, events[0].Kind)
}

func TestTranslateKey(t *testing.T) {
	event, ok := translateKey(tcell.KeyRune, ' ')
	require.True(t, ok)
	assert.Equal(t, Event{Kind: Key, Rune: ' '}, event)

	event, ok = translateKey(tcell.KeyEscape, 0)
	require.True(t, ok)
	assert.Equal(t, Quit, event.Kind)

	event, ok = translateKey(tcell.KeyCtrlC, 0)
	require.True(t, ok)
	assert.Equal(t, Quit, event.Kind)

	_, ok = translateKey(tcell.KeyF1, 0)
	assert.False(t, ok)
}

func TestPresentResamplesBuffer(t *testing.T) {
	term, screen := newTestTerminal(t, 4, 2)

	top := colorful.Color{R: 1, G: 0, B: 0}
	bottom := colorful.Color{R: 0, G: 0, B: 1}

	// 8x8 canvas: upper half of every terminal row red, lower half blue
	buffer := render.NewBuffer(8, 8)
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			if j%4 < 2 {
				buffer.Set(i, j, top)
			} else {
				buffer.Set(i, j, bottom)
			}
		}
	}
	require.NoError(t, term.Present(buffer))

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			mainc, _, style, _ := screen.GetContent(col, row)
			assert.Equal(t, halfBlock, mainc)
			fg, bg, _ := style.Decompose()
			assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg, "cell (%d, %d)", col, row)
			assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg, "cell (%d, %d)", col, row)
		}
	}
}

func TestPresentShowsStatusLine(t *testing.T) {
	term, screen := newTestTerminal(t, 20, 3)

	_, err := term.Write([]byte("center_x=1, center_y=2, zoom=3\n"))
	require.NoError(t, err)
	require.NoError(t, term.Present(render.NewBuffer(4, 4)))

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'c', mainc)
	mainc, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, halfBlock, mainc)
}

func TestPresentRejectsEmptyBuffer(t *testing.T) {
	term, _ := newTestTerminal(t, 4, 2)
	assert.Error(t, term.Present(nil))
	assert.Error(t, term.Present(render.NewBuffer(0, 0)))
}

func TestPollEventsAfterClose(t *testing.T) {
	term, _ := newTestTerminal(t, 4, 2)
	term.Close()
	term.Close()

	assert.NotPanics(t, func() { term.PollEvents() })
}

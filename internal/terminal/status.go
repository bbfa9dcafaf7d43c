package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/kk-editor/kk/internal/input/mode"
)

// Status is the content of the status line.
type Status struct {
	Mode    mode.Mode
	Pending string
	Message string
	Error   bool
}

var (
	modeStyle    = tcell.StyleDefault.Reverse(true).Bold(true)
	pendingStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	messageStyle = tcell.StyleDefault
	errorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// DrawStatus renders st on the last line, places the cursor on the first
// cell and shows the result.
func (t *Terminal) DrawStatus(st Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if height == 0 {
		return
	}
	y := height - 1
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}

	x := t.drawText(0, y, width, " "+st.Mode.DisplayName()+" ", modeStyle)
	x++
	if st.Pending != "" {
		x = t.drawText(x, y, width, st.Pending, pendingStyle)
		x++
	}
	style := messageStyle
	if st.Error {
		style = errorStyle
	}
	t.drawText(x, y, width, st.Message, style)

	t.screen.ShowCursor(0, 0)
	t.screen.Show()
}

// drawText writes s from column x, clipped at width, and returns the column
// after the last cell written.
func (t *Terminal) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		w := uniseg.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// Package terminal draws on a character terminal with ANSI escape
// sequences.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI writes escape sequences to w. Write errors are sticky: after the
// first failure nothing more is written and Err reports it.
type ANSI struct {
	w     io.Writer
	fd    int
	color bool
	err   error
}

// New returns a terminal writing to w. When color is false the color
// calls are no-ops.
func New(w io.Writer, color bool) *ANSI {
	fd := -1
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &ANSI{w: w, fd: fd, color: color}
}

// ShouldUseColor reports whether f should receive color sequences,
// honouring the --no-color flag and the NO_COLOR environment variable.
func ShouldUseColor(noColorFlag bool, f *os.File) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (t *ANSI) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *ANSI) Err() error {
	return t.err
}

// Clear blanks the screen and homes the cursor.
func (t *ANSI) Clear() {
	t.printf("\033[2J\033[H")
}

// SetForeground selects one of the 16 terminal colors for text.
func (t *ANSI) SetForeground(code int) {
	if t.color {
		t.printf("\033[38;5;%dm", code)
	}
}

// SetBackground selects one of the 8 terminal colors behind text.
func (t *ANSI) SetBackground(code int) {
	if t.color {
		t.printf("\033[48;5;%dm", code)
	}
}

// Reset restores the default white-on-black colors.
func (t *ANSI) Reset(fg, bg int) {
	t.SetForeground(fg)
	t.SetBackground(bg)
}

// Line walks the cells between the two end points with Bresenham's
// algorithm, placing the cursor on each and printing the rune glyph
// returns. Both end points are plotted.
func (t *ANSI) Line(x1, y1, x2, y2 int, glyph func() rune) {
	for _, c := range Cells(x1, y1, x2, y2) {
		t.plot(c[0], c[1], glyph())
	}
}

func (t *ANSI) plot(x, y int, r rune) {
	// cursor positions are 1-based
	t.printf("\033[%d;%dH%c", y+1, x+1, r)
}

// PenDown moves the cursor to the last row of the terminal so the shell
// prompt lands below the drawing. Output that is not a terminal gets a
// newline instead.
func (t *ANSI) PenDown() {
	if t.fd >= 0 {
		if _, rows, err := term.GetSize(t.fd); err == nil && rows > 0 {
			t.printf("\033[%d;1H\n", rows)
			return
		}
	}
	t.printf("\n")
}

// Cells lists the cells of the line from (x1, y1) to (x2, y2) in drawing
// order, end points included.
func Cells(x1, y1, x2, y2 int) [][2]int {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	cells := make([][2]int, 0, max(dx, -dy)+1)
	errTerm := dx + dy
	x, y := x1, y1
	for {
		cells = append(cells, [2]int{x, y})
		if x == x2 && y == y2 {
			return cells
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x += sx
		}
		if e2 <= dx {
			errTerm += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

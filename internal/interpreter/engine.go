package interpreter

import (
	"fmt"
	"io"
	"log"

	"turtlegraphics/internal/queue"
)

// Terminal is the drawing surface the engine paints on.
type Terminal interface {
	SetForeground(code int)
	SetBackground(code int)
	// Line plots every cell from (x1, y1) to (x2, y2) inclusive, asking
	// glyph for the character of each cell.
	Line(x1, y1, x2, y2 int, glyph func() rune)
	// PenDown parks the cursor below the drawing.
	PenDown()
}

// MoveLog receives one record per MOVE or DRAW.
type MoveLog interface {
	Record(name string, x1, y1, x2, y2 float64) error
}

// Result summarises a Run.
type Result struct {
	Executed  int
	Discarded int
	// Stopped is set when the turtle left the screen and the remaining
	// commands were dropped.
	Stopped bool
}

// Engine drains a command queue against a turtle State.
type Engine struct {
	term  Terminal
	moves MoveLog
	diag  *log.Logger

	// Monochrome keeps FG and BG from reaching the terminal; the state is
	// still updated.
	Monochrome bool
}

// NewEngine wires an engine to its terminal and movement log. diag receives
// warnings and the out-of-bounds diagnostic; nil discards them.
func NewEngine(term Terminal, moves MoveLog, diag *log.Logger) *Engine {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Engine{term: term, moves: moves, diag: diag}
}

// Run executes q in order against st. Before each command the turtle's
// cell is checked; once it has a negative coordinate the pen is parked, a
// diagnostic is written and the rest of q is discarded. That stop is
// reported through Result, not as an error. q is always empty on return.
func (e *Engine) Run(q *queue.Queue[Command], st *State) (Result, error) {
	var res Result
	discard := func(Command) { res.Discarded++ }

	for !q.IsEmpty() {
		if !st.InBounds() {
			e.term.PenDown()
			e.diag.Print("ERROR: Invalid drawing. Cursor position is not valid.")
			res.Stopped = true
			q.Free(discard)
			return res, nil
		}

		cmd, _ := q.PopFront()
		if err := e.Execute(st, cmd); err != nil {
			q.Free(discard)
			return res, fmt.Errorf("executing %v: %w", cmd, err)
		}
		res.Executed++
	}
	return res, nil
}

// Execute applies a single command to st.
func (e *Engine) Execute(st *State, cmd Command) error {
	switch c := cmd.(type) {
	case Rotate:
		st.Rotate(c.Degrees)
		if !st.HeadingNormalized() {
			e.diag.Printf("WARNING: heading %g is outside [0, 360) after %v", st.Angle, c)
		}
	case Move:
		from := st.Position
		st.Move(c.Distance)
		return e.record(c.Kind(), from, st.Position)
	case Draw:
		from := st.Position
		e.draw(st, c.Distance)
		return e.record(c.Kind(), from, st.Position)
	case SetForeground:
		st.Foreground = c.Code
		if !e.Monochrome {
			e.term.SetForeground(c.Code)
		}
	case SetBackground:
		st.Background = c.Code
		if !e.Monochrome {
			e.term.SetBackground(c.Code)
		}
	case SetPattern:
		st.Pattern = c.Glyph
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}

// draw moves the turtle and plots from its old cell up to, but not
// including, the cell it lands on.
func (e *Engine) draw(st *State, distance float64) {
	oldX, oldY := st.Cell()
	st.Move(distance)
	newX, newY := st.Cell()

	dx, dy := AdjustDeltas(float64(newX-oldX), float64(newY-oldY))
	glyph := st.Pattern
	e.term.Line(oldX, oldY, oldX+int(dx), oldY+int(dy), func() rune { return glyph })
}

func (e *Engine) record(k Kind, from, to Point) error {
	if e.moves == nil {
		return nil
	}
	return e.moves.Record(k.String(), from.X, from.Y, to.X, to.Y)
}

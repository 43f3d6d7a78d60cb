package interpreter

import "fmt"

// Kind identifies a command.
type Kind int

const (
	KindRotate Kind = iota + 1
	KindMove
	KindDraw
	KindForeground
	KindBackground
	KindPattern
)

var kindNames = map[Kind]string{
	KindRotate:     "ROTATE",
	KindMove:       "MOVE",
	KindDraw:       "DRAW",
	KindForeground: "FG",
	KindBackground: "BG",
	KindPattern:    "PATTERN",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed instruction. The set of implementations is closed:
// every variant carries its own typed payload.
type Command interface {
	Kind() Kind
	String() string
	command()
}

// Rotate turns the heading by Degrees.
type Rotate struct {
	Degrees float64
}

// Move advances the turtle by Distance along its heading without drawing.
type Move struct {
	Distance float64
}

// Draw advances the turtle by Distance and plots the cells it passes.
type Draw struct {
	Distance float64
}

// SetForeground selects a foreground palette index.
type SetForeground struct {
	Code int
}

// SetBackground selects a background palette index.
type SetBackground struct {
	Code int
}

// SetPattern selects the glyph plotted by Draw.
type SetPattern struct {
	Glyph rune
}

func (Rotate) Kind() Kind        { return KindRotate }
func (Move) Kind() Kind          { return KindMove }
func (Draw) Kind() Kind          { return KindDraw }
func (SetForeground) Kind() Kind { return KindForeground }
func (SetBackground) Kind() Kind { return KindBackground }
func (SetPattern) Kind() Kind    { return KindPattern }

func (c Rotate) String() string        { return fmt.Sprintf("ROTATE %g", c.Degrees) }
func (c Move) String() string          { return fmt.Sprintf("MOVE %g", c.Distance) }
func (c Draw) String() string          { return fmt.Sprintf("DRAW %g", c.Distance) }
func (c SetForeground) String() string { return fmt.Sprintf("FG %d", c.Code) }
func (c SetBackground) String() string { return fmt.Sprintf("BG %d", c.Code) }
func (c SetPattern) String() string    { return fmt.Sprintf("PATTERN %c", c.Glyph) }

func (Rotate) command()        {}
func (Move) command()          {}
func (Draw) command()          {}
func (SetForeground) command() {}
func (SetBackground) command() {}
func (SetPattern) command()    {}

package interpreter

import "fmt"

// Palette limits and defaults.
const (
	MinColor        = 0
	MaxForeground   = 15
	MaxBackground   = 7
	WhiteForeground = 15
	WhiteBackground = 7
	Black           = 0

	DefaultPattern = '+'
)

// Point is a position in terminal coordinates; y grows downward.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// State is the turtle: where it is, where it faces and what it paints with.
type State struct {
	Position   Point
	Angle      float64 // degrees
	Foreground int
	Background int
	Pattern    rune
}

func NewState() *State {
	return &State{
		Foreground: WhiteForeground,
		Background: Black,
		Pattern:    DefaultPattern,
	}
}

// Rotate turns the heading by degrees.
func (s *State) Rotate(degrees float64) {
	s.Angle = Normalize(s.Angle + degrees)
}

// Move advances along the heading and returns the displacement in the
// heading's frame (dy positive means up the screen).
func (s *State) Move(distance float64) (dx, dy float64) {
	dx, dy = PolarToRect(distance, s.Angle)
	s.Position.X += dx
	s.Position.Y += -dy
	return dx, dy
}

// Cell is the terminal cell under the turtle.
func (s *State) Cell() (int, int) {
	return int(RoundNum(s.Position.X)), int(RoundNum(s.Position.Y))
}

// InBounds reports whether the turtle's cell has non-negative coordinates.
func (s *State) InBounds() bool {
	return RoundNum(s.Position.X) >= 0 && RoundNum(s.Position.Y) >= 0
}

// HeadingNormalized reports whether Angle lies in [0, 360).
func (s *State) HeadingNormalized() bool {
	return s.Angle >= 0 && s.Angle < 360
}

func (s *State) String() string {
	return fmt.Sprintf("%v @%g° fg=%d bg=%d pattern=%c",
		s.Position, s.Angle, s.Foreground, s.Background, s.Pattern)
}

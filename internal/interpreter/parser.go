package interpreter

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"turtlegraphics/internal/queue"
)

// MaxLineLength bounds a single line of a command file in bytes.
const MaxLineLength = 4096

const commandList = "ROTATE, MOVE, DRAW, FG, BG, PATTERN"

// Line is one non-blank line split into words.
type Line struct {
	Name string   `parser:"@Word"`
	Args []string `parser:"@Word*"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `\S+`},
	{Name: "Space", Pattern: `\s+`},
})

var parser = participle.MustBuild[Line](
	participle.Lexer(lineLexer),
	participle.Elide("Space"),
)

type family int

const (
	familyReal family = iota + 1
	familyInt
	familyChar
)

var commands = map[string]struct {
	kind   Kind
	family family
}{
	"ROTATE":  {KindRotate, familyReal},
	"MOVE":    {KindMove, familyReal},
	"DRAW":    {KindDraw, familyReal},
	"FG":      {KindForeground, familyInt},
	"BG":      {KindBackground, familyInt},
	"PATTERN": {KindPattern, familyChar},
}

// inclusive palette bounds for FG and BG
var colorRange = map[Kind][2]int{
	KindForeground: {MinColor, MaxForeground},
	KindBackground: {MinColor, MaxBackground},
}

// ParseLine classifies a single non-blank line and converts its value. The
// same routine backs both validation and parsing, so a line accepted by
// Validate always produces the same Command in Parse.
func ParseLine(text string) (Command, error) {
	line, err := parser.ParseString("", text)
	if err != nil || len(line.Args) != 1 {
		return nil, newValidationError(ReasonArity,
			"The line %q has an incorrect number of parameters.", text)
	}
	return Classify(line.Name, line.Args[0])
}

// Classify builds the Command named by name (case-insensitive) from value.
func Classify(name, value string) (Command, error) {
	entry, ok := commands[strings.ToUpper(name)]
	if !ok {
		e := newValidationError(ReasonUnknownCommand, "The %q command does not exist.", name)
		e.Hint = "Use one or more of the following commands instead: " + commandList + "."
		return nil, e
	}

	switch entry.family {
	case familyReal:
		v, ok := parseReal(value)
		if !ok {
			return nil, newValidationError(ReasonTypeMismatch,
				"The %s command requires a double or float, not %q.", name, value)
		}
		switch entry.kind {
		case KindRotate:
			return Rotate{Degrees: v}, nil
		case KindMove:
			return Move{Distance: v}, nil
		default:
			return Draw{Distance: v}, nil
		}

	case familyInt:
		v, ok := parseInteger(value)
		if !ok {
			return nil, newValidationError(ReasonTypeMismatch,
				"The %s command requires an integer, not %q.", name, value)
		}
		bounds := colorRange[entry.kind]
		if v < bounds[0] || v > bounds[1] {
			return nil, newValidationError(ReasonOutOfRange,
				"The %s command requires an integer between %d and %d, not %q.",
				name, bounds[0], bounds[1], value)
		}
		if entry.kind == KindForeground {
			return SetForeground{Code: v}, nil
		}
		return SetBackground{Code: v}, nil

	default:
		r, ok := parseGlyph(value)
		if !ok {
			return nil, newValidationError(ReasonTypeMismatch,
				"The PATTERN command requires a single character, not %q.", value)
		}
		return SetPattern{Glyph: r}, nil
	}
}

// parseReal accepts a complete float literal that stays finite.
func parseReal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseInteger accepts a complete base-10 literal that fits in 32 bits
// without touching either limit.
func parseInteger(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v == math.MaxInt32 || v == math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

func parseGlyph(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
		return 0, false
	}
	return r, true
}

// scan reads r line by line and hands every classified command to fn,
// stopping at the first invalid line.
func scan(r io.Reader, fn func(Command)) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 256), MaxLineLength)

	empty := true
	lineNo := 0
	for s.Scan() {
		lineNo++
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		empty = false

		cmd, err := ParseLine(text)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Line = lineNo
				ve.Text = text
			}
			return err
		}
		fn(cmd)
	}
	if err := s.Err(); err != nil {
		e := newValidationError(ReasonIO, "An IO error occurred while reading line %d", lineNo+1)
		e.Err = err
		return e
	}
	if empty {
		return newValidationError(ReasonEmpty, "The input file is empty.")
	}
	return nil
}

// Validate checks every line of r without building commands.
func Validate(r io.Reader) error {
	return scan(r, func(Command) {})
}

// Parse reads r into a queue of commands in line order.
func Parse(r io.Reader) (*queue.Queue[Command], error) {
	q := queue.New[Command]()
	if err := scan(r, q.PushBack); err != nil {
		q.Free(nil)
		return nil, err
	}
	return q, nil
}

// ValidateFile runs Validate over the file at path.
func ValidateFile(path string) error {
	return withFile(path, Validate)
}

// ParseFile reads the file at path into a command queue. The file is
// expected to have passed ValidateFile.
func ParseFile(path string) (*queue.Queue[Command], error) {
	var q *queue.Queue[Command]
	err := withFile(path, func(r io.Reader) error {
		var err error
		q, err = Parse(r)
		return err
	})
	if err != nil {
		if q != nil {
			q.Free(nil)
		}
		return nil, err
	}
	return q, nil
}

func withFile(path string, fn func(io.Reader) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		e := newValidationError(ReasonOpen, "The file could not be opened")
		e.Err = err
		return e
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			e := newValidationError(ReasonClose, "The file was not closed successfully")
			e.Err = cerr
			err = e
		}
	}()
	return fn(f)
}

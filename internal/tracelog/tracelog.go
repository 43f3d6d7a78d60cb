// Package tracelog writes the append-only movement log.
package tracelog

import (
	"fmt"
	"io"
	"os"
)

// Separator opens every run in the log.
const Separator = "---"

const recordFormat = "%s (%7.3f, %7.3f)-(%7.3f, %7.3f)\n"

// Log appends movement records to a file or writer.
type Log struct {
	w    io.Writer
	c    io.Closer
	echo io.Writer
}

// Open appends to the log file at path, creating it if needed, and writes
// the run separator.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	l, err := New(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	l.c = f
	return l, nil
}

// New starts a run on w.
func New(w io.Writer) (*Log, error) {
	if _, err := fmt.Fprintln(w, Separator); err != nil {
		return nil, fmt.Errorf("writing log separator: %w", err)
	}
	return &Log{w: w}, nil
}

// Echo copies every later record to w as well.
func (l *Log) Echo(w io.Writer) {
	l.echo = w
}

// Record writes one "NAME (x1, y1)-(x2, y2)" line.
func (l *Log) Record(name string, x1, y1, x2, y2 float64) error {
	if _, err := fmt.Fprintf(l.w, recordFormat, name, x1, y1, x2, y2); err != nil {
		return fmt.Errorf("writing log record: %w", err)
	}
	if l.echo != nil {
		fmt.Fprintf(l.echo, recordFormat, name, x1, y1, x2, y2)
	}
	return nil
}

// Close closes the underlying file, if Open created one.
func (l *Log) Close() error {
	if l.c == nil {
		return nil
	}
	err := l.c.Close()
	l.c = nil
	return err
}

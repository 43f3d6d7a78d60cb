package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"turtlegraphics/internal/interpreter"
	"turtlegraphics/internal/terminal"
	"turtlegraphics/internal/tracelog"
)

// exitUsage is returned for a wrong argument count or an unknown flag.
const exitUsage = 64

type options struct {
	logPath string
	simple  bool
	echoLog bool
	noColor bool
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	diag := log.New(stderr, "", 0)

	rootCmd := newRootCmd(stdout, diag)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	diag.Printf("ERROR: %v", err)
	diag.Print("Usage: turtle <fileName>")
	return exitUsage
}

func newRootCmd(stdout io.Writer, diag *log.Logger) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "turtle <fileName>",
		Short:         "Draw turtle graphics commands on the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return draw(args[0], opts, stdout, diag)
		},
	}

	rootCmd.Flags().StringVar(&opts.logPath, "log", "graphics.log", "Path of the append-only movement log")
	rootCmd.Flags().BoolVar(&opts.simple, "simple", false, "Black on white; ignore FG and BG")
	rootCmd.Flags().BoolVar(&opts.echoLog, "echo-log", false, "Copy movement log records to stderr")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color escape sequences")

	return rootCmd
}

func draw(path string, opts options, stdout io.Writer, diag *log.Logger) error {
	if err := interpreter.ValidateFile(path); err != nil {
		diag.Printf("ERROR: %v", err)
		diag.Print("ERROR: The input file is invalid. Please re-run the program with a valid input file.")
		return &exitError{code: exitCode(err), err: err}
	}

	q, err := interpreter.ParseFile(path)
	if err != nil {
		diag.Printf("ERROR: %v", err)
		return &exitError{code: exitCode(err), err: err}
	}

	color := false
	if f, ok := stdout.(*os.File); ok {
		color = terminal.ShouldUseColor(opts.noColor, f)
	}
	out := terminal.New(stdout, color)
	if opts.simple {
		out.Reset(interpreter.Black, interpreter.WhiteBackground)
	}
	out.Clear()

	moves, err := tracelog.Open(opts.logPath)
	if err != nil {
		q.Free(nil)
		diag.Printf("ERROR: The log file could not be opened: %v", err)
		return &exitError{code: interpreter.ReasonOpen.ExitCode(), err: err}
	}
	if opts.echoLog {
		moves.Echo(diag.Writer())
	}

	eng := interpreter.NewEngine(out, moves, diag)
	eng.Monochrome = opts.simple
	res, runErr := eng.Run(q, interpreter.NewState())
	closeErr := moves.Close()

	out.Reset(interpreter.WhiteForeground, interpreter.Black)
	out.PenDown()

	switch {
	case runErr != nil:
		diag.Printf("ERROR: %v", runErr)
		return &exitError{code: interpreter.ReasonIO.ExitCode(), err: runErr}
	case closeErr != nil:
		diag.Printf("ERROR: The log file was not closed successfully: %v", closeErr)
		return &exitError{code: interpreter.ReasonClose.ExitCode(), err: closeErr}
	case out.Err() != nil:
		return &exitError{code: interpreter.ReasonIO.ExitCode(), err: out.Err()}
	}
	if res.Stopped {
		diag.Printf("%d of %d commands were not executed.", res.Discarded, res.Executed+res.Discarded)
	}
	return nil
}

func exitCode(err error) int {
	var ve *interpreter.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason.ExitCode()
	}
	return interpreter.ReasonIO.ExitCode()
}

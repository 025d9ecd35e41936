package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bettercalldasappan/countdown/internal/countdown"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (no home directory, unreadable event file, etc.)
	ExitCommandError = 2 // Command error (invalid order token, bad flag values)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. A nil error maps to
// ExitSuccess; errors that are not ExitErrors map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// eventJSON is the JSON shape for one rendered event.
type eventJSON struct {
	Name     string `json:"name"`
	DaysLeft uint16 `json:"days_left"`
}

// Events renders the pipeline result, one event per line in text mode or a
// single JSON array in json mode.
func (f *OutputFormatter) Events(events []countdown.FutureEvent) error {
	if f.Format == "json" {
		out := make([]eventJSON, len(events))
		for i, ev := range events {
			out[i] = eventJSON{Name: ev.Name, DaysLeft: ev.DaysLeft}
		}
		return json.NewEncoder(f.Writer).Encode(out)
	}

	for _, ev := range events {
		fmt.Fprintf(f.Writer, "%d days until %s\n", ev.DaysLeft, ev.Name)
	}
	return nil
}

// Added confirms a newly stored event.
func (f *OutputFormatter) Added(ev countdown.Event) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(struct {
			Status string `json:"status"`
			Name   string `json:"name"`
			Time   uint32 `json:"time"`
		}{Status: "ok", Name: ev.Name, Time: ev.Time})
	}

	fmt.Fprintf(f.Writer, "added %q (%s)\n", ev.Name, ev.Target().UTC().Format(time.RFC3339))
	return nil
}

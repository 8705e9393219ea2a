package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"uilift/pkg/emit"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// GetExitCode extracts the exit code from an error, defaulting to ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the JSON envelope every command emits under --format json.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Error is the error payload inside a Response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Formatter writes command output in the configured format. Diagnostic
// output goes to ErrWriter so JSON on Writer stays parseable.
type Formatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// Success emits a successful result. The text form is produced by textFn so
// commands control their human-readable layout.
func (f *Formatter) Success(data any, textFn func(io.Writer)) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	textFn(f.Writer)
	return nil
}

// Failure emits an error envelope and returns an ExitError so the process
// exits non-zero.
func (f *Formatter) Failure(code, message string, details any) error {
	if f.Format == "json" {
		if err := json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &Error{Code: code, Message: message, Details: details},
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	}
	return &ExitError{Code: ExitFailure, Message: message}
}

// VerboseLog writes a diagnostic line when verbose mode is on.
func (f *Formatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Error taxonomy codes used in envelopes.
const (
	CodeSourceNotFound    = "source_not_found"
	CodeSourceUnreadable  = "source_unreadable"
	CodeMalformedIR       = "malformed_ir"
	CodeUnsupportedTarget = "unsupported_target"
	CodeWriteFailure      = "write_failure"
	CodeInternal          = "internal"
)

// ErrorCode classifies err into a taxonomy code for the envelope.
func ErrorCode(err error) string {
	var notFound *extract.SourceNotFoundError
	var unreadable *extract.SourceUnreadableError
	var malformed *ir.MalformedIRError
	var invalid *ir.ValidationError
	var unsupported *emit.UnsupportedTargetError
	var writeFailure *emit.WriteFailureError

	switch {
	case errors.As(err, &notFound):
		return CodeSourceNotFound
	case errors.As(err, &unreadable):
		return CodeSourceUnreadable
	case errors.As(err, &malformed), errors.As(err, &invalid):
		return CodeMalformedIR
	case errors.As(err, &unsupported):
		return CodeUnsupportedTarget
	case errors.As(err, &writeFailure):
		return CodeWriteFailure
	default:
		return CodeInternal
	}
}

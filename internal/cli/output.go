package cli

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution, including empty results
	ExitFailure      = 1 // Client data could not be loaded
	ExitCommandError = 2 // Command error (bad flags, invalid config, unrecognized field)
)

// Error codes reported by the CLI itself. Load failures use the store codes.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeConfig       = "E013" // Config file, .env or flag values invalid
	ErrCodeUnknownField = "E014" // Field name outside the known set (strict mode)
)

// jsonAPI encodes CLI responses. Matches encoding/json output byte for byte.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	reported bool // Already written to the user by an OutputFormatter
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

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitCommandError for errors that are not
// an ExitError: those come from cobra's argument and flag parsing.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
	RunID   string // Reported as trace_id in JSON responses
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status  string      `json:"status"`             // "ok" or "error"
	Data    interface{} `json:"data,omitempty"`     // success payload
	Error   *CLIError   `json:"error,omitempty"`    // error details
	TraceID string      `json:"trace_id,omitempty"` // run id, also logged as run_id
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E005", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt.Fprintln, so result types render
// themselves through String.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return jsonAPI.NewEncoder(f.Writer).Encode(CLIResponse{
			Status:  "ok",
			Data:    data,
			TraceID: f.RunID,
		})
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return jsonAPI.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			TraceID: f.RunID,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error: %s\n", message)
	if f.Verbose {
		fmt.Fprintf(f.Writer, "Code: %s\n", code)
		if details != nil {
			fmt.Fprintf(f.Writer, "Details: %v\n", details)
		}
	}
	return nil
}

// Fail reports an error to the user and returns the matching ExitError.
// The cause, if any, is shown as details.
func (f *OutputFormatter) Fail(exitCode int, code, message string, cause error) error {
	var details interface{}
	if cause != nil {
		details = cause.Error()
	}
	_ = f.Error(code, message, details)

	exitErr := WrapExitError(exitCode, message, cause)
	exitErr.reported = true
	return exitErr
}

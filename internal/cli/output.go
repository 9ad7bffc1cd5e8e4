package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure
	ExitCommandError = 2 // Command error (bad selection, missing file, wrong format, shape mismatch)
)

// Error codes reported in text and JSON output.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeInvalidSelection  = "E002" // Menu selection or operation name not recognised
	ErrCodeNotFound          = "E003" // Input matrix file missing or unreadable
	ErrCodeFormat            = "E004" // Input matrix file has wrong format
	ErrCodeDimensionMismatch = "E005" // Operand shapes incompatible with the operation
	ErrCodeWriteFailed       = "E006" // Results directory or file could not be written
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set once the error was already shown to the user, so main
	// does not print it twice.
	Reported bool
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

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for errors that are not an ExitError.
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

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
	RunID  string      `json:"run_id,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details string `json:"details,omitempty"` // underlying error text
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(runID string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
			RunID:  runID,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(runID, code, message string, details error) error {
	if f.Format == "json" {
		resp := CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
			RunID:  runID,
		}
		if details != nil {
			resp.Error.Details = details.Error()
		}
		return json.NewEncoder(f.Writer).Encode(resp)
	}

	_, err := fmt.Fprintln(f.Writer, message)
	return err
}

package store

import "fmt"

// Error codes for load failures.
const (
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodePermission  = "E008" // Insufficient permissions
	ErrCodeReadFailed  = "E009" // Other read failure (directory, I/O error)
	ErrCodeMalformed   = "E010" // Syntax error or unexpected shape
	ErrCodeMissingKey  = "E011" // Required key absent (strict loading)
	ErrCodeUnsupported = "E012" // Source/compression combination not supported
)

// LoadError represents an error that occurred while loading clients.
type LoadError struct {
	Code    string // One of the ErrCode constants
	Path    string // Source path
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func notFoundError(path string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeNotFound,
		Path:    path,
		Message: fmt.Sprintf("File '%s' does not exist.", path),
		Err:     err,
	}
}

func permissionError(path string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodePermission,
		Path:    path,
		Message: fmt.Sprintf("File '%s' cannot be read due to insufficient permissions.", path),
		Err:     err,
	}
}

func readError(path string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeReadFailed,
		Path:    path,
		Message: fmt.Sprintf("File '%s' could not be read.", path),
		Err:     err,
	}
}

func malformedError(path string, format Format, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeMalformed,
		Path:    path,
		Message: fmt.Sprintf("The file '%s' contains invalid %s.", path, format),
		Err:     err,
	}
}

func shapeError(path string, detail string) *LoadError {
	return &LoadError{
		Code:    ErrCodeMalformed,
		Path:    path,
		Message: fmt.Sprintf("The file '%s' does not contain a list of clients: %s.", path, detail),
	}
}

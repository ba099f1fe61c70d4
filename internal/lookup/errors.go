package lookup

import (
	"errors"
	"fmt"
)

// Process exit codes, one per failure site.
const (
	ExitFailure         = 1
	ExitUsage           = 2
	ExitInvalidInput    = 3
	ExitNotInGeneration = 4
	ExitAggregation     = 5
	ExitUnsupported     = 6
)

var (
	ErrAggregation = errors.New("unexpected error when sorting moves by popularity")
	ErrUnsupported = errors.New("lookup is not yet supported")
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the code of the first ExitError in err's chain. Errors that
// carry none map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

func exitf(code int, err error, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)}
}

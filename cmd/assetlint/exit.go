package assetlint

import (
	"errors"
	"fmt"
)

// Exit codes
const (
	ExitOK         = 0
	ExitComplaints = 1
	ExitFatal      = 2
)

// ExitError carries the process exit code out of a command. A nil Err
// means everything worth saying has already been printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// fatal wraps err as an environment or configuration failure
func fatal(err error) error {
	return &ExitError{Code: ExitFatal, Err: err}
}

// ExitCode maps an error returned by the root command to a process exit code.
// Errors that do not carry a code, such as cobra's flag parsing errors, are
// usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFatal
}

// IsSilent reports whether err has nothing left to print
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Err == nil
}

// Package util provides utility functions and helpers used throughout the
// namedlock CLI. It includes exit-code mapping and error handling utilities.
package util

import (
	"errors"
	"fmt"
	"os"

	"github.com/named-lock/namedlock"
)

// Exit codes
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
	// ExitBusy mirrors flock(1): the lock was held and we were asked not to wait
	ExitBusy = 3
	// ExitTimeout is returned when a bounded wait elapses before acquisition
	ExitTimeout = 4
)

// ErrWaitTimeout is returned when a bounded wait on a lock elapses
var ErrWaitTimeout = errors.New("timed out waiting for lock")

// ExitWithCode exits the program with the specified code and message
func ExitWithCode(code int, format string, args ...interface{}) {
	if format != "" {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	os.Exit(code)
}

// HandleError handles errors and exits with appropriate code
func HandleError(err error, context string) {
	if err == nil {
		return
	}

	code := ExitError
	switch {
	case errors.Is(err, namedlock.ErrEmptyName), errors.Is(err, namedlock.ErrInvalidCharacter):
		code = ExitInvalidInput
	case errors.Is(err, namedlock.ErrWouldBlock):
		code = ExitBusy
	case errors.Is(err, ErrWaitTimeout):
		code = ExitTimeout
	}

	if context != "" {
		ExitWithCode(code, "Error: %s - %v", context, err)
	} else {
		ExitWithCode(code, "Error: %v", err)
	}
}

// Package runtimex contains helpers for the CLI code paths where an
// error is fatal. The main function recovers the panic and exits.
package runtimex

import (
	"errors"
	"fmt"
)

// PanicOnError panics with an error wrapping err when err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// Assert panics with an error containing message if assertion is false.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(errors.New(message))
	}
}

// Try1 returns v1 when err is nil and panics otherwise.
func Try1[T1 any](v1 T1, err error) T1 {
	PanicOnError(err, "Try1")
	return v1
}

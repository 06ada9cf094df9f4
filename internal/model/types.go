// Package model defines the domain types for the sprout CLI.
//
// All entities in this package represent the core data structures used
// throughout the scaffolding pipeline: the classification of a target
// directory, the user's reconciliation choice, the pipeline outcome, and
// the error types that carry process exit codes.
//
// Key design decision: user cancellation is a sentinel value checked
// explicitly at every prompt call site (ErrCancelled), never a panic or
// an exception-style control flow. Every pipeline stage propagates it
// upward until the CLI layer translates it into an exit code.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// DirectoryState classifies the on-disk state of a target directory at
// the moment of inspection. The state is computed fresh on every
// resolution attempt — it is never cached, since directory contents can
// change between invocation and use.
type DirectoryState string

const (
	// StateAbsent indicates the target path does not exist.
	StateAbsent DirectoryState = "absent"

	// StateEmpty indicates the target directory exists and has no entries.
	StateEmpty DirectoryState = "empty"

	// StateIgnorable indicates the target directory contains exactly one
	// entry: the version-control metadata directory (.git). Downstream
	// logic treats this identically to StateEmpty.
	StateIgnorable DirectoryState = "non-empty-ignorable"

	// StateConflicting indicates the target directory contains entries
	// other than version-control metadata. Materializing into it requires
	// reconciliation (clearing, overwriting in place, or aborting).
	StateConflicting DirectoryState = "non-empty-conflicting"
)

// String returns the string representation of DirectoryState.
func (s DirectoryState) String() string {
	return string(s)
}

// IsValid checks whether the DirectoryState value is one of the
// predefined valid states.
func (s DirectoryState) IsValid() bool {
	switch s {
	case StateAbsent, StateEmpty, StateIgnorable, StateConflicting:
		return true
	default:
		return false
	}
}

// HasConflict returns true if materializing into a directory in this
// state requires a reconciliation decision. Only StateConflicting
// carries a conflict; absent, empty, and ignorable directories can be
// written into immediately.
func (s DirectoryState) HasConflict() bool {
	return s == StateConflicting
}

// ParseDirectoryState converts a string to a DirectoryState.
// Returns an error if the string does not match any valid state.
func ParseDirectoryState(s string) (DirectoryState, error) {
	state := DirectoryState(strings.ToLower(s))
	if !state.IsValid() {
		return "", fmt.Errorf("invalid directory state: %q (valid: absent, empty, non-empty-ignorable, non-empty-conflicting)", s)
	}
	return state, nil
}

// Choice represents the user's decision when the target directory
// conflicts with materialization. It is produced by the interactive
// chooser (or the non-interactive fallback) and consumed by the
// reconciliation policy.
type Choice string

const (
	// ChoiceCancel aborts the entire run without touching the directory.
	ChoiceCancel Choice = "cancel"

	// ChoiceClear removes every entry in the directory except the
	// version-control metadata directory, then proceeds.
	ChoiceClear Choice = "clear"

	// ChoiceIgnore proceeds without clearing. Template files with the
	// same name as existing entries overwrite them in place.
	ChoiceIgnore Choice = "ignore"
)

// String returns the string representation of Choice.
func (c Choice) String() string {
	return string(c)
}

// IsValid checks whether the Choice value is one of the predefined
// valid choices.
func (c Choice) IsValid() bool {
	switch c {
	case ChoiceCancel, ChoiceClear, ChoiceIgnore:
		return true
	default:
		return false
	}
}

// Outcome is the result of the reconciliation policy: either the
// pipeline proceeds to materialization, or the run is aborted.
type Outcome string

const (
	// OutcomeProceed indicates the target directory is ready for
	// materialization.
	OutcomeProceed Outcome = "proceed"

	// OutcomeAborted indicates the run must terminate without
	// materializing anything further.
	OutcomeAborted Outcome = "aborted"
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// ErrCancelled is the sentinel returned by any interactive prompt the
// user cancels. Callers check it with errors.Is and terminate the run
// without attempting further side effects. The CLI layer translates it
// into ExitUserCancelled.
var ErrCancelled = errors.New("operation cancelled")

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitTemplateNotFound indicates the requested template does not
	// exist in the template registry.
	ExitTemplateNotFound ExitCode = 2

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

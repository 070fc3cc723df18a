// Package errors provides centralized error definitions and error handling
// utilities for the kanri codebase. It defines domain-specific errors,
// sentinel errors, and error constructors with context wrapping.
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - LibraryError: errors related to the project library
//   - LaunchError: errors related to launching external programs
//   - ProvisionError: errors related to template provisioning
//
// Sentinel errors represent common error conditions and can be checked
// with errors.Is:
//
//	if errors.Is(err, errors.ErrAlreadyExists) { ... }
//
//	var launchErr *errors.LaunchError
//	if errors.As(err, &launchErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Library-related sentinel errors
var (
	// ErrAlreadyExists indicates that a project name is already taken.
	ErrAlreadyExists = New("name is already taken")
	// ErrProjectNotFound indicates that a project could not be found.
	ErrProjectNotFound = New("project not found")
	// ErrInvalidPath indicates that the projects root is not a usable path.
	ErrInvalidPath = New("invalid path to the projects directory")
	// ErrRootNotFound indicates that the projects root does not exist.
	ErrRootNotFound = New("directory with projects is not found")
	// ErrNotADirectory indicates that the projects root is not a directory.
	ErrNotADirectory = New("provided path is not a directory")
	// ErrPermission indicates insufficient permission on the projects root.
	ErrPermission = New("not enough permission to access directory with projects")
	// ErrInvalidProjectName indicates a name rejected by validation.
	ErrInvalidProjectName = New("this name is not allowed")
)

// Launcher-related sentinel errors
var (
	// ErrProgramNotFound indicates that the executable could not be resolved.
	ErrProgramNotFound = New("program not found")
	// ErrNoPermission indicates the program is not executable by this user.
	ErrNoPermission = New("no permission to execute the program")
	// ErrInterrupted indicates that the process wait was interrupted.
	ErrInterrupted = New("process was interrupted")
)

// Configuration and template sentinel errors
var (
	// ErrProfileNotFound indicates that a named profile does not exist.
	ErrProfileNotFound = New("profile not found")
	// ErrTemplateNotFound indicates that a named template does not exist.
	ErrTemplateNotFound = New("template not found")
	// ErrTemplateExists indicates that a template name is already taken.
	ErrTemplateExists = New("template already exists")
	// ErrShellNotConfigured indicates the active profile has no shell program.
	ErrShellNotConfigured = New("shell is not configured")
	// ErrEditorNotConfigured indicates the active profile has no editor program.
	ErrEditorNotConfigured = New("editor is not configured")
	// ErrRecentDisabled indicates the recent-project feature is turned off.
	ErrRecentDisabled = New("recent feature is disabled")
)

// baseError provides common functionality for all domain error types.
type baseError struct {
	message string
	cause   error
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// LibraryError represents errors related to the project library.
//
// Example:
//
//	err := errors.NewLibraryError("create failed", errors.ErrAlreadyExists).WithProject("api")
//	fmt.Println(err) // "library error [project=api]: create failed: name is already taken"
type LibraryError struct {
	baseError
	Project string
}

// NewLibraryError creates a new LibraryError.
func NewLibraryError(message string, cause error) *LibraryError {
	return &LibraryError{baseError: baseError{message: message, cause: cause}}
}

// WithProject adds the offending project name to the error context.
func (e *LibraryError) WithProject(name string) *LibraryError {
	e.Project = name
	return e
}

// Error returns the formatted error message.
func (e *LibraryError) Error() string {
	prefix := "library error"
	if e.Project != "" {
		prefix = fmt.Sprintf("library error [project=%s]", e.Project)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *LibraryError) Is(target error) bool {
	if _, ok := target.(*LibraryError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// LaunchError represents a failure to run an external program.
type LaunchError struct {
	baseError
	Program string
}

// NewLaunchError creates a new LaunchError.
func NewLaunchError(message string, cause error) *LaunchError {
	return &LaunchError{baseError: baseError{message: message, cause: cause}}
}

// WithProgram adds the program name to the error context.
func (e *LaunchError) WithProgram(program string) *LaunchError {
	e.Program = program
	return e
}

// Error returns the formatted error message.
func (e *LaunchError) Error() string {
	prefix := "launch error"
	if e.Program != "" {
		prefix = fmt.Sprintf("launch error [program=%s]", e.Program)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *LaunchError) Is(target error) bool {
	if _, ok := target.(*LaunchError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ExitCodeError indicates that a child process ran to completion but
/// returned a non-zero exit status. It is not an I/O error: the caller
// decides whether a non-zero exit fails the surrounding operation.
type ExitCodeError struct {
	Code int
}

// Error returns the formatted error message.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("program exited with non-zero status: %d", e.Code)
}

// ProvisionError reports a failed template application. Command names the
// template step that triggered the abort. If the compensating delete of
// the partially provisioned project also failed, Cleanup carries that
// error in addition to (never instead of) the original cause.
type ProvisionError struct {
	baseError
	Template string
	Command  string
	Cleanup  error
}

// NewProvisionError creates a new ProvisionError.
func NewProvisionError(message string, cause error) *ProvisionError {
	return &ProvisionError{baseError: baseError{message: message, cause: cause}}
}

// WithTemplate adds the template name to the error context.
func (e *ProvisionError) WithTemplate(name string) *ProvisionError {
	e.Template = name
	return e
}

// WithCommand adds the failing template command to the error context.
func (e *ProvisionError) WithCommand(command string) *ProvisionError {
	e.Command = command
	return e
}

// WithCleanup records a rollback failure alongside the original cause.
func (e *ProvisionError) WithCleanup(err error) *ProvisionError {
	e.Cleanup = err
	return e
}

// Error returns the formatted error message.
func (e *ProvisionError) Error() string {
	var parts []string
	if e.Template != "" {
		parts = append(parts, fmt.Sprintf("template=%s", e.Template))
	}
	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command=%q", e.Command))
	}

	prefix := "provision error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("provision error [%s]", strings.Join(parts, ", "))
	}

	msg := prefix + ": " + e.message
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Cleanup != nil {
		msg = fmt.Sprintf("%s (additionally, cleanup failed: %v)", msg, e.Cleanup)
	}
	return msg
}

// Is checks if this error matches the target.
func (e *ProvisionError) Is(target error) bool {
	if _, ok := target.(*ProvisionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeAlreadyPossessed indicates a duplicate skill/language/proficiency/talent purchase
	CodeAlreadyPossessed Code = "already_possessed"

	// CodePrerequisiteNotMet indicates ability, level, or talent gating failed
	CodePrerequisiteNotMet Code = "prerequisite_not_met"

	// CodeDutyRequired indicates a profession with duties was chosen without one
	CodeDutyRequired Code = "duty_required"

	// CodeRaceMismatch indicates an ancestry whose parent race differs from the chosen race
	CodeRaceMismatch Code = "race_mismatch"

	// CodeBudgetExceeded indicates a talent or advancement point overspend
	CodeBudgetExceeded Code = "budget_exceeded"

	// CodeNoPendingChoice indicates no queued choice matched the resolution request
	CodeNoPendingChoice Code = "no_pending_choice"

	// CodeWrongCount indicates a choice resolution with the wrong number of selections
	CodeWrongCount Code = "wrong_count"

	// CodeInvalidOption indicates a choice selection outside the offered options
	CodeInvalidOption Code = "invalid_option"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var rfErr *Error
	if errors.As(err, &rfErr) {
		return &Error{
			Code:    rfErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(rfErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// AlreadyPossessed creates an already possessed error
func AlreadyPossessed(message string) *Error {
	return New(CodeAlreadyPossessed, message)
}

// AlreadyPossessedf creates a formatted already possessed error
func AlreadyPossessedf(format string, args ...any) *Error {
	return Newf(CodeAlreadyPossessed, format, args...)
}

// PrerequisiteNotMet creates a prerequisite not met error
func PrerequisiteNotMet(message string) *Error {
	return New(CodePrerequisiteNotMet, message)
}

// PrerequisiteNotMetf creates a formatted prerequisite not met error
func PrerequisiteNotMetf(format string, args ...any) *Error {
	return Newf(CodePrerequisiteNotMet, format, args...)
}

// DutyRequired creates a duty required error
func DutyRequired(message string) *Error {
	return New(CodeDutyRequired, message)
}

// DutyRequiredf creates a formatted duty required error
func DutyRequiredf(format string, args ...any) *Error {
	return Newf(CodeDutyRequired, format, args...)
}

// RaceMismatch creates a race mismatch error
func RaceMismatch(message string) *Error {
	return New(CodeRaceMismatch, message)
}

// RaceMismatchf creates a formatted race mismatch error
func RaceMismatchf(format string, args ...any) *Error {
	return Newf(CodeRaceMismatch, format, args...)
}

// BudgetExceeded creates a budget exceeded error
func BudgetExceeded(message string) *Error {
	return New(CodeBudgetExceeded, message)
}

// BudgetExceededf creates a formatted budget exceeded error
func BudgetExceededf(format string, args ...any) *Error {
	return Newf(CodeBudgetExceeded, format, args...)
}

// NoPendingChoice creates a no pending choice error
func NoPendingChoice(message string) *Error {
	return New(CodeNoPendingChoice, message)
}

// NoPendingChoicef creates a formatted no pending choice error
func NoPendingChoicef(format string, args ...any) *Error {
	return Newf(CodeNoPendingChoice, format, args...)
}

// WrongCount creates a wrong count error
func WrongCount(message string) *Error {
	return New(CodeWrongCount, message)
}

// WrongCountf creates a formatted wrong count error
func WrongCountf(format string, args ...any) *Error {
	return Newf(CodeWrongCount, format, args...)
}

// InvalidOption creates an invalid option error
func InvalidOption(message string) *Error {
	return New(CodeInvalidOption, message)
}

// InvalidOptionf creates a formatted invalid option error
func InvalidOptionf(format string, args ...any) *Error {
	return Newf(CodeInvalidOption, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var rfErr *Error
	if errors.As(err, &rfErr) {
		return rfErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsAlreadyPossessed checks if the error is an already possessed error
func IsAlreadyPossessed(err error) bool {
	return Is(err, CodeAlreadyPossessed)
}

// IsPrerequisiteNotMet checks if the error is a prerequisite not met error
func IsPrerequisiteNotMet(err error) bool {
	return Is(err, CodePrerequisiteNotMet)
}

// IsDutyRequired checks if the error is a duty required error
func IsDutyRequired(err error) bool {
	return Is(err, CodeDutyRequired)
}

// IsRaceMismatch checks if the error is a race mismatch error
func IsRaceMismatch(err error) bool {
	return Is(err, CodeRaceMismatch)
}

// IsBudgetExceeded checks if the error is a budget exceeded error
func IsBudgetExceeded(err error) bool {
	return Is(err, CodeBudgetExceeded)
}

// IsNoPendingChoice checks if the error is a no pending choice error
func IsNoPendingChoice(err error) bool {
	return Is(err, CodeNoPendingChoice)
}

// IsWrongCount checks if the error is a wrong count error
func IsWrongCount(err error) bool {
	return Is(err, CodeWrongCount)
}

// IsInvalidOption checks if the error is an invalid option error
func IsInvalidOption(err error) bool {
	return Is(err, CodeInvalidOption)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var rfErr *Error
	if errors.As(err, &rfErr) {
		return rfErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var rfErr *Error
	if errors.As(err, &rfErr) {
		return rfErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

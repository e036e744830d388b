// Package validator checks creation and advancement inputs against the
// loaded catalog. Every entry point returns a Result listing what is
// wrong in player-readable terms; nothing here mutates a character.
package validator

import "fmt"

// Result is the outcome of a validation pass. Warnings are advisory and
// never flip Valid.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewResult returns a passing result to accumulate into.
func NewResult() *Result {
	return &Result{Valid: true}
}

// AddError records an error and marks the result invalid.
func (r *Result) AddError(message string) {
	r.Errors = append(r.Errors, message)
	r.Valid = false
}

// AddErrorf records a formatted error and marks the result invalid.
func (r *Result) AddErrorf(format string, args ...any) {
	r.AddError(fmt.Sprintf(format, args...))
}

// AddWarning records a warning without affecting validity.
func (r *Result) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// AddWarningf records a formatted warning without affecting validity.
func (r *Result) AddWarningf(format string, args ...any) {
	r.AddWarning(fmt.Sprintf(format, args...))
}

// Merge folds another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

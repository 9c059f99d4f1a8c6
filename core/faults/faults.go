// Package faults defines the coordination error taxonomy. Every failure the
// engine can produce is a coded Fault so that callers receive a
// machine-readable reason inside result envelopes instead of a bare string.
package faults

import "fmt"

// Code identifies a failure class.
type Code string

const (
	InvalidTransition   Code = "invalid_transition"
	MissingRate         Code = "missing_rate"
	NoQualifiedResource Code = "no_qualified_resource"
	BudgetExceeded      Code = "budget_exceeded"
	AlreadyAssigned     Code = "already_assigned"
	InvalidMissionState Code = "invalid_mission_state"
	MissingField        Code = "missing_field"
	NotFound            Code = "not_found"
	StoreFailure        Code = "store_failure"
)

// Fault is a recoverable, reportable failure. It never escapes the
// coordinator as a panic; it travels as the error branch of a result.
type Fault struct {
	Code    Code
	Message string
	// Details carries structured context such as the exhausted pool or a
	// budget shortfall amount.
	Details map[string]any
}

func (f *Fault) Error() string {
	if f.Message == "" {
		return string(f.Code)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// New creates a Fault with a formatted message.
func New(code Code, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// With attaches a detail entry and returns the fault for chaining.
func (f *Fault) With(key string, value any) *Fault {
	if f.Details == nil {
		f.Details = make(map[string]any, 2)
	}
	f.Details[key] = value
	return f
}

// CodeOf extracts the Code from an error, or empty when err is not a Fault.
func CodeOf(err error) Code {
	if f, ok := err.(*Fault); ok {
		return f.Code
	}
	return ""
}

// Is reports whether err is a Fault carrying the given code.
func Is(err error, code Code) bool { return CodeOf(err) == code }

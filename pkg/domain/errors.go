package domain

import (
	"errors"
	"fmt"
)

// PreconditionError reports a missing prerequisite for an operation. It is
// always recoverable: Remedy names the call that would satisfy the
// prerequisite.
type PreconditionError struct {
	Missing string // what was required, e.g. "no active sketch"
	Remedy  string // the call that fixes it, e.g. "create_sketch"
	// Required/Observed carry counts for accumulator preconditions; both are
	// zero for pure state preconditions.
	Required int
	Observed int
}

func (e *PreconditionError) Error() string {
	if e.Required > 0 {
		return fmt.Sprintf("%s: requires %d, got %d (use %s)", e.Missing, e.Required, e.Observed, e.Remedy)
	}
	return fmt.Sprintf("%s (use %s)", e.Missing, e.Remedy)
}

// IndexError reports an out-of-range ordinal against a live collection,
// carrying the observed count so the caller can self-correct.
type IndexError struct {
	Kind      CollectionKind
	Requested int
	Observed  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range: collection has %d", e.Kind, e.Requested, e.Observed)
}

// StaleReferenceError wraps a kernel failure that occurred while
// re-enumerating a collection. There is no invalidation signal from the
// kernel, so staleness is only ever detected at resolution time; the kernel's
// own error is surfaced verbatim.
type StaleReferenceError struct {
	Kind CollectionKind
	Err  error
}

func (e *StaleReferenceError) Error() string {
	return fmt.Sprintf("%s collection no longer resolves: %v", e.Kind, e.Err)
}

func (e *StaleReferenceError) Unwrap() error { return e.Err }

// InvalidArgumentError reports tool arguments that failed to decode into
// the typed request, before any kernel call was made.
type InvalidArgumentError struct {
	Err error
}

func (e *InvalidArgumentError) Error() string { return e.Err.Error() }

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// ErrNoActiveDocument is returned when the kernel reports no open document.
var ErrNoActiveDocument = errors.New("no active document in the kernel")

// Common precondition constructors, so every call site reports the same
// missing prerequisite and remedy wording.

func ErrNoActiveSketch() *PreconditionError {
	return &PreconditionError{Missing: "no active sketch", Remedy: "create_sketch"}
}

func ErrSketchAlreadyOpen() *PreconditionError {
	return &PreconditionError{Missing: "a sketch is already open", Remedy: "close_sketch"}
}

func ErrNoAxisSet() *PreconditionError {
	return &PreconditionError{Missing: "no axis of revolution set", Remedy: "set_axis_of_revolution"}
}

func ErrNotEnoughProfiles(required, observed int) *PreconditionError {
	return &PreconditionError{
		Missing:  "not enough accumulated profiles",
		Remedy:   "close_sketch",
		Required: required,
		Observed: observed,
	}
}

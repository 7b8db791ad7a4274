package domain

import "errors"

// Error kinds reported at the tool-call boundary.
const (
	ErrKindPrecondition    = "precondition"
	ErrKindIndex           = "index"
	ErrKindStaleReference  = "stale_reference"
	ErrKindInvalidArgument = "invalid_argument"
	ErrKindKernel          = "kernel"
)

// ErrorPayload is the structured error every tool call returns instead of
// raising. One failed geometric operation must never take the server down,
// so the boundary folds every error into this shape.
type ErrorPayload struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Remedy    string `json:"remedy,omitempty"`
	Required  int    `json:"required,omitempty"`
	Requested int    `json:"requested,omitempty"`
	Observed  int    `json:"observed,omitempty"`
}

// PayloadFor classifies err into an ErrorPayload. Unrecognized errors are
// reported as kernel failures, surfaced verbatim.
func PayloadFor(err error) ErrorPayload {
	var pre *PreconditionError
	if errors.As(err, &pre) {
		return ErrorPayload{
			Error:    pre.Error(),
			Kind:     ErrKindPrecondition,
			Remedy:   pre.Remedy,
			Required: pre.Required,
			Observed: pre.Observed,
		}
	}
	var idx *IndexError
	if errors.As(err, &idx) {
		return ErrorPayload{
			Error:     idx.Error(),
			Kind:      ErrKindIndex,
			Requested: idx.Requested,
			Observed:  idx.Observed,
		}
	}
	var arg *InvalidArgumentError
	if errors.As(err, &arg) {
		return ErrorPayload{Error: arg.Error(), Kind: ErrKindInvalidArgument}
	}
	var stale *StaleReferenceError
	if errors.As(err, &stale) {
		return ErrorPayload{Error: stale.Error(), Kind: ErrKindStaleReference}
	}
	return ErrorPayload{Error: err.Error(), Kind: ErrKindKernel}
}

package progression

import "errors"

// Sentinel errors for rejected transitions. None of these are fatal: the
// controller stays in its current stage and the message is surfaced to the
// presentation layer.
var (
	ErrInvalidState = errors.New("transition not allowed from current stage")
	ErrNotFound     = errors.New("required record missing")
)

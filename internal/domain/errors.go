package domain

import "errors"

// ErrInvalidArgument is returned when a caller passes input the core cannot
// reason about at all (non-finite balances, negative counts). It is never
// retried; the call site has to be fixed.
var ErrInvalidArgument = errors.New("invalid argument")

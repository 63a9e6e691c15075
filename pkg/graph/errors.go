package graph

import "errors"

// ErrUnavailable is returned when the graph service is not configured
// or not reachable. Callers degrade per their availability contract
// instead of failing the user-facing operation.
var ErrUnavailable = errors.New("graph service unavailable")

package uplink

import (
	"errors"
	"fmt"
)

// Sentinel errors for routing operations.
var (
	ErrRouteNotFound   = errors.New("uplink: route not found")
	ErrDuplicateRoute  = errors.New("uplink: duplicate route path")
	ErrInvalidPath     = errors.New("uplink: invalid route path")
	ErrMultipleIndex   = errors.New("uplink: more than one index route")
	ErrNilView         = errors.New("uplink: route has no view")
	ErrHydrationFailed = errors.New("uplink: hydration failed")
)

// RouteNotFoundError is the RouteNotFound condition: navigation to a path
// that no entry of the route table matches. Suggestion holds the closest
// declared path, if one is near enough to be useful.
type RouteNotFoundError struct {
	Path       string
	Suggestion string
}

func (e *RouteNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("uplink: no route for %q (did you mean %q?)", e.Path, e.Suggestion)
	}
	return fmt.Sprintf("uplink: no route for %q", e.Path)
}

// Is makes errors.Is(err, ErrRouteNotFound) hold for every RouteNotFoundError.
func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}

// IsRouteNotFound checks if err is a RouteNotFound condition.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// AsRouteNotFound extracts the RouteNotFoundError from err's chain.
func AsRouteNotFound(err error) (*RouteNotFoundError, bool) {
	var nf *RouteNotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

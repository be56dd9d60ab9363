package uplink

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	errs := []error{
		ErrRouteNotFound,
		ErrDuplicateRoute,
		ErrInvalidPath,
		ErrMultipleIndex,
		ErrNilView,
		ErrHydrationFailed,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsRouteNotFound(t *testing.T) {
	nf := &RouteNotFoundError{Path: "/unknown-path"}

	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrRouteNotFound, true},
		{"typed error", nf, true},
		{"wrapped typed error", fmt.Errorf("navigate: %w", nf), true},
		{"other error", errors.New("other error"), false},
		{"ErrInvalidPath", ErrInvalidPath, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRouteNotFound(tt.err); got != tt.expect {
				t.Errorf("IsRouteNotFound(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestAsRouteNotFound(t *testing.T) {
	nf := &RouteNotFoundError{Path: "/logn", Suggestion: "/login"}

	got, ok := AsRouteNotFound(fmt.Errorf("wrapped: %w", nf))
	if !ok {
		t.Fatal("AsRouteNotFound() ok = false, want true")
	}
	if got != nf {
		t.Errorf("AsRouteNotFound() = %v, want %v", got, nf)
	}

	if _, ok := AsRouteNotFound(ErrRouteNotFound); ok {
		t.Error("AsRouteNotFound(sentinel) ok = true, want false")
	}
}

func TestRouteNotFoundErrorMessage(t *testing.T) {
	tests := []struct {
		err  *RouteNotFoundError
		want string
	}{
		{&RouteNotFoundError{Path: "/x"}, `uplink: no route for "/x"`},
		{&RouteNotFoundError{Path: "/logn", Suggestion: "/login"}, `uplink: no route for "/logn" (did you mean "/login"?)`},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

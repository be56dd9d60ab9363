package uplink

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Fallback selects what happens when a location matches no route.
type Fallback string

const (
	// FallbackRender renders the error route in the outlet, keeping the URL.
	FallbackRender Fallback = "render"

	// FallbackRedirect sends the client to the error route.
	FallbackRedirect Fallback = "redirect"

	// FallbackNone renders nothing in the outlet. Chrome is still rendered.
	FallbackNone Fallback = "none"
)

// ParseFallback parses a fallback mode name.
func ParseFallback(s string) (Fallback, error) {
	switch f := Fallback(strings.ToLower(strings.TrimSpace(s))); f {
	case FallbackRender, FallbackRedirect, FallbackNone:
		return f, nil
	case "":
		return FallbackRender, nil
	default:
		return "", fmt.Errorf("uplink: unknown fallback %q (want render, redirect or none)", s)
	}
}

// DefaultErrorPath is the route used for RouteNotFound unless overridden.
const DefaultErrorPath = "/error_404"

// Observer is notified of every navigation resolved through Navigate.
type Observer func(ctx context.Context, nav Navigation)

type observerEntry struct {
	id int
	fn Observer
}

// Router resolves locations against a Table and notifies observers of each
// navigation. Resolution is pure; the only mutable state is the observer
// list.
type Router struct {
	table     *Table
	fallback  Fallback
	errorPath string

	mu        sync.RWMutex
	observers []observerEntry
	nextID    int
}

// RouterOption configures NewRouter.
type RouterOption func(*Router)

// WithFallback sets the RouteNotFound handling mode.
func WithFallback(f Fallback) RouterOption {
	return func(r *Router) {
		r.fallback = f
	}
}

// WithErrorPath sets the route rendered or redirected to on RouteNotFound.
func WithErrorPath(p string) RouterOption {
	return func(r *Router) {
		r.errorPath = p
	}
}

// NewRouter creates a router over table. Unless the fallback is
// FallbackNone, the error path must be declared in the table.
func NewRouter(table *Table, opts ...RouterOption) (*Router, error) {
	r := &Router{
		table:     table,
		fallback:  FallbackRender,
		errorPath: DefaultErrorPath,
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := ParseFallback(string(r.fallback)); err != nil {
		return nil, err
	}
	if r.fallback != FallbackNone {
		if _, ok := table.Match(r.errorPath); !ok {
			return nil, fmt.Errorf("uplink: fallback %q needs error route %q in the table", r.fallback, r.errorPath)
		}
	}
	return r, nil
}

// Table returns the router's route table.
func (r *Router) Table() *Table {
	return r.table
}

// Fallback returns the RouteNotFound handling mode.
func (r *Router) Fallback() Fallback {
	return r.fallback
}

// ErrorPath returns the path of the error route.
func (r *Router) ErrorPath() string {
	return r.errorPath
}

// Resolve matches to against the table without side effects.
//
// On a miss the navigation carries a RouteNotFoundError; with
// FallbackRender its Route is the error route and Fallback is true.
func (r *Router) Resolve(from, to Location) Navigation {
	nav := Navigation{From: from, To: to}

	if route, ok := r.table.Match(to.Path); ok {
		nav.Route = route
		nav.Matched = true
		return nav
	}

	nav.Err = &RouteNotFoundError{
		Path:       CleanPath(to.Path),
		Suggestion: r.Suggest(to.Path),
	}
	if r.fallback == FallbackRender {
		nav.Route, _ = r.table.Match(r.errorPath)
		nav.Fallback = true
	}
	return nav
}

// Navigate resolves to and notifies all observers with the result.
// Observers run synchronously in subscription order.
func (r *Router) Navigate(ctx context.Context, from, to Location) Navigation {
	nav := r.Resolve(from, to)
	r.notify(ctx, nav)
	return nav
}

// Subscribe registers an observer and returns a function that removes it.
func (r *Router) Subscribe(fn Observer) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.observers = append(r.observers, observerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { r.unsubscribe(id) })
	}
}

func (r *Router) unsubscribe(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.observers {
		if e.id == id {
			r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Router) notify(ctx context.Context, nav Navigation) {
	r.mu.RLock()
	observers := make([]observerEntry, len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for _, e := range observers {
		e.fn(ctx, nav)
	}
}

// Suggest returns the declared path closest to p by edit distance, or ""
// when nothing is close. The index route is never suggested.
func (r *Router) Suggest(p string) string {
	target := strings.ToLower(CleanPath(p))
	if target == IndexPath {
		return ""
	}

	best, bestDist := "", -1
	for _, route := range r.table.routes {
		if route.Index {
			continue
		}
		d := levenshtein.ComputeDistance(target, strings.ToLower(route.Path))
		if bestDist < 0 || d < bestDist {
			best, bestDist = route.Path, d
		}
	}

	// Allow roughly one edit per three characters, and at least two.
	limit := max(2, len(target)/3)
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

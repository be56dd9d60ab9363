package uplink

import (
	"context"
	"sync"
)

// History holds the current location of one browsing session and moves it
// through the router. It is the in-process counterpart of the browser's
// address bar: Push changes the location, the router selects the view, and
// subscribers are told about the swap.
//
// History has a single writer at a time; concurrent Push and Back calls are
// serialized. Reads never block on observers.
type History struct {
	router *Router

	nav sync.Mutex // serializes writers

	mu      sync.RWMutex
	current Navigation
	entries []Location
	subs    []Observer
}

// NewHistory starts a session at the root location.
func NewHistory(ctx context.Context, router *Router) *History {
	h := &History{router: router}
	root := Location{Path: IndexPath}
	h.current = router.Navigate(ctx, Location{}, root)
	h.entries = []Location{root}
	return h
}

// Current returns the navigation that produced the current location.
func (h *History) Current() Navigation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Location returns the current location.
func (h *History) Location() Location {
	return h.Current().To
}

// Len returns the number of entries in the session history.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Push navigates to target. The location changes even when no route
// matches, as it would in a browser; the RouteNotFoundError is returned
// alongside the navigation.
func (h *History) Push(ctx context.Context, target string) (Navigation, error) {
	to, err := ParseLocation(target)
	if err != nil {
		return Navigation{}, err
	}

	nav := h.move(ctx, func(entries []Location) (Location, []Location) {
		return to, append(entries, to)
	})
	h.notify(ctx, nav)
	return nav, nav.Err
}

// Replace navigates to target without adding a history entry, like a
// redirect. The returned error is the navigation's RouteNotFoundError, if any.
func (h *History) Replace(ctx context.Context, target string) (Navigation, error) {
	to, err := ParseLocation(target)
	if err != nil {
		return Navigation{}, err
	}

	nav := h.move(ctx, func(entries []Location) (Location, []Location) {
		entries[len(entries)-1] = to
		return to, entries
	})
	h.notify(ctx, nav)
	return nav, nav.Err
}

// Back returns to the previous entry. It reports false when already at the
// first entry.
func (h *History) Back(ctx context.Context) (Navigation, bool) {
	moved := false
	nav := h.move(ctx, func(entries []Location) (Location, []Location) {
		n := len(entries)
		if n < 2 {
			return Location{}, entries
		}
		moved = true
		return entries[n-2], entries[:n-1]
	})
	if !moved {
		return nav, false
	}
	h.notify(ctx, nav)
	return nav, true
}

// move applies step under the writer lock and records the resulting
// navigation. A zero target leaves the session where it is. Observers are
// notified by the caller after the lock is released, so they may navigate.
func (h *History) move(ctx context.Context, step func([]Location) (Location, []Location)) Navigation {
	h.nav.Lock()
	defer h.nav.Unlock()

	to, entries := step(h.entries)
	if to.IsZero() {
		return h.Current()
	}
	nav := h.router.Navigate(ctx, h.Location(), to)

	h.mu.Lock()
	h.current = nav
	h.entries = entries
	h.mu.Unlock()
	return nav
}

// Subscribe registers an observer for this session's location changes.
func (h *History) Subscribe(fn Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

func (h *History) notify(ctx context.Context, nav Navigation) {
	h.mu.RLock()
	subs := make([]Observer, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx, nav)
	}
}

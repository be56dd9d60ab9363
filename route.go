package uplink

import (
	"fmt"
	"strings"
)

// IndexPath is the path an index route answers to.
const IndexPath = "/"

// Route binds a path pattern to a view.
//
// Index routes have no path of their own; they are selected for the root
// path. A table holds at most one index route.
type Route struct {
	Name  string
	Path  string
	Index bool
	View  View
}

// Pattern returns the path the route matches.
func (r Route) Pattern() string {
	if r.Index {
		return IndexPath
	}
	return r.Path
}

// Table is an ordered, immutable sequence of routes.
// It is validated once at construction and never mutated afterwards, so it
// is safe for concurrent use.
type Table struct {
	routes        []Route
	caseSensitive bool
}

// TableOption configures NewTable.
type TableOption func(*Table)

// CaseSensitive makes path comparison case-sensitive. By default "/signup"
// matches a route declared as "/signUp".
func CaseSensitive(on bool) TableOption {
	return func(t *Table) {
		t.caseSensitive = on
	}
}

// NewTable validates routes and returns the table.
//
// Every route needs a view and an absolute path (or the Index flag). Paths
// must be unique after normalization, which includes case folding unless
// the table is case-sensitive.
func NewTable(routes []Route, opts ...TableOption) (*Table, error) {
	t := &Table{routes: make([]Route, 0, len(routes))}
	for _, opt := range opts {
		opt(t)
	}

	seen := make(map[string]string, len(routes))
	hasIndex := false
	for _, r := range routes {
		if r.View == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilView, r.Pattern())
		}

		if r.Index {
			if r.Path != "" && r.Path != IndexPath {
				return nil, fmt.Errorf("%w: index route declared with path %q", ErrInvalidPath, r.Path)
			}
			if hasIndex {
				return nil, ErrMultipleIndex
			}
			hasIndex = true
			r.Path = ""
		} else {
			if !strings.HasPrefix(r.Path, "/") {
				return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPath, r.Path)
			}
			if clean := CleanPath(r.Path); clean != r.Path {
				return nil, fmt.Errorf("%w: %q is not clean (want %q)", ErrInvalidPath, r.Path, clean)
			}
		}

		key := t.key(r.Pattern())
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateRoute, r.Pattern(), prev)
		}
		seen[key] = r.Pattern()

		if r.Name == "" {
			r.Name = r.Pattern()
		}
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// MustTable is like NewTable but panics on an invalid table. Route tables
// are fixed at startup, so a bad one is a programming error.
func MustTable(routes []Route, opts ...TableOption) *Table {
	t, err := NewTable(routes, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// IsCaseSensitive reports whether paths are compared case-sensitively.
func (t *Table) IsCaseSensitive() bool {
	return t.caseSensitive
}

// Match returns the route whose pattern equals the cleaned path. NewTable
// rejects colliding patterns, so at most one route matches. Matching is
// exact: "/login/extra" does not match "/login".
func (t *Table) Match(p string) (Route, bool) {
	key := t.key(CleanPath(p))
	for _, r := range t.routes {
		if t.key(r.Pattern()) == key {
			return r, true
		}
	}
	return Route{}, false
}

// Lookup finds a route by name or by its declared pattern.
func (t *Table) Lookup(name string) (Route, bool) {
	for _, r := range t.routes {
		if r.Name == name {
			return r, true
		}
	}
	if !strings.HasPrefix(name, "/") {
		return Route{}, false
	}
	return t.Match(name)
}

func (t *Table) key(p string) string {
	if t.caseSensitive {
		return p
	}
	return strings.ToLower(p)
}

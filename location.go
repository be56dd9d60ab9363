package uplink

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Location is a navigable address inside the application: a path plus its
// query parameters. Scheme and host are never part of a Location.
type Location struct {
	Path  string
	Query url.Values
}

// ParseLocation parses a path ("/login?next=/mainPage") or an absolute URL
// (as sent in HX-Current-URL) into a Location. The path is cleaned; an
// empty path becomes the root.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q: %v", ErrInvalidPath, raw, err)
	}
	if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		return Location{}, fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, raw)
	}
	return Location{Path: CleanPath(u.Path), Query: u.Query()}, nil
}

// MustLocation is like ParseLocation but panics on error.
// Intended for constants in tests and route declarations.
func MustLocation(raw string) Location {
	loc, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// String renders the location back to "path?query".
func (l Location) String() string {
	p := l.Path
	if p == "" {
		p = IndexPath
	}
	if len(l.Query) == 0 {
		return p
	}
	return p + "?" + l.Query.Encode()
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Path == "" && len(l.Query) == 0
}

// CleanPath normalizes a request path for matching: empty becomes "/",
// duplicate slashes and dot segments are removed, and a trailing slash is
// dropped (except for the root).
func CleanPath(p string) string {
	if p == "" {
		return IndexPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

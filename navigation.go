package uplink

import "net/http"

// Navigation is the outcome of resolving a location against the route
// table. It is what observers receive and what the shell renders.
//
// A Navigation is a value: the fluent methods return modified copies.
//
//	nav := router.Resolve(from, to)
//	if nav.NotFound() {
//	    nav = nav.Flash(uplink.FlashWarning, "No page at "+nav.To.Path)
//	}
//
// When the route table has no entry for To, Err holds a RouteNotFoundError
// and Matched is false. Route is then either the fallback error route
// (Fallback is true) or the zero Route, in which case nothing is rendered
// in the outlet.
type Navigation struct {
	From     Location
	To       Location
	Route    Route
	Matched  bool
	Fallback bool
	Err      error

	redirect string
	status   int
	flashes  []Flash
	headers  map[string]string
}

// NotFound reports whether the navigation hit the RouteNotFound condition.
func (n Navigation) NotFound() bool {
	return IsRouteNotFound(n.Err)
}

// HasView reports whether the outlet has something to render.
func (n Navigation) HasView() bool {
	return n.Route.View != nil
}

// Title returns the selected view's title, or "" when nothing is rendered.
func (n Navigation) Title() string {
	if n.Route.View == nil {
		return ""
	}
	return n.Route.View.Title()
}

// Redirect returns a copy that tells the shell to send the client to url
// instead of rendering.
func (n Navigation) Redirect(url string) Navigation {
	n.redirect = url
	return n
}

// Flash adds a one-time toast notification to the response.
func (n Navigation) Flash(level, message string) Navigation {
	flashes := make([]Flash, len(n.flashes), len(n.flashes)+1)
	copy(flashes, n.flashes)
	n.flashes = append(flashes, Flash{Level: level, Message: message})
	return n
}

// Header sets a custom response header.
func (n Navigation) Header(key, value string) Navigation {
	headers := make(map[string]string, len(n.headers)+1)
	for k, v := range n.headers {
		headers[k] = v
	}
	headers[key] = value
	n.headers = headers
	return n
}

// Status sets the HTTP status code.
func (n Navigation) Status(code int) Navigation {
	n.status = code
	return n
}

// GetRedirect returns the redirect URL.
func (n Navigation) GetRedirect() string {
	return n.redirect
}

// GetFlashes returns the flash messages.
func (n Navigation) GetFlashes() []Flash {
	return n.flashes
}

// GetHeaders returns the response headers.
func (n Navigation) GetHeaders() map[string]string {
	return n.headers
}

// GetStatus returns the HTTP status code, defaulting to 200 for matched
// navigations and 404 for RouteNotFound.
func (n Navigation) GetStatus() int {
	switch {
	case n.status != 0:
		return n.status
	case n.NotFound():
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

package uplink

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response with the given status.
//
// Sets Content-Type to text/html and renders the component using the
// request's context.
func Render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsHistoryRestore returns true when HTMX is restoring a page after a
// history cache miss. These requests need the full page, not a fragment.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get("HX-History-Restore-Request") == "true"
}

// IsOutletSwap returns true for HTMX navigations that target the outlet.
// Only the routed region is rendered for these; chrome stays in the page.
func IsOutletSwap(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r) && TargetID(r) == OutletID
}

// CurrentURL returns the current URL from the HX-Current-URL header.
//
// This is the URL the browser is on (not the request URL), i.e. the
// location the navigation starts from. Returns empty string if the header is
// not present (non-HTMX request).
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TargetID returns the id attribute of the target element.
//
// This is the element that will receive the response (hx-target).
// Returns empty string if not present.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

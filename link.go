package uplink

import "github.com/a-h/templ"

// OutletID is the id of the routed region. Outlet navigations swap its
// contents and nothing else.
const OutletID = "outlet"

// Link builds the attributes of an anchor that navigates the outlet.
//
// A plain href is always emitted so the link works without JavaScript; the
// hx-* attributes upgrade it to a region swap:
//
//	uplink.NewLink("/login").Attrs()
//	// href="/login" hx-get="/login" hx-target="#outlet" hx-swap="innerHTML" hx-push-url="true"
type Link struct {
	path    string
	target  string
	swap    SwapMode
	pushURL bool
	current bool
}

// NewLink creates an outlet navigation link to path.
func NewLink(path string) *Link {
	return &Link{
		path:    path,
		target:  "#" + OutletID,
		swap:    SwapInner,
		pushURL: true,
	}
}

// Target overrides the element that receives the response.
func (l *Link) Target(selector string) *Link {
	l.target = selector
	return l
}

// Swap overrides the swap mode.
func (l *Link) Swap(mode SwapMode) *Link {
	l.swap = mode
	return l
}

// PushURL controls whether the browser address bar follows the navigation.
func (l *Link) PushURL(on bool) *Link {
	l.pushURL = on
	return l
}

// Current marks the link as pointing at the active location.
func (l *Link) Current(on bool) *Link {
	l.current = on
	return l
}

// URL returns the link destination.
func (l *Link) URL() string {
	return l.path
}

// Attrs returns the HTMX attributes for use in templates:
//
//	<a class="button" { uplink.NewLink("/login").Attrs()... }>Log in</a>
func (l *Link) Attrs() templ.Attributes {
	attrs := templ.Attributes{
		"href":   l.path,
		"hx-get": l.path,
	}
	if l.target != "" {
		attrs["hx-target"] = l.target
	}
	if l.swap != "" {
		attrs["hx-swap"] = string(l.swap)
	}
	if l.pushURL {
		attrs["hx-push-url"] = "true"
	}
	if l.current {
		attrs["aria-current"] = "page"
	}
	return attrs
}

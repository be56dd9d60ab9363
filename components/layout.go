package components

import (
	"github.com/a-h/templ"
	"github.com/virtualica/uplink"
)

// htmxConfig lets htmx swap 404 bodies, so the in-place error view reaches
// the outlet. Other 4xx and 5xx responses are still treated as errors.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true,"error":false},{"code":"[45]..","swap":false,"error":true}]}`

// Document describes a full page: chrome around the outlet.
type Document struct {
	Title   string
	NavBar  templ.Component
	Outlet  templ.Component
	Footer  templ.Component
	Flashes []uplink.Flash
}

// PageTitle returns the document title for a view.
func PageTitle(viewTitle, brand string) string {
	if viewTitle == "" {
		return brand
	}
	return viewTitle + " | " + brand
}

// Layout renders a full HTML page. The theme is read from the context and
// emitted as CSS custom properties in the head. Nil parts render nothing.
func Layout(d Document) templ.Component {
	d.NavBar = orNop(d.NavBar)
	d.Outlet = orNop(d.Outlet)
	d.Footer = orNop(d.Footer)
	return layoutTemplate(d)
}

// OutletFragment renders the response to an outlet navigation: the view, a
// <title> that htmx applies to the document, and any flashes as
// out-of-band toasts. Chrome is never included.
func OutletFragment(title string, outlet templ.Component, flashes []uplink.Flash) templ.Component {
	return outletFragment(title, orNop(outlet), flashes)
}

func orNop(c templ.Component) templ.Component {
	if c == nil {
		return templ.NopComponent
	}
	return c
}

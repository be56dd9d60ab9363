package components

import (
	"github.com/a-h/templ"
	"github.com/virtualica/uplink"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Label string
	Path  string
}

// NavBar is the top bar. Like the footer it sits outside the outlet and is
// sent only with full pages.
type NavBar struct {
	brand string
	items []NavItem
}

// navLabels maps route names to navigation labels, in display order.
var navLabels = []struct{ route, label string }{
	{RouteLogin, "Log in"},
	{RouteSignUp, "Sign up"},
	{RouteMainPage, "Main page"},
	{RouteEditInfo, "Edit info"},
}

// NewNavBar builds the navigation bar from the route table. Routes missing
// from the table are skipped.
func NewNavBar(brand string, table *uplink.Table) *NavBar {
	n := &NavBar{brand: brand}
	for _, l := range navLabels {
		if r, ok := table.Lookup(l.route); ok {
			n.items = append(n.items, NavItem{Label: l.label, Path: r.Pattern()})
		}
	}
	return n
}

// Items returns the navigation entries in display order.
func (n *NavBar) Items() []NavItem {
	out := make([]NavItem, len(n.items))
	copy(out, n.items)
	return out
}

// Render returns the navigation bar markup.
func (n *NavBar) Render() templ.Component {
	return navBarTemplate(n)
}

// Package uplink is the routing core of the Virtualica web front: a fixed
// table of path→view bindings, a pure matcher, and explicit navigation
// notifications, rendered on the server with templ and swapped in the
// browser by HTMX.
//
// # Core Concepts
//
// A View is an opaque renderable unit. The router never looks inside one;
// it asks for a title and a templ.Component:
//
//	type View interface {
//	    Title() string
//	    Render(ctx context.Context, nav Navigation) templ.Component
//	}
//
// A Table is an ordered list of Routes, validated once at startup and never
// mutated. Matching is exact (not prefix), first match wins, trailing
// slashes are ignored, and comparison is case-insensitive unless the table
// is built with CaseSensitive(true).
//
//	table := uplink.MustTable([]uplink.Route{
//	    {Name: "home", Index: true, View: home},
//	    {Name: "login", Path: "/login", View: login},
//	})
//
// # Navigation
//
// A Router resolves a Location to a Navigation. Resolve is pure; Navigate
// also notifies subscribed observers, which replaces the implicit
// re-render subscription of a client-side router with an explicit
// callback:
//
//	router.Subscribe(func(ctx context.Context, nav uplink.Navigation) {
//	    log.Printf("%s -> %s", nav.From, nav.To)
//	})
//
// History holds the current location of one session and moves it through
// the router, notifying its own subscribers on every swap.
//
// # RouteNotFound
//
// A location that matches no route yields a *RouteNotFoundError carrying
// the path and the closest declared path. What the outlet shows is chosen
// by the Fallback mode:
//   - FallbackRender: the error route renders in place (status 404)
//   - FallbackRedirect: the client is sent to the error route
//   - FallbackNone: nothing renders in the outlet; chrome remains
//
// # Outlet and Chrome
//
// Pages have a single routed region with id OutletID. Links built with
// NewLink swap only that region, so chrome rendered outside it (navigation
// bar, footer) is sent once with the full page and then persists, unchanged,
// across navigations.
package uplink

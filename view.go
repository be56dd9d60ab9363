package uplink

import (
	"context"
	"errors"

	"github.com/a-h/templ"
)

// View is an opaque renderable unit bound to a route. The router never looks
// inside a view: it only asks for the page title and the component to place
// in the outlet.
//
// Render receives the Navigation that selected the view and should be pure:
// it reads the navigation and produces HTML without side effects.
type View interface {
	Title() string
	Render(ctx context.Context, nav Navigation) templ.Component
}

// Hydrater is optionally implemented by views that need to derive state from
// the request before rendering, such as decoding signed query parameters.
// Hydrate runs once per navigation, before Render.
type Hydrater interface {
	Hydrate(ctx context.Context, nav *Navigation) error
}

// RenderFunc produces a view's body for a navigation.
type RenderFunc func(ctx context.Context, nav Navigation) templ.Component

// NewView builds a View from a title and a render function.
//
//	home := uplink.NewView("Home", func(ctx context.Context, nav uplink.Navigation) templ.Component {
//	    return homeTemplate()
//	})
func NewView(title string, render RenderFunc) View {
	return &funcView{title: title, render: render}
}

type funcView struct {
	title  string
	render RenderFunc
}

func (v *funcView) Title() string { return v.title }

func (v *funcView) Render(ctx context.Context, nav Navigation) templ.Component {
	if v.render == nil {
		return templ.NopComponent
	}
	return v.render(ctx, nav)
}

// Hydrate runs the view's Hydrater, if any, wrapping failures in
// ErrHydrationFailed.
func Hydrate(ctx context.Context, v View, nav *Navigation) error {
	h, ok := v.(Hydrater)
	if !ok {
		return nil
	}
	if err := h.Hydrate(ctx, nav); err != nil {
		return errors.Join(ErrHydrationFailed, err)
	}
	return nil
}

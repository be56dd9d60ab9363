package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/virtualica/uplink"
)

// Route names of the application's views.
const (
	RouteHome     = "home"
	RouteLogin    = "login"
	RouteSignUp   = "signup"
	RouteError    = "error"
	RouteEditInfo = "edit-info"
	RouteMainPage = "main"
)

// page is a placeholder view: a heading, a blurb and optional links into
// other views. Pages have no behavior beyond rendering.
type page struct {
	name  string
	title string
	blurb string
	links []NavItem
}

func (p *page) Title() string { return p.title }

func (p *page) Render(ctx context.Context, nav uplink.Navigation) templ.Component {
	return pageTemplate(p)
}

// viewAttrs returns the attributes of a view's root element.
func viewAttrs(name string) templ.Attributes {
	return templ.Attributes{"class": "view view-" + name, "data-view": name}
}

// NewHome returns the landing view.
func NewHome() uplink.View {
	return &page{
		name:  RouteHome,
		title: "Home",
		blurb: "Your health records, in one place.",
		links: []NavItem{
			{Label: "Log in", Path: "/login"},
			{Label: "Create an account", Path: "/signUp"},
		},
	}
}

// NewLogin returns the sign-in view.
func NewLogin() uplink.View {
	return &page{
		name:  RouteLogin,
		title: "Log in",
		blurb: "Sign in to your account.",
		links: []NavItem{{Label: "Need an account? Sign up", Path: "/signUp"}},
	}
}

// NewSignUp returns the registration view.
func NewSignUp() uplink.View {
	return &page{
		name:  RouteSignUp,
		title: "Sign up",
		blurb: "Create your account.",
		links: []NavItem{{Label: "Already registered? Log in", Path: "/login"}},
	}
}

// NewEditInfo returns the profile editing view.
func NewEditInfo() uplink.View {
	return &page{
		name:  RouteEditInfo,
		title: "Edit info",
		blurb: "Update your personal information.",
		links: []NavItem{{Label: "Back to main page", Path: "/mainPage"}},
	}
}

// NewMainPage returns the signed-in landing view.
func NewMainPage() uplink.View {
	return &page{
		name:  RouteMainPage,
		title: "Main page",
		blurb: "Welcome back.",
		links: []NavItem{{Label: "Edit your info", Path: "/edit_info"}},
	}
}

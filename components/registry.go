//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

package components

import (
	"github.com/virtualica/uplink"
	"github.com/virtualica/uplink/lib/encoding"
)

// DefaultBrand is the product name shown in the chrome.
const DefaultBrand = "Virtualica"

// Set holds the chrome and every page view of the application.
type Set struct {
	Brand string

	Home     uplink.View
	Login    uplink.View
	SignUp   uplink.View
	Error    *ErrorView
	EditInfo uplink.View
	MainPage uplink.View

	Footer *Footer
	NavBar *NavBar

	table *uplink.Table
}

// Options configures New.
type Options struct {
	Brand       string
	FooterLinks FooterLinks
	Clock       Clock
	MountID     string
	Encoder     *encoding.Encoder // signs RouteNotFound redirects; may be nil
	TableOpts   []uplink.TableOption
}

// New creates every component with its dependencies and builds the route
// table. Call this once at startup.
func New(opts Options) (*Set, error) {
	if opts.Brand == "" {
		opts.Brand = DefaultBrand
	}

	s := &Set{
		Brand:    opts.Brand,
		Home:     NewHome(),
		Login:    NewLogin(),
		SignUp:   NewSignUp(),
		Error:    NewError(opts.Encoder),
		EditInfo: NewEditInfo(),
		MainPage: NewMainPage(),
	}

	table, err := uplink.NewTable(s.Routes(), opts.TableOpts...)
	if err != nil {
		return nil, err
	}
	s.table = table

	s.Footer = NewFooter(FooterConfig{
		Brand:   opts.Brand,
		Links:   opts.FooterLinks,
		Clock:   opts.Clock,
		MountID: opts.MountID,
	})
	s.NavBar = NewNavBar(opts.Brand, table)
	return s, nil
}

// Routes returns the route declarations in match order.
func (s *Set) Routes() []uplink.Route {
	return []uplink.Route{
		{Name: RouteHome, Index: true, View: s.Home},
		{Name: RouteLogin, Path: "/login", View: s.Login},
		{Name: RouteSignUp, Path: "/signUp", View: s.SignUp},
		{Name: RouteError, Path: uplink.DefaultErrorPath, View: s.Error},
		{Name: RouteEditInfo, Path: "/edit_info", View: s.EditInfo},
		{Name: RouteMainPage, Path: "/mainPage", View: s.MainPage},
	}
}

// Table returns the validated route table.
func (s *Set) Table() *uplink.Table {
	return s.table
}

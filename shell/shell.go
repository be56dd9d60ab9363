// Package shell serves the Virtualica front: one router, the theme provider
// and the chrome around a routed outlet.
//
// Mount the shell onto an Echo instance:
//
//	sh, err := shell.New(shell.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	e := echo.New()
//	sh.Mount(e)
//
// A direct request gets the full page. An HTMX navigation that targets the
// outlet gets only the outlet fragment, so the footer and navigation bar are
// sent once and persist across navigations.
package shell

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/virtualica/uplink"
	"github.com/virtualica/uplink/components"
	"github.com/virtualica/uplink/lib/encoding"
	"github.com/virtualica/uplink/lib/theme"
)

// Option configures New.
type Option func(*options)

type options struct {
	theme         theme.Theme
	logger        *zap.Logger
	fallback      uplink.Fallback
	key           []byte
	caseSensitive bool
	components    components.Options
}

// WithTheme sets the theme provided to every component.
func WithTheme(t theme.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithLogger sets the logger for navigation events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFallback sets the RouteNotFound handling mode.
func WithFallback(f uplink.Fallback) Option {
	return func(o *options) {
		o.fallback = f
	}
}

// WithKey sets the key that signs RouteNotFound redirect payloads.
// If not provided, a random key is generated, so payloads do not survive a
// restart.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithCaseSensitive makes path matching case-sensitive.
func WithCaseSensitive(on bool) Option {
	return func(o *options) {
		o.caseSensitive = on
	}
}

// WithBrand sets the product name shown in the chrome and page titles.
func WithBrand(name string) Option {
	return func(o *options) {
		o.components.Brand = name
	}
}

// WithFooterLinks sets the footer link destinations.
func WithFooterLinks(links components.FooterLinks) Option {
	return func(o *options) {
		o.components.FooterLinks = links
	}
}

// WithClock sets the clock the footer reads the year from.
func WithClock(c components.Clock) Option {
	return func(o *options) {
		o.components.Clock = c
	}
}

// WithMountID fixes the footer's mount identity.
func WithMountID(id string) Option {
	return func(o *options) {
		o.components.MountID = id
	}
}

// Shell owns the router, the theme and the chrome.
type Shell struct {
	router      *uplink.Router
	set         *components.Set
	theme       theme.Theme
	enc         *encoding.Encoder
	logger      *zap.Logger
	unsubscribe func()
}

// New creates the shell with its route table and components.
func New(opts ...Option) (*Shell, error) {
	o := &options{
		theme:    theme.Default(),
		logger:   zap.NewNop(),
		fallback: uplink.FallbackRender,
	}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("shell: failed to generate random key: %w", err)
		}
	}
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	o.components.Encoder = enc
	o.components.TableOpts = append(o.components.TableOpts, uplink.CaseSensitive(o.caseSensitive))
	set, err := components.New(o.components)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	router, err := uplink.NewRouter(set.Table(), uplink.WithFallback(o.fallback))
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	s := &Shell{
		router: router,
		set:    set,
		theme:  o.theme,
		enc:    enc,
		logger: o.logger,
	}
	s.unsubscribe = router.Subscribe(logNavigation(o.logger))
	return s, nil
}

// Router returns the shell's router.
func (s *Shell) Router() *uplink.Router {
	return s.router
}

// Components returns the shell's components.
func (s *Shell) Components() *components.Set {
	return s.set
}

// Theme returns the theme provided to components.
func (s *Shell) Theme() theme.Theme {
	return s.theme
}

// Close detaches the shell's observers from the router.
func (s *Shell) Close() {
	s.unsubscribe()
}

// Mount registers the static assets and the page handler on e.
func (s *Shell) Mount(e *echo.Echo) {
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	e.Match([]string{http.MethodGet, http.MethodHead}, "/*", s.Handle)
}

// Handle is the echo handler for every page route. Render errors are
// returned to echo's error handler.
func (s *Shell) Handle(c echo.Context) error {
	return s.serve(c.Response(), c.Request())
}

// ServeHTTP serves a page without echo.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := s.serve(w, r); err != nil {
		s.logger.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Resolve navigates to the request's location, hydrates the selected view
// and applies the RouteNotFound policy. The result is ready to render.
func (s *Shell) Resolve(r *http.Request) (uplink.Navigation, error) {
	to := uplink.Location{Path: r.URL.Path, Query: r.URL.Query()}
	return s.Settle(r.Context(), s.router.Navigate(r.Context(), fromLocation(r), to))
}

// Settle hydrates the view selected by nav and applies the RouteNotFound
// policy: under FallbackRedirect an unmatched navigation comes back with a
// redirect to the error route, otherwise with a warning flash.
func (s *Shell) Settle(ctx context.Context, nav uplink.Navigation) (uplink.Navigation, error) {
	if nav.HasView() {
		if err := uplink.Hydrate(ctx, nav.Route.View, &nav); err != nil {
			return nav, err
		}
	}

	rnf, ok := uplink.AsRouteNotFound(nav.Err)
	if !ok {
		return nav, nil
	}
	if !nav.Matched && s.router.Fallback() == uplink.FallbackRedirect {
		target, err := components.ErrorURL(s.enc, s.router.ErrorPath(), rnf)
		if err != nil {
			return nav, err
		}
		return nav.Redirect(target), nil
	}
	return nav.Flash(uplink.FlashWarning, "No page at "+rnf.Path), nil
}

func (s *Shell) serve(w http.ResponseWriter, r *http.Request) error {
	r = r.WithContext(theme.WithContext(r.Context(), s.theme))

	nav, err := s.Resolve(r)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", r.URL.Path, err)
	}

	for k, v := range nav.GetHeaders() {
		w.Header().Set(k, v)
	}

	if target := nav.GetRedirect(); target != "" {
		if uplink.IsHTMX(r) {
			w.Header().Set("HX-Redirect", target)
			w.WriteHeader(http.StatusOK)
			return nil
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return nil
	}

	title := components.PageTitle(nav.Title(), s.set.Brand)
	var outlet templ.Component = templ.NopComponent
	if nav.HasView() {
		outlet = nav.Route.View.Render(r.Context(), nav)
	}

	if uplink.IsOutletSwap(r) {
		return uplink.Render(w, r, nav.GetStatus(), components.OutletFragment(title, outlet, nav.GetFlashes()))
	}
	return uplink.Render(w, r, nav.GetStatus(), components.Layout(components.Document{
		Title:   title,
		NavBar:  s.set.NavBar.Render(),
		Outlet:  outlet,
		Footer:  s.set.Footer.Render(),
		Flashes: nav.GetFlashes(),
	}))
}

// fromLocation is the page the browser was on, taken from HX-Current-URL.
// Direct requests have no origin.
func fromLocation(r *http.Request) uplink.Location {
	current := uplink.CurrentURL(r)
	if current == "" {
		return uplink.Location{}
	}
	loc, err := uplink.ParseLocation(current)
	if err != nil {
		return uplink.Location{}
	}
	return loc
}

func logNavigation(logger *zap.Logger) uplink.Observer {
	return func(ctx context.Context, nav uplink.Navigation) {
		if rnf, ok := uplink.AsRouteNotFound(nav.Err); ok {
			logger.Info("route not found",
				zap.String("path", rnf.Path),
				zap.String("suggestion", rnf.Suggestion),
				zap.String("from", nav.From.Path),
			)
			return
		}
		logger.Debug("navigation",
			zap.String("from", nav.From.Path),
			zap.String("to", nav.To.Path),
			zap.String("route", nav.Route.Name),
		)
	}
}

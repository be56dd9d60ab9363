package uplink

import (
	"context"
	"net/http"
	"sync"
	"testing"
)

func newTestRouter(t *testing.T, opts ...RouterOption) *Router {
	t.Helper()
	r, err := NewRouter(MustTable(appRoutes()), opts...)
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return r
}

func TestParseFallback(t *testing.T) {
	tests := []struct {
		in      string
		want    Fallback
		wantErr bool
	}{
		{"render", FallbackRender, false},
		{"REDIRECT", FallbackRedirect, false},
		{" none ", FallbackNone, false},
		{"", FallbackRender, false},
		{"catch-all", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFallback(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFallback(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFallback(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRouterRequiresErrorRoute(t *testing.T) {
	table := MustTable([]Route{{Index: true, View: newStub("home")}})

	if _, err := NewRouter(table); err == nil {
		t.Error("NewRouter() without error route should fail for the render fallback")
	}
	if _, err := NewRouter(table, WithFallback(FallbackNone)); err != nil {
		t.Errorf("NewRouter(none) error = %v", err)
	}
	if _, err := NewRouter(MustTable(appRoutes()), WithErrorPath("/oops")); err == nil {
		t.Error("NewRouter() with undeclared error path should fail")
	}
	if _, err := NewRouter(MustTable(appRoutes()), WithFallback("bogus")); err == nil {
		t.Error("NewRouter() with unknown fallback should fail")
	}
}

func TestResolveDeclaredPaths(t *testing.T) {
	r := newTestRouter(t)

	for path, want := range map[string]string{
		"/":          "home",
		"/login":     "login",
		"/signUp":    "signup",
		"/error_404": "error",
		"/edit_info": "edit-info",
		"/mainPage":  "main",
	} {
		nav := r.Resolve(Location{}, MustLocation(path))
		if !nav.Matched || nav.Err != nil {
			t.Errorf("Resolve(%q) matched=%v err=%v", path, nav.Matched, nav.Err)
			continue
		}
		if nav.Route.Name != want {
			t.Errorf("Resolve(%q) = %q, want %q", path, nav.Route.Name, want)
		}
		if nav.GetStatus() != http.StatusOK {
			t.Errorf("Resolve(%q) status = %d, want 200", path, nav.GetStatus())
		}
	}
}

func TestResolveUnknownPath(t *testing.T) {
	tests := []struct {
		fallback     Fallback
		wantView     bool
		wantFallback bool
	}{
		{FallbackRender, true, true},
		{FallbackRedirect, false, false},
		{FallbackNone, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.fallback), func(t *testing.T) {
			r := newTestRouter(t, WithFallback(tt.fallback))
			nav := r.Resolve(MustLocation("/login"), MustLocation("/unknown-path"))

			if nav.Matched {
				t.Error("Matched = true for unknown path")
			}
			if !nav.NotFound() {
				t.Errorf("Err = %v, want RouteNotFound", nav.Err)
			}
			nf, ok := AsRouteNotFound(nav.Err)
			if !ok || nf.Path != "/unknown-path" {
				t.Errorf("RouteNotFoundError = %+v", nf)
			}
			if nav.HasView() != tt.wantView {
				t.Errorf("HasView() = %v, want %v", nav.HasView(), tt.wantView)
			}
			if tt.wantView && nav.Route.Name != "error" {
				t.Errorf("fallback route = %q, want error", nav.Route.Name)
			}
			if nav.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", nav.Fallback, tt.wantFallback)
			}
			if nav.GetStatus() != http.StatusNotFound {
				t.Errorf("status = %d, want 404", nav.GetStatus())
			}
			if nav.From.Path != "/login" {
				t.Errorf("From = %q, want /login", nav.From.Path)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path string
		want string
	}{
		{"/logn", "/login"},
		{"/signup", "/signUp"},
		{"/mainpag", "/mainPage"},
		{"/main", ""},
		{"/edit-info", "/edit_info"},
		{"/", ""},
		{"/completely/unrelated/place", ""},
	}

	for _, tt := range tests {
		if got := r.Suggest(tt.path); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNavigateNotifiesObservers(t *testing.T) {
	r := newTestRouter(t)

	var got []string
	unsubscribe := r.Subscribe(func(ctx context.Context, nav Navigation) {
		got = append(got, "a:"+nav.To.Path)
	})
	r.Subscribe(func(ctx context.Context, nav Navigation) {
		got = append(got, "b:"+nav.To.Path)
	})

	r.Navigate(context.Background(), Location{}, MustLocation("/login"))
	unsubscribe()
	unsubscribe() // second call is a no-op
	r.Navigate(context.Background(), Location{}, MustLocation("/nope"))

	want := []string{"a:/login", "b:/login", "b:/nope"}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notifications[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveDoesNotNotify(t *testing.T) {
	r := newTestRouter(t)
	called := false
	r.Subscribe(func(ctx context.Context, nav Navigation) { called = true })

	r.Resolve(Location{}, MustLocation("/login"))
	if called {
		t.Error("Resolve should not notify observers")
	}
}

func TestNavigateConcurrent(t *testing.T) {
	r := newTestRouter(t)

	var mu sync.Mutex
	count := 0
	r.Subscribe(func(ctx context.Context, nav Navigation) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Navigate(context.Background(), Location{}, MustLocation("/mainPage"))
		}()
	}
	wg.Wait()

	if count != 50 {
		t.Errorf("observer called %d times, want 50", count)
	}
}

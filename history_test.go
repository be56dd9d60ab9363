package uplink

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewHistoryStartsAtRoot(t *testing.T) {
	h := NewHistory(context.Background(), newTestRouter(t))

	if h.Location().Path != "/" {
		t.Errorf("Location() = %q, want /", h.Location().Path)
	}
	if h.Current().Route.Name != "home" {
		t.Errorf("Current().Route = %q, want home", h.Current().Route.Name)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistoryPushSwapsView(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	var swaps []string
	h.Subscribe(func(ctx context.Context, nav Navigation) {
		swaps = append(swaps, nav.From.Path+"->"+nav.Route.Name)
	})

	for _, p := range []string{"/login", "/signUp", "/mainPage"} {
		if _, err := h.Push(ctx, p); err != nil {
			t.Fatalf("Push(%q) error = %v", p, err)
		}
	}

	want := []string{"/->login", "/login->signup", "/signUp->main"}
	if len(swaps) != len(want) {
		t.Fatalf("swaps = %v, want %v", swaps, want)
	}
	for i := range want {
		if swaps[i] != want[i] {
			t.Errorf("swaps[%d] = %q, want %q", i, swaps[i], want[i])
		}
	}
	if h.Location().Path != "/mainPage" {
		t.Errorf("Location() = %q, want /mainPage", h.Location().Path)
	}
}

func TestHistoryPushUnknownPath(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t, WithFallback(FallbackNone)))

	nav, err := h.Push(ctx, "/unknown-path")
	if !IsRouteNotFound(err) {
		t.Fatalf("Push() error = %v, want RouteNotFound", err)
	}
	if nav.HasView() {
		t.Error("outlet should render nothing with FallbackNone")
	}
	// The address changes even though nothing matched.
	if h.Location().Path != "/unknown-path" {
		t.Errorf("Location() = %q, want /unknown-path", h.Location().Path)
	}
}

func TestHistoryPushInvalid(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	if _, err := h.Push(ctx, "relative"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Push(relative) error = %v, want ErrInvalidPath", err)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after rejected push", h.Len())
	}
}

func TestHistoryBack(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	if _, ok := h.Back(ctx); ok {
		t.Error("Back() at first entry should report false")
	}

	h.Push(ctx, "/login")
	h.Push(ctx, "/edit_info")

	nav, ok := h.Back(ctx)
	if !ok {
		t.Fatal("Back() ok = false")
	}
	if nav.Route.Name != "login" || nav.From.Path != "/edit_info" {
		t.Errorf("Back() = %s from %s, want login from /edit_info", nav.Route.Name, nav.From.Path)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistoryObserverCanReadState(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	var seen string
	h.Subscribe(func(ctx context.Context, nav Navigation) {
		seen = h.Location().Path
	})

	h.Push(ctx, "/signUp")
	if seen != "/signUp" {
		t.Errorf("observer saw %q, want /signUp", seen)
	}
}

func TestHistoryReplace(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	if _, err := h.Push(ctx, "/login"); err != nil {
		t.Fatal(err)
	}
	nav, err := h.Replace(ctx, "/mainPage")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if nav.Route.Name != "main" || nav.From.Path != "/login" {
		t.Errorf("Replace() = %s from %s", nav.Route.Name, nav.From.Path)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	// Back skips the replaced entry.
	back, ok := h.Back(ctx)
	if !ok || back.Route.Name != "home" {
		t.Errorf("Back() = %q, %v, want home", back.Route.Name, ok)
	}
}

func TestHistoryObserverCanNavigate(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t, WithFallback(FallbackNone)))

	h.Subscribe(func(ctx context.Context, nav Navigation) {
		if nav.NotFound() {
			h.Replace(ctx, "/error_404")
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Push(ctx, "/unknown-path")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Push with a navigating observer did not return")
	}

	if h.Location().Path != "/error_404" {
		t.Errorf("Location() = %q, want /error_404", h.Location().Path)
	}
	if h.Current().Route.Name != "error" {
		t.Errorf("Current().Route = %q, want error", h.Current().Route.Name)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistoryBackAtStart(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, newTestRouter(t))

	called := false
	h.Subscribe(func(context.Context, Navigation) { called = true })

	nav, ok := h.Back(ctx)
	if ok || called {
		t.Errorf("Back() at start = %v, notified %v", ok, called)
	}
	if nav.Route.Name != "home" {
		t.Errorf("Back() route = %q, want home", nav.Route.Name)
	}
}

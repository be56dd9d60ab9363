package uplink

import (
	"net/http"
	"testing"
)

func TestNavigationDefaults(t *testing.T) {
	nav := Navigation{To: MustLocation("/login")}

	if nav.GetStatus() != http.StatusOK {
		t.Errorf("GetStatus() = %d, want 200", nav.GetStatus())
	}
	if nav.GetRedirect() != "" {
		t.Errorf("GetRedirect() = %q, want empty", nav.GetRedirect())
	}
	if nav.HasView() {
		t.Error("HasView() = true without a route")
	}
	if nav.Title() != "" {
		t.Errorf("Title() = %q, want empty", nav.Title())
	}
	if nav.NotFound() {
		t.Error("NotFound() = true without error")
	}
}

func TestNavigationNotFoundStatus(t *testing.T) {
	nav := Navigation{Err: &RouteNotFoundError{Path: "/x"}}
	if nav.GetStatus() != http.StatusNotFound {
		t.Errorf("GetStatus() = %d, want 404", nav.GetStatus())
	}

	nav = nav.Status(http.StatusGone)
	if nav.GetStatus() != http.StatusGone {
		t.Errorf("GetStatus() after Status() = %d, want 410", nav.GetStatus())
	}
}

func TestNavigationFluentIsValue(t *testing.T) {
	base := Navigation{To: MustLocation("/mainPage")}
	withFlash := base.Flash(FlashInfo, "Welcome back")
	both := withFlash.Flash(FlashWarning, "Profile incomplete").Header("Cache-Control", "no-store")

	if len(base.GetFlashes()) != 0 {
		t.Error("Flash() mutated the receiver")
	}
	if len(withFlash.GetFlashes()) != 1 {
		t.Errorf("len(flashes) = %d, want 1", len(withFlash.GetFlashes()))
	}
	if len(withFlash.GetHeaders()) != 0 {
		t.Error("Header() mutated an earlier copy")
	}

	flashes := both.GetFlashes()
	if len(flashes) != 2 || flashes[0].Message != "Welcome back" || flashes[1].Level != FlashWarning {
		t.Errorf("GetFlashes() = %+v", flashes)
	}
	if both.GetHeaders()["Cache-Control"] != "no-store" {
		t.Errorf("GetHeaders() = %v", both.GetHeaders())
	}
}

func TestNavigationRedirect(t *testing.T) {
	nav := Navigation{}.Redirect("/error_404?p=abc")
	if nav.GetRedirect() != "/error_404?p=abc" {
		t.Errorf("GetRedirect() = %q", nav.GetRedirect())
	}
}

func TestNavigationTitle(t *testing.T) {
	nav := Navigation{Route: Route{View: newStub("login")}}
	if nav.Title() != "login" {
		t.Errorf("Title() = %q, want login", nav.Title())
	}
}

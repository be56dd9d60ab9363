package uplink

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
)

func TestNewLinkDefaults(t *testing.T) {
	attrs := NewLink("/login").Attrs()

	want := map[string]string{
		"href":        "/login",
		"hx-get":      "/login",
		"hx-target":   "#outlet",
		"hx-swap":     "innerHTML",
		"hx-push-url": "true",
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("%s = %v, want %q", k, attrs[k], v)
		}
	}
	if _, ok := attrs["aria-current"]; ok {
		t.Error("aria-current should not be set by default")
	}
}

func TestLinkOverrides(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Link) *Link
		key    string
		expect any
	}{
		{"Target", func(l *Link) *Link { return l.Target("body") }, "hx-target", "body"},
		{"Swap", func(l *Link) *Link { return l.Swap(SwapOuter) }, "hx-swap", "outerHTML"},
		{"Current", func(l *Link) *Link { return l.Current(true) }, "aria-current", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.setup(NewLink("/mainPage")).Attrs()
			if attrs[tt.key] != tt.expect {
				t.Errorf("%s = %v, want %v", tt.key, attrs[tt.key], tt.expect)
			}
		})
	}

	attrs := NewLink("/mainPage").PushURL(false).Attrs()
	if _, ok := attrs["hx-push-url"]; ok {
		t.Error("hx-push-url should be omitted when PushURL(false)")
	}
}

func TestLinkAttrsRender(t *testing.T) {
	var buf bytes.Buffer
	attrs := NewLink("/signUp?next=a&b").Current(true).Attrs()
	if err := templ.RenderAttributes(context.Background(), &buf, attrs); err != nil {
		t.Fatalf("RenderAttributes() error = %v", err)
	}

	want := ` aria-current="page" href="/signUp?next=a&amp;b" hx-get="/signUp?next=a&amp;b" hx-push-url="true" hx-swap="innerHTML" hx-target="#outlet"`
	if buf.String() != want {
		t.Errorf("rendered attrs = %q, want %q", buf.String(), want)
	}
}

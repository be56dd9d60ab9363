package uplink

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the result of rendering a view or serving a navigation
// for testing.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes, flashes, and redirects.
type TestResult struct {
	HTML        string
	StatusCode  int
	Headers     http.Header
	Flashes     []Flash
	RedirectURL string
}

// TestRender hydrates and renders a view for a navigation and returns
// testable output. It bypasses HTTP entirely.
//
//	result, err := uplink.TestRender(homeView, nav)
//	if !result.HTMLContains(`data-view="home"`) {
//	    t.Fatal("missing home view")
//	}
func TestRender(v View, nav Navigation) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), v, nav)
}

// TestRenderWithContext is TestRender with a caller-supplied context, for
// views that read ambient values such as the theme.
func TestRenderWithContext(ctx context.Context, v View, nav Navigation) (*TestResult, error) {
	if err := Hydrate(ctx, v, &nav); err != nil {
		return nil, err
	}
	return TestComponent(ctx, v.Render(ctx, nav))
}

// TestComponent renders any templ component to a TestResult.
func TestComponent(ctx context.Context, c templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
		Flashes:    parseFlashesFromHTML(buf.String()),
	}, nil
}

// TestNavigate performs a full-page GET of target against h, as a browser
// loading the URL directly would.
func TestNavigate(h http.Handler, target string) (*TestResult, error) {
	return NewTestRequest(http.MethodGet, target).Execute(h)
}

// TestSwap performs an HTMX outlet navigation from the page at from to
// target, as a click on a navigation link would.
func TestSwap(h http.Handler, from, target string) (*TestResult, error) {
	return NewTestRequest(http.MethodGet, target).Outlet(from).Execute(h)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// HasFlash checks if a flash message was set with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// HasFlashLevel checks if any flash message was set with the given level.
func (r *TestResult) HasFlashLevel(level string) bool {
	for _, f := range r.Flashes {
		if f.Level == level {
			return true
		}
	}
	return false
}

// WasRedirected checks if the response was a redirect.
func (r *TestResult) WasRedirected() bool {
	return r.RedirectURL != ""
}

// RedirectedTo checks if the response was redirected to a specific URL.
func (r *TestResult) RedirectedTo(url string) bool {
	return r.RedirectURL == url
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// parseFlashesFromHTML extracts flash messages from toast markup.
// Looks for patterns like: <div class="toast toast-warning" ...>message</div>
func parseFlashesFromHTML(html string) []Flash {
	var flashes []Flash

	const prefix = `<div class="toast toast-`
	idx := 0
	for {
		start := strings.Index(html[idx:], prefix)
		if start == -1 {
			break
		}
		start += idx + len(prefix)

		levelEnd := strings.Index(html[start:], `"`)
		if levelEnd == -1 {
			break
		}
		level := html[start : start+levelEnd]

		tagEnd := strings.Index(html[start:], ">")
		if tagEnd == -1 {
			break
		}
		contentStart := start + tagEnd + 1

		contentEnd := strings.Index(html[contentStart:], "</div>")
		if contentEnd == -1 {
			break
		}

		flashes = append(flashes, Flash{
			Level:   level,
			Message: html[contentStart : contentStart+contentEnd],
		})
		idx = contentStart + contentEnd
	}

	return flashes
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := uplink.NewTestRequest("GET", "/mainPage").
//	    Outlet("/login").
//	    WithHeader("Accept-Language", "en").
//	    Execute(shell)
type TestRequestBuilder struct {
	method  string
	url     string
	headers map[string]string
	ctx     context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:  method,
		url:     url,
		headers: make(map[string]string),
		ctx:     context.Background(),
	}
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// HTMX marks the request as sent by HTMX.
func (b *TestRequestBuilder) HTMX() *TestRequestBuilder {
	return b.WithHeader("HX-Request", "true")
}

// Outlet marks the request as an HTMX outlet navigation from the page at
// from.
func (b *TestRequestBuilder) Outlet(from string) *TestRequestBuilder {
	b.HTMX()
	b.WithHeader("HX-Target", OutletID)
	if from != "" {
		b.WithHeader("HX-Current-URL", "http://example.com"+from)
	}
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute serves the request with h and records the response.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	req := httptest.NewRequest(b.method, b.url, nil)
	req = req.WithContext(b.ctx)
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}

	if redirect := rec.Header().Get("HX-Redirect"); redirect != "" {
		result.RedirectURL = redirect
	} else if loc := rec.Header().Get("Location"); loc != "" {
		result.RedirectURL = loc
	}

	result.Flashes = parseFlashesFromHTML(result.HTML)
	return result, nil
}

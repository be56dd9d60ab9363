package shell

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestEchoServesPagesAndStatic(t *testing.T) {
	sh := newTestShell(t)
	e := NewEcho(sh, zap.NewNop())

	page := navigate(t, e, "/mainPage")
	if !page.IsOK() || !page.HTMLContains(`data-view="main"`) {
		t.Errorf("GET /mainPage: status %d", page.StatusCode)
	}
	if page.GetHeader("X-Request-Id") == "" {
		t.Error("missing request id")
	}

	for _, asset := range []string{"/static/app.css", "/static/app.js", "/static/icons.svg"} {
		res := navigate(t, e, asset)
		if !res.IsOK() {
			t.Errorf("GET %s status = %d", asset, res.StatusCode)
		}
	}
	if res := navigate(t, e, "/static/icons.svg"); !res.HTMLContainsAll(`id="LinkedIn"`, `id="GitHub"`, `id="Twitter"`) {
		t.Error("icon sprite missing footer icons")
	}

	miss := navigate(t, e, "/does-not-exist")
	if !miss.HasStatus(http.StatusNotFound) || !miss.HTMLContains(`data-view="error"`) {
		t.Errorf("GET /does-not-exist: status %d", miss.StatusCode)
	}
}

func TestEchoOutletSwap(t *testing.T) {
	sh := newTestShell(t)
	e := NewEcho(sh, zap.NewNop())

	res := swap(t, e, "/login", "/signUp")
	if !res.HTMLContains(`data-view="signup"`) || res.HTMLContains("<footer") {
		t.Errorf("swap through echo:\n%s", res.HTML)
	}
}

func TestEchoHead(t *testing.T) {
	sh := newTestShell(t)
	e := NewEcho(sh, zap.NewNop())

	tests := []struct {
		path string
		want int
	}{
		{"/login", http.StatusOK},
		{"/", http.StatusOK},
		{"/does-not-exist", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("HEAD %s status = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestServerRunAndShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sh := newTestShell(t)
	srv := &Server{
		Handler:         NewEcho(sh, zap.NewNop()),
		ReadTimeout:     5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/login")
	if err != nil {
		cancel()
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	client.CloseIdleConnections()

	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `data-view="login"`) {
		t.Errorf("GET /login: status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerRunListenError(t *testing.T) {
	srv := &Server{Handler: http.NotFoundHandler(), ShutdownTimeout: time.Second}
	if err := srv.Run(context.Background(), "256.0.0.1:bad"); err == nil {
		t.Error("Run(bad addr) error = nil")
	}
}

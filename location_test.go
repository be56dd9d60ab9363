package uplink

import (
	"errors"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw       string
		wantPath  string
		wantQuery string
		wantErr   bool
	}{
		{"/", "/", "", false},
		{"", "/", "", false},
		{"/login", "/login", "", false},
		{"/login/", "/login", "", false},
		{"/error_404?p=abc", "/error_404", "abc", false},
		{"http://localhost:8080/mainPage?p=xyz", "/mainPage", "xyz", false},
		{"login", "", "", true},
		{"/%zz", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			loc, err := ParseLocation(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocation(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("error = %v, want ErrInvalidPath", err)
				}
				return
			}
			if loc.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", loc.Path, tt.wantPath)
			}
			if got := loc.Query.Get("p"); got != tt.wantQuery {
				t.Errorf("Query p = %q, want %q", got, tt.wantQuery)
			}
		})
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{}, "/"},
		{MustLocation("/login"), "/login"},
		{MustLocation("/error_404?p=a.b"), "/error_404?p=a.b"},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocationIsZero(t *testing.T) {
	if !(Location{}).IsZero() {
		t.Error("zero Location IsZero() = false")
	}
	if MustLocation("/").IsZero() {
		t.Error("root Location IsZero() = true")
	}
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		"":           "/",
		"/":          "/",
		"login":      "/login",
		"/login/":    "/login",
		"//a//b/":    "/a/b",
		"/a/./b/../": "/a",
	}
	for in, want := range tests {
		if got := CleanPath(in); got != want {
			t.Errorf("CleanPath(%q) = %q, want %q", in, got, want)
		}
	}
}

package components

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/virtualica/uplink"
	"github.com/virtualica/uplink/lib/encoding"
)

// PayloadParam is the query parameter carrying the signed RouteNotFound
// details when the client is redirected to the error route.
const PayloadParam = "p"

// NotFoundPayload is the RouteNotFound detail carried across a redirect.
type NotFoundPayload struct {
	Path       string `msgpack:"p"`
	Suggestion string `msgpack:"s,omitempty"`
}

// EncodeNotFound signs the details of err for the error route's query.
func EncodeNotFound(enc *encoding.Encoder, err *uplink.RouteNotFoundError) (string, error) {
	if enc == nil {
		return "", errors.New("components: no encoder configured")
	}
	token, encErr := enc.Encode(NotFoundPayload{Path: err.Path, Suggestion: err.Suggestion}, false)
	if encErr != nil {
		return "", fmt.Errorf("encode not-found payload: %w", encErr)
	}
	return token, nil
}

// ErrorURL returns errorPath with the signed payload for err attached.
func ErrorURL(enc *encoding.Encoder, errorPath string, err *uplink.RouteNotFoundError) (string, error) {
	token, encErr := EncodeNotFound(enc, err)
	if encErr != nil {
		return "", encErr
	}
	return errorPath + "?" + url.Values{PayloadParam: {token}}.Encode(), nil
}

// ErrorView is the RouteNotFound page. Rendered in place it reads the
// failure from the navigation; after a redirect it restores the failure from
// the signed query payload. A payload that fails verification is ignored and
// the generic message renders.
type ErrorView struct {
	enc *encoding.Encoder
}

// NewError creates the error view. enc may be nil when redirects are not
// used.
func NewError(enc *encoding.Encoder) *ErrorView {
	return &ErrorView{enc: enc}
}

// Title returns the page title.
func (v *ErrorView) Title() string { return "Page not found" }

// Hydrate restores a redirected RouteNotFound from the query payload.
func (v *ErrorView) Hydrate(ctx context.Context, nav *uplink.Navigation) error {
	if nav.Err != nil || v.enc == nil {
		return nil
	}
	token := nav.To.Query.Get(PayloadParam)
	if token == "" {
		return nil
	}
	var p NotFoundPayload
	if err := v.enc.Decode(token, &p); err != nil || p.Path == "" {
		return nil
	}
	nav.Err = &uplink.RouteNotFoundError{Path: p.Path, Suggestion: p.Suggestion}
	return nil
}

// Render returns the error page body.
func (v *ErrorView) Render(ctx context.Context, nav uplink.Navigation) templ.Component {
	rnf, _ := uplink.AsRouteNotFound(nav.Err)
	return errorTemplate(v.Title(), rnf)
}

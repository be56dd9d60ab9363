package uplink

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// ToastsID is the id of the container flash toasts are appended to.
const ToastsID = "toasts"

// Flash represents a one-time notification message.
//
// Flashes ride along with outlet navigations as out-of-band swaps that
// append to the #toasts container, e.g. to tell the user that the address
// they followed does not exist.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// RenderFlashesOOB renders flashes as OOB swap HTML.
//
// The data-auto-dismiss attribute is read by the page script, which removes
// the toast after the given delay in milliseconds.
func RenderFlashesOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div id="` + ToastsID + `" hx-swap-oob="` + string(SwapBeforeEnd) + `">`)
	writeToasts(&sb, flashes)
	sb.WriteString(`</div>`)
	return sb.String()
}

func writeToasts(sb *strings.Builder, flashes []Flash) {
	for _, f := range flashes {
		sb.WriteString(`<div class="toast toast-`)
		sb.WriteString(html.EscapeString(f.Level))
		sb.WriteString(`" role="status" data-auto-dismiss="4000">`)
		sb.WriteString(html.EscapeString(f.Message))
		sb.WriteString(`</div>`)
	}
}

// FlashesOOB is RenderFlashesOOB as a templ component.
func FlashesOOB(flashes []Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderFlashesOOB(flashes))
		return err
	})
}

// ToastContainer renders the toast container, pre-filled with flashes for
// full-page responses (where out-of-band swaps do not apply).
func ToastContainer(flashes ...Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div id="` + ToastsID + `" class="toast-container" aria-live="polite">`)
		writeToasts(&sb, flashes)
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

package uplink

// SwapMode is an hx-swap strategy: how a response replaces its target.
//
// See https://htmx.org/attributes/hx-swap/.
type SwapMode string

const (
	// SwapInner replaces the target's children and keeps the element itself.
	// Outlet navigations use it so #outlet is never replaced.
	SwapInner SwapMode = "innerHTML"

	// SwapOuter replaces the target element, tag included.
	SwapOuter SwapMode = "outerHTML"

	// SwapBeforeEnd appends to the target. Flash toasts arrive this way.
	SwapBeforeEnd SwapMode = "beforeend"
)

package shell

import "embed"

// staticFS holds the stylesheet, toast script and icon sprite served under
// /static/.
//
//go:embed static
var staticFS embed.FS

package shell

import (
	"github.com/virtualica/uplink"
	"github.com/virtualica/uplink/components"
	"github.com/virtualica/uplink/lib/config"
	"github.com/virtualica/uplink/lib/theme"
	"go.uber.org/zap"
)

// OptionsFromConfig translates application configuration into shell
// options, loading the theme file if one is set.
func OptionsFromConfig(c config.Config, logger *zap.Logger) ([]Option, error) {
	fallback, err := uplink.ParseFallback(c.Router.Fallback)
	if err != nil {
		return nil, err
	}

	t := theme.Default()
	if c.Theme.File != "" {
		if t, err = theme.LoadFile(c.Theme.File); err != nil {
			return nil, err
		}
	}

	opts := []Option{
		WithLogger(logger),
		WithTheme(t),
		WithFallback(fallback),
		WithCaseSensitive(c.Router.CaseSensitive),
		WithBrand(c.Brand.Name),
		WithFooterLinks(components.FooterLinks{
			LinkedIn: c.Footer.LinkedIn,
			GitHub:   c.Footer.GitHub,
			Twitter:  c.Footer.Twitter,
		}),
	}
	if c.Secret.Key != "" {
		opts = append(opts, WithKey([]byte(c.Secret.Key)))
	}
	return opts, nil
}

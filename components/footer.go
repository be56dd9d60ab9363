package components

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
)

// FooterID is the element id of the footer. Together with hx-preserve it
// lets HTMX keep the same element across swaps.
const FooterID = "footer"

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// FooterLinks holds the destinations of the footer's link buttons.
// Empty values render as "#".
type FooterLinks struct {
	LinkedIn string
	GitHub   string
	Twitter  string
}

// FooterLink is one icon button in the footer.
type FooterLink struct {
	Label string // accessible name, also the icon id
	Href  string
}

// Footer is the persistent bottom bar: brand mark, three link buttons and
// the copyright line. It has no state of its own; output depends only on the
// clock reading, so two renders in the same year are byte-identical.
type Footer struct {
	brand   string
	links   []FooterLink
	clock   Clock
	mountID string
}

// FooterConfig configures NewFooter.
type FooterConfig struct {
	Brand   string
	Links   FooterLinks
	Clock   Clock
	MountID string // defaults to a random UUID
}

// NewFooter creates the footer.
func NewFooter(cfg FooterConfig) *Footer {
	if cfg.Brand == "" {
		cfg.Brand = DefaultBrand
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.MountID == "" {
		cfg.MountID = uuid.NewString()
	}
	return &Footer{
		brand: cfg.Brand,
		links: []FooterLink{
			{Label: "LinkedIn", Href: hrefOrHash(cfg.Links.LinkedIn)},
			{Label: "GitHub", Href: hrefOrHash(cfg.Links.GitHub)},
			{Label: "Twitter", Href: hrefOrHash(cfg.Links.Twitter)},
		},
		clock:   cfg.Clock,
		mountID: cfg.MountID,
	}
}

func hrefOrHash(href string) string {
	if href == "" {
		return "#"
	}
	return href
}

// Links returns the link buttons in display order.
func (f *Footer) Links() []FooterLink {
	out := make([]FooterLink, len(f.links))
	copy(out, f.links)
	return out
}

// Year returns the year shown in the copyright line.
func (f *Footer) Year() int {
	return f.clock().Year()
}

// MountID identifies this footer instance. It is fixed for the lifetime of
// the Footer, so every full page carries the same value.
func (f *Footer) MountID() string {
	return f.mountID
}

// Copyright returns the copyright line text.
func (f *Footer) Copyright() string {
	return "© " + strconv.Itoa(f.Year()) + " " + f.brand
}

// Render returns the footer markup.
func (f *Footer) Render() templ.Component {
	return footerTemplate(f)
}

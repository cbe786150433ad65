package content

import (
	"strconv"
	"strings"
)

// ServiceCount is the fixed number of service cards on the home page.
const ServiceCount = 3

// Service is one service card on the home page.
type Service struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Content is the editable site copy document. All fields are optional;
// missing fields render as empty on the public pages.
type Content struct {
	HeroTitle        string    `json:"heroTitle,omitempty"`
	HeroSubtitle     string    `json:"heroSubtitle,omitempty"`
	HeroPrimaryCTA   string    `json:"heroPrimaryCta,omitempty"`
	HeroSecondaryCTA string    `json:"heroSecondaryCta,omitempty"`
	AboutTitle       string    `json:"aboutTitle,omitempty"`
	AboutText        string    `json:"aboutText,omitempty"`
	ServicesTitle    string    `json:"servicesTitle,omitempty"`
	Services         []Service `json:"services,omitempty"`
	CTABannerTitle   string    `json:"ctaBannerTitle,omitempty"`
	CTABannerText    string    `json:"ctaBannerText,omitempty"`
	FooterText       string    `json:"footerText,omitempty"`
}

// Patch carries a partial content update. A nil scalar field means "keep the
// stored value"; a non-nil field replaces it, including an explicit empty
// string. Services is always applied as a full 3-slot replacement.
type Patch struct {
	HeroTitle        *string
	HeroSubtitle     *string
	HeroPrimaryCTA   *string
	HeroSecondaryCTA *string
	AboutTitle       *string
	AboutText        *string
	ServicesTitle    *string
	Services         []Service
	CTABannerTitle   *string
	CTABannerText    *string
	FooterText       *string
}

// ApplyPatch merges a patch into the content document.
// PRE: p.Services is nil or has exactly ServiceCount entries
// POST: Non-nil scalar fields are replaced; Services is fully replaced when present
func (c *Content) ApplyPatch(p Patch) {
	applyField(&c.HeroTitle, p.HeroTitle)
	applyField(&c.HeroSubtitle, p.HeroSubtitle)
	applyField(&c.HeroPrimaryCTA, p.HeroPrimaryCTA)
	applyField(&c.HeroSecondaryCTA, p.HeroSecondaryCTA)
	applyField(&c.AboutTitle, p.AboutTitle)
	applyField(&c.AboutText, p.AboutText)
	applyField(&c.ServicesTitle, p.ServicesTitle)
	applyField(&c.CTABannerTitle, p.CTABannerTitle)
	applyField(&c.CTABannerText, p.CTABannerText)
	applyField(&c.FooterText, p.FooterText)

	if p.Services != nil {
		services := make([]Service, ServiceCount)
		copy(services, p.Services)
		c.Services = services
	}
}

// FooterForYear returns the footer text with the {year} placeholder replaced.
// INVARIANT: Content fields are not mutated
func (c *Content) FooterForYear(year int) string {
	return strings.ReplaceAll(c.FooterText, "{year}", strconv.Itoa(year))
}

func applyField(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

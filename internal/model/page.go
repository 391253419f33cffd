package model

import "strings"

// Page templates known to the renderer.
const (
	TemplateHome          = "home"
	TemplateHowItWorks    = "how-it-works"
	TemplatePrivacyPolicy = "privacy-policy"
	TemplateNotFound      = "404"
)

// PageTemplates lists the templates a content page may use.
var PageTemplates = []string{TemplateHome, TemplateHowItWorks, TemplatePrivacyPolicy}

// ChangeFreq values accepted in sitemap entries.
var ChangeFreqs = []string{"always", "hourly", "daily", "weekly", "monthly", "yearly", "never"}

// Page is a routable content page.
type Page struct {
	Path        string   `yaml:"path"`
	Template    string   `yaml:"template"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Heading     string   `yaml:"heading"`
	Intro       string   `yaml:"intro"`
	Image       string   `yaml:"image"`

	// Sections holds named copy blocks laid out by the page template.
	Sections map[string]Section `yaml:"sections"`

	// HowTo names an entry of Site.HowTos used by the page.
	HowTo string `yaml:"howto"`
	// Schemas lists the structured-data types embedded in the page.
	Schemas []string `yaml:"schemas"`
	// Breadcrumbs shows the visible breadcrumb trail.
	Breadcrumbs bool `yaml:"breadcrumbs"`

	Sitemap SitemapEntry `yaml:"sitemap"`
}

// Section is a headed block of page copy.
type Section struct {
	Heading    string   `yaml:"heading"`
	Intro      string   `yaml:"intro"`
	Paragraphs []string `yaml:"paragraphs"`
	Image      string   `yaml:"image"`
	ImageAlt   string   `yaml:"image_alt"`
	Link       NavLink  `yaml:"link"`
}

// SitemapEntry controls how a page appears in sitemap.xml. A nil Priority
// takes the sitemap default; an explicit 0.0 is kept.
type SitemapEntry struct {
	Priority   *float64 `yaml:"priority"`
	ChangeFreq string   `yaml:"changefreq"`
	Exclude    bool     `yaml:"exclude"`
}

// Priority returns a pointer to p for SitemapEntry literals.
func Priority(p float64) *float64 {
	return &p
}

// KeywordList returns the keywords as a comma separated string.
func (p Page) KeywordList() string {
	return strings.Join(p.Keywords, ", ")
}

// HasSchema reports whether the page declares the schema type.
func (p Page) HasSchema(name string) bool {
	for _, s := range p.Schemas {
		if s == name {
			return true
		}
	}
	return false
}

// NormalizePath strips query strings and trailing slashes so that
// "/how-it-works/" and "/how-it-works" address the same page.
func NormalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

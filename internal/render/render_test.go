package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackpotai/web/internal/content"
	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/schema"
)

func loadSite(t *testing.T) *model.Site {
	t.Helper()
	site, err := content.Load(content.EmbeddedFS())
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	return site
}

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func pageView(t *testing.T, site *model.Site, path string, set *schema.Set) View {
	t.Helper()
	page, ok := site.PageByPath(path)
	if !ok {
		t.Fatalf("page %s not found", path)
	}
	blocks, err := NewSchemaBlocks(set)
	if err != nil {
		t.Fatalf("NewSchemaBlocks() error = %v", err)
	}
	view := View{
		Site:     site,
		Page:     page,
		Meta:     NewMeta(site, page),
		Nav:      site.Navigation,
		Download: site.Download,
		Schemas:  blocks,
		Year:     2025,
	}
	if h, ok := site.HowTos[page.HowTo]; ok {
		view.HowTo = &h
	}
	return view
}

func TestRenderer_Check(t *testing.T) {
	if err := newRenderer(t).Check(); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
}

func TestRender_Home(t *testing.T) {
	site := loadSite(t)

	var set schema.Set
	set.Add(schema.TypeFAQPage, schema.NewFAQPage(site.FAQs))
	set.Add(schema.TypeOrganization, schema.NewOrganization(site.Organization))

	out, err := newRenderer(t).RenderBytes(model.TemplateHome, pageView(t, site, "/", &set))
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>JackpotAI | AI-Powered Lottery Number Generator</title>",
		`<link rel="canonical" href="https://jackpotai.app/">`,
		"Win Smarter with AI Lottery Predictions",
		`href="/#features"`,
		`href="/privacy-policy"`,
		"https://apps.apple.com/us/app/jackpotai/id6444195595",
		"Select Your Lottery Game",
		"How does JackpotAI generate lottery numbers?",
		"Sarah M.",
		`href="/how-it-works"`,
		"&copy; 2025 JackpotAI. All rights reserved.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}

	if got := strings.Count(html, `type="application/ld+json"`); got != 2 {
		t.Errorf("structured data blocks = %d, want 2", got)
	}
	for _, typ := range []string{"FAQPage", "Organization"} {
		if got := strings.Count(html, `data-schema="`+typ+`"`); got != 1 {
			t.Errorf("%s blocks = %d, want 1", typ, got)
		}
	}
}

func TestRender_StructuredDataIsNotEscapedTwice(t *testing.T) {
	site := loadSite(t)

	var set schema.Set
	set.Add(schema.TypeFAQPage, schema.NewFAQPage([]model.FAQ{{Question: "Q", Answer: "a </script> b"}}))

	out, err := newRenderer(t).RenderBytes(model.TemplateHome, pageView(t, site, "/", &set))
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	html := string(out)

	if strings.Contains(html, "a </script> b") {
		t.Error("structured data closed its script element")
	}
	if strings.Contains(html, "&#34;@context&#34;") || strings.Contains(html, "&quot;@context&quot;") {
		t.Error("structured data was HTML escaped")
	}
	if !strings.Contains(html, `"@context":"https://schema.org"`) {
		t.Error("structured data missing context")
	}
}

func TestRender_HowItWorks(t *testing.T) {
	site := loadSite(t)
	view := pageView(t, site, "/how-it-works", nil)
	view.Breadcrumbs = []model.BreadcrumbItem{{Label: "Home", URL: "/"}, {Label: "How It Works", URL: "/how-it-works"}}

	out, err := newRenderer(t).RenderBytes(model.TemplateHowItWorks, view)
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"AI-Powered Analysis",
		"Data Collection",
		`src="/data-collection.png"`,
		"Mega Millions",
		"Important Note",
		`aria-current="page">How It Works</li>`,
		"Back to Home",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("how-it-works page missing %q", want)
		}
	}
	if strings.Contains(html, "application/ld+json") {
		t.Error("page without schemas rendered a structured data block")
	}
}

func TestRender_PrivacyPolicyKeepsSanitizedMarkup(t *testing.T) {
	site := loadSite(t)

	out, err := newRenderer(t).RenderBytes(model.TemplatePrivacyPolicy, pageView(t, site, "/privacy-policy", nil))
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<strong>Device Information:</strong>",
		"<h2>Contact Us</h2>",
		"Last Updated: March 20, 2025",
		`href="mailto:privacy@jackpotai.app"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("privacy page missing %q", want)
		}
	}
}

func TestRender_NotFound(t *testing.T) {
	site := loadSite(t)
	view := View{Site: site, Meta: NewMeta(site, nil), Nav: site.Navigation, Download: site.Download, Year: 2025}

	out, err := newRenderer(t).RenderBytes(model.TemplateNotFound, view)
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Page Not Found") || !strings.Contains(html, `content="noindex"`) {
		t.Errorf("not found page = %s", html)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	if _, err := newRenderer(t).RenderBytes("blog", View{}); err == nil {
		t.Fatal("RenderBytes(blog) error = nil")
	}
}

func TestRender_WithDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "home.html"), []byte("<h1>{{ page.Heading }}</h1>"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := newRenderer(t, WithDir(dir))
	out, err := r.RenderBytes(model.TemplateHome, View{Page: &model.Page{Heading: "Hi & bye"}})
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	if got := string(out); got != "<h1>Hi &amp; bye</h1>" {
		t.Errorf("output = %q", got)
	}

	// Debug mode re-reads templates from disk.
	if err := os.WriteFile(filepath.Join(dir, "home.html"), []byte("<h2>{{ page.Heading }}</h2>"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = r.RenderBytes(model.TemplateHome, View{Page: &model.Page{Heading: "again"}})
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	if got := string(out); got != "<h2>again</h2>" {
		t.Errorf("output after edit = %q", got)
	}
}

func TestNewMeta(t *testing.T) {
	site := &model.Site{URL: "https://jackpotai.app", Name: "JackpotAI", Tagline: "AI-Powered Lottery Number Generator"}
	page := &model.Page{
		Path:        "/how-it-works",
		Title:       "How JackpotAI Works",
		Description: "Learn how.",
		Keywords:    []string{"lottery", "AI"},
		Image:       "/how-it-works-ai.png",
	}

	want := Meta{
		Title:       "How JackpotAI Works",
		Description: "Learn how.",
		Keywords:    "lottery, AI",
		Canonical:   "https://jackpotai.app/how-it-works",
		OG: OpenGraph{
			Type:        "website",
			SiteName:    "JackpotAI",
			Title:       "How JackpotAI Works",
			Description: "Learn how.",
			URL:         "https://jackpotai.app/how-it-works",
			Image:       "https://jackpotai.app/how-it-works-ai.png",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       "How JackpotAI Works",
			Description: "Learn how.",
			Image:       "https://jackpotai.app/how-it-works-ai.png",
		},
	}
	if diff := cmp.Diff(want, NewMeta(site, page)); diff != "" {
		t.Errorf("NewMeta mismatch (-want +got):\n%s", diff)
	}

	notFound := NewMeta(site, nil)
	if notFound.Robots != "noindex" || notFound.Canonical != "" || notFound.Title != "Page Not Found | JackpotAI" {
		t.Errorf("NewMeta(nil) = %+v", notFound)
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://jackpotai.app", "/", "https://jackpotai.app/"},
		{"https://jackpotai.app/", "/logo.png", "https://jackpotai.app/logo.png"},
		{"https://jackpotai.app", "logo.png", "https://jackpotai.app/logo.png"},
		{"https://jackpotai.app", "https://cdn.test/x.png", "https://cdn.test/x.png"},
		{"https://jackpotai.app", "", ""},
	}
	for _, tt := range tests {
		if got := AbsoluteURL(tt.base, tt.path); got != tt.want {
			t.Errorf("AbsoluteURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := displayDate("2025-03-20"); got != "March 20, 2025" {
		t.Errorf("displayDate = %q", got)
	}
	if got := displayDate("spring"); got != "spring" {
		t.Errorf("displayDate(invalid) = %q", got)
	}
}

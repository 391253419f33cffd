package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jackpotai/web/internal/cache"
	"github.com/jackpotai/web/internal/metrics"
	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/render"
	"github.com/jackpotai/web/internal/schema"
	"github.com/jackpotai/web/internal/testutil"
)

type fakeCache struct {
	mu      sync.Mutex
	pages   map[string][]byte
	getErr  error
	setErr  error
	sets    int
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{pages: make(map[string][]byte)}
}

func (c *fakeCache) GetPage(_ context.Context, version, path string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	body, ok := c.pages[version+path]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return body, nil
}

func (c *fakeCache) SetPage(_ context.Context, version, path string, body []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.lastTTL = ttl
	if c.setErr != nil {
		return c.setErr
	}
	c.pages[version+path] = body
	return nil
}

func newService(t *testing.T, site *model.Site, pageCache PageCache, recorder metrics.Recorder) *SiteService {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}
	settings := Settings{
		PageCacheTTL: time.Minute,
		Now:          func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
	return NewSiteService(site, renderer, pageCache, recorder, nil, settings)
}

func TestPage(t *testing.T) {
	svc := newService(t, testutil.NewTestSite(t), nil, nil)

	tests := []struct {
		path     string
		wantPath string
		wantErr  error
	}{
		{path: "/", wantPath: "/"},
		{path: "", wantPath: "/"},
		{path: "/how-it-works/", wantPath: "/how-it-works"},
		{path: "/privacy-policy?utm=x", wantPath: "/privacy-policy"},
		{path: "/missing", wantErr: ErrPageNotFound},
	}
	for _, tt := range tests {
		page, err := svc.Page(tt.path)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Page(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			continue
		}
		if err == nil && page.Path != tt.wantPath {
			t.Errorf("Page(%q) = %q, want %q", tt.path, page.Path, tt.wantPath)
		}
	}
}

func TestResolveRedirect_Table(t *testing.T) {
	site := testutil.NewTestSite(t)
	recorder := metrics.NewInMemory()
	svc := newService(t, site, nil, recorder)

	for _, want := range site.Redirects {
		want := want
		t.Run(want.From, func(t *testing.T) {
			got, err := svc.ResolveRedirect(want.From)
			if err != nil {
				t.Fatalf("ResolveRedirect(%q) error = %v", want.From, err)
			}
			if got.To != want.To || got.Status != want.Status {
				t.Errorf("ResolveRedirect(%q) = %s %d, want %s %d", want.From, got.To, got.Status, want.To, want.Status)
			}
		})
	}

	if got, err := svc.ResolveRedirect("/privacy/"); err != nil || got.To != "/privacy-policy" {
		t.Errorf("ResolveRedirect with trailing slash = %+v, %v", got, err)
	}
	if _, err := svc.ResolveRedirect("/nowhere"); !errors.Is(err, ErrRedirectNotFound) {
		t.Errorf("ResolveRedirect(/nowhere) error = %v, want %v", err, ErrRedirectNotFound)
	}

	snap := recorder.Snapshot()
	want := map[int]uint64{301: 1, 302: 1, 307: 1, 308: 2}
	if diff := cmp.Diff(want, snap.Redirects); diff != "" {
		t.Errorf("redirect metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestRedirects_ReturnsCopy(t *testing.T) {
	site := testutil.NewTestSite(t)
	svc := newService(t, site, nil, nil)

	got := svc.Redirects()
	got[0].To = "/changed"
	if site.Redirects[0].To == "/changed" {
		t.Error("Redirects() exposed the content slice")
	}
}

func TestRenderPage_OneBlockPerDeclaredType(t *testing.T) {
	site := testutil.NewTestSite(t)
	svc := newService(t, site, nil, nil)

	for _, page := range site.Pages {
		page := page
		t.Run(page.Path, func(t *testing.T) {
			body, err := svc.RenderPage(context.Background(), page.Path)
			if err != nil {
				t.Fatalf("RenderPage() error = %v", err)
			}
			html := string(body)

			if got := strings.Count(html, `type="application/ld+json"`); got != len(page.Schemas) {
				t.Errorf("structured data blocks = %d, want %d", got, len(page.Schemas))
			}
			for _, typ := range page.Schemas {
				if got := strings.Count(html, `data-schema="`+typ+`"`); got != 1 {
					t.Errorf("%s blocks = %d, want 1", typ, got)
				}
			}
		})
	}
}

func TestRenderPage_Cache(t *testing.T) {
	site := testutil.NewTestSite(t)
	pageCache := newFakeCache()
	recorder := metrics.NewInMemory()
	svc := newService(t, site, pageCache, recorder)
	ctx := context.Background()

	first, err := svc.RenderPage(ctx, "/")
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	second, err := svc.RenderPage(ctx, "/")
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("cached page differs from rendered page")
	}

	snap := recorder.Snapshot()
	if snap.PageCacheMisses != 1 || snap.PageCacheHits != 1 {
		t.Errorf("cache hits/misses = %d/%d, want 1/1", snap.PageCacheHits, snap.PageCacheMisses)
	}
	if snap.PagesRendered[model.TemplateHome] != 1 {
		t.Errorf("home rendered %d times, want 1", snap.PagesRendered[model.TemplateHome])
	}
	if pageCache.lastTTL != time.Minute {
		t.Errorf("cache TTL = %v, want %v", pageCache.lastTTL, time.Minute)
	}
	if _, ok := pageCache.pages[site.Version+"/"]; !ok {
		t.Error("page not cached under content version")
	}
}

func TestRenderPage_CacheFailsOpen(t *testing.T) {
	pageCache := newFakeCache()
	pageCache.getErr = errors.New("connection refused")
	pageCache.setErr = errors.New("connection refused")
	svc := newService(t, testutil.NewTestSite(t), pageCache, nil)

	body, err := svc.RenderPage(context.Background(), "/how-it-works")
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if !strings.Contains(string(body), "How JackpotAI Works") {
		t.Error("page body missing title")
	}
	if pageCache.sets != 1 {
		t.Errorf("SetPage calls = %d, want 1", pageCache.sets)
	}
}

func TestRenderPage_NotFound(t *testing.T) {
	svc := newService(t, testutil.NewTestSite(t), nil, nil)
	if _, err := svc.RenderPage(context.Background(), "/nope"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("RenderPage(/nope) error = %v, want %v", err, ErrPageNotFound)
	}
}

func TestRenderNotFound(t *testing.T) {
	recorder := metrics.NewInMemory()
	svc := newService(t, testutil.NewTestSite(t), nil, recorder)

	body, err := svc.RenderNotFound()
	if err != nil {
		t.Fatalf("RenderNotFound() error = %v", err)
	}
	html := string(body)
	if !strings.Contains(html, "Page Not Found") {
		t.Error("not found page missing heading")
	}
	if strings.Contains(html, "application/ld+json") {
		t.Error("not found page carries structured data")
	}
	if !strings.Contains(html, "&copy; 2025") {
		t.Error("footer year not taken from the clock")
	}
	if recorder.Snapshot().NotFound != 1 {
		t.Error("not found metric not recorded")
	}
}

func TestSchemas(t *testing.T) {
	site := testutil.NewTestSite(t)
	svc := newService(t, site, nil, nil)

	home, _ := svc.Page("/")
	set, err := svc.Schemas(home)
	if err != nil {
		t.Fatalf("Schemas(home) error = %v", err)
	}

	var order []schema.Type
	for _, b := range set.Blocks() {
		order = append(order, b.Type)
	}
	wantOrder := []schema.Type{
		schema.TypeMobileApplication, schema.TypeFAQPage, schema.TypeHowTo,
		schema.TypeOrganization, schema.TypeReview,
	}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Errorf("block order mismatch (-want +got):\n%s", diff)
	}

	review, _ := set.Get(schema.TypeReview)
	if r := review.Data.(schema.Review); r.Author.Name != "Sarah M." || r.ItemReviewed.Name != "JackpotAI" {
		t.Errorf("review = %+v", r)
	}

	hiw, _ := svc.Page("/how-it-works")
	set, err = svc.Schemas(hiw)
	if err != nil {
		t.Fatalf("Schemas(how-it-works) error = %v", err)
	}

	crumbs, _ := set.Get(schema.TypeBreadcrumbList)
	items := crumbs.Data.(schema.BreadcrumbList).ItemListElement
	if len(items) != 2 || items[1].Item != "https://example.test/how-it-works" || items[1].Name != "How It Works" {
		t.Errorf("breadcrumbs = %+v", items)
	}

	howto, _ := set.Get(schema.TypeHowTo)
	step := howto.Data.(schema.HowTo).Step[0]
	if step.Image == nil || step.Image.URL != "https://example.test/data-collection.png" {
		t.Errorf("step image = %+v", step.Image)
	}
	if site.HowTos["process"].Steps[0].ImageURL != "/data-collection.png" {
		t.Error("Schemas() mutated the content model")
	}
}

func TestSchemas_UnknownType(t *testing.T) {
	svc := newService(t, testutil.NewTestSite(t), nil, nil)
	_, err := svc.Schemas(&model.Page{Path: "/x", Schemas: []string{"Recipe"}})
	if !errors.Is(err, schema.ErrUnknownType) {
		t.Errorf("Schemas() error = %v, want %v", err, schema.ErrUnknownType)
	}
}

func TestSitemap(t *testing.T) {
	site := testutil.NewTestSite(t)
	site.Pages[2].Sitemap.Exclude = true
	svc := newService(t, site, nil, nil)

	entries := svc.SitemapEntries()
	if len(entries) != 2 {
		t.Fatalf("SitemapEntries() = %d entries, want 2", len(entries))
	}
	if got := entries[0].LastMod.Format(time.DateOnly); got != "2025-03-20" {
		t.Errorf("LastMod = %s", got)
	}

	data, err := svc.SitemapFile("sitemap.xml")
	if err != nil {
		t.Fatalf("SitemapFile() error = %v", err)
	}
	xml := string(data)
	if !strings.Contains(xml, "<loc>https://example.test/how-it-works</loc>") {
		t.Error("sitemap missing how-it-works")
	}
	if strings.Contains(xml, "privacy-policy") {
		t.Error("sitemap lists an excluded page")
	}

	if _, err := svc.SitemapFile("sitemap-9.xml"); !errors.Is(err, ErrSitemapNotFound) {
		t.Errorf("SitemapFile(sitemap-9.xml) error = %v, want %v", err, ErrSitemapNotFound)
	}
}

func TestRobots(t *testing.T) {
	svc := newService(t, testutil.NewTestSite(t), nil, nil)
	robots := string(svc.Robots())
	for _, want := range []string{"User-agent: *", "Allow: /", "Host: https://example.test", "Sitemap: https://example.test/sitemap.xml"} {
		if !strings.Contains(robots, want) {
			t.Errorf("robots.txt missing %q", want)
		}
	}
}

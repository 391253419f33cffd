// Package service provides the site logic shared by the HTTP server and the
// static exporter.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackpotai/web/internal/cache"
	"github.com/jackpotai/web/internal/metrics"
	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/render"
	"github.com/jackpotai/web/internal/schema"
	"github.com/jackpotai/web/internal/seo"
)

// Service errors.
var (
	ErrPageNotFound     = errors.New("page not found")
	ErrRedirectNotFound = errors.New("redirect not found")
	ErrSitemapNotFound  = errors.New("sitemap not found")
)

// PageCache stores rendered pages keyed by content version and path.
type PageCache interface {
	GetPage(ctx context.Context, version, path string) ([]byte, error)
	SetPage(ctx context.Context, version, path string, body []byte, ttl time.Duration) error
}

// Settings tunes a SiteService.
type Settings struct {
	PageCacheTTL time.Duration
	SitemapSize  int
	// Now is the clock used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

// SiteService resolves pages and redirects and renders them.
type SiteService struct {
	site      *model.Site
	renderer  *render.Renderer
	cache     PageCache
	metrics   metrics.Recorder
	logger    *slog.Logger
	settings  Settings
	redirects map[string]model.Redirect
}

// NewSiteService creates a new SiteService. pageCache may be nil, in which
// case every request renders.
func NewSiteService(site *model.Site, renderer *render.Renderer, pageCache PageCache, recorder metrics.Recorder, logger *slog.Logger, settings Settings) *SiteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if settings.SitemapSize <= 0 {
		settings.SitemapSize = seo.DefaultSitemapSize
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}

	redirects := make(map[string]model.Redirect, len(site.Redirects))
	for _, r := range site.Redirects {
		redirects[r.From] = r
	}

	return &SiteService{
		site:      site,
		renderer:  renderer,
		cache:     pageCache,
		metrics:   recorder,
		logger:    logger,
		settings:  settings,
		redirects: redirects,
	}
}

// Site returns the loaded content.
func (s *SiteService) Site() *model.Site {
	return s.site
}

// Page returns the page served at path. Trailing slashes and query strings
// are ignored.
func (s *SiteService) Page(path string) (*model.Page, error) {
	normalized := model.NormalizePath(path)
	page, ok := s.site.PageByPath(normalized)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, normalized)
	}
	return page, nil
}

// RenderPage returns the HTML of the page at path, from the page cache when
// possible. Cache failures are logged and otherwise ignored.
func (s *SiteService) RenderPage(ctx context.Context, path string) ([]byte, error) {
	page, err := s.Page(path)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		body, err := s.cache.GetPage(ctx, s.site.Version, page.Path)
		switch {
		case err == nil:
			s.metrics.IncPageCacheHit()
			return body, nil
		case errors.Is(err, cache.ErrCacheMiss):
			s.metrics.IncPageCacheMiss()
		default:
			s.logger.Warn("page cache read failed", "path", page.Path, "error", err)
		}
	}

	body, err := s.render(page.Template, page)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, s.site.Version, page.Path, body, s.settings.PageCacheTTL); err != nil {
			s.logger.Warn("page cache write failed", "path", page.Path, "error", err)
		}
	}

	return body, nil
}

// RenderNotFound returns the HTML of the not-found page.
func (s *SiteService) RenderNotFound() ([]byte, error) {
	s.metrics.IncNotFound()
	return s.render(model.TemplateNotFound, nil)
}

func (s *SiteService) render(template string, page *model.Page) ([]byte, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRenderDuration(time.Since(start))
	}()

	view, err := s.BuildView(page)
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.RenderBytes(template, view)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", template, err)
	}

	s.metrics.IncPageRendered(template)
	return body, nil
}

// BuildView assembles the template data of page. A nil page builds the
// not-found view.
func (s *SiteService) BuildView(page *model.Page) (render.View, error) {
	view := render.View{
		Site:     s.site,
		Page:     page,
		Meta:     render.NewMeta(s.site, page),
		Nav:      s.site.Navigation,
		Download: s.site.Download,
		Year:     s.settings.Now().Year(),
	}
	if page == nil {
		return view, nil
	}

	if page.Breadcrumbs {
		view.Breadcrumbs = seo.Breadcrumbs(page.Path)
	}
	if h, ok := s.site.HowTos[page.HowTo]; ok {
		view.HowTo = &h
	}

	set, err := s.Schemas(page)
	if err != nil {
		return render.View{}, err
	}
	if view.Schemas, err = render.NewSchemaBlocks(set); err != nil {
		return render.View{}, err
	}

	return view, nil
}

// Schemas builds the structured data declared by page, one block per type
// in declaration order.
func (s *SiteService) Schemas(page *model.Page) (*schema.Set, error) {
	set := &schema.Set{}
	for _, name := range page.Schemas {
		typ, err := schema.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.Path, err)
		}

		switch typ {
		case schema.TypeMobileApplication:
			set.Add(typ, schema.NewMobileApplication(s.absoluteApp()))
		case schema.TypeFAQPage:
			set.Add(typ, schema.NewFAQPage(s.site.FAQs))
		case schema.TypeHowTo:
			h, ok := s.site.HowTos[page.HowTo]
			if !ok {
				return nil, fmt.Errorf("page %s: unknown howto %q", page.Path, page.HowTo)
			}
			set.Add(typ, schema.NewHowTo(s.absoluteHowTo(h)))
		case schema.TypeReview:
			t, ok := s.site.FeaturedTestimonial()
			if !ok {
				return nil, fmt.Errorf("page %s: no featured testimonial for Review", page.Path)
			}
			set.Add(typ, schema.NewReview(model.Review{
				ItemName:    s.site.App.Name,
				ItemType:    string(schema.TypeMobileApplication),
				RatingValue: t.Rating,
				Body:        t.Quote,
				Author:      t.Name,
				PublishDate: t.Date,
			}))
		case schema.TypeBreadcrumbList:
			items := seo.AbsoluteBreadcrumbs(s.site.URL, seo.Breadcrumbs(page.Path))
			set.Add(typ, schema.NewBreadcrumbList(items))
		case schema.TypeOrganization:
			set.Add(typ, schema.NewOrganization(s.site.Organization))
		}
	}
	return set, nil
}

func (s *SiteService) absoluteApp() model.App {
	app := s.site.App
	app.Screenshots = make([]model.Screenshot, len(s.site.App.Screenshots))
	for i, shot := range s.site.App.Screenshots {
		shot.Src = render.AbsoluteURL(s.site.URL, shot.Src)
		app.Screenshots[i] = shot
	}
	return app
}

func (s *SiteService) absoluteHowTo(h model.HowTo) model.HowTo {
	h.ImageURL = render.AbsoluteURL(s.site.URL, h.ImageURL)
	steps := make([]model.HowToStep, len(h.Steps))
	for i, step := range h.Steps {
		step.ImageURL = render.AbsoluteURL(s.site.URL, step.ImageURL)
		step.URL = render.AbsoluteURL(s.site.URL, step.URL)
		steps[i] = step
	}
	h.Steps = steps

	supplies := make([]model.HowToSupply, len(h.Supplies))
	for i, supply := range h.Supplies {
		supply.ImageURL = render.AbsoluteURL(s.site.URL, supply.ImageURL)
		supplies[i] = supply
	}
	h.Supplies = supplies
	return h
}

// ResolveRedirect returns the redirect registered for path.
func (s *SiteService) ResolveRedirect(path string) (model.Redirect, error) {
	normalized := model.NormalizePath(path)
	r, ok := s.redirects[normalized]
	if !ok {
		return model.Redirect{}, fmt.Errorf("%w: %s", ErrRedirectNotFound, normalized)
	}
	s.metrics.IncRedirect(int(r.Status))
	return r, nil
}

// Redirects returns the redirect table in declaration order.
func (s *SiteService) Redirects() []model.Redirect {
	out := make([]model.Redirect, len(s.site.Redirects))
	copy(out, s.site.Redirects)
	return out
}

// SitemapEntries lists the pages advertised to crawlers.
func (s *SiteService) SitemapEntries() []seo.Entry {
	lastMod, _ := time.Parse(time.DateOnly, s.site.LastUpdated)

	entries := make([]seo.Entry, 0, len(s.site.Pages))
	for _, p := range s.site.Pages {
		if p.Sitemap.Exclude {
			continue
		}
		entries = append(entries, seo.Entry{
			Loc:        p.Path,
			LastMod:    lastMod,
			ChangeFreq: p.Sitemap.ChangeFreq,
			Priority:   p.Sitemap.Priority,
		})
	}
	return entries
}

// Sitemap renders every sitemap file, index first.
func (s *SiteService) Sitemap() ([]seo.File, error) {
	return seo.Sitemap(s.site.URL, s.SitemapEntries(), s.settings.SitemapSize)
}

// SitemapFile returns the sitemap file called name.
func (s *SiteService) SitemapFile(name string) ([]byte, error) {
	files, err := s.Sitemap()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Name == name {
			return f.Data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSitemapNotFound, name)
}

// Robots renders robots.txt.
func (s *SiteService) Robots() []byte {
	return seo.Robots(s.site.URL)
}

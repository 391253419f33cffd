package content

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/schema"
)

// routePath matches the paths that can be registered as literal routes.
var routePath = regexp.MustCompile(`^/[A-Za-z0-9._~/-]*$`)

// ReservedPaths are served by the application itself and cannot be used by
// pages or redirects.
var ReservedPaths = []string{"/healthz", "/readyz", "/metrics", "/robots.txt", "/sitemap.xml", "/static"}

func checkRoute(path string) error {
	switch {
	case !strings.HasPrefix(path, "/"):
		return errors.New("path must start with /")
	case !routePath.MatchString(path):
		return errors.New("path contains unsupported characters")
	case model.NormalizePath(path) != path:
		return errors.New("path must not end with /")
	case slices.Contains(ReservedPaths, path) || strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/sitemap-"):
		return errors.New("path is reserved")
	}
	return nil
}

// Validate checks the cross references of a loaded site. Every problem is
// reported; the result wraps ErrInvalidContent.
func Validate(site *model.Site) error {
	var errs []error

	_, hasFeatured := site.FeaturedTestimonial()

	paths := make(map[string]bool, len(site.Pages))
	for i, page := range site.Pages {
		where := fmt.Sprintf("page[%d] %q", i, page.Path)

		if err := checkRoute(page.Path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		} else if paths[page.Path] {
			errs = append(errs, fmt.Errorf("%s: duplicate path", where))
		}
		paths[page.Path] = true

		if !slices.Contains(model.PageTemplates, page.Template) {
			errs = append(errs, fmt.Errorf("%s: unknown template %q", where, page.Template))
		}
		if strings.TrimSpace(page.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}

		seen := make(map[string]bool, len(page.Schemas))
		for _, name := range page.Schemas {
			typ, err := schema.ParseType(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
				continue
			}
			if seen[name] {
				errs = append(errs, fmt.Errorf("%s: schema %s declared twice", where, name))
			}
			seen[name] = true

			switch {
			case typ == schema.TypeHowTo && page.HowTo == "":
				errs = append(errs, fmt.Errorf("%s: HowTo schema needs a howto reference", where))
			case typ == schema.TypeReview && !hasFeatured:
				errs = append(errs, fmt.Errorf("%s: Review schema needs a featured testimonial", where))
			}
		}

		if page.HowTo != "" {
			if _, ok := site.HowTos[page.HowTo]; !ok {
				errs = append(errs, fmt.Errorf("%s: unknown howto %q", where, page.HowTo))
			}
		}

		if cf := page.Sitemap.ChangeFreq; cf != "" && !slices.Contains(model.ChangeFreqs, cf) {
			errs = append(errs, fmt.Errorf("%s: unknown sitemap changefreq %q", where, cf))
		}
		if p := page.Sitemap.Priority; p != nil && (*p < 0 || *p > 1) {
			errs = append(errs, fmt.Errorf("%s: sitemap priority %g out of range", where, *p))
		}
	}

	sources := make(map[string]bool, len(site.Redirects))
	for i, r := range site.Redirects {
		where := fmt.Sprintf("redirect[%d] %q", i, r.From)

		if err := checkRoute(r.From); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		} else if sources[r.From] {
			errs = append(errs, fmt.Errorf("%s: duplicate source", where))
		}
		sources[r.From] = true

		if paths[r.From] {
			errs = append(errs, fmt.Errorf("%s: source shadows a page", where))
		}
		if strings.TrimSpace(r.To) == "" {
			errs = append(errs, fmt.Errorf("%s: destination is required", where))
		} else if model.NormalizePath(r.To) == r.From && !r.IsExternal() {
			errs = append(errs, fmt.Errorf("%s: redirects to itself", where))
		}
		if !r.Status.IsValid() {
			errs = append(errs, fmt.Errorf("%s: unsupported status %d", where, int(r.Status)))
		}
	}

	featured := 0
	for _, t := range site.Testimonials {
		if t.Featured {
			featured++
		}
	}
	if featured > 1 {
		errs = append(errs, fmt.Errorf("%d testimonials are featured, at most one is allowed", featured))
	}

	for key, h := range site.HowTos {
		if strings.TrimSpace(h.Name) == "" {
			errs = append(errs, fmt.Errorf("howto %q: name is required", key))
		}
		if len(h.Steps) == 0 {
			errs = append(errs, fmt.Errorf("howto %q: at least one step is required", key))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
}

// Package export writes the site as a directory of static files that any
// static host can serve.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/jackpotai/web/internal/service"
)

const (
	// RedirectsFile lists "<source> <destination> <status>" per line, the
	// format understood by Netlify and Cloudflare Pages.
	RedirectsFile = "_redirects"
	NotFoundFile  = "404.html"
	RobotsFile    = "robots.txt"
	StaticDir     = "static"
	indexFile     = "index.html"
)

// Result lists the files written, relative to the output directory.
type Result struct {
	Files []string
}

// Exporter renders every page and asset of a site to disk.
type Exporter struct {
	svc    *service.SiteService
	static fs.FS
	logger *slog.Logger
}

// New creates an Exporter. static holds the files published under /static.
func New(svc *service.SiteService, static fs.FS, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{svc: svc, static: static, logger: logger}
}

// Export writes the site into dir, creating it when needed. Existing files
// with the same names are overwritten; other files are left alone.
func (e *Exporter) Export(ctx context.Context, dir string) (*Result, error) {
	w := &writer{root: dir}

	for _, page := range e.svc.Site().Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := e.svc.RenderPage(ctx, page.Path)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", page.Path, err)
		}
		if err := w.write(PagePath(page.Path), body); err != nil {
			return nil, err
		}
	}

	notFound, err := e.svc.RenderNotFound()
	if err != nil {
		return nil, fmt.Errorf("export not found page: %w", err)
	}
	if err := w.write(NotFoundFile, notFound); err != nil {
		return nil, err
	}

	sitemaps, err := e.svc.Sitemap()
	if err != nil {
		return nil, fmt.Errorf("export sitemap: %w", err)
	}
	for _, f := range sitemaps {
		if err := w.write(f.Name, f.Data); err != nil {
			return nil, err
		}
	}

	if err := w.write(RobotsFile, e.svc.Robots()); err != nil {
		return nil, err
	}
	if err := w.write(RedirectsFile, e.redirects()); err != nil {
		return nil, err
	}

	if e.static != nil {
		if err := e.copyStatic(ctx, w); err != nil {
			return nil, err
		}
	}

	sort.Strings(w.files)
	e.logger.Info("site exported", "dir", dir, "files", len(w.files))
	return &Result{Files: w.files}, nil
}

// PagePath maps a page path to its file: "/" is index.html and
// "/how-it-works" is how-it-works/index.html.
func PagePath(pagePath string) string {
	return path.Join(pagePath[1:], indexFile)
}

func (e *Exporter) redirects() []byte {
	var buf bytes.Buffer
	for _, r := range e.svc.Redirects() {
		fmt.Fprintf(&buf, "%s %s %d\n", r.From, r.To, int(r.Status))
	}
	return buf.Bytes()
}

func (e *Exporter) copyStatic(ctx context.Context, w *writer) error {
	return fs.WalkDir(e.static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(e.static, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		return w.write(path.Join(StaticDir, name), data)
	})
}

type writer struct {
	root  string
	files []string
}

func (w *writer) write(name string, data []byte) error {
	target := filepath.Join(w.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.files = append(w.files, name)
	return nil
}

// Package render turns page views into HTML using a pongo2 template set.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/jackpotai/web/internal/model"
)

//go:embed templates
var embedded embed.FS

// Extension is appended to template names.
const Extension = ".html"

// Option configures a Renderer.
type Option func(*config)

type config struct {
	dir string
}

// WithDir loads templates from a directory on disk instead of the embedded
// set. Templates are re-read on every render so edits show up immediately.
func WithDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// Renderer executes named page templates.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New builds a Renderer over the embedded templates or the directory given
// with WithDir.
func New(opts ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	var loader pongo2.TemplateLoader
	if cfg.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("render: create local loader: %w", err)
		}
		loader = local
	} else {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("render: open embedded templates: %w", err)
		}
		loader = pongo2.NewFSLoader(sub)
	}

	set := pongo2.NewSet("jackpotai", loader)
	set.Debug = cfg.dir != ""

	return &Renderer{set: set}, nil
}

// Check parses every page template and the not-found template, so a broken
// template fails startup rather than the first request.
func (r *Renderer) Check() error {
	names := append([]string{model.TemplateNotFound}, model.PageTemplates...)

	var errs []error
	for _, name := range names {
		if _, err := r.template(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Render executes the template called name with view and writes the result
// to w. Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, name string, view View) error {
	tpl, err := r.template(name)
	if err != nil {
		return err
	}
	if err := tpl.ExecuteWriter(view.context(), w); err != nil {
		return fmt.Errorf("render: execute %q: %w", name, err)
	}
	return nil
}

// RenderBytes is Render into a fresh buffer.
func (r *Renderer) RenderBytes(name string, view View) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	tpl, err := r.set.FromCache(name + Extension)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, err)
	}
	return tpl, nil
}

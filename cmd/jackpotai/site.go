package main

import (
	"fmt"

	"github.com/jackpotai/web/internal/content"
	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/render"
)

// loadSite loads the content document and the template set selected by the
// configuration and checks that every page template parses.
func (c *cli) loadSite(siteURL string) (*model.Site, *render.Renderer, error) {
	if siteURL == "" {
		siteURL = c.cfg.SiteURL
	}
	var opts []content.Option
	if siteURL != "" {
		opts = append(opts, content.WithSiteURL(siteURL))
	}

	var (
		site *model.Site
		err  error
	)
	if c.cfg.ContentDir != "" {
		site, err = content.LoadDir(c.cfg.ContentDir, opts...)
	} else {
		site, err = content.Load(content.EmbeddedFS(), opts...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}

	var renderOpts []render.Option
	if c.cfg.TemplateDir != "" {
		renderOpts = append(renderOpts, render.WithDir(c.cfg.TemplateDir))
	}
	renderer, err := render.New(renderOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("load templates: %w", err)
	}
	if err := renderer.Check(); err != nil {
		return nil, nil, fmt.Errorf("check templates: %w", err)
	}

	c.logger.Info("content loaded",
		"site_url", site.URL,
		"version", site.Version,
		"pages", len(site.Pages),
		"redirects", len(site.Redirects),
	)
	return site, renderer, nil
}

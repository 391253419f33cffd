package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackpotai/web/internal/assets"
	"github.com/jackpotai/web/internal/export"
	"github.com/jackpotai/web/internal/service"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		out     string
		siteURL string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		Long: "Render every page, the not-found page, sitemaps, robots.txt, static assets\n" +
			"and a _redirects file into a directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, renderer, err := c.loadSite(siteURL)
			if err != nil {
				return err
			}

			svc := service.NewSiteService(site, renderer, nil, nil, c.logger, service.Settings{
				SitemapSize: c.cfg.SitemapSize,
			})

			result, err := export.New(svc, assets.FS(), c.logger).Export(cmd.Context(), out)
			if err != nil {
				return err
			}

			for _, name := range result.Files {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&siteURL, "site-url", "", "public site URL (overrides SITE_URL)")

	return cmd
}

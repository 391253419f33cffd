package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackpotai/web/internal/schema"
	"github.com/jackpotai/web/internal/service"
)

func newSchemaCmd(c *cli) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "schema PATH",
		Short: "Print the JSON-LD blocks of a page",
		Example: "  jackpotai schema /\n" +
			"  jackpotai schema /how-it-works --type HowTo",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter schema.Type
			if only != "" {
				t, err := schema.ParseType(only)
				if err != nil {
					return err
				}
				filter = t
			}

			site, renderer, err := c.loadSite("")
			if err != nil {
				return err
			}
			svc := service.NewSiteService(site, renderer, nil, nil, c.logger, service.Settings{})

			page, err := svc.Page(args[0])
			if err != nil {
				return err
			}
			set, err := svc.Schemas(page)
			if err != nil {
				return err
			}

			var out []string
			for _, block := range set.Blocks() {
				if filter != "" && block.Type != filter {
					continue
				}
				text, err := block.MarshalIndent()
				if err != nil {
					return err
				}
				out = append(out, strings.TrimRight(text, "\n"))
			}
			if len(out) == 0 {
				return fmt.Errorf("page %s declares no matching schema", page.Path)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&only, "type", "t", "", "print only this schema type")

	return cmd
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/mdc/internal/config"
	"github.com/vango-dev/mdc/internal/gallery"
	"github.com/vango-dev/mdc/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		pretty     bool
		page       bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Print the server markup of a component",
		Long: `Render a component with sample props and print its HTML.

No widget is constructed: the markup carries data-mdc-ref attributes
on the elements widgets attach to.

Examples:
  mdc render dialog
  mdc render data-table --pretty
  mdc render button --page > button.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := gallery.Lookup(args[0])
			if err != nil {
				return err
			}
			tree, err := sample.Render(cmd.Context())
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			out := cmd.OutOrStdout()
			if !page {
				html, err := r.RenderToString(tree)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.TrimSpace(html))
				return nil
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return r.RenderPage(out, render.PageData{
				Title:       sample.Description,
				Body:        tree,
				StyleSheets: []string{cfg.StyleSheet(), gallery.IconFont},
				Scripts:     []string{cfg.Script()},
			})
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the markup in a page loading the MDC assets")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: mdc.yaml or mdc.json in the working directory)")

	return cmd
}

func componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the components render accepts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range gallery.Samples() {
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			w.Flush()
		},
	}
}

// loadConfig loads path, or the config of the working directory when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

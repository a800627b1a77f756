package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

type listResult struct {
	Variants []string     `json:"variants"`
	Targets  []listTarget `json:"targets"`
}

type listTarget struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variants and enabled targets",
		Long:  "List variant names and the enabled targets with their output paths. Use --all to include disabled targets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadTheme()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			shown := cfg.EnabledTargets()
			if all {
				shown = cfg.Targets
			}

			if opts.settings.JSON {
				return WriteOutput(out, listResult{
					Variants: cfg.VariantNames(),
					Targets:  toListTargets(shown),
				})
			}

			fmt.Fprintf(out, "Variants: %s\n", strings.Join(cfg.VariantNames(), ", "))
			if !all {
				for _, t := range shown {
					fmt.Fprintf(out, "- %s -> %s\n", t.Kind, t.Path)
				}
				return nil
			}
			return writeTargetTable(out, shown)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include disabled targets")
	return cmd
}

func toListTargets(list []theme.Target) []listTarget {
	out := make([]listTarget, 0, len(list))
	for _, t := range list {
		out = append(out, listTarget{ID: t.Kind.String(), Path: t.Path, Enabled: t.Enabled})
	}
	return out
}

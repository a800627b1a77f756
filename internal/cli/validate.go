package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type validateResult struct {
	Variants int      `json:"variants"`
	Targets  int      `json:"targets"`
	Warnings []string `json:"warnings"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the theme document",
		Long:  "Load the theme document and report how many variants and targets it defines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadTheme()
			if err != nil {
				return err
			}

			warnings := []string{}
			for _, name := range cfg.DuplicateVariantNames() {
				msg := fmt.Sprintf("variant %q is defined more than once; later definitions overwrite per-variant files", name)
				opts.logger.Warn().Str("variant", name).Msg("duplicate variant name")
				warnings = append(warnings, msg)
			}
			if len(cfg.EnabledTargets()) == 0 {
				opts.logger.Warn().Msg("no enabled targets")
				warnings = append(warnings, "no targets are enabled; generate will write nothing")
			}

			result := validateResult{
				Variants: len(cfg.Variants),
				Targets:  len(cfg.Targets),
				Warnings: warnings,
			}
			if opts.settings.JSON {
				return WriteOutput(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d variants, %d targets\n", result.Variants, result.Targets)
			return nil
		},
	}
}

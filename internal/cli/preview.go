package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/subliminal-nightfall/colorloom/internal/preview"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var (
		variantName string
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show palette swatches in the terminal",
		Long:  "Render colored swatches for every variant, or only the one named with --variant. Color is disabled when stdout is not a terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadTheme()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, envNoColor := os.LookupEnv("NO_COLOR")
			previewOpts := preview.Options{NoColor: noColor || envNoColor || !isTerminal(out)}

			if variantName != "" {
				previewOpts.Variant = variantName
				return preview.Render(out, cfg, previewOpts)
			}
			for i, v := range cfg.Variants {
				if i > 0 {
					fmt.Fprintln(out)
				}
				previewOpts.Variant = v.Name
				if err := preview.Render(out, cfg, previewOpts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", "", "only preview this variant")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

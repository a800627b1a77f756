package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/subliminal-nightfall/colorloom/internal/output"
	"github.com/subliminal-nightfall/colorloom/internal/targets"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

type generateOptions struct {
	only   []string
	dryRun bool
}

type generateResult struct {
	RunID   string            `json:"run_id"`
	DryRun  bool              `json:"dry_run"`
	Root    string            `json:"root"`
	Targets []generatedTarget `json:"targets"`
}

type generatedTarget struct {
	ID    string   `json:"id"`
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	genOpts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate themes for all enabled targets",
		Long: `Render every enabled target and write its files beneath the output root.

Use --only to restrict generation to some targets and --dry-run to render
without touching the filesystem.`,
		Example: `  colorloom generate
  colorloom generate --only zed --only ghostty
  colorloom generate --dry-run --out /tmp/themes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, genOpts)
		},
	}

	cmd.Flags().String("out", "", "output root (default: working directory)")
	kinds := make([]string, 0, len(theme.TargetKinds()))
	for _, kind := range targets.NewDefaultRegistry().Kinds() {
		kinds = append(kinds, kind.String())
	}
	cmd.Flags().StringSliceVar(&genOpts.only, "only", nil, "only generate these target ids ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().BoolVar(&genOpts.dryRun, "dry-run", false, "render in memory and list the files that would be written")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, genOpts *generateOptions) error {
	cfg, err := opts.loadTheme()
	if err != nil {
		return err
	}

	selected, err := selectTargets(cfg, genOpts.only)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := opts.logger.With().Str("run_id", runID).Logger()

	fs := afero.NewOsFs()
	if genOpts.dryRun {
		fs = afero.NewMemMapFs()
	}
	root := opts.settings.OutputRoot
	writer := output.NewWriter(root, output.WithFs(fs), output.WithLogger(logger))
	dispatcher := targets.NewDispatcher(targets.WithLogger(logger))

	logger.Info().
		Str("theme", cfg.Meta.Name).
		Str("root", root).
		Bool("dry_run", genOpts.dryRun).
		Int("targets", len(selected)).
		Msg("generating")

	result := generateResult{
		RunID:   runID,
		DryRun:  genOpts.dryRun,
		Root:    root,
		Targets: make([]generatedTarget, 0, len(selected)),
	}
	outputs := make([]targets.Output, 0, len(selected))
	for _, target := range selected {
		step := opts.startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s", target.Kind))

		out, err := dispatcher.Generate(cfg, target)
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("generate target %s: %w", target.Kind, err)
		}
		paths, err := writer.Write(out)
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("generate target %s: %w", target.Kind, err)
		}
		step.Done()

		result.Targets = append(result.Targets, generatedTarget{
			ID:    target.Kind.String(),
			Path:  target.Path,
			Files: paths,
		})
		outputs = append(outputs, out)
	}

	w := cmd.OutOrStdout()
	if opts.settings.JSON {
		return WriteOutput(w, result)
	}
	if genOpts.dryRun {
		if err := writeFileTable(w, root, outputs); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "Generated themes for %d targets\n", len(result.Targets))
	return nil
}

// selectTargets returns the enabled targets, narrowed to ids when given.
func selectTargets(cfg *theme.Config, ids []string) ([]theme.Target, error) {
	enabled := cfg.EnabledTargets()
	if len(ids) == 0 {
		return enabled, nil
	}

	wanted := make(map[theme.TargetKind]bool, len(ids))
	for _, id := range ids {
		kind, err := theme.ParseTargetKind(id)
		if err != nil {
			return nil, err
		}
		wanted[kind] = true
	}

	selected := make([]theme.Target, 0, len(wanted))
	found := make(map[theme.TargetKind]bool, len(wanted))
	for _, t := range enabled {
		if wanted[t.Kind] {
			selected = append(selected, t)
			found[t.Kind] = true
		}
	}
	for _, id := range ids {
		if kind := theme.TargetKind(id); !found[kind] {
			return nil, fmt.Errorf("target %s is not enabled", kind)
		}
	}
	return selected, nil
}

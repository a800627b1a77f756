package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/theme/themetest"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidate(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "validate", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "OK: 2 variants, 5 targets\n", stdout)
}

func TestValidateJSONWarnsOnDuplicateVariants(t *testing.T) {
	doc := strings.Replace(themetest.SampleTOML, `name = "transparent"`, `name = "base"`, 1)
	path := writeTheme(t, doc)

	stdout, _, err := runCLI(t, "validate", "--config", path, "--json")
	require.NoError(t, err)

	var result validateResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Equal(t, 2, result.Variants)
	require.Equal(t, 5, result.Targets)
	require.Len(t, result.Warnings, 1)
	require.Contains(t, result.Warnings[0], `"base"`)
}

func TestListSkipsDisabledTargets(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "list", "-c", path)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"Variants: base, transparent",
		"- ghostty -> out/ghostty",
		"- zed -> out/zed",
		"- cursor -> out/cursor",
		"- neovim -> out/neovim",
	}, "\n")+"\n", stdout)
}

func TestListAllJSON(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "list", "-c", path, "--all", "--json")
	require.NoError(t, err)

	var result listResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Equal(t, []string{"base", "transparent"}, result.Variants)
	require.Len(t, result.Targets, 5)
	require.Equal(t, listTarget{ID: "website", Path: "out/website", Enabled: false}, result.Targets[4])
}

func TestGenerateWritesEnabledTargets(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)
	root := t.TempDir()

	stdout, _, err := runCLI(t, "generate", "-c", path, "--out", root, "--no-progress")
	require.NoError(t, err)
	require.Equal(t, "Generated themes for 4 targets\n", stdout)

	for _, rel := range []string{
		"out/ghostty/subliminal-nightfall-base",
		"out/ghostty/subliminal-nightfall-transparent",
		"out/zed/subliminal-nightfall.json",
		"out/cursor/subliminal-nightfall-color-theme.json",
		"out/cursor/subliminal-nightfall-transparent.json",
		"out/neovim/subliminal-nightfall-base.lua",
		"out/neovim/subliminal-nightfall-transparent.lua",
	} {
		require.FileExists(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	require.NoDirExists(t, filepath.Join(root, "out", "website"))

	ghostty, err := os.ReadFile(filepath.Join(root, "out", "ghostty", "subliminal-nightfall-transparent"))
	require.NoError(t, err)
	require.Contains(t, string(ghostty), "background-blur-radius = 20\n")
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)
	root := t.TempDir()

	stdout, _, err := runCLI(t, "generate", "-c", path, "--out", root, "--dry-run", "--no-progress")
	require.NoError(t, err)
	require.Contains(t, stdout, "TARGET")
	require.Contains(t, stdout, filepath.Join(root, "out", "zed", "subliminal-nightfall.json"))
	require.True(t, strings.HasSuffix(stdout, "Generated themes for 4 targets\n"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestGenerateOnlyJSON(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)
	root := t.TempDir()

	stdout, _, err := runCLI(t, "generate", "-c", path, "--out", root, "--only", "zed,neovim", "--json")
	require.NoError(t, err)

	var result generateResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.NotEmpty(t, result.RunID)
	require.False(t, result.DryRun)
	require.Len(t, result.Targets, 2)
	require.Equal(t, "zed", result.Targets[0].ID)
	require.Equal(t, "neovim", result.Targets[1].ID)
	require.Len(t, result.Targets[1].Files, 2)
}

func TestGenerateOnlyRejectsDisabledAndUnknown(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	_, _, err := runCLI(t, "generate", "-c", path, "--out", t.TempDir(), "--only", "website")
	require.ErrorContains(t, err, "target website is not enabled")

	_, _, err = runCLI(t, "generate", "-c", path, "--out", t.TempDir(), "--only", "vim")
	var unknown *theme.UnknownTargetError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "vim", unknown.ID)
}

func TestRootRunsGenerate(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)
	root := t.TempDir()
	t.Setenv("COLORLOOM_OUTPUT_ROOT", root)

	stdout, _, err := runCLI(t, "--config", path, "--no-progress")
	require.NoError(t, err)
	require.Equal(t, "Generated themes for 4 targets\n", stdout)
	require.FileExists(t, filepath.Join(root, "out", "zed", "subliminal-nightfall.json"))
}

func TestUnknownTargetInDocument(t *testing.T) {
	doc := strings.Replace(themetest.SampleTOML, `id = "neovim"`, `id = "vim"`, 1)
	path := writeTheme(t, doc)

	_, _, err := runCLI(t, "validate", "-c", path)

	var unknown *theme.UnknownTargetError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "vim", unknown.ID)
}

func TestMissingThemeDocument(t *testing.T) {
	_, _, err := runCLI(t, "validate", "-c", filepath.Join(t.TempDir(), "missing.toml"))

	var readErr *theme.ReadError
	require.True(t, errors.As(err, &readErr))
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	_, _, err := runCLI(t, "validate", "-c", path, "--log-level", "loud")
	require.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestSettingsFileSelectsTheme(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)
	settings := filepath.Join(t.TempDir(), "colorloom.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("config: "+path+"\n"), 0o644))

	stdout, _, err := runCLI(t, "validate", "--settings", settings)
	require.NoError(t, err)
	require.Equal(t, "OK: 2 variants, 5 targets\n", stdout)
}

func TestPreviewVariant(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "preview", "-c", path, "--variant", "transparent")
	require.NoError(t, err)
	require.Contains(t, stdout, "Subliminal Nightfall (Transparent)")
	require.NotContains(t, stdout, "\x1b[")
}

func TestPreviewAllVariants(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "preview", "-c", path, "--no-color")
	require.NoError(t, err)
	require.Contains(t, stdout, "Subliminal Nightfall (Transparent)")
	require.Equal(t, 2, strings.Count(stdout, "Terminal"))
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, Version)
}

func TestGenerateProgressLinesStayWholeWithDebugLogs(t *testing.T) {
	for _, key := range []string{"NO_PROGRESS", "COLORLOOM_NO_PROGRESS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := writeTheme(t, themetest.SampleTOML)

	_, stderr, err := runCLI(t, "generate", "-c", path, "--out", t.TempDir(),
		"--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	progress := regexp.MustCompile(`^Rendering [a-z]+\.\.\. done \(.+\)$`)
	var steps, logs int
	for _, line := range strings.Split(strings.TrimRight(stderr, "\n"), "\n") {
		if progress.MatchString(line) {
			steps++
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "stderr line %q", line)
		logs++
	}
	require.Equal(t, 4, steps)
	require.Positive(t, logs)
}

func TestListAllShowsDisabledTargets(t *testing.T) {
	path := writeTheme(t, themetest.SampleTOML)

	stdout, _, err := runCLI(t, "list", "-c", path, "--all")
	require.NoError(t, err)
	require.Contains(t, stdout, "Variants: base, transparent\n")
	require.Regexp(t, `website\s+out/website\s+no`, stdout)
	require.Regexp(t, `zed\s+out/zed\s+yes`, stdout)
}

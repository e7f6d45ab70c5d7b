package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/moesim/internal/config"
)

func Test_Load_Returns_Defaults_When_No_Files_Exist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, sources, err := config.Load(dir, "", nil)
	require.NoError(t, err)

	require.Equal(t, config.Default(), cfg)
	require.Empty(t, sources.Global)
	require.Empty(t, sources.Project)
}

func Test_Load_Applies_Project_Config_Over_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.ConfigFileName), `{
		// overrides the default word range
		"word_max": 16,
		"prompt": "sim> ",
	}`)

	cfg, sources, err := config.Load(dir, "", nil)
	require.NoError(t, err)

	require.Equal(t, 16, cfg.WordMax)
	require.Equal(t, "sim> ", cfg.Prompt)
	require.Equal(t, filepath.Join(dir, config.ConfigFileName), sources.Project)
}

func Test_Load_Explicit_Config_Path_Must_Exist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := config.Load(dir, filepath.Join(dir, "missing.json"), nil)
	require.Error(t, err)
}

func Test_Load_Explicit_Config_Overrides_Project_Config(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.ConfigFileName), `{"word_max": 16}`)

	explicit := filepath.Join(dir, "custom.json")
	writeConfig(t, explicit, `{"word_max": 64}`)

	cfg, sources, err := config.Load(dir, explicit, nil)
	require.NoError(t, err)

	require.Equal(t, 64, cfg.WordMax)
	require.Equal(t, explicit, sources.Project)
}

func Test_Load_Rejects_Zero_WordMax(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.ConfigFileName), `{"word_max": 0}`)

	_, _, err := config.Load(dir, "", nil)
	require.Error(t, err)
}

func Test_Load_Reads_Global_Config_From_XDG_Config_Home(t *testing.T) {
	t.Parallel()

	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "moesim"), 0o755))
	writeConfig(t, filepath.Join(xdg, "moesim", "config.json"), `{"word_max": 32}`)

	dir := t.TempDir()

	cfg, sources, err := config.Load(dir, "", []string{"XDG_CONFIG_HOME=" + xdg})
	require.NoError(t, err)

	require.Equal(t, 32, cfg.WordMax)
	require.Equal(t, filepath.Join(xdg, "moesim", "config.json"), sources.Global)
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

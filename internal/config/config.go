// Package config loads moesim's configuration from a HuJSON (JSON with
// comments) file, following the same global-then-project precedence the
// rest of the pack's CLI tools use, with an explicit file replacing the
// project file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the default project-local config file name.
const ConfigFileName = ".moesim.json"

const defaultWordMax = 256

const defaultPrompt = "moesim> "

var errWordMaxNotPositive = errors.New("word_max must be positive")

// Config holds moesim's runtime configuration.
type Config struct {
	// Seed makes main-memory initialization deterministic. A nil Seed
	// means "use a randomly seeded source".
	Seed *int64 `json:"seed,omitempty"`

	// WordMax bounds initial main-memory word values to [0, WordMax).
	WordMax int `json:"word_max,omitempty"`

	// Prompt is the REPL prompt string.
	Prompt string `json:"prompt,omitempty"`

	// HistoryFile is where liner persists REPL command history. Empty
	// disables history.
	HistoryFile string `json:"history_file,omitempty"`
}

// Default returns the built-in configuration used when no file overrides
// it.
func Default() Config {
	return Config{
		WordMax: defaultWordMax,
		Prompt:  defaultPrompt,
	}
}

// Sources records which config files, if any, contributed to a loaded
// Config.
type Sources struct {
	Global  string
	Project string
}

// Load resolves configuration with the following precedence (highest
// wins): built-in defaults, global user config
// ($XDG_CONFIG_HOME/moesim/config.json or ~/.config/moesim/config.json),
// then project config (.moesim.json in workDir). A non-empty configPath
// names a file that is read in place of .moesim.json (it must exist) and
// is reported as Sources.Project; .moesim.json is then not read at all.
func Load(workDir, configPath string, env []string) (Config, Sources, error) {
	cfg := Default()

	var sources Sources

	globalCfg, globalPath, err := loadGlobal(env)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, configPath)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	if err := validate(cfg); err != nil {
		return Config{}, Sources{}, err
	}

	return cfg, sources, nil
}

func loadGlobal(env []string) (Config, string, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadProject(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		mustExist = true
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// merge treats a zero WordMax as unset, so an explicit non-positive
	// word_max has to be caught here.
	var present struct {
		WordMax *int `json:"word_max"`
	}
	if err := json.Unmarshal(standardized, &present); err == nil && present.WordMax != nil && *present.WordMax <= 0 {
		return Config{}, errWordMaxNotPositive
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Seed != nil {
		base.Seed = overlay.Seed
	}

	if overlay.WordMax != 0 {
		base.WordMax = overlay.WordMax
	}

	if overlay.Prompt != "" {
		base.Prompt = overlay.Prompt
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	return base
}

func validate(cfg Config) error {
	if cfg.WordMax <= 0 {
		return errWordMaxNotPositive
	}

	return nil
}

// globalConfigPath returns the global config file path, or "" if the home
// directory cannot be determined. env is checked for XDG_CONFIG_HOME
// before falling back to os.Getenv, so callers can test it hermetically.
func globalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "moesim", "config.json")
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moesim", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "moesim", "config.json")
}

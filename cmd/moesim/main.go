// moesim is an interactive menu for exploring a four-cache MOESI
// coherence simulator: pick a cache, pick read or write, name an address
// by its flower, and watch the resulting main-memory and cache state.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/moesim/internal/coherence"
	"github.com/calvinalkan/moesim/internal/config"
	"github.com/calvinalkan/moesim/internal/driver"
)

func main() {
	if err := run(os.Args, os.Environ()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, env []string) error {
	fs := flag.NewFlagSet("moesim", flag.ContinueOnError)

	seed := fs.Int64("seed", 0, "deterministic main-memory seed")
	configPath := fs.String("config", "", "path to a .moesim.json config file")
	scriptPath := fs.String("script", "", "read menu input from a file instead of the terminal")
	logCommands := fs.String("log-commands", "", "append every accepted request and its snapshot to this file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: moesim [--seed n] [--config path] [--script path] [--log-commands path]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	cfg, _, err := config.Load(workDir, *configPath, env)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if fs.Changed("seed") {
		cfg.Seed = seed
	}

	newSystem := func() *coherence.System {
		opts := coherence.SystemOptions{WordMax: cfg.WordMax}
		if cfg.Seed != nil {
			opts.Seed = *cfg.Seed
			opts.HasSeed = true
		}

		return coherence.NewSystem(opts)
	}

	var log driver.Logger = driver.NoopLogger{}

	if *logCommands != "" {
		log = newTranscriptLogger(*logCommands)
	}

	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()

		d := driver.New(newSystem(), driver.NewScriptPrompter(f), os.Stdout, log)
		d.SetPromptPrefix(cfg.Prompt)

		return d.Run(newSystem)
	}

	prompter := newLinerPrompter(expandHome(cfg.HistoryFile))
	defer prompter.Close()

	fmt.Printf("moesim - MOESI cache coherence simulator\n")
	fmt.Printf("cache keys: h=0 j=1 v=2 y=3 | operation: l=read e=write | s=quit | reset\n\n")

	d := driver.New(newSystem(), prompter, os.Stdout, log)
	d.SetPromptPrefix(cfg.Prompt)

	return d.Run(newSystem)
}

// expandHome expands a leading "~" to the user's home directory, the way
// shells do for paths that never pass through one. Returns path
// unchanged if it has no leading "~" or the home directory cannot be
// determined.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return home + strings.TrimPrefix(path, "~")
}

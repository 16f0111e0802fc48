// Copyright 2025 The CodeAssist Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the code completion and keyword highlighting server and
its CLI [DBG] application.

codeassist watches the word under the caret of one text buffer, offers the
candidates of a static catalog for it and writes the chosen one back. A word
preceded by "Name." is completed from the list for Name; anything else comes
from the default list. Known keywords are wrapped in <color=...> markup for a
styled copy of the text.

# Usage

Start the msgpack server with the catalog and keyword files from the config:

	codeassist

Use other data files, reload them when they change and enable debug logs:

	codeassist -catalog unity.yaml -keywords csharp.json -watch -d

Run in CLI mode for interactive testing:

	codeassist -c

# Data files

Catalog and keyword files are JSON, YAML, TOML or msgpack, chosen by file
extension. Relative paths are looked up in the working directory, next to the
executable (and its data/ directory) and in the config directory.

	{
	  "contextSuggestions": [{"key": "Debug", "values": ["Log", "LogWarning"]}],
	  "defaultSuggestions": ["void", "return", "Debug"]
	}

	{
	  "keywords": [{"key": "if", "color": "#569cd6"}],
	  "functions": [{"key": "Debug.Log", "color": "#dcdcaa"}]
	}

A file that fails to load is reported and replaced by empty data; the
program keeps running with nothing to suggest or highlight.

# Configuration

codeassist.toml is created with defaults in the user config directory when
missing:

	[data]
	catalog = "catalog.json"
	keywords = "keywords.json"
	watch = false
	debounce_ms = 150

	[editor]
	auto_pair = true
	snippets = false
	pairs = "({[\"'"

	[highlight]
	enabled = true
	markup = "color"

	[cli]
	prompt = "> "
	no_color = false

# Command Line Flags

	-config string
	    Path to a codeassist.toml to use instead of the default one
	-catalog string
	    Catalog file, overrides [data] catalog
	-keywords string
	    Keyword color file, overrides [data] keywords
	-watch
	    Reload data files when they change
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-version
	    Show current version

The IPC protocol is described in package server.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeassist/internal/cli"
	"github.com/bastiangx/codeassist/internal/logger"
	"github.com/bastiangx/codeassist/internal/utils"
	"github.com/bastiangx/codeassist/pkg/config"
	"github.com/bastiangx/codeassist/pkg/dictionary"
	"github.com/bastiangx/codeassist/pkg/editor"
	"github.com/bastiangx/codeassist/pkg/highlight"
	"github.com/bastiangx/codeassist/pkg/server"
	"github.com/bastiangx/codeassist/pkg/suggest"
)

const (
	Version = "0.3.0-beta"
	gh      = "https://github.com/bastiangx/codeassist"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow: flags, config, data files, then server or CLI.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configFile := flag.String("config", "", "Path to a custom codeassist.toml")
	catalogFile := flag.String("catalog", "", "Suggestion catalog file (json, yaml, toml, msgpack)")
	keywordsFile := flag.String("keywords", "", "Keyword color file (json, yaml, toml, msgpack)")
	watch := flag.Bool("watch", false, "Reload data files when they change")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetLevel(*debugMode)

	cfg, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	if *catalogFile != "" {
		cfg.Data.Catalog = *catalogFile
	}
	if *keywordsFile != "" {
		cfg.Data.Keywords = *keywordsFile
	}
	if *watch {
		cfg.Data.Watch = true
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	catalogPath := pathResolver.ResolveDataFile(cfg.Data.Catalog)
	keywordsPath := pathResolver.ResolveDataFile(cfg.Data.Keywords)

	catalog := loadCatalog(catalogPath)
	var styles *highlight.StyleMap
	if cfg.Highlight.Enabled {
		styles = loadKeywords(keywordsPath)
	}

	ed := editor.New(catalog, styles, cfg.EditorOptions())

	if cfg.Data.Watch {
		startWatcher(ctx, ed, catalogPath, keywordsPath, cfg)
	}

	// CLI is mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(ed, cfg.CLI.Prompt, cfg.CLI.NoColor)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(catalogPath, keywordsPath, ed.Stats())
	srv := server.NewServer(ed)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadCatalog reports a failed load loudly and continues with no suggestions.
func loadCatalog(path string) suggest.Resolver {
	catalog, err := dictionary.LoadCatalog(path)
	if err != nil {
		log.Errorf("Suggestions disabled: %v", err)
		return suggest.EmptyCatalog()
	}
	return catalog
}

// loadKeywords reports a failed load loudly and continues with no styling.
func loadKeywords(path string) *highlight.StyleMap {
	styles, err := dictionary.LoadKeywords(path)
	if err != nil {
		log.Errorf("Highlighting disabled: %v", err)
		return highlight.NewStyleMap(highlight.KeywordData{})
	}
	return styles
}

// startWatcher reloads a changed data file and hands the result to the
// editor loop. A file that no longer parses keeps the previous data.
func startWatcher(ctx context.Context, ed *editor.Editor, catalogPath, keywordsPath string, cfg *config.Config) {
	paths := []string{catalogPath}
	if cfg.Highlight.Enabled {
		paths = append(paths, keywordsPath)
	}
	absCatalog, _ := filepath.Abs(catalogPath)
	debounce := time.Duration(cfg.Data.DebounceMs) * time.Millisecond

	go func() {
		err := dictionary.Watch(ctx, paths, debounce, func(path string) {
			if path == absCatalog {
				catalog, err := dictionary.LoadCatalog(path)
				if err != nil {
					log.Errorf("Keeping previous catalog: %v", err)
					return
				}
				ed.Reload(catalog, nil)
				return
			}
			styles, err := dictionary.LoadKeywords(path)
			if err != nil {
				log.Errorf("Keeping previous keywords: %v", err)
				return
			}
			ed.Reload(nil, styles)
		})
		if err != nil {
			log.Errorf("File watcher stopped: %v", err)
		}
	}()
}

func printVersion() {
	vlog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ codeassist ] Context-aware completions and keyword colors")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(catalogPath, keywordsPath string, stats map[string]int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("codeassist %s (pid %d)", Version, os.Getpid())
	log.Info("catalog", "path", catalogPath, "contexts", stats["contexts"], "defaults", stats["defaultCandidates"])
	log.Info("keywords", "path", keywordsPath, "rules", stats["highlightRules"])
	log.Info("status: ready")
}

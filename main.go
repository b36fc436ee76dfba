// treedrive TUI - A terminal browser for rclone cloud remotes.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/treedrive-tui/internal/config"
	"github.com/jeranaias/treedrive-tui/internal/rclone"
	"github.com/jeranaias/treedrive-tui/internal/ui/browser"
	"github.com/jeranaias/treedrive-tui/internal/work"
)

// Build information, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (default ~/.treedrive/config.toml)")
	themeName := flag.String("theme", "", "color theme: dark or light")
	flag.Parse()

	if *showVersion {
		fmt.Printf("treedrive-tui %s (%s, built %s)\n", version, commit, date)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
		if err := cfg.Validate(); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	dispatcher := work.NewDispatcher()
	pool := work.NewPool(dispatcher)
	client := rclone.NewClient(cfg.Rclone.Binary, time.Duration(cfg.Rclone.TimeoutSecs)*time.Second)

	m := browser.New(cfg, client, pool)
	app := m.App()

	// Reload the remote list whenever rclone.conf changes on disk. The
	// callback fires on the watcher goroutine, so it posts through the
	// dispatcher instead of touching app state directly.
	if cfg.Watcher.Enabled {
		watcher, err := rclone.NewConfWatcher(
			rclone.DefaultConfPath(),
			time.Duration(cfg.Watcher.DebounceMs)*time.Millisecond,
			func() { dispatcher.Post(app.LoadRemotes) },
		)
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else if err := watcher.Watch(); err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "treedrive-tui: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

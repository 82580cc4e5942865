// Copyright 2026 The Uzi Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the uzi demo engine shell.

Uzi is a codec for the Universal Chess Interface text protocol. The shell
started here wires the codec to stdin/stdout so it can be plugged into any
UCI frontend: GUI commands are parsed into typed values, replies are
formatted back into canonical lines. Search itself is a stub backed by a
small opening book; the point of the binary is exercising the protocol, not
playing strong chess.

# Usage

Start the shell with default settings:

	uzi

Enable debug logging (stderr only; stdout stays protocol-clean):

	uzi -d

Record the session to a msgpack trace file for later analysis:

	uzi -trace session.bin

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run:

	[engine]
	name = "uzi 0.3.0"
	author = "The Uzi Authors"
	multipv = 1
	show_currline = false

	[shell]
	use_book = true
	trace_path = ""

# Command Line Flags

	-config string
	    Path to an alternative config.toml
	-d  Enable debug mode with detailed logging
	-trace string
	    Write a msgpack session trace to this path
	-no-book
	    Answer every "go" with the null move instead of book moves
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/uzichess/uzi/internal/book"
	"github.com/uzichess/uzi/internal/engine"
	"github.com/uzichess/uzi/internal/logger"
	"github.com/uzichess/uzi/internal/trace"
	"github.com/uzichess/uzi/pkg/config"
)

const (
	Version = "0.3.0"
	AppName = "uzi"
	gh      = "https://github.com/uzichess/uzi"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the shell.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to an alternative config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	tracePath := flag.String("trace", "", "Write a msgpack session trace to this path")
	noBook := flag.Bool("no-book", false, "Disable the opening book")

	flag.Parse()

	if *showVersion {
		vlog := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ uzi ] Speaks UCI so your engine doesn't have to!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
		}
	}

	var cfg *config.Config
	if path != "" {
		var err error
		cfg, err = config.InitConfig(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Debugf("Using config file: (%s)", path)
	} else {
		cfg = config.DefaultConfig()
	}

	if *noBook {
		cfg.Shell.UseBook = false
	}
	if *tracePath != "" {
		cfg.Shell.TracePath = *tracePath
	}

	var bk *book.Book
	if cfg.Shell.UseBook {
		bk = book.New()
		log.Debugf("Opening book loaded: %d positions", bk.Len())
	}

	var tr *trace.Writer
	if cfg.Shell.TracePath != "" {
		var err error
		tr, err = trace.Open(cfg.Shell.TracePath)
		if err != nil {
			log.Fatalf("Failed to open trace file: %v", err)
		}
		defer tr.Close()
		log.Debugf("Tracing session to: %s", cfg.Shell.TracePath)
	}

	eng := engine.New(cfg, os.Stdin, os.Stdout, bk, tr)
	if err := eng.Run(); err != nil {
		log.Fatalf("Shell error: %v", err)
	}
}

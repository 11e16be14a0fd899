/*
Package main implements the pinyin candidate server and CLI application.

Pinserve resolves romanized pinyin syllables, with or without tone marks,
to logographic character candidates ordered by usage frequency. It can
operate as a msgpack IPC server for integration with input-method
frontends, or as a CLI application for testing and debugging.

Character data is loaded once at startup from a JSONL file and indexed
under both toned and tone-free keys; after that every query is a plain
map hit, so the index can serve concurrent readers without locking.

# Usage

Start the server with default settings:

	pinserve

Use a custom data file and enable debug mode:

	pinserve -data /path/to/chars.jsonl -d

Run in CLI mode for interactive testing:

	pinserve -c -limit 10 -tone

Print the fixed demo lookups and exit:

	pinserve -demo

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, data file location, and CLI defaults:

	[server]
	max_limit = 64
	max_syllable = 24

	[dict]
	path = "data/char_common_base.jsonl"

	[cli]
	default_limit = 10
	tone_sensitive = false

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. See the server
package doc for message formats.

	{"id": "req1", "action": "lookup", "s": "zhong", "l": 10}
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

	"github.com/pinserve/pinserve/internal/cli"
	"github.com/pinserve/pinserve/pkg/charset"
	"github.com/pinserve/pinserve/pkg/config"
	"github.com/pinserve/pinserve/pkg/index"
	"github.com/pinserve/pinserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "pinserve"
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

// main wires config, data loading and index construction together and
// hands the built index to the CLI or the IPC server.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Path to the character data file (JSONL)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	demoMode := flag.Bool("demo", false, "Print demo lookups and exit")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of candidates to show")
	toneSensitive := flag.Bool("tone", defaults.CLI.ToneSensitive, "Match tone marks verbatim instead of stripping them")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Config loaded from: (%s)", activePath)

	path := appConfig.Dict.Path
	if *dataPath != "" {
		path = *dataPath
	}

	records, err := charset.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load character data: %v", err)
	}

	idx, err := index.Build(records)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	stats := idx.Stats()
	log.Debugf("Indexed %d characters (%d toned keys, %d tone-free keys)",
		stats["characters"], stats["tonedKeys"], stats["toneFreeKeys"])

	if *demoMode {
		log.SetLevel(log.InfoLevel)
		cli.RunDemo(idx, *limit)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(idx, *toneSensitive, *limit, appConfig.Server.MaxSyllable)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(idx, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[ %s ] pinyin-to-character candidate lookups", AppName)
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/eventgate/internal/audio"
	"chosenoffset.com/eventgate/internal/config"
	"chosenoffset.com/eventgate/internal/tui"
)

func main() {
	configPath := flag.String("config", "eventgate.json", "Path to the JSON config file")
	noSound := flag.Bool("no-sound", false, "Disable the crossing chime")
	logPath := flag.String("log", "eventgate-tui.log", "Log file; the terminal is busy drawing")
	flag.Parse()

	// Setup errors go to stderr; logging moves to the file once the screen
	// owns the terminal.
	cfg, logFile, err := setup(*configPath, *logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	log.SetOutput(logFile)

	var chime tui.Notifier
	if cfg.Terminal.Chime && !*noSound {
		c := audio.NewChime(cfg.Terminal.ChimeHz, time.Duration(cfg.Terminal.ChimeMillis)*time.Millisecond)
		if err := c.Init(); err != nil {
			log.Printf("Warning: %v, running silent", err)
		}
		defer c.Close()
		chime = c
	}

	app, err := tui.New(screen, cfg, chime)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create gate: %v", err)
	}
	app.Run()
}

// setup loads the config and then opens the log file for appending.
func setup(configPath, logPath string) (*config.Config, *os.File, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return cfg, logFile, nil
}

package main

import (
	"flag"
	"log"

	"chosenoffset.com/eventgate/internal/config"
	ebitenrender "chosenoffset.com/eventgate/internal/render/ebiten"
	"chosenoffset.com/eventgate/internal/snapshot"
	"chosenoffset.com/eventgate/internal/visualizer"
)

func main() {
	configPath := flag.String("config", "eventgate.json", "Path to the JSON config file")
	snapshotPath := flag.String("snapshot", "", "Write a PNG of the initial scene to this path and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	vis, err := visualizer.New(cfg, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to create gate: %v", err)
	}

	if *snapshotPath != "" {
		if err := snapshot.Save(*snapshotPath, vis.Scene()); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Snapshot written to %s", *snapshotPath)
		return
	}

	width, height := vis.Layout(0, 0)
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(false)

	log.Printf("Starting with gate %s", vis.Gate)
	if err := engine.RunGame(vis); err != nil {
		log.Fatal(err)
	}
}

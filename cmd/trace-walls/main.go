package main

import (
	"flag"
	"log"
	"math"

	"parking-sim/internal/config"
	"parking-sim/internal/logging"
	"parking-sim/internal/save"
	"parking-sim/internal/vision"
)

func main() {
	input := flag.String("in", "assets/lot.png", "image of the lot to trace")
	configPath := flag.String("config", "", "path to a JSON configuration file")
	slot := flag.Int("slot", 1, "save slot to write")
	force := flag.Bool("force", false, "overwrite an occupied slot")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(cfg.Logging.Level)

	walls, err := vision.TraceWalls(*input, vision.DefaultOptions(cfg.Canvas.Width, cfg.Canvas.Height))
	if err != nil {
		logger.Error("trace failed", err, "input", *input)
		log.Fatal(err)
	}
	logger.Info("traced walls", "input", *input, "walls", len(walls))

	// Car at the spawn pose; the traced walls form the whole undo history.
	snap := save.Snapshot{
		Car: save.CarState{
			X:     cfg.Canvas.Width / 2,
			Y:     cfg.Canvas.Height / 2,
			Angle: math.Pi,
		},
		Walls:       walls,
		WallHistory: walls,
	}

	store := save.NewStore(cfg.Save.Dir, cfg.Save.Slots, logger)
	if err := store.Save(*slot, snap, *force); err != nil {
		logger.Error("save failed", err, "slot", *slot)
		log.Fatal(err)
	}
	logger.Info("saved traced lot", "slot", *slot, "path", store.Path(*slot))
}

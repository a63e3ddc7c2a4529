package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"parking-sim/internal/config"
	"parking-sim/internal/logging"
	"parking-sim/internal/save"
	"parking-sim/internal/sim"
)

// Side panel and window layout
const (
	PanelWidth   = 200
	SampleRate   = 44100
	StartupSlot  = 1
	PreviewSize  = 200
	MessageInset = 10
)

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	mute := flag.Bool("mute", false, "disable the collision chime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(cfg.Logging.Level)
	logger.Info("starting parking simulator",
		"config_path", *configPath,
		"canvas_width", cfg.Canvas.Width,
		"canvas_height", cfg.Canvas.Height,
		"speed_factor", cfg.Physics.SpeedFactor,
		"frame_independent", cfg.Physics.FrameIndependent,
	)

	store := save.NewStore(cfg.Save.Dir, cfg.Save.Slots, logger)
	ctl := sim.NewController(sim.Options{
		Params:      cfg.CarParams(),
		SpeedFactor: cfg.Physics.SpeedFactor,
		Bounds:      cfg.Bounds(),
		RandomWalls: cfg.Walls.RandomCount,
		WallPadding: cfg.Walls.Padding,
		Store:       store,
		Logger:      logger,
	})
	if ok, _ := store.Occupied(StartupSlot); ok {
		if err := ctl.LoadSlot(StartupSlot); err != nil {
			logger.Warn("startup slot not loaded", "slot", StartupSlot, "error", err.Error())
		}
	}

	var chime *Chime
	if !*mute {
		chime = NewChime(audio.NewContext(SampleRate))
	}

	game := NewGame(ctl, store, chime, logger)

	width, height := int(cfg.Canvas.Width)+PanelWidth, int(cfg.Canvas.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Parking Practice")

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop stopped", err)
		log.Fatal(err)
	}
}

// tickSeconds is the simulated time of one Update call.
func tickSeconds() float64 {
	return 1.0 / float64(ebiten.TPS())
}

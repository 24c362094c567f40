package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/application/game"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene/playing"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	arenaFlag := flag.String("arena", "demo", "Arena to load from arenas/")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "With -replay: run without a window and verify the checksum")
	verbose := flag.Bool("verbose", false, "Log state transitions")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var data *replay.ReplayData
	arena := *arenaFlag
	if *replayFlag != "" {
		var err error
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.WithError(err).Fatal("failed to load replay")
		}
		if data.Arena != "" {
			arena = data.Arena
		}
	}

	cfg, err := loadConfig(*configDir, arena)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if *headless {
		if data == nil {
			log.Fatal("-headless requires -replay")
		}
		res, err := runHeadless(cfg, data, log)
		if err != nil {
			log.WithError(err).Fatal("replay failed")
		}
		if !res.Match() {
			os.Exit(1)
		}
		return
	}

	scn, err := playing.New(cfg, playing.Options{
		RecordPath: *recordFlag,
		Replay:     data,
		Logger:     log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create scene")
	}

	display := cfg.Controller.Display
	g := game.New(scn, display, log)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Locomotion - " + cfg.Arena.Name)
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game exited")
	}
}

// loadConfig reads from dir when set, else from the embedded configs
func loadConfig(dir, arena string) (*config.GameConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, err
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	return loader.LoadAll(arena)
}

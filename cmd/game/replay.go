package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/sim"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames   int
	Steps    int
	Checksum string
	Expected string // Empty when the recording carries no checksum
}

// Match reports whether the run reproduced the recorded trajectory
func (r ReplayResult) Match() bool {
	return r.Expected == "" || r.Expected == r.Checksum
}

// runHeadless plays every recorded frame through a fresh session
func runHeadless(cfg *config.GameConfig, data *replay.ReplayData, log logrus.FieldLogger) (ReplayResult, error) {
	if data.Arena != "" && data.Arena != cfg.Arena.ID {
		return ReplayResult{}, fmt.Errorf("replay was recorded in arena %q, loaded %q", data.Arena, cfg.Arena.ID)
	}

	dt := cfg.Controller.FrameDelta()
	if data.FrameRate > 0 {
		dt = 1.0 / float64(data.FrameRate)
	}

	s, err := sim.New(cfg, sim.WithReplay(replay.NewReplayer(*data)), sim.WithLogger(log))
	if err != nil {
		return ReplayResult{}, err
	}
	defer func() { _ = s.Close() }()

	for {
		err := s.Advance(dt)
		if errors.Is(err, sim.ErrReplayFinished) {
			break
		}
		if err != nil {
			return ReplayResult{}, err
		}
	}

	res := ReplayResult{
		Frames:   s.Frames(),
		Steps:    s.Steps(),
		Checksum: s.Checksum(),
		Expected: data.Checksum,
	}

	entry := log.WithFields(logrus.Fields{
		"frames":   res.Frames,
		"steps":    res.Steps,
		"checksum": res.Checksum,
	})
	if !res.Match() {
		entry.WithField("expected", res.Expected).Error("replay diverged")
	} else {
		entry.Info("replay verified")
	}
	return res, nil
}

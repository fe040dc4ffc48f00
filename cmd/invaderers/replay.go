package main

import (
	"fmt"
	"io"

	"github.com/younwookim/invaderers/internal/application/replay"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// runReplay plays a recording through a headless game and writes the result to w
func runReplay(cfg *config.GameConfig, path string, w io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Version != replay.Version {
		return fmt.Errorf("unsupported replay version %q", data.Version)
	}

	result := replay.Simulate(cfg, *data)
	return printResult(w, data, result)
}

func printResult(w io.Writer, data *replay.ReplayData, r replay.Result) error {
	_, err := fmt.Fprintf(w,
		"seed: %d\nframes: %d/%d\nscore: %d\ntime: %d\nlives: %d\nboss: %d\noutcome: %s\n",
		data.Seed, r.Frames, len(data.Frames), r.Score, r.Time, r.Lives, r.BossLives, r.Outcome())
	return err
}

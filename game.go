package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

// frame is one rendered generation travelling from the simulation to the display
type frame struct {
	text       string
	generation int
}

// summary describes where a run stopped
type summary struct {
	Generation int
	Steps      int
	Living     int
	Restarts   int
	Reason     string
}

// runGame seeds the grid with sc and plays it until a stop condition, an
// interrupt or a render failure. The grid is only touched by the simulation
// goroutine; the display goroutine sees rendered text.
func runGame(
	ctx context.Context,
	g *model.Grid,
	sc scene,
	cfg utils.Config,
	rng *rand.Rand,
	renderer *model.TerminalRenderer,
) (summary, error) {
	var (
		result summary
		frames = make(chan frame)
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(frames)
		result = simulate(ctx, egCtx, g, sc, cfg, rng, frames)
		return nil
	})

	eg.Go(func() error {
		for f := range frames {
			if err := renderer.Display(f.text); err != nil {
				return errors.Wrapf(err, "[runGame] generation %d", f.generation)
			}
		}
		return nil
	})

	err := eg.Wait()
	return result, err
}

// simulate owns the grid. parent tells a deadline apart from an interrupt;
// ctx is also cancelled when the display fails.
func simulate(
	parent, ctx context.Context,
	g *model.Grid,
	sc scene,
	cfg utils.Config,
	rng *rand.Rand,
	frames chan<- frame,
) (result summary) {
	var (
		history = model.NewHistory(cfg.StagnationWindow)
		stats   = utils.NewStats()
		tick    <-chan time.Time

		lastFrameTime = time.Now()
	)

	if cfg.FrameRate > 0 {
		ticker := time.NewTicker(cfg.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	stopped := func() summary {
		result.Reason = reasonInterrupted
		if errors.Is(parent.Err(), context.DeadlineExceeded) {
			result.Reason = reasonTimeUp
		}
		return result
	}

	sc.seed(g, rng)

	for {
		livingCells := g.CountLivingCells()
		stagnant := history.Repeats(g)
		history.Record(g)

		frameStart := time.Now()
		stats.Update(g.Generation(), livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		result.Generation = g.Generation()
		result.Living = livingCells

		select {
		case frames <- frame{
			text:       formatFrame(sc.title, g, livingCells, stats),
			generation: g.Generation(),
		}:
		case <-ctx.Done():
			return stopped()
		}

		restarted := false
		if stop, reason := checkStopConditions(livingCells, stagnant, result.Steps, cfg); stop {
			if !cfg.AutoRestart || !restartable(reason) {
				result.Reason = reason
				return result
			}
			sc.seed(g, rng)
			history.Reset()
			result.Restarts++
			restarted = true
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				return stopped()
			}
		} else if ctx.Err() != nil {
			return stopped()
		}

		if !restarted {
			g.NextGeneration()
			result.Steps++
		}
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/patterns"
	"github.com/sheikhrachel/termlife/utils"
)

const demoDensity = 0.25

// demoScenes lists the demo in playing order. Single patterns sit near the
// middle of the board.
func demoScenes(g *model.Grid) []scene {
	x, y := g.Width()/2-5, g.Height()/2-5
	return []scene{
		stampScene("Glider", placement{patterns.Glider(), x, y}),
		stampScene("Blinker", placement{patterns.Blinker(), x, y}),
		stampScene("Beacon", placement{patterns.Beacon(), x, y}),
		stampScene("Toad", placement{patterns.Toad(), x, y}),
		multipleScene(),
		randomScene(demoDensity),
	}
}

// runDemo plays every demo scene for cfg.DemoDuration, moving on early when a
// scene dies out. An interrupt ends the whole demo.
func runDemo(
	ctx context.Context,
	g *model.Grid,
	cfg utils.Config,
	rng *rand.Rand,
	renderer *model.TerminalRenderer,
	out io.Writer,
) ([]summary, error) {
	cfg.StopOnExtinction = true
	cfg.AutoRestart = false
	cfg.MaxGenerations = 0

	var results []summary
	for _, sc := range demoScenes(g) {
		fmt.Fprintf(out, "\n=== Demonstrating: %s ===\n", sc.title)

		sceneCtx, cancel := context.WithTimeout(ctx, cfg.DemoDuration)
		result, err := runGame(sceneCtx, g, sc, cfg, rng, renderer)
		cancel()
		if err != nil {
			return results, err
		}
		results = append(results, result)
		printSummary(out, sc.title, result)

		if ctx.Err() != nil {
			break
		}
	}
	return results, nil
}

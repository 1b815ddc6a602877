package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/patterns"
	"github.com/sheikhrachel/termlife/utils"
)

// Reasons a run ends
const (
	reasonExtinct        = "all cells died"
	reasonStagnant       = "stagnation detected"
	reasonMaxGenerations = "generation limit reached"
	reasonInterrupted    = "interrupted"
	reasonTimeUp         = "time limit reached"
)

const (
	gunMinWidth  = 40
	gunMinHeight = 20
	menuDensity  = 0.3
)

// scene is a named way to seed the grid. seed may be called again on restart.
type scene struct {
	title string
	seed  func(g *model.Grid, rng *rand.Rand)
}

// placement is a pattern stamped at a fixed origin
type placement struct {
	pattern patterns.Pattern
	x, y    int
}

func stampScene(title string, placements ...placement) scene {
	return scene{
		title: title,
		seed: func(g *model.Grid, _ *rand.Rand) {
			g.Clear()
			for _, p := range placements {
				g.Stamp(p.pattern, p.x, p.y)
			}
		},
	}
}

func randomScene(density float64) scene {
	return scene{
		title: fmt.Sprintf("Random (density %.2f)", model.ClampDensity(density)),
		seed: func(g *model.Grid, rng *rand.Rand) {
			g.Randomize(density, rng)
		},
	}
}

// multipleScene layers one of each small pattern across the board
func multipleScene() scene {
	return stampScene("Multiple Patterns",
		placement{patterns.Glider(), 2, 2},
		placement{patterns.Blinker(), 15, 8},
		placement{patterns.Block(), 25, 5},
		placement{patterns.Beacon(), 35, 10},
		placement{patterns.Toad(), 10, 15},
	)
}

// gunScene stamps the glider gun when it fits and falls back to a random fill
func gunScene(g *model.Grid) scene {
	if g.Width() < gunMinWidth || g.Height() < gunMinHeight {
		s := randomScene(menuDensity)
		s.title = "Random (grid too small for glider gun)"
		return s
	}
	return stampScene("Glider Gun", placement{patterns.GliderGun(), 2, 5})
}

// sceneTitle turns a catalog name like glider_gun into "Glider Gun"
func sceneTitle(name string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// sceneFromConfig builds the starting scene named by cfg.Scenario
func sceneFromConfig(cfg utils.Config, g *model.Grid) (scene, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Scenario))
	switch name {
	case utils.ScenarioRandom:
		return randomScene(cfg.RandomDensity), nil
	case utils.ScenarioMultiple:
		return multipleScene(), nil
	case utils.ScenarioGun:
		return gunScene(g), nil
	}

	p, err := patterns.Lookup(name)
	if err != nil {
		return scene{}, err
	}
	x, y := cfg.OriginX, cfg.OriginY
	w, h := p.Bounds()
	if x < 0 {
		x = (g.Width() - w) / 2
	}
	if y < 0 {
		y = (g.Height() - h) / 2
	}
	return stampScene(sceneTitle(name), placement{p, x, y}), nil
}

// checkStopConditions decides whether the run ends after the current frame.
// steps counts every generation advanced since the run began, across restarts.
func checkStopConditions(livingCells int, stagnant bool, steps int, cfg utils.Config) (bool, string) {
	if cfg.MaxGenerations > 0 && steps >= cfg.MaxGenerations {
		return true, reasonMaxGenerations
	}
	if livingCells == 0 && cfg.StopOnExtinction {
		return true, reasonExtinct
	}
	if stagnant && cfg.StopOnStagnation {
		return true, reasonStagnant
	}
	return false, ""
}

// restartable reports whether auto restart may reseed after this stop reason
func restartable(reason string) bool {
	return reason == reasonExtinct || reason == reasonStagnant
}

// formatFrame renders the header, the board and the status lines for one frame
func formatFrame(title string, g *model.Grid, livingCells int, stats *utils.Stats) string {
	var sb strings.Builder
	density := float64(livingCells) / float64(g.Width()*g.Height()) * 100

	fmt.Fprintf(&sb, "=== %s ===\n", title)
	sb.WriteString(g.Render())
	sb.WriteByte('\n')

	boundingInfo := "none"
	if b, ok := g.BoundingBox(); ok {
		boundingInfo = fmt.Sprintf("%d cells", b.Area())
	}
	fmt.Fprintf(&sb, "Living cells: %d | Density: %.1f%% | Bounding box: %s\n",
		livingCells, density, boundingInfo)
	fmt.Fprintf(&sb, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	sb.WriteString("Press Ctrl+C to stop\n")

	return sb.String()
}

// printSummary reports how a run ended
func printSummary(out io.Writer, title string, s summary) {
	fmt.Fprintf(out, "\n%s: %s at generation %d\n", title, s.Reason, s.Generation)
	fmt.Fprintf(out, "Final living cells: %d", s.Living)
	if s.Restarts > 0 {
		fmt.Fprintf(out, " | Restarts: %d", s.Restarts)
	}
	fmt.Fprintln(out)
}

// newRNG seeds a PCG source, using the clock when seed is 0
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

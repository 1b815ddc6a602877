package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/patterns"
	"github.com/sheikhrachel/termlife/utils"
)

type bufferSink struct {
	bytes.Buffer
	flushes int
}

func (b *bufferSink) Flush() error {
	b.flushes++
	return nil
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, errors.New("terminal closed") }
func (failingSink) Flush() error              { return nil }

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.FrameRate = 0
	cfg.Seed = 1
	return cfg
}

func mustGrid(t *testing.T, w, h int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustScene(t *testing.T, cfg utils.Config, g *model.Grid) scene {
	t.Helper()
	sc, err := sceneFromConfig(cfg, g)
	if err != nil {
		t.Fatalf("sceneFromConfig(%q): %v", cfg.Scenario, err)
	}
	return sc
}

func play(t *testing.T, ctx context.Context, cfg utils.Config, sc scene) (summary, *bufferSink) {
	t.Helper()
	sink := &bufferSink{}
	g := mustGrid(t, cfg.Width, cfg.Height)
	result, err := runGame(ctx, g, sc, cfg, newRNG(cfg.Seed), model.NewSinkRenderer(sink))
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	return result, sink
}

func TestRunGameGenerationLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "block"
	cfg.OriginX, cfg.OriginY = 2, 2
	cfg.MaxGenerations = 3

	result, sink := play(t, context.Background(), cfg, mustScene(t, cfg, mustGrid(t, 10, 10)))
	if result.Reason != reasonMaxGenerations || result.Generation != 3 || result.Steps != 3 {
		t.Fatalf("result = %+v", result)
	}
	if result.Living != 4 {
		t.Fatalf("living = %d, want 4", result.Living)
	}
	if sink.flushes != 4 {
		t.Fatalf("rendered %d frames, want 4", sink.flushes)
	}
	out := sink.String()
	for _, want := range []string{"=== Block ===", "Generation: 0", "Generation: 3", "Living cells: 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRunGameExtinction(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = utils.ScenarioRandom
	cfg.RandomDensity = 0

	result, sink := play(t, context.Background(), cfg, mustScene(t, cfg, mustGrid(t, 10, 10)))
	if result.Reason != reasonExtinct || result.Generation != 0 {
		t.Fatalf("result = %+v", result)
	}
	if sink.flushes != 1 {
		t.Fatalf("rendered %d frames, want 1", sink.flushes)
	}

	pair := stampScene("Pair", placement{patterns.Pattern{{0, 0}, {1, 0}}, 3, 3})
	result, _ = play(t, context.Background(), testConfig(), pair)
	if result.Reason != reasonExtinct || result.Generation != 1 {
		t.Fatalf("pair result = %+v", result)
	}
}

func TestRunGameStagnation(t *testing.T) {
	tests := []struct {
		scenario string
		window   int
		wantGen  int
	}{
		{"block", 2, 1},
		{"blinker", 4, 2},
		{"beacon", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			cfg := testConfig()
			cfg.Scenario = tt.scenario
			cfg.OriginX, cfg.OriginY = 2, 2
			cfg.StopOnStagnation = true
			cfg.StagnationWindow = tt.window

			result, _ := play(t, context.Background(), cfg, mustScene(t, cfg, mustGrid(t, 10, 10)))
			if result.Reason != reasonStagnant || result.Generation != tt.wantGen {
				t.Fatalf("result = %+v, want stagnation at generation %d", result, tt.wantGen)
			}
		})
	}
}

func TestRunGameAutoRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "blinker"
	cfg.OriginX, cfg.OriginY = 2, 2
	cfg.StopOnStagnation = true
	cfg.AutoRestart = true
	cfg.MaxGenerations = 6

	result, _ := play(t, context.Background(), cfg, mustScene(t, cfg, mustGrid(t, 10, 10)))
	if result.Reason != reasonMaxGenerations || result.Steps != 6 || result.Restarts != 2 {
		t.Fatalf("result = %+v", result)
	}
}

func TestRunGameInterrupt(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "block"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, _ := play(t, ctx, cfg, mustScene(t, cfg, mustGrid(t, 10, 10)))
	if result.Reason != reasonInterrupted {
		t.Fatalf("reason = %q, want %q", result.Reason, reasonInterrupted)
	}
}

func TestRunGameTimeLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "glider"
	cfg.Width, cfg.Height = 40, 40
	cfg.FrameRate = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	result, _ := play(t, ctx, cfg, mustScene(t, cfg, mustGrid(t, 40, 40)))
	if result.Reason != reasonTimeUp {
		t.Fatalf("reason = %q, want %q", result.Reason, reasonTimeUp)
	}
}

func TestRunGameRenderFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Scenario = "block"
	g := mustGrid(t, 10, 10)

	_, err := runGame(context.Background(), g, mustScene(t, cfg, g), cfg, newRNG(1), model.NewSinkRenderer(failingSink{}))
	if err == nil || !strings.Contains(err.Error(), "terminal closed") {
		t.Fatalf("err = %v, want render failure", err)
	}
}

func TestSceneFromConfig(t *testing.T) {
	big := mustGrid(t, 40, 20)
	cfg := testConfig()

	cfg.Scenario = utils.ScenarioMultiple
	mustScene(t, cfg, big).seed(big, newRNG(1))
	if n := big.CountLivingCells(); n != 24 {
		t.Fatalf("multiple: living = %d, want 24", n)
	}

	cfg.Scenario = utils.ScenarioGun
	sc := mustScene(t, cfg, big)
	sc.seed(big, newRNG(1))
	if n := big.CountLivingCells(); n != len(patterns.GliderGun()) || sc.title != "Glider Gun" {
		t.Fatalf("gun: living = %d, title %q", n, sc.title)
	}

	small := mustGrid(t, 30, 15)
	if sc := mustScene(t, cfg, small); !strings.Contains(sc.title, "too small") {
		t.Fatalf("gun on small grid: title %q", sc.title)
	}

	cfg.Scenario = utils.ScenarioRandom
	cfg.RandomDensity = 1
	mustScene(t, cfg, big).seed(big, newRNG(1))
	if n := big.CountLivingCells(); n != 40*20 {
		t.Fatalf("random density 1: living = %d", n)
	}

	g := mustGrid(t, 10, 10)
	cfg.Scenario = "Block"
	cfg.OriginX, cfg.OriginY = -1, -1
	sc = mustScene(t, cfg, g)
	sc.seed(g, newRNG(1))
	want := []patterns.Point{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}}
	if got := g.LivingCells(); len(got) != 4 || got[0] != want[0] || got[3] != want[3] {
		t.Fatalf("centred block = %v, want %v", got, want)
	}

	cfg.Scenario = "spaceship"
	if _, err := sceneFromConfig(cfg, g); !errors.Is(err, patterns.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestSeedClearsPreviousScene(t *testing.T) {
	g := mustGrid(t, 10, 10)
	g.Stamp(patterns.Block(), 0, 0)
	g.NextGeneration()
	stampScene("Blinker", placement{patterns.Blinker(), 5, 5}).seed(g, newRNG(1))
	if g.CountLivingCells() != 3 || g.Generation() != 0 {
		t.Fatalf("living=%d generation=%d after reseed", g.CountLivingCells(), g.Generation())
	}
}

func TestCheckStopConditions(t *testing.T) {
	cfg := testConfig()
	cfg.MaxGenerations = 10
	cfg.StopOnStagnation = true

	tests := []struct {
		living   int
		stagnant bool
		steps    int
		stop     bool
		reason   string
	}{
		{5, false, 3, false, ""},
		{0, false, 3, true, reasonExtinct},
		{5, true, 3, true, reasonStagnant},
		{0, true, 10, true, reasonMaxGenerations},
	}
	for _, tt := range tests {
		stop, reason := checkStopConditions(tt.living, tt.stagnant, tt.steps, cfg)
		if stop != tt.stop || reason != tt.reason {
			t.Fatalf("checkStopConditions(%d, %v, %d) = %v %q, want %v %q",
				tt.living, tt.stagnant, tt.steps, stop, reason, tt.stop, tt.reason)
		}
	}

	cfg.StopOnExtinction = false
	cfg.StopOnStagnation = false
	cfg.MaxGenerations = 0
	if stop, _ := checkStopConditions(0, true, 1000, cfg); stop {
		t.Fatal("stopped with every stop condition disabled")
	}
}

func TestSceneTitle(t *testing.T) {
	for in, want := range map[string]string{
		"glider_gun": "Glider Gun",
		"toad":       "Toad",
		"glider-gun": "Glider Gun",
	} {
		if got := sceneTitle(in); got != want {
			t.Fatalf("sceneTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, "Glider", summary{Generation: 7, Living: 5, Restarts: 1, Reason: reasonInterrupted})
	want := "\nGlider: interrupted at generation 7\nFinal living cells: 5 | Restarts: 1\n"
	if out.String() != want {
		t.Fatalf("printSummary = %q, want %q", out.String(), want)
	}
}

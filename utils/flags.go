package utils

import "flag"

// Bind attaches the configuration to the provided FlagSet. Values already in
// the Config become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 fits the terminal)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (0 fits the terminal)")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "random, multiple, gun or a pattern name")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability a cell starts alive in the random scenario")
	fs.IntVar(&c.OriginX, "x", c.OriginX, "pattern origin column (negative centres)")
	fs.IntVar(&c.OriginY, "y", c.OriginY, "pattern origin row (negative centres)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses the clock)")
	fs.BoolVar(&c.StopOnExtinction, "stop-extinct", c.StopOnExtinction, "stop when every cell is dead")
	fs.BoolVar(&c.StopOnStagnation, "stop-stagnant", c.StopOnStagnation, "stop on still lifes and short cycles")
	fs.IntVar(&c.StagnationWindow, "stagnation-window", c.StagnationWindow, "generations remembered for cycle detection")
	fs.BoolVar(&c.AutoRestart, "restart", c.AutoRestart, "reseed instead of stopping on extinction or stagnation")
	fs.BoolVar(&c.Demo, "demo", c.Demo, "play every scenario in turn")
	fs.DurationVar(&c.DemoDuration, "demo-duration", c.DemoDuration, "time spent on each demo scene")
	fs.BoolVar(&c.Interactive, "menu", c.Interactive, "choose the starting scenario from a menu")
}

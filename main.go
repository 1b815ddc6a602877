package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

// newFlagSet binds every flag, including -config, onto cfg
func newFlagSet(cfg *utils.Config, configPath *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("termlife", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(configPath, "config", *configPath, "YAML or JSON config file")
	cfg.Bind(fs)
	return fs
}

// parseConfig loads the optional config file named by -config and lets the
// remaining flags override it.
func parseConfig(args []string, output io.Writer) (utils.Config, error) {
	var (
		configPath string
		scratch    = utils.DefaultConfig()
	)
	if err := newFlagSet(&scratch, &configPath, output).Parse(args); err != nil {
		return scratch, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config := utils.DefaultConfig()
	if configPath != "" {
		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if err := newFlagSet(&config, &configPath, io.Discard).Parse(args); err != nil {
		return config, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	config, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	if config.Interactive && !config.Demo {
		promptScenario(stdin, stdout, &config)
	}
	config.ResolveSize(int(os.Stdout.Fd()))

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return err
	}

	var (
		rng      = newRNG(config.Seed)
		renderer = model.NewTerminalRenderer(stdout)
	)

	if config.Demo {
		fmt.Fprintln(stdout, "Conway's Game of Life - Automatic Demo")
		_, err = runDemo(ctx, grid, config, rng, renderer, stdout)
		if err == nil {
			fmt.Fprintln(stdout, "Demo completed!")
		}
		return err
	}

	sc, err := sceneFromConfig(config, grid)
	if err != nil {
		return err
	}
	result, err := runGame(ctx, grid, sc, config, rng, renderer)
	if err != nil {
		return err
	}
	printSummary(stdout, sc.title, result)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("termlife: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		log.Fatalf("%v", err)
	}
}

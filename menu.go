package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

const menuText = `Conway's Game of Life
==================================================
Choose initial pattern:
1. Random
2. Glider
3. Multiple patterns
4. Glider gun
5. Custom random density
`

// promptScenario asks for a starting scenario and writes the choice into cfg.
// Unknown choices and unreadable densities fall back to a random fill.
func promptScenario(in io.Reader, out io.Writer, cfg *utils.Config) {
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) string {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	fmt.Fprint(out, menuText)
	choice := readLine("Enter choice (1-5, default 1): ")

	cfg.Scenario = utils.ScenarioRandom
	cfg.RandomDensity = menuDensity

	switch choice {
	case "2":
		cfg.Scenario = "glider"
		cfg.OriginX, cfg.OriginY = 5, 5
	case "3":
		cfg.Scenario = utils.ScenarioMultiple
	case "4":
		cfg.Scenario = utils.ScenarioGun
	case "5":
		text := readLine(fmt.Sprintf("Enter density (0.0-1.0, default %.1f): ", menuDensity))
		if text == "" {
			break
		}
		if density, err := strconv.ParseFloat(text, 64); err == nil {
			cfg.RandomDensity = model.ClampDensity(density)
		}
	}
}

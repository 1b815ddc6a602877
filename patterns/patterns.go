package patterns

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Lookup for names not in the catalog
var ErrUnknownPattern = errors.New("unknown pattern")

// Point is a cell offset relative to a pattern's local origin
type Point struct {
	X, Y int
}

// Pattern is an ordered list of live-cell offsets
type Pattern []Point

// Bounds returns the width and height of the smallest box holding every offset
// measured from the local origin.
func (p Pattern) Bounds() (w, h int) {
	for _, pt := range p {
		w = max(w, pt.X+1)
		h = max(h, pt.Y+1)
	}
	return
}

// Glider is the classic diagonal spaceship, period 4, drifting (+1,+1)
func Glider() Pattern {
	return Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
}

// Blinker is a period 2 oscillator
func Blinker() Pattern {
	return Pattern{{0, 1}, {1, 1}, {2, 1}}
}

// Block is a still life
func Block() Pattern {
	return Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
}

// Beacon is a period 2 oscillator
func Beacon() Pattern {
	return Pattern{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}
}

// Toad is a period 2 oscillator
func Toad() Pattern {
	return Pattern{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}
}

// GliderGun is a simplified, partial Gosper gun. It is not guaranteed to keep
// emitting gliders.
func GliderGun() Pattern {
	return Pattern{
		{24, 0}, {22, 1}, {24, 1}, {12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3}, {0, 4}, {1, 4}, {10, 4},
		{16, 4}, {20, 4}, {21, 4}, {0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5},
		{22, 5}, {24, 5}, {10, 6}, {16, 6}, {24, 6}, {11, 7}, {15, 7}, {12, 8}, {13, 8},
	}
}

var catalog = map[string]func() Pattern{
	"glider":     Glider,
	"blinker":    Blinker,
	"block":      Block,
	"beacon":     Beacon,
	"toad":       Toad,
	"glider_gun": GliderGun,
}

var aliases = map[string]string{
	"gun":        "glider_gun",
	"glider-gun": "glider_gun",
}

// Names lists the catalog entries in sorted order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the named pattern
func Lookup(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	ctor, ok := catalog[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

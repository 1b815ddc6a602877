package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/patterns"
	"github.com/sheikhrachel/termlife/rules"
)

var (
	// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidDensity marks a random fill probability outside [0,1]
	ErrInvalidDensity = errors.New("invalid density")
)

// Grid is a fixed-size Game of Life board. Cells outside the board are
// permanently dead: reads return false and writes are dropped.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width      int
	height     int
	generation int

	cells [][]bool
	next  [][]bool // back buffer, swapped with cells on every generation
}

// Bounds is an inclusive rectangle of cell coordinates
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Area returns the number of cells covered by the rectangle
func (b Bounds) Area() int {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// NewGrid creates an all-dead grid at generation 0
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  newCells(width, height),
		next:   newCells(width, height),
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Generation returns the number of generations since the last Clear
func (g *Grid) Generation() int {
	return g.generation
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.generation = 0
}

// Set sets a cell to alive (true) or dead (false). Off-grid writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell, false for anything off-grid
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// The board does not wrap.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextGeneration advances the board by one generation. Every next state is
// computed from the current buffer before the buffers are swapped.
func (g *Grid) NextGeneration() {
	for y := range g.height {
		row := g.next[y]
		for x := range g.width {
			row[x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// ClampDensity limits a fill probability to [0,1]; NaN becomes 0
func ClampDensity(density float64) float64 {
	if math.IsNaN(density) {
		return 0
	}
	return math.Max(0, math.Min(1, density))
}

// ValidateDensity reports ErrInvalidDensity for values outside [0,1]
func ValidateDensity(density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[ValidateDensity] %v not in [0,1]", density)
	}
	return nil
}

// Randomize clears the grid then brings each cell to life with probability
// density, clamped to [0,1].
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	g.Clear()
	density = ClampDensity(density)
	for y := range g.height {
		for x := range g.width {
			// Float64 is in [0,1), so 0 never fills and 1 always does
			g.cells[y][x] = rng.Float64() < density
		}
	}
}

// Stamp brings the pattern's cells to life with its origin at (originX, originY).
// Existing cells are kept and off-grid offsets are clipped.
func (g *Grid) Stamp(p patterns.Pattern, originX, originY int) {
	for _, pt := range p {
		g.Set(originX+pt.X, originY+pt.Y, true)
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// LivingCells lists living cell coordinates in row-major order
func (g *Grid) LivingCells() []patterns.Point {
	var alive []patterns.Point
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				alive = append(alive, patterns.Point{X: x, Y: y})
			}
		}
	}
	return alive
}

// BoundingBox returns the smallest rectangle containing every living cell.
// ok is false when no cell is alive.
func (g *Grid) BoundingBox() (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				b = Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MaxY = y
		}
	}
	return
}

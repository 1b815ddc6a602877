package model

import (
	"hash/fnv"
	"slices"
)

// Fingerprint returns a hash of the cell states. Equal grids of equal size
// always share a fingerprint.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	row := make([]byte, g.width)
	for y := range g.height {
		for x, alive := range g.cells[y] {
			row[x] = 0
			if alive {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return h.Sum64()
}

// History remembers the fingerprints of the most recent generations to spot
// still lifes and short oscillators.
type History struct {
	size   int
	hashes []uint64
}

// NewHistory keeps up to size fingerprints; size below 1 is treated as 1
func NewHistory(size int) *History {
	size = max(1, size)
	return &History{size: size, hashes: make([]uint64, 0, size)}
}

// Record adds the grid's current fingerprint, dropping the oldest when full
func (h *History) Record(g *Grid) {
	if len(h.hashes) == h.size {
		h.hashes = slices.Delete(h.hashes, 0, 1)
	}
	h.hashes = append(h.hashes, g.Fingerprint())
}

// Repeats reports whether the grid matches any recorded generation, i.e. it is
// a still life or a cycle with period up to the history size.
func (h *History) Repeats(g *Grid) bool {
	return slices.Contains(h.hashes, g.Fingerprint())
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

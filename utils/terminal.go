package utils

import "golang.org/x/term"

const (
	maxFitWidth  = 80
	maxFitHeight = 24

	fallbackWidth  = 40
	fallbackHeight = 20
)

// TerminalSize returns the column and row count of the terminal on fd
func TerminalSize(fd int) (cols, rows int, ok bool) {
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}

// FitGrid picks grid dimensions for a terminal. Each cell takes two columns,
// the border two more, and five rows are left for the border and status lines.
func FitGrid(cols, rows int) (width, height int) {
	width = min(cols/2-2, maxFitWidth)
	height = min(rows-5, maxFitHeight)
	if width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

// ResolveSize fills in zero dimensions from the terminal on fd, falling back
// to 40x20 when there is none.
func (c *Config) ResolveSize(fd int) {
	if c.Width > 0 && c.Height > 0 {
		return
	}
	width, height := fallbackWidth, fallbackHeight
	if cols, rows, ok := TerminalSize(fd); ok {
		width, height = FitGrid(cols, rows)
	}
	if c.Width == 0 {
		c.Width = width
	}
	if c.Height == 0 {
		c.Height = height
	}
}

package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	borderHorizontal = "═"
	borderVertical   = "║"
)

// Render draws the grid inside a border, two characters per cell, followed by
// a "Generation: N" line. Lines are separated by "\n" with no trailing newline.
func (g *Grid) Render() string {
	var (
		sb     strings.Builder
		border = strings.Repeat(borderHorizontal, g.width*2+2)
	)

	sb.WriteString(border)
	sb.WriteByte('\n')
	for y := range g.height {
		sb.WriteString(borderVertical)
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteString(borderVertical)
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Generation: %d", g.generation)

	return sb.String()
}

// FrameSink receives whole frames. Flush makes the buffered frame visible.
type FrameSink interface {
	io.Writer
	Flush() error
}

// TerminalRenderer redraws frames in place on a terminal
type TerminalRenderer struct {
	out FrameSink
}

// NewTerminalRenderer returns a renderer that overwrites the previous frame on out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	w := uilive.New()
	w.Out = out
	return &TerminalRenderer{out: w}
}

// NewSinkRenderer returns a renderer writing to an arbitrary sink
func NewSinkRenderer(out FrameSink) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display replaces the previous frame with text
func (r *TerminalRenderer) Display(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(r.out, text); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	if err := r.out.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to flush frame")
	}
	return nil
}

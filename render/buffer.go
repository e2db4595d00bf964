package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell
// A zero Rune after a double-width glyph marks its right half
type Cell struct {
	Rune  rune
	Style tcell.Style
	cont  bool
}

// RenderBuffer is an off-screen frame flushed to the terminal in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetContent writes a glyph, claiming the next cell for double-width runes
// Combining runes are ignored
func (b *RenderBuffer) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: primary, Style: style}
	if runewidth.RuneWidth(primary) == 2 && b.inBounds(x+1, y) {
		b.cells[y*b.width+x+1] = Cell{Style: style, cont: true}
	}
}

// Get returns the cell at x, y; out of bounds yields a blank cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Row returns the text of row y without continuation cells
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.cont {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Flush copies the buffer to screen
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.cont {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}

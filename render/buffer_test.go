package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferWideGlyph(t *testing.T) {
	b := NewRenderBuffer(6, 1)
	b.SetContent(1, 0, 'ㄅ', nil, tcell.StyleDefault)
	b.SetContent(3, 0, 'A', nil, tcell.StyleDefault)

	if got := b.Row(0); got != " ㄅA  " {
		t.Errorf("Row = %q", got)
	}
	if c := b.Get(2, 0); !c.cont {
		t.Error("Expected continuation cell after wide glyph")
	}
}

func TestRenderBufferBounds(t *testing.T) {
	b := NewRenderBuffer(3, 2)
	b.SetContent(-1, 0, 'X', nil, tcell.StyleDefault)
	b.SetContent(3, 1, 'X', nil, tcell.StyleDefault)
	b.SetContent(2, 1, 'ㄆ', nil, tcell.StyleDefault) // right half clipped

	if b.Row(0) != "   " || b.Row(1) != "  ㄆ" {
		t.Errorf("Unexpected rows %q %q", b.Row(0), b.Row(1))
	}
	if b.Get(5, 5).Rune != ' ' {
		t.Error("Out of bounds Get should be blank")
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	b := NewRenderBuffer(2, 2)
	b.SetContent(0, 0, 'Z', nil, tcell.StyleDefault)
	b.Resize(4, 3)

	if w, h := b.Size(); w != 4 || h != 3 {
		t.Errorf("Size = %dx%d", w, h)
	}
	for y := 0; y < 3; y++ {
		if b.Row(y) != "    " {
			t.Errorf("Row %d not cleared: %q", y, b.Row(y))
		}
	}
}

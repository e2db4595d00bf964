package render

import (
	"github.com/lixenwraith/keyfall/constants"
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the header, the bordered play field and the footer
// Field is the inner area; the border is drawn one cell outside it
type Layout struct {
	Width, Height int
	Header        Rect
	Field         Rect
	Footer        Rect
}

// ComputeLayout fits the field between header and footer
// Terminal cells are about twice as tall as wide, so the field keeps the
// logical aspect ratio with two columns per row unit
func ComputeLayout(w, h int) Layout {
	l := Layout{
		Width:  w,
		Height: h,
		Header: Rect{X: 0, Y: 0, W: w, H: constants.HeaderHeight},
		Footer: Rect{X: 0, Y: max(h-constants.FooterHeight, 0), W: w, H: constants.FooterHeight},
	}

	innerH := max(h-constants.HeaderHeight-constants.FooterHeight-2, 1)
	innerW := innerH * 2 * constants.FieldWidth / constants.FieldHeight
	innerW = max(min(innerW, w-2), 1)

	l.Field = Rect{
		X: (w - innerW) / 2,
		Y: constants.HeaderHeight + 1,
		W: innerW,
		H: innerH,
	}
	return l
}

// TooSmall reports whether the terminal cannot hold the game
func (l Layout) TooSmall() bool {
	return l.Width < constants.MinScreenWidth || l.Height < constants.MinScreenHeight
}

// Project maps a logical field position to a cell inside Field
func (l Layout) Project(x, y float64) (col, row int) {
	col = l.Field.X + int(x*float64(l.Field.W)/constants.FieldWidth)
	row = l.Field.Y + int(y*float64(l.Field.H)/constants.FieldHeight)
	col = min(max(col, l.Field.X), l.Field.X+l.Field.W-1)
	row = min(max(row, l.Field.Y), l.Field.Y+l.Field.H-1)
	return col, row
}

// GlyphColumn centres a glyph of the given width on col, keeping it inside Field
func (l Layout) GlyphColumn(col, width int) int {
	if width > 1 {
		col -= width / 2
	}
	right := l.Field.X + l.Field.W - width
	return max(min(col, right), l.Field.X)
}

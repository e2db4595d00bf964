package render

import "github.com/gdamore/tcell/v2"

// Styles used across screens
var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleKey      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleLives    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	styleAlert    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHighlite = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// Target colours by fall progress
var (
	styleTargetHigh = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTargetMid  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTargetLow  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// targetStyle colours a target by how far it has fallen towards the floor
func targetStyle(progress float64) tcell.Style {
	switch {
	case progress >= 0.85:
		return styleTargetLow
	case progress >= 0.6:
		return styleTargetMid
	default:
		return styleTargetHigh
	}
}

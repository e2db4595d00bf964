package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/engine"
)

// Surface is the drawing target; tcell.Screen and RenderBuffer satisfy it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// View carries renderer state that is not part of the game frame
type View struct {
	Banner  string
	Metrics string
}

// Paint draws one frame onto s
func Paint(s Surface, f engine.Frame, v View) {
	w, h := s.Size()
	l := ComputeLayout(w, h)
	if l.TooSmall() {
		centerText(s, h/2, styleAlert, "Terminal too small")
		return
	}

	switch f.State {
	case engine.StateSelectMode:
		paintMenu(s, l, f)
	case engine.StatePlaying:
		paintPlaying(s, l, f)
	case engine.StateGameOver:
		paintGameOver(s, l, f)
	case engine.StateLeaderboard:
		paintLeaderboard(s, l, f)
	}
	paintFooter(s, l, f, v)
}

func paintMenu(s Surface, l Layout, f engine.Frame) {
	y := l.Height/2 - 6
	centerText(s, y, styleTitle, "K E Y F A L L")
	y += 2

	if !f.ModeChosen {
		centerText(s, y, styleDefault, "Choose a character set")
		y += 2
		for _, opt := range f.Modes {
			centerText(s, y, styleDefault, fmt.Sprintf("[%c] %s", opt.Hotkey(), opt.Label))
			y++
		}
	} else {
		centerText(s, y, styleDefault, fmt.Sprintf("Character set: %s", f.ModeLabel))
		y += 2
		for i, tier := range f.Tiers {
			line := fmt.Sprintf("[%d] %-8s %4.1fs  %d per drop", i+1, tier.Name, tier.TickInterval.Seconds(), tier.SpawnCount)
			centerText(s, y, styleDefault, line)
			y++
		}
	}

	if len(f.Leaderboard) > 0 {
		best := f.Leaderboard[0]
		centerText(s, y+2, styleDim, fmt.Sprintf("Best: %d by %s", best.Score, best.Name))
	}
}

func paintPlaying(s Surface, l Layout, f engine.Frame) {
	x := drawText(s, 1, l.Header.Y, styleLives, fmt.Sprintf("Lives %d", f.Lives))
	x = drawText(s, x+3, l.Header.Y, styleDefault, fmt.Sprintf("Score %d", f.Score))
	x = drawText(s, x+3, l.Header.Y, styleDefault, fmt.Sprintf("Tier %s", f.Tier.Name))
	drawText(s, x+3, l.Header.Y, styleDim, fmt.Sprintf("Next tier %d/%d", f.Cleared, f.ClearTarget))

	hint := f.ModeLabel
	if f.Phonetic {
		hint += ": type the keyboard key of each symbol"
	}
	drawText(s, 1, l.Header.Y+1, styleDim, hint)

	drawBox(s, l.Field, styleBorder)
	for _, t := range f.Targets {
		drawTarget(s, l, t)
	}
}

// drawTarget projects a target into the field, centring double-width glyphs
func drawTarget(s Surface, l Layout, t engine.Target) {
	col, row := l.Project(t.X, t.Y)
	col = l.GlyphColumn(col, max(runewidth.RuneWidth(t.Symbol), 1))
	s.SetContent(col, row, t.Symbol, nil, targetStyle(t.Y/constants.FloorThreshold))
}

func paintGameOver(s Surface, l Layout, f engine.Frame) {
	y := l.Height/2 - 3
	centerText(s, y, styleAlert, "GAME OVER")
	centerText(s, y+2, styleDefault, fmt.Sprintf("Final score: %d", f.FinalScore))

	prompt := "Your name: "
	field := f.Name + strings.Repeat("_", max(constants.MaxNameLength-len([]rune(f.Name)), 0))
	width := runewidth.StringWidth(prompt) + runewidth.StringWidth(field)
	x := drawText(s, (l.Width-width)/2, y+4, styleDefault, prompt)
	drawText(s, x, y+4, styleKey, field)
}

func paintLeaderboard(s Surface, l Layout, f engine.Frame) {
	y := max(l.Height/2-constants.LeaderboardSize/2-3, 0)
	centerText(s, y, styleTitle, "LEADERBOARD")
	y += 2

	if len(f.Leaderboard) == 0 {
		centerText(s, y, styleDim, "No scores yet")
		return
	}
	for i, e := range f.Leaderboard {
		style := styleDefault
		if i+1 == f.LastRank {
			style = styleHighlite
		}
		centerText(s, y+i, style, formatEntry(i+1, e.Name, e.Score, e.Date))
	}
	if f.LastRank == 0 {
		centerText(s, y+len(f.Leaderboard)+1, styleDim, fmt.Sprintf("%d did not make the top %d", f.FinalScore, constants.LeaderboardSize))
	}
}

// formatEntry renders one leaderboard row with the name padded by display width
func formatEntry(rank int, name string, score int, date string) string {
	name = runewidth.Truncate(name, constants.MaxNameLength, "")
	name = runewidth.FillRight(name, constants.MaxNameLength)
	return fmt.Sprintf("%2d. %s %6d  %s", rank, name, score, date)
}

func paintFooter(s Surface, l Layout, f engine.Frame, v View) {
	y := l.Footer.Y
	if v.Banner != "" {
		centerText(s, y, styleBanner, " "+v.Banner+" ")
		return
	}

	var help string
	switch f.State {
	case engine.StateSelectMode:
		if f.ModeChosen {
			help = "[1-9] difficulty  [Esc] back  [Ctrl-C] quit"
		} else {
			help = "[Esc] quit"
		}
	case engine.StatePlaying:
		help = "[Ctrl-C] quit"
	case engine.StateGameOver:
		help = "[Enter] save score"
	case engine.StateLeaderboard:
		help = "[Enter/r] play again  [Esc] quit"
	}
	x := drawText(s, 1, y, styleDim, help)
	if v.Metrics != "" {
		drawText(s, x+2, y, styleDim, runewidth.Truncate(v.Metrics, max(l.Width-x-3, 0), "…"))
	}
}

// drawText writes text from x, returning the column after the last glyph
func drawText(s Surface, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// centerText writes text centred on row y
func centerText(s Surface, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, max((w-runewidth.StringWidth(text))/2, 0), y, style, text)
}

// drawBox draws a border one cell outside inner
func drawBox(s Surface, inner Rect, style tcell.Style) {
	left, right := inner.X-1, inner.X+inner.W
	top, bottom := inner.Y-1, inner.Y+inner.H

	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

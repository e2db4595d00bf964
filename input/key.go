// Package input turns terminal key events into game actions for the current
// lifecycle state.
package input

import "github.com/gdamore/tcell/v2"

// KeyCode classifies a key press independent of the terminal library
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt // Ctrl+C
)

// Key is one key press
type Key struct {
	Code KeyCode
	Rune rune
}

// FromEvent converts a tcell key event
func FromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key{Code: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEnter:
		return Key{Code: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Code: KeyBackspace}
	case tcell.KeyEscape:
		return Key{Code: KeyEscape}
	case tcell.KeyCtrlC:
		return Key{Code: KeyInterrupt}
	default:
		return Key{Code: KeyNone}
	}
}

package input

import (
	"unicode"

	"github.com/lixenwraith/keyfall/engine"
)

// Translate maps a key press onto an intent for the state shown in f
func Translate(k Key, f engine.Frame) Intent {
	if k.Code == KeyInterrupt {
		return Intent{Type: IntentQuit}
	}

	switch f.State {
	case engine.StateSelectMode:
		if f.ModeChosen {
			return tierMenu(k, f)
		}
		return modeMenu(k, f)

	case engine.StatePlaying:
		switch k.Code {
		case KeyRune:
			return Intent{Type: IntentTypeKey, Rune: k.Rune}
		case KeyEscape:
			return Intent{Type: IntentQuit}
		}

	case engine.StateGameOver:
		switch k.Code {
		case KeyRune:
			return Intent{Type: IntentTextChar, Rune: k.Rune}
		case KeyBackspace:
			return Intent{Type: IntentTextBackspace}
		case KeyEnter:
			return Intent{Type: IntentTextConfirm}
		case KeyEscape:
			return Intent{Type: IntentQuit}
		}

	case engine.StateLeaderboard:
		switch {
		case k.Code == KeyEnter, k.Code == KeyRune && unicode.ToLower(k.Rune) == 'r':
			return Intent{Type: IntentRestart}
		case k.Code == KeyEscape, k.Code == KeyRune && unicode.ToLower(k.Rune) == 'q':
			return Intent{Type: IntentQuit}
		}
	}
	return Intent{}
}

func modeMenu(k Key, f engine.Frame) Intent {
	switch k.Code {
	case KeyEscape:
		return Intent{Type: IntentQuit}
	case KeyRune:
		r := unicode.ToLower(k.Rune)
		for _, opt := range f.Modes {
			if opt.Hotkey() == r {
				return Intent{Type: IntentSelectMode, Mode: opt.Mode}
			}
		}
	}
	return Intent{}
}

func tierMenu(k Key, f engine.Frame) Intent {
	switch k.Code {
	case KeyEscape:
		return Intent{Type: IntentClearMode}
	case KeyRune:
		if k.Rune < '1' || k.Rune > '9' {
			return Intent{}
		}
		if i := int(k.Rune - '1'); i < len(f.Tiers) {
			return Intent{Type: IntentSelectTier, Index: i}
		}
	}
	return Intent{}
}

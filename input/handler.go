package input

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/keyfall/charset"
	"github.com/lixenwraith/keyfall/engine"
)

// Game is the part of engine.Game the handler drives
type Game interface {
	Snapshot() engine.Frame
	SelectMode(charset.Mode) error
	ClearMode() error
	SelectTier(int) error
	HandleKey(rune) bool
	AppendName(rune) bool
	BackspaceName() bool
	SubmitName() error
	Restart() error
}

// Handler applies key events to a game
type Handler struct {
	game   Game
	logger *log.Logger
}

// NewHandler creates a handler for game
func NewHandler(game Game, logger *log.Logger) *Handler {
	return &Handler{game: game, logger: logger}
}

// HandleEvent processes one terminal event, returning false when the player quits
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return h.HandleKey(FromEvent(key))
}

// HandleKey processes one key press, returning false when the player quits
func (h *Handler) HandleKey(k Key) bool {
	intent := Translate(k, h.game.Snapshot())

	var err error
	switch intent.Type {
	case IntentQuit:
		return false
	case IntentSelectMode:
		err = h.game.SelectMode(intent.Mode)
	case IntentClearMode:
		err = h.game.ClearMode()
	case IntentSelectTier:
		err = h.game.SelectTier(intent.Index)
	case IntentTypeKey:
		h.game.HandleKey(intent.Rune)
	case IntentTextChar:
		h.game.AppendName(intent.Rune)
	case IntentTextBackspace:
		h.game.BackspaceName()
	case IntentTextConfirm:
		err = h.game.SubmitName()
	case IntentRestart:
		err = h.game.Restart()
	}

	// The state may change between snapshot and action when a timer fires
	if err != nil {
		h.logger.Debug("input rejected", "intent", intent.Type, "err", err)
	}
	return true
}

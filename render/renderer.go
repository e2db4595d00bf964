// Package render draws game frames on a tcell screen and shows lifecycle
// notifications.
package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/difficulty"
	"github.com/lixenwraith/keyfall/engine"
	"github.com/lixenwraith/keyfall/status"
)

// Renderer paints frames through a RenderBuffer and implements engine.Notifier
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	logger *log.Logger
	reg    *status.Registry // nil hides metrics
	now    func() time.Time

	mu          sync.Mutex
	banner      string
	bannerUntil time.Time
}

// NewRenderer creates a renderer for screen
// Pass a registry to show the metrics line
func NewRenderer(screen tcell.Screen, logger *log.Logger, reg *status.Registry) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		logger: logger,
		reg:    reg,
		now:    time.Now,
	}
}

// Draw paints f and shows it
func (r *Renderer) Draw(f engine.Frame) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	Paint(r.buf, f, r.view())
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// view snapshots banner and metrics
func (r *Renderer) view() View {
	var v View
	r.mu.Lock()
	if r.banner != "" && r.now().Before(r.bannerUntil) {
		v.Banner = r.banner
	}
	r.mu.Unlock()

	if r.reg != nil {
		v.Metrics = r.reg.Summary()
	}
	return v
}

// Sync redraws the whole terminal after a resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

func (r *Renderer) showBanner(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banner = text
	r.bannerUntil = r.now().Add(constants.BannerDuration)
}

// LevelComplete implements engine.Notifier
func (r *Renderer) LevelComplete(completed, next difficulty.Tier) {
	r.showBanner(fmt.Sprintf("%s complete! Now: %s", completed.Name, next.Name))
}

// GameOver implements engine.Notifier
func (r *Renderer) GameOver(score int) {
	r.logger.Debug("game over shown", "score", score)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banner = ""
}

// StateChanged implements engine.Notifier
func (r *Renderer) StateChanged(from, to engine.State) {
	r.logger.Debug("screen changed", "from", from, "to", to)
	if to == engine.StateSelectMode {
		r.mu.Lock()
		r.banner = ""
		r.mu.Unlock()
	}
}

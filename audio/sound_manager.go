package audio

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/core"
)

// SoundManager plays synthesized effects through the system speaker
// Effects are added to one mixer, so Play returns immediately
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager with master volume in [0, 1]
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.SampleRate),
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sm.rate), "volume", sm.volume)
	return nil
}

// Play queues an effect on the mixer
func (sm *SoundManager) Play(sound core.SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := Effect(sound, sm.rate, sm.volume)
	if streamer == nil {
		return fmt.Errorf("%v: %w", sound, ErrUnknownSound)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Close stops all sounds and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/core"
)

// Wave selects a tone's waveform
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// sample evaluates the waveform at phase p in [0, 1)
func (w Wave) sample(p float64) float64 {
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Tone describes one enveloped note
// Gain ramps linearly from 0 over Attack and back to 0 over the final Release
type Tone struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
}

// Streamer renders the tone at rate
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		wave:    t.Wave,
		step:    t.Freq / float64(rate),
		total:   rate.N(t.Length),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
}

type toneStreamer struct {
	wave    Wave
	step    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := min(len(samples), s.total-s.pos)
	for i := 0; i < n; i++ {
		v := s.wave.sample(s.phase) * s.gain()
		samples[i] = [2]float64{v, v}
		_, s.phase = math.Modf(s.phase + s.step)
		s.pos++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }

func (s *toneStreamer) gain() float64 {
	g := 1.0
	if s.attack > 0 && s.pos < s.attack {
		g = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		g = min(g, float64(left)/float64(s.release))
	}
	return g
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound generates a short bell for a cleared target: A5 plus its octave
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := Tone{Freq: 880, Wave: Sine, Length: constants.HitSoundDuration,
		Attack: constants.HitSoundAttack, Release: constants.HitSoundFundamentalRelease}
	over := Tone{Freq: 1760, Wave: Sine, Length: constants.HitSoundDuration,
		Attack: constants.HitSoundAttack, Release: constants.HitSoundOvertoneRelease}

	mixed := beep.Mix(
		newVolume(fund.Streamer(rate), 0.7),
		newVolume(over.Streamer(rate), 0.3),
	)
	return newVolume(mixed, vol)
}

// CreateFailSound generates a low buzz for a target reaching the floor
func CreateFailSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := Tone{Freq: 110, Wave: Saw, Length: constants.FailSoundDuration,
		Attack: constants.FailSoundAttack, Release: constants.FailSoundRelease}
	return newVolume(buzz.Streamer(rate), vol*0.6)
}

// gameOverNotes descend E5, C5, A4
var gameOverNotes = []float64{659.25, 523.25, 440.0}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		note := Tone{Freq: freq, Wave: Square, Length: constants.GameOverNoteDuration,
			Attack: constants.GameOverNoteAttack, Release: constants.GameOverNoteRelease}
		notes = append(notes, note.Streamer(rate))
	}
	return newVolume(beep.Seq(notes...), vol*0.5)
}

// Effect returns the streamer for a sound, or nil for an unknown type
func Effect(sound core.SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case core.SoundHit:
		return CreateHitSound(rate, vol)
	case core.SoundFail:
		return CreateFailSound(rate, vol)
	case core.SoundGameOver:
		return CreateGameOverSound(rate, vol)
	default:
		return nil
	}
}

// EffectDuration returns the nominal length of a sound
func EffectDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundHit:
		return constants.HitSoundDuration
	case core.SoundFail:
		return constants.FailSoundDuration
	case core.SoundGameOver:
		return time.Duration(len(gameOverNotes)) * constants.GameOverNoteDuration
	default:
		return 0
	}
}

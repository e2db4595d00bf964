package constants

import "time"

// Audio Device
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration           = 180 * time.Millisecond
	HitSoundAttack             = 5 * time.Millisecond
	HitSoundFundamentalRelease = 160 * time.Millisecond
	HitSoundOvertoneRelease    = 80 * time.Millisecond
)

// Fail Sound Timing
const (
	FailSoundDuration = 150 * time.Millisecond
	FailSoundAttack   = 5 * time.Millisecond
	FailSoundRelease  = 40 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)

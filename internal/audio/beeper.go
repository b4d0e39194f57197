// Package audio plays the overlap cue through the system speaker. The
// device is optional: when it fails to open, the Beeper stays usable and
// every Play is a no-op, so the stimulus runs silent instead of crashing.
package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays the cue tone. The zero value is silent and safe to use.
type Beeper struct {
	freq     float64
	duration time.Duration
	volume   float64
	enabled  bool
	muted    bool
}

// New prepares the cue tone and opens the audio device. On device failure
// the returned Beeper is still usable with Play a no-op; the error comes
// back alongside it for logging.
func New(freq float64, d time.Duration, volume float64) (*Beeper, error) {
	b := &Beeper{freq: freq, duration: d, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return b, err
	}
	b.enabled = true
	return b, nil
}

// Play queues one cue tone and returns immediately; the speaker mixes on its
// own goroutine, so this never blocks a frame. Disabled or muted beepers do
// nothing.
func (b *Beeper) Play() {
	if !b.enabled || b.muted {
		return
	}
	speaker.Play(NewTone(b.freq, b.duration, b.volume, sampleRate))
}

// Enabled reports whether the audio device came up.
func (b *Beeper) Enabled() bool { return b.enabled }

// Muted reports whether cues are suppressed.
func (b *Beeper) Muted() bool { return b.muted }

// SetMuted sets cue suppression without touching the device.
func (b *Beeper) SetMuted(m bool) { b.muted = m }

// ToggleMute flips cue suppression and reports the new state.
func (b *Beeper) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone streams one fixed-length sine burst shaped by a Hamming window, so
// the cue starts and ends without clicks. It drains after its duration and
// is meant to be handed to the speaker once per cue.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
}

// NewTone builds a cue tone of the given frequency, length and amplitude.
func NewTone(freq float64, d time.Duration, volume float64, sr beep.SampleRate) *Tone {
	return &Tone{
		sr:     sr,
		freq:   freq,
		volume: volume,
		total:  sr.N(d),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		sec := float64(t.pos) / float64(t.sr)
		v := t.volume * hamming(t.pos, t.total) * math.Sin(2*math.Pi*t.freq*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// hamming evaluates the Hamming window at sample i of n.
func hamming(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

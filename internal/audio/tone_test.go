package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestToneDuration(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 200 * time.Millisecond
	want := sr.N(d)

	tone := NewTone(1000, d, 1, sr)

	buf := make([][2]float64, want*2)
	n, ok := tone.Stream(buf)
	if !ok {
		t.Fatal("first stream reported drained")
	}
	if n != want {
		t.Fatalf("streamed %d samples, want %d", n, want)
	}

	n, ok = tone.Stream(buf)
	if ok || n != 0 {
		t.Fatalf("drained tone streamed (%d, %v), want (0, false)", n, ok)
	}
}

func TestTonePartialChunks(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 10 * time.Millisecond
	want := sr.N(d)

	tone := NewTone(1000, d, 1, sr)

	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			if n != 0 {
				t.Fatalf("drained stream returned n=%d, want 0", n)
			}
			break
		}
		if n == 0 {
			t.Fatal("live stream returned (0, true)")
		}
	}
	if total != want {
		t.Fatalf("streamed %d samples in chunks, want %d", total, want)
	}
}

func TestToneStaysWithinVolume(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone := NewTone(1000, 50*time.Millisecond, 0.5, sr)

	buf := make([][2]float64, sr.N(50*time.Millisecond))
	n, _ := tone.Stream(buf)
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 0.5 || math.Abs(buf[i][1]) > 0.5 {
			t.Fatalf("sample %d = (%f, %f) beyond volume 0.5", i, buf[i][0], buf[i][1])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d not mono across channels: %f vs %f", i, buf[i][0], buf[i][1])
		}
	}
}

func TestToneEnvelopeTapersEnds(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone := NewTone(1000, 200*time.Millisecond, 1, sr)

	buf := make([][2]float64, sr.N(200*time.Millisecond))
	n, _ := tone.Stream(buf)

	peak := 0.0
	for i := n / 3; i < 2*n/3; i++ {
		if a := math.Abs(buf[i][0]); a > peak {
			peak = a
		}
	}
	if peak < 0.8 {
		t.Fatalf("mid-tone peak = %f, want most of the full amplitude", peak)
	}
	if a := math.Abs(buf[0][0]); a > 0.15*peak {
		t.Fatalf("first sample = %f, want tapered near zero", a)
	}
	if a := math.Abs(buf[n-1][0]); a > 0.15*peak {
		t.Fatalf("last sample = %f, want tapered near zero", a)
	}
}

func TestToneZeroVolumeIsSilent(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone := NewTone(1000, 20*time.Millisecond, 0, sr)

	buf := make([][2]float64, sr.N(20*time.Millisecond))
	n, _ := tone.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = (%f, %f), want silence", i, buf[i][0], buf[i][1])
		}
	}
}

func TestHammingWindow(t *testing.T) {
	if got := hamming(0, 3); math.Abs(got-0.08) > 1e-12 {
		t.Fatalf("hamming(0,3) = %f, want 0.08", got)
	}
	if got := hamming(1, 3); math.Abs(got-1) > 1e-12 {
		t.Fatalf("hamming(1,3) = %f, want 1", got)
	}
	if got := hamming(2, 3); math.Abs(got-0.08) > 1e-12 {
		t.Fatalf("hamming(2,3) = %f, want 0.08", got)
	}
	if got := hamming(0, 1); got != 1 {
		t.Fatalf("hamming(0,1) = %f, want 1", got)
	}
}

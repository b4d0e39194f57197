package config

import (
	"fmt"
	"image/color"
	"time"
)

// Config carries every tunable of a stimulus session. It is resolved once at
// startup (defaults, then optional JSON file, then environment, then flags)
// and immutable afterwards.
type Config struct {
	// Ring geometry.
	Targets     int     // number of ring targets (even, at least 4)
	TrackedPair int     // pair index carrying the pointer-matched marker
	RingRadius  float64 // circle radius the targets sit on, model units

	// Marker sizes.
	TargetRadius  float64
	ShuttleRadius float64
	PointerRadius float64
	MarkerRadius  float64 // tracked-pair endpoint markers

	// Motion.
	EllipseScale float64 // semi-minor axis as a fraction of the ring radius
	ShuttleSpeed float64 // orbit cycles per second
	Spread       float64 // phase spread control in [0,1]

	// Detection and cue.
	Threshold    float64       // overlap distance, strict
	CueInterval  time.Duration // minimum gap between cues
	CueFrequency float64       // tone frequency in Hz
	CueDuration  time.Duration // tone length
	CueVolume    float64       // tone amplitude in [0,1]
	Mute         bool

	// Presentation.
	WindowWidth         int
	WindowHeight        int
	Title               string
	Background          color.RGBA
	TargetFill          color.RGBA
	TargetOutline       color.RGBA
	TargetOutlineWidth  float64
	ShuttleFill         color.RGBA
	ShuttleOutline      color.RGBA
	ShuttleOutlineWidth float64
	Accent              color.RGBA // pointer and tracked-pair markers
	Debug               bool
}

// Default returns the stock stimulus: a 20-target ring with nine shuttles,
// full phase spread, and a 1 kHz cue debounced to one per 220 ms.
func Default() Config {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}
	return Config{
		Targets:     20,
		TrackedPair: 0,
		RingRadius:  250,

		TargetRadius:  16,
		ShuttleRadius: 8,
		PointerRadius: 10,
		MarkerRadius:  5,

		EllipseScale: 0.35,
		ShuttleSpeed: 0.15,
		Spread:       1.0,

		Threshold:    36,
		CueInterval:  220 * time.Millisecond,
		CueFrequency: 1000,
		CueDuration:  200 * time.Millisecond,
		CueVolume:    1.0,

		WindowWidth:         1000,
		WindowHeight:        800,
		Title:               "Shuttle Ring",
		Background:          black,
		TargetFill:          white,
		TargetOutline:       black,
		TargetOutlineWidth:  2,
		ShuttleFill:         white,
		ShuttleOutline:      black,
		ShuttleOutlineWidth: 1.5,
		Accent:              color.RGBA{R: 0x66, G: 0xff, B: 0x66, A: 0xff},
	}
}

// Validate rejects configurations the stimulus cannot run with. It returns
// the first problem found; a nil result means every derived quantity (pair
// count, ellipse axes, cue schedule) is well defined.
func (c Config) Validate() error {
	if c.Targets < 4 {
		return fmt.Errorf("target count %d: need at least 4 for one tracked and one shuttle pair", c.Targets)
	}
	if c.Targets%2 != 0 {
		return fmt.Errorf("target count %d is odd: targets pair up diametrically", c.Targets)
	}
	if c.TrackedPair < 0 || c.TrackedPair >= c.Targets/2 {
		return fmt.Errorf("tracked pair %d out of range [0,%d)", c.TrackedPair, c.Targets/2)
	}
	if c.RingRadius <= 0 {
		return fmt.Errorf("ring radius %g must be positive", c.RingRadius)
	}
	if c.TargetRadius <= 0 || c.ShuttleRadius <= 0 || c.PointerRadius <= 0 || c.MarkerRadius <= 0 {
		return fmt.Errorf("marker radii (%g, %g, %g, %g) must all be positive",
			c.TargetRadius, c.ShuttleRadius, c.PointerRadius, c.MarkerRadius)
	}
	if c.EllipseScale <= 0 {
		return fmt.Errorf("ellipse scale %g must be positive", c.EllipseScale)
	}
	if c.ShuttleSpeed <= 0 {
		return fmt.Errorf("shuttle speed %g must be positive", c.ShuttleSpeed)
	}
	if c.Spread < 0 || c.Spread > 1 {
		return fmt.Errorf("phase spread %g outside [0,1]", c.Spread)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("overlap threshold %g must be positive", c.Threshold)
	}
	if c.CueInterval <= 0 {
		return fmt.Errorf("cue interval %s must be positive", c.CueInterval)
	}
	if c.CueFrequency <= 0 {
		return fmt.Errorf("cue frequency %g must be positive", c.CueFrequency)
	}
	if c.CueDuration <= 0 {
		return fmt.Errorf("cue duration %s must be positive", c.CueDuration)
	}
	if c.CueVolume < 0 || c.CueVolume > 1 {
		return fmt.Errorf("cue volume %g outside [0,1]", c.CueVolume)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("window size %dx%d must be at least 1x1", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

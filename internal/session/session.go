// Package session holds the per-frame core of the stimulus: shuttle motion
// evaluation, pointer proximity detection, debounced cue decisions and the
// draw list. Step takes device samples and a clock reading; it reads
// neither itself.
package session

import (
	"image/color"

	"github.com/attnlab/shuttlering/internal/config"
	"github.com/attnlab/shuttlering/internal/stimulus"
)

// Input is one frame's worth of device samples, taken by the driver.
type Input struct {
	Pointer   stimulus.Point // pointer position in model space
	PointerOK bool           // false while the pointer is outside the window
	Exit      bool           // termination requested since the last frame
}

// Circle is one draw command in model space. A nil Outline means the circle
// is filled only.
type Circle struct {
	Center  stimulus.Point
	Radius  float64
	Fill    color.Color
	Outline color.Color
	Width   float64
}

// Frame is the outcome of one step: the circles to draw in order (later
// entries on top), whether to sound the cue, and whether the session has
// ended. The circle slice is reused by the next Step call.
type Frame struct {
	Circles    []Circle
	Cue        bool
	Terminated bool
}

// Session evolves a configured stimulus frame by frame. All mutable state
// lives here; Step never touches the clock or any device itself.
type Session struct {
	shuttles []stimulus.Shuttle
	static   []Circle // targets, then the two tracked-pair markers

	threshold float64
	minGap    float64 // seconds between cues

	shuttleRadius  float64
	shuttleFill    color.Color
	shuttleOutline color.Color
	shuttleWidth   float64
	pointerRadius  float64
	accent         color.Color

	terminated  bool
	pointer     stimulus.Point
	havePointer bool
	cued        bool
	lastCueAt   float64
	cues        int

	buf []Circle
}

// New builds a session from a validated configuration: ring layout, pair
// split, phase offsets and shuttles are all fixed here, once.
func New(cfg config.Config) *Session {
	ring := stimulus.NewRing(cfg.Targets, cfg.RingRadius)
	tracked, pairs := stimulus.AllocatePairs(cfg.Targets, cfg.TrackedPair)

	angles := make([]float64, len(pairs))
	for j, p := range pairs {
		angles[j] = ring.Angle(p.A)
	}
	offsets := stimulus.PhaseOffsets(angles, cfg.Spread)

	shuttles := make([]stimulus.Shuttle, len(pairs))
	for j := range pairs {
		shuttles[j] = stimulus.Shuttle{
			Theta:  angles[j],
			A:      cfg.RingRadius,
			B:      cfg.RingRadius * cfg.EllipseScale,
			Speed:  cfg.ShuttleSpeed,
			Offset: offsets[j],
		}
	}

	static := make([]Circle, 0, cfg.Targets+2)
	for k := 0; k < ring.Len(); k++ {
		static = append(static, Circle{
			Center:  ring.Position(k),
			Radius:  cfg.TargetRadius,
			Fill:    cfg.TargetFill,
			Outline: cfg.TargetOutline,
			Width:   cfg.TargetOutlineWidth,
		})
	}
	for _, k := range []int{tracked.A, tracked.B} {
		static = append(static, Circle{
			Center: ring.Position(k),
			Radius: cfg.MarkerRadius,
			Fill:   cfg.Accent,
		})
	}

	return &Session{
		shuttles:       shuttles,
		static:         static,
		threshold:      cfg.Threshold,
		minGap:         cfg.CueInterval.Seconds(),
		shuttleRadius:  cfg.ShuttleRadius,
		shuttleFill:    cfg.ShuttleFill,
		shuttleOutline: cfg.ShuttleOutline,
		shuttleWidth:   cfg.ShuttleOutlineWidth,
		pointerRadius:  cfg.PointerRadius,
		accent:         cfg.Accent,
	}
}

// Step advances the session to wall-clock time now (seconds since start).
// An exit request terminates the session; the terminal state is absorbing
// and steps taken there have no side effects. Otherwise the frame's circles
// are built in fixed z-order (targets, tracked-pair markers, shuttles,
// pointer) and the cue decision is made: fire while the pointer overlaps any
// shuttle, at most once per the configured interval, starting immediately on
// the first overlap ever.
func (s *Session) Step(in Input, now float64) Frame {
	if s.terminated {
		return Frame{Terminated: true}
	}
	if in.Exit {
		s.terminated = true
		return Frame{Terminated: true}
	}

	if in.PointerOK {
		s.pointer = in.Pointer
		s.havePointer = true
	}

	circles := append(s.buf[:0], s.static...)
	overlap := false
	for _, sh := range s.shuttles {
		p := sh.At(now)
		circles = append(circles, Circle{
			Center:  p,
			Radius:  s.shuttleRadius,
			Fill:    s.shuttleFill,
			Outline: s.shuttleOutline,
			Width:   s.shuttleWidth,
		})
		if in.PointerOK && stimulus.Dist(in.Pointer, p) < s.threshold {
			overlap = true
		}
	}
	if s.havePointer {
		circles = append(circles, Circle{
			Center: s.pointer,
			Radius: s.pointerRadius,
			Fill:   s.accent,
		})
	}
	s.buf = circles

	cue := overlap && (!s.cued || now-s.lastCueAt >= s.minGap)
	if cue {
		s.cued = true
		s.lastCueAt = now
		s.cues++
	}
	return Frame{Circles: circles, Cue: cue}
}

// CueCount reports how many cues have fired so far.
func (s *Session) CueCount() int { return s.cues }

// ShuttleCount reports how many shuttle markers the session runs.
func (s *Session) ShuttleCount() int { return len(s.shuttles) }

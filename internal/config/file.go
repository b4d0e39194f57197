package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/ncruces/zenity"
)

// fileConfig mirrors Config with JSON-friendly field types: durations as Go
// duration strings, colors as #rrggbb hex. Loading prefills it from the
// current Config, so keys absent from the file keep their values.
type fileConfig struct {
	Targets     int     `json:"targets"`
	TrackedPair int     `json:"tracked_pair"`
	RingRadius  float64 `json:"ring_radius"`

	TargetRadius  float64 `json:"target_radius"`
	ShuttleRadius float64 `json:"shuttle_radius"`
	PointerRadius float64 `json:"pointer_radius"`
	MarkerRadius  float64 `json:"marker_radius"`

	EllipseScale float64 `json:"ellipse_scale"`
	ShuttleSpeed float64 `json:"shuttle_speed"`
	Spread       float64 `json:"spread"`

	Threshold    float64 `json:"threshold"`
	CueInterval  string  `json:"cue_interval"`
	CueFrequency float64 `json:"cue_frequency"`
	CueDuration  string  `json:"cue_duration"`
	CueVolume    float64 `json:"cue_volume"`
	Mute         bool    `json:"mute"`

	WindowWidth         int     `json:"window_width"`
	WindowHeight        int     `json:"window_height"`
	Title               string  `json:"title"`
	Background          string  `json:"background"`
	TargetFill          string  `json:"target_fill"`
	TargetOutline       string  `json:"target_outline"`
	TargetOutlineWidth  float64 `json:"target_outline_width"`
	ShuttleFill         string  `json:"shuttle_fill"`
	ShuttleOutline      string  `json:"shuttle_outline"`
	ShuttleOutlineWidth float64 `json:"shuttle_outline_width"`
	Accent              string  `json:"accent"`
	Debug               bool    `json:"debug"`
}

// LoadFile overlays c with the JSON settings at path. Keys the file leaves
// out keep their current values, so a file may tune a single parameter.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fc := fileConfig{
		Targets:             c.Targets,
		TrackedPair:         c.TrackedPair,
		RingRadius:          c.RingRadius,
		TargetRadius:        c.TargetRadius,
		ShuttleRadius:       c.ShuttleRadius,
		PointerRadius:       c.PointerRadius,
		MarkerRadius:        c.MarkerRadius,
		EllipseScale:        c.EllipseScale,
		ShuttleSpeed:        c.ShuttleSpeed,
		Spread:              c.Spread,
		Threshold:           c.Threshold,
		CueFrequency:        c.CueFrequency,
		CueVolume:           c.CueVolume,
		Mute:                c.Mute,
		WindowWidth:         c.WindowWidth,
		WindowHeight:        c.WindowHeight,
		Title:               c.Title,
		TargetOutlineWidth:  c.TargetOutlineWidth,
		ShuttleOutlineWidth: c.ShuttleOutlineWidth,
		Debug:               c.Debug,
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.Targets = fc.Targets
	c.TrackedPair = fc.TrackedPair
	c.RingRadius = fc.RingRadius
	c.TargetRadius = fc.TargetRadius
	c.ShuttleRadius = fc.ShuttleRadius
	c.PointerRadius = fc.PointerRadius
	c.MarkerRadius = fc.MarkerRadius
	c.EllipseScale = fc.EllipseScale
	c.ShuttleSpeed = fc.ShuttleSpeed
	c.Spread = fc.Spread
	c.Threshold = fc.Threshold
	c.CueFrequency = fc.CueFrequency
	c.CueVolume = fc.CueVolume
	c.Mute = fc.Mute
	c.WindowWidth = fc.WindowWidth
	c.WindowHeight = fc.WindowHeight
	c.Title = fc.Title
	c.TargetOutlineWidth = fc.TargetOutlineWidth
	c.ShuttleOutlineWidth = fc.ShuttleOutlineWidth
	c.Debug = fc.Debug

	if err := overlayDuration(&c.CueInterval, fc.CueInterval); err != nil {
		return fmt.Errorf("parse config %s: cue_interval: %w", path, err)
	}
	if err := overlayDuration(&c.CueDuration, fc.CueDuration); err != nil {
		return fmt.Errorf("parse config %s: cue_duration: %w", path, err)
	}

	colors := []struct {
		key  string
		raw  string
		dest *color.RGBA
	}{
		{"background", fc.Background, &c.Background},
		{"target_fill", fc.TargetFill, &c.TargetFill},
		{"target_outline", fc.TargetOutline, &c.TargetOutline},
		{"shuttle_fill", fc.ShuttleFill, &c.ShuttleFill},
		{"shuttle_outline", fc.ShuttleOutline, &c.ShuttleOutline},
		{"accent", fc.Accent, &c.Accent},
	}
	for _, col := range colors {
		if col.raw == "" {
			continue
		}
		v, err := parseHexColor(col.raw)
		if err != nil {
			return fmt.Errorf("parse config %s: %s: %w", path, col.key, err)
		}
		*col.dest = v
	}
	return nil
}

// Pick opens a native file chooser for a JSON config. It returns
// zenity.ErrCanceled when the user dismisses the dialog.
func Pick() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Choose a stimulus config"),
		zenity.FileFilters{{
			Name:     "JSON config",
			Patterns: []string{"*.json"},
		}},
	)
}

func overlayDuration(dest *time.Duration, raw string) error {
	if raw == "" {
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*dest = v
	return nil
}

// parseHexColor reads #rgb or #rrggbb into an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

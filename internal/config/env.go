package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ApplyEnv overlays c with SHUTTLERING_* environment variables. A .env file
// in the working directory is folded into the environment first; its absence
// is fine. Malformed values are ignored.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	envInt("SHUTTLERING_TARGETS", &c.Targets)
	envInt("SHUTTLERING_TRACKED_PAIR", &c.TrackedPair)
	envFloat("SHUTTLERING_RING_RADIUS", &c.RingRadius)
	envFloat("SHUTTLERING_ELLIPSE_SCALE", &c.EllipseScale)
	envFloat("SHUTTLERING_SPEED", &c.ShuttleSpeed)
	envFloat("SHUTTLERING_SPREAD", &c.Spread)
	envFloat("SHUTTLERING_THRESHOLD", &c.Threshold)
	envDuration("SHUTTLERING_CUE_INTERVAL", &c.CueInterval)
	envFloat("SHUTTLERING_CUE_FREQUENCY", &c.CueFrequency)
	envDuration("SHUTTLERING_CUE_DURATION", &c.CueDuration)
	envFloat("SHUTTLERING_CUE_VOLUME", &c.CueVolume)
	envBool("SHUTTLERING_MUTE", &c.Mute)
	envInt("SHUTTLERING_WINDOW_WIDTH", &c.WindowWidth)
	envInt("SHUTTLERING_WINDOW_HEIGHT", &c.WindowHeight)
	envBool("SHUTTLERING_DEBUG", &c.Debug)
	return nil
}

func envInt(key string, dest *int) {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			*dest = v
		}
	}
}

func envFloat(key string, dest *float64) {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*dest = v
		}
	}
}

func envBool(key string, dest *bool) {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			*dest = v
		}
	}
}

func envDuration(key string, dest *time.Duration) {
	if s := os.Getenv(key); s != "" {
		if v, err := time.ParseDuration(s); err == nil {
			*dest = v
		}
	}
}

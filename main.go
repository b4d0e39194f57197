package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/attnlab/shuttlering/internal/audio"
	"github.com/attnlab/shuttlering/internal/config"
	"github.com/attnlab/shuttlering/internal/session"
	"github.com/attnlab/shuttlering/internal/stimulus"
)

// game drives one stimulus session: Update samples the devices and steps the
// session, Draw renders the step's circle list. All motion comes from the
// wall clock, so the visuals run at the display's own rate.
type game struct {
	cfg    config.Config
	sess   *session.Session
	beeper *audio.Beeper
	start  time.Time
	frame  session.Frame
}

func newGame(cfg config.Config, sess *session.Session, beeper *audio.Beeper) *game {
	return &game{
		cfg:    cfg,
		sess:   sess,
		beeper: beeper,
		start:  time.Now(),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.beeper.ToggleMute()
	}

	var in session.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Exit = true
	}
	x, y := ebiten.CursorPosition()
	if x >= 0 && x < g.cfg.WindowWidth && y >= 0 && y < g.cfg.WindowHeight {
		in.Pointer = g.toModel(x, y)
		in.PointerOK = true
	}

	g.frame = g.sess.Step(in, time.Since(g.start).Seconds())
	if g.frame.Terminated {
		return ebiten.Termination
	}
	if g.frame.Cue {
		g.beeper.Play()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)

	for _, c := range g.frame.Circles {
		x, y := g.toScreen(c.Center)
		vector.DrawFilledCircle(screen, x, y, float32(c.Radius), c.Fill, false)
		if c.Outline != nil && c.Width > 0 {
			vector.StrokeCircle(screen, x, y, float32(c.Radius), float32(c.Width), c.Outline, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// toModel converts a cursor position to model space: origin at the window
// center, +y up.
func (g *game) toModel(x, y int) stimulus.Point {
	return stimulus.Point{
		X: float64(x) - float64(g.cfg.WindowWidth)/2,
		Y: float64(g.cfg.WindowHeight)/2 - float64(y),
	}
}

// toScreen is the inverse transform, for draw calls.
func (g *game) toScreen(p stimulus.Point) (float32, float32) {
	return float32(p.X + float64(g.cfg.WindowWidth)/2),
		float32(float64(g.cfg.WindowHeight)/2 - p.Y)
}

func (g *game) status() string {
	sound := "sound on"
	switch {
	case !g.beeper.Enabled():
		sound = "no audio"
	case g.beeper.Muted():
		sound = "muted"
	}
	s := fmt.Sprintf("%s | spread %.2f | %d shuttles | %d cues | %s | [esc] quit  [m] mute",
		formatDuration(time.Since(g.start)), g.cfg.Spread,
		g.sess.ShuttleCount(), g.sess.CueCount(), sound)
	if g.cfg.Debug {
		s += fmt.Sprintf(" | %.0f fps / %.0f tps", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return s
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// loadConfig resolves the session configuration: defaults, then an optional
// JSON file (-config path, or -choose-config for a picker), then
// SHUTTLERING_* environment variables, then explicitly set flags.
func loadConfig(args []string) (config.Config, error) {
	cfg := config.Default()

	fs := flag.NewFlagSet("shuttlering", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON config file")
	chooseConfig := fs.Bool("choose-config", false, "pick the JSON config with a file dialog")
	targets := fs.Int("targets", cfg.Targets, "number of ring targets (even, at least 4)")
	spread := fs.Float64("spread", cfg.Spread, "phase spread control in [0,1]")
	speed := fs.Float64("speed", cfg.ShuttleSpeed, "shuttle speed in orbit cycles per second")
	threshold := fs.Float64("threshold", cfg.Threshold, "overlap distance that triggers the cue")
	cueInterval := fs.Duration("cue-interval", cfg.CueInterval, "minimum gap between cues")
	volume := fs.Float64("volume", cfg.CueVolume, "cue volume in [0,1]")
	mute := fs.Bool("mute", cfg.Mute, "start with the cue muted")
	debug := fs.Bool("debug", cfg.Debug, "show frame timings in the status line")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	path := *configPath
	if *chooseConfig {
		picked, err := config.Pick()
		switch {
		case err == nil:
			path = picked
		case errors.Is(err, zenity.ErrCanceled):
			// Keep whatever -config gave us.
		default:
			return cfg, err
		}
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "targets":
			cfg.Targets = *targets
		case "spread":
			cfg.Spread = *spread
		case "speed":
			cfg.ShuttleSpeed = *speed
		case "threshold":
			cfg.Threshold = *threshold
		case "cue-interval":
			cfg.CueInterval = *cueInterval
		case "volume":
			cfg.CueVolume = *volume
		case "mute":
			cfg.Mute = *mute
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	beeper, err := audio.New(cfg.CueFrequency, cfg.CueDuration, cfg.CueVolume)
	if err != nil {
		log.Printf("audio unavailable, running silent: %v", err)
	}
	beeper.SetMuted(cfg.Mute)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := newGame(cfg, session.New(cfg), beeper)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title(cfg.Title))
		log.Fatal(err)
	}
}

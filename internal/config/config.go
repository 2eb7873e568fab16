package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pongdrift/internal/ai"
)

// Environment variable names.
const (
	EnvDifficulty = "PONGDRIFT_DIFFICULTY"
	EnvMute       = "PONGDRIFT_MUTE"
	EnvTrails     = "PONGDRIFT_TRAILS"
	EnvDataDir    = "PONGDRIFT_DATA_DIR"
	EnvShowFPS    = "PONGDRIFT_SHOW_FPS"
)

// Options holds the startup configuration of the game.
type Options struct {
	Difficulty ai.Difficulty
	Muted      bool
	Trails     bool
	DataDir    string
	Width      int
	Height     int
	Seed       int64
	ShowFPS    bool
}

// DefaultDataDir returns the directory used for the progression file when
// none is configured: <user config dir>/pongdrift, or the working directory.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "pongdrift")
}

// Parse reads options from args, with environment variables supplying defaults.
func Parse(args []string) (Options, error) {
	fs := flag.NewFlagSet("pongdrift", flag.ContinueOnError)

	difficulty := fs.String("difficulty", GetEnv(EnvDifficulty, ai.Challenging.Name), "AI difficulty: Easy, Challenging or Hard")
	muted := fs.Bool("mute", GetEnvBool(EnvMute, false), "start with sound muted")
	trails := fs.Bool("trails", GetEnvBool(EnvTrails, true), "draw the ball trail")
	dataDir := fs.String("data", GetEnv(EnvDataDir, DefaultDataDir()), "directory holding the progression file")
	width := fs.Int("width", 1280, "initial window width")
	height := fs.Int("height", 720, "initial window height")
	seed := fs.Int64("seed", 0, "random seed (0 uses the clock)")
	showFPS := fs.Bool("fps", GetEnvBool(EnvShowFPS, false), "show the frame rate")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	d, ok := ai.Lookup(*difficulty)
	if !ok {
		return Options{}, fmt.Errorf("unknown difficulty %q", *difficulty)
	}
	if *width <= 0 || *height <= 0 {
		return Options{}, fmt.Errorf("invalid window size %dx%d", *width, *height)
	}

	opts := Options{
		Difficulty: d,
		Muted:      *muted,
		Trails:     *trails,
		DataDir:    *dataDir,
		Width:      *width,
		Height:     *height,
		Seed:       *seed,
		ShowFPS:    *showFPS,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, nil
}

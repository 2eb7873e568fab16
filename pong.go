package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"pongdrift/internal/config"
	"pongdrift/internal/game"
	"pongdrift/internal/input"
	"pongdrift/internal/progress"
	"pongdrift/internal/render"
	"pongdrift/internal/sound"
)

const sampleRate = 44100

// Game adapts the world to ebiten's update and draw loop.
type Game struct {
	world    *game.World
	renderer *render.Renderer
	input    *input.Sampler
	showFPS  bool
	last     time.Time
}

func NewGame(opts config.Options, snd game.Sound) *Game {
	rng := rand.New(rand.NewSource(opts.Seed))
	store := progress.Load(progress.FileStorage{Dir: opts.DataDir})

	world := game.NewWorld(game.Options{
		Width:      float64(opts.Width),
		Height:     float64(opts.Height),
		Difficulty: opts.Difficulty,
		Muted:      opts.Muted,
		Trails:     opts.Trails,
		Progress:   store,
		Sound:      snd,
		Rand:       rng,
	})

	g := &Game{
		world:    world,
		renderer: render.New(rand.New(rand.NewSource(opts.Seed + 1))),
		input:    input.New(opts.Width, opts.Height),
		showFPS:  opts.ShowFPS,
	}
	g.input.RematchHit = func(x, y int) bool {
		if g.world.State != game.StatePostmatch {
			return false
		}
		btn := render.RematchButtonBounds(g.world.Width, g.world.Height)
		return x >= btn.Min.X && x < btn.Max.X && y >= btn.Min.Y && y < btn.Max.Y
	}
	return g
}

// Update steps the world by the wall-clock time since the previous tick.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.world.Update(dt, g.input.Sample())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			int(g.world.Width)-150, int(g.world.Height)-20)
	}
}

// Layout tracks the window size so the arena always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	opts, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	snd := sound.NewPlayer(audio.NewContext(sampleRate))

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Pong Drift")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Printf("pong drift: difficulty %s, progress in %s", opts.Difficulty.Name, opts.DataDir)
	if err := ebiten.RunGame(NewGame(opts, snd)); err != nil {
		log.Fatal(err)
	}
}

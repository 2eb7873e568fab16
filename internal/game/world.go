// Package game implements the simulation: world state, physics and collisions,
// match scoring, the game state machine and HUD text.
package game

import (
	"math/rand"

	"pongdrift/internal/ai"
	"pongdrift/internal/entity"
	"pongdrift/internal/physics"
	"pongdrift/internal/progress"
)

// Sound receives audio trigger points. Calls are suppressed while muted.
type Sound interface {
	PaddleHit(rally int, speed float64)
	Score()
}

// Side identifies a paddle.
type Side int

const (
	SidePlayer Side = iota // Left, human
	SideAI                 // Right, computer
)

// Controls are the variables external UI collaborators read and write.
type Controls struct {
	Difficulty ai.Difficulty
	Muted      bool
	Trails     bool
	Gravity    bool
}

// MatchState holds the scores of the current match.
type MatchState struct {
	PlayerScore int
	AIScore     int
	Rally       int
	BestRally   int
	TargetScore int
}

// Effects are the countdown timers behind visual feedback.
type Effects struct {
	ShakeTimer    float64
	ShakeDuration float64
	ShakeStrength float64
	ScorePulse    float64
	RallyPulse    float64
}

type stickyState struct {
	active  bool
	side    Side
	timer   float64
	offsetY float64
}

type pointerState struct {
	active bool
	y      float64
	assist float64
}

// Options configure a new World.
type Options struct {
	Width, Height float64
	Difficulty    ai.Difficulty
	Muted         bool
	Trails        bool
	Progress      *progress.Store
	Sound         Sound
	Rand          *rand.Rand
}

// World is the whole simulation aggregate, owned by the tick driver.
type World struct {
	Width, Height float64

	Player    entity.Paddle
	AI        entity.Paddle
	Ball      entity.Ball
	Wells     [2]entity.GravityWell
	Trail     entity.Trail
	Particles *entity.Particles

	State    State
	Match    MatchState
	Modifier entity.Modifier
	Controls Controls
	Effects  Effects
	HUD      HUD
	Post     PostMatch

	Opponent *ai.Controller
	Progress *progress.Store

	lastModifier  entity.Modifier
	hasModifier   bool
	modifierClock float64

	serveTimer     float64
	serveDirection int
	sticky         stickyState

	pointer   pointerState
	touchSeen bool
	touchMode bool

	splashTime float64

	toast      string
	toastTimer float64

	sound Sound
	rng   *rand.Rand
}

// NewWorld creates a world in the splash state.
func NewWorld(opts Options) *World {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	store := opts.Progress
	if store == nil {
		store = progress.Load(progress.NewMemoryStorage())
	}
	difficulty := opts.Difficulty
	if difficulty.Name == "" {
		difficulty = ai.Challenging
	}

	w := &World{
		Width:  opts.Width,
		Height: opts.Height,
		Player: entity.Paddle{
			X:      PaddleGap,
			Y:      opts.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
			Speed:  PlayerPaddleSpeed,
		},
		AI: entity.Paddle{
			X:      opts.Width - PaddleGap - PaddleWidth,
			Y:      opts.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
			Speed:  AIPaddleSpeed,
		},
		Ball: entity.Ball{
			X:      opts.Width / 2,
			Y:      opts.Height / 2,
			VX:     BaseBallSpeed,
			Radius: entity.BallRadius,
		},
		Wells: [2]entity.GravityWell{
			{Strength: WellStrength, Softening: WellSoftening},
			{Strength: WellStrength, Softening: WellSoftening},
		},
		Particles: entity.NewParticles(MaxParticles),
		State:     StateSplash,
		Match:     MatchState{TargetScore: TargetScore},
		Modifier:  entity.CurveDrift,
		Controls: Controls{
			Difficulty: difficulty,
			Muted:      opts.Muted,
			Trails:     opts.Trails,
			Gravity:    true,
		},
		Effects:        Effects{ShakeDuration: ShakeDuration},
		Opponent:       ai.NewController(difficulty, opts.Height/2, rng),
		Progress:       store,
		serveDirection: 1,
		sound:          opts.Sound,
		rng:            rng,
	}
	w.Resize(opts.Width, opts.Height)
	w.resetBall(w.serveDirection)
	w.refreshHUD()
	return w
}

// Resize recomputes playfield bounds, paddle columns and well positions.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
	w.touchMode = w.touchSeen || width <= MobileWidth

	w.Player.X = PaddleGap
	w.AI.X = width - PaddleGap - PaddleWidth
	w.Player.ClampY(height)
	w.AI.ClampY(height)

	w.Wells[0].X = width * 0.32
	w.Wells[0].Y = height * 0.38
	w.Wells[1].X = width * 0.68
	w.Wells[1].Y = height * 0.62
}

func (w *World) paddle(side Side) *entity.Paddle {
	if side == SidePlayer {
		return &w.Player
	}
	return &w.AI
}

// ServeTimer returns the seconds left before the pending serve moves.
func (w *World) ServeTimer() float64 { return w.serveTimer }

// SplashTime returns the seconds elapsed in the intro, including its fade.
func (w *World) SplashTime() float64 { return w.splashTime }

// TouchMode reports whether touch control hints should be shown.
func (w *World) TouchMode() bool { return w.touchMode }

// Cosmetic returns the active cosmetic.
func (w *World) Cosmetic() progress.Cosmetic { return w.Progress.Cosmetic() }

// IntroActive reports whether the splash animation or its fade is still visible.
func (w *World) IntroActive() bool { return w.splashTime < SplashEnd }

func (w *World) showToast(message string) {
	w.toast = message
	w.toastTimer = ToastDuration
}

func (w *World) playPaddleHit(rally int, speed float64) {
	if w.sound != nil && !w.Controls.Muted {
		w.sound.PaddleHit(rally, speed)
	}
}

func (w *World) playScore() {
	if w.sound != nil && !w.Controls.Muted {
		w.sound.Score()
	}
}

func decay(timer *float64, dt float64) {
	if *timer > 0 {
		*timer = physics.Clamp(*timer-dt, 0, *timer)
	}
}

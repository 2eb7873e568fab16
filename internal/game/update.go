package game

import (
	"math"

	"pongdrift/internal/ai"
	"pongdrift/internal/physics"
)

// Update advances the world by one tick. dt is clamped to [0, MaxTickDt].
// Order: latched input, simulation, particle and timer decay, HUD refresh.
func (w *World) Update(dt float64, in Input) {
	dt = physics.Clamp(dt, 0, MaxTickDt)

	w.applyControls(in)
	w.applyPointer(in)
	w.applyActions(in)

	if w.State != StateSplash && w.splashTime < SplashEnd {
		w.splashTime = math.Min(SplashEnd, w.splashTime+dt)
	}

	switch w.State {
	case StatePlaying:
		w.updatePlayer(dt, in)
		w.Opponent.Update(dt, &w.AI, w.Ball.Y, w.Height)
		w.updateBall(dt)
	case StateSplash:
		w.Ball.X = w.Width / 2
		w.Ball.Y = w.Height / 2
		w.splashTime += dt
		if w.splashTime >= SplashEnd {
			w.fire(TriggerSplashDone)
		}
	}

	w.Particles.Update(dt)

	decay(&w.Effects.ShakeTimer, dt)
	decay(&w.Effects.ScorePulse, dt)
	decay(&w.Effects.RallyPulse, dt)
	decay(&w.pointer.assist, dt)
	if w.toastTimer > 0 {
		decay(&w.toastTimer, dt)
		if w.toastTimer == 0 {
			w.toast = ""
		}
	}

	w.refreshHUD()
}

// applyControls handles resize and the external control variables.
func (w *World) applyControls(in Input) {
	if in.Width > 0 && in.Height > 0 &&
		(float64(in.Width) != w.Width || float64(in.Height) != w.Height) {
		w.Resize(float64(in.Width), float64(in.Height))
	}
	if in.Difficulty != "" {
		if d, ok := ai.Lookup(in.Difficulty); ok && d != w.Controls.Difficulty {
			w.Controls.Difficulty = d
			w.Opponent.SetDifficulty(d, w.Height/2)
			w.showToast("Difficulty: " + d.Name)
		}
	}
	if in.ToggleMute {
		w.Controls.Muted = !w.Controls.Muted
	}
	if in.ToggleTrails {
		w.Controls.Trails = !w.Controls.Trails
	}
}

// applyPointer latches pointer position and its follow grace window.
func (w *World) applyPointer(in Input) {
	p := in.Pointer
	if in.TapTouch && !w.touchSeen {
		w.touchSeen = true
		w.touchMode = true
	}

	switch {
	case p.Released:
		w.pointer = pointerState{}
	case p.Left:
		w.pointer.active = false
	case p.Moved:
		if p.Touch && !in.Tap && w.State != StatePlaying {
			return
		}
		w.pointer.active = true
		w.pointer.y = p.Y
		w.pointer.assist = MouseAssistTime
		if p.Touch {
			w.pointer.assist = TouchAssistTime
		}
	}
}

// applyActions maps discrete inputs onto state machine triggers.
func (w *World) applyActions(in Input) {
	if in.ToggleGravity && w.State == StatePlaying {
		w.Controls.Gravity = !w.Controls.Gravity
		w.showToast("Gravity " + onOff(w.Controls.Gravity))
	}

	if w.State == StatePostmatch && (in.Enter || in.Rematch) {
		w.fire(TriggerRematch)
		return
	}

	if in.Space {
		switch w.State {
		case StateSplash:
			w.skipSplash()
		case StatePlaying:
			w.fire(TriggerPause)
		case StatePaused:
			w.fire(TriggerResume)
		}
	} else if in.Enter {
		if w.State == StateSplash {
			w.skipSplash()
		}
	} else if in.Tap {
		switch w.State {
		case StateSplash:
			w.skipSplash()
		case StatePaused:
			w.fire(TriggerResume)
		case StatePlaying:
			if in.TapTouch && in.Touches >= 2 {
				w.fire(TriggerPause)
				w.showToast("Paused")
			}
		}
	}
}

// skipSplash jumps the intro to its fade point and starts play; the fade
// finishes over the first second of the match.
func (w *World) skipSplash() {
	w.splashTime = math.Max(w.splashTime, SplashFadeStart)
	w.fire(TriggerSplashDone)
}

// updatePlayer moves the player paddle from keys, falling back to the
// pointer while its grace window is open.
func (w *World) updatePlayer(dt float64, in Input) {
	dir := 0.0
	if in.Up {
		dir--
	}
	if in.Down {
		dir++
	}

	if dir != 0 {
		w.Player.Y += dir * w.Player.Speed * dt
		w.pointer.assist = 0
	} else if w.pointer.active && w.pointer.assist > 0 {
		w.Player.Y = w.pointer.y - w.Player.Height/2
	}
	w.Player.ClampY(w.Height)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

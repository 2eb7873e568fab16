package game

import (
	"fmt"

	"pongdrift/internal/physics"
)

// HUD is the text the core publishes for display each tick.
type HUD struct {
	Modifier   string
	Rally      string
	RallyScale float64
	Progress   string

	Toast        string
	ToastVisible bool

	// OverlayVisible shows the HUD panel and settings; only while paused or after a match.
	OverlayVisible bool
	PostVisible    bool
	Settings       string
}

func (w *World) refreshHUD() {
	h := &w.HUD
	h.Modifier = "Modifier: " + w.Modifier.String()
	h.Rally = fmt.Sprintf("Rally %d", w.Match.Rally)
	h.RallyScale = 1 + physics.Clamp(w.Effects.RallyPulse*0.45, 0, 0.3)
	h.Progress = fmt.Sprintf("Level %d | %d XP | %s", w.Progress.Level(), w.Progress.XP(), w.Cosmetic().Name)
	h.Toast = w.toast
	h.ToastVisible = w.toastTimer > 0
	h.OverlayVisible = w.State == StatePaused || w.State == StatePostmatch
	h.PostVisible = w.State == StatePostmatch
	h.Settings = fmt.Sprintf("Difficulty %s [1/2/3] | Mute %s [M] | Trails %s [T]",
		w.Controls.Difficulty.Name, onOff(w.Controls.Muted), onOff(w.Controls.Trails))
}

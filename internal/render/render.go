// Package render draws the world with ebiten: playfield through a shaking,
// zooming camera, then the HUD overlays in screen space.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pongdrift/internal/entity"
	"pongdrift/internal/game"
	"pongdrift/internal/physics"
)

const (
	glowRadius   = 120
	spriteRadius = 64
	labelWidth   = 1024
	labelHeight  = 20

	settingsPanelWidth = 500
	controlsHint       = "Drag to move | Tap resume | Two-finger tap pause | G / Space / Enter"
)

var (
	backdrop     = color.NRGBA{5, 8, 14, 255}
	textColor    = color.NRGBA{234, 242, 255, 242}
	dimText      = color.NRGBA{255, 255, 255, 209}
	accentColor  = color.NRGBA{125, 214, 255, 242}
	warningColor = color.NRGBA{255, 147, 147, 230}
	panelColor   = color.NRGBA{10, 16, 28, 200}
	shadeColor   = color.NRGBA{5, 8, 14, 255}

	glowStops = []stop{
		{0, color.NRGBA{125, 214, 255, 235}},
		{0.083, color.NRGBA{125, 214, 255, 235}},
		{0.404, color.NRGBA{125, 214, 255, 87}},
		{1, color.NRGBA{125, 214, 255, 0}},
	}
	ballStops = []stop{
		{0, color.NRGBA{255, 255, 255, 255}},
		{0.45, color.NRGBA{214, 233, 255, 242}},
		{1, color.NRGBA{120, 160, 220, 230}},
	}
)

// Renderer owns the offscreen surfaces used to draw frames.
type Renderer struct {
	scene *ebiten.Image
	label *ebiten.Image
	glow  *ebiten.Image
	ball  *ebiten.Image
	rng   *rand.Rand
}

// New creates a Renderer. rng drives screen-shake jitter.
func New(rng *rand.Rand) *Renderer {
	return &Renderer{rng: rng}
}

func (r *Renderer) ensureSurfaces(width, height int) {
	if r.scene == nil || r.scene.Bounds().Dx() != width || r.scene.Bounds().Dy() != height {
		if r.scene != nil {
			r.scene.Deallocate()
		}
		r.scene = ebiten.NewImage(width, height)
	}
	if r.label == nil {
		r.label = ebiten.NewImage(labelWidth, labelHeight)
		r.glow = ebiten.NewImageFromImage(radialSprite(glowRadius, 0, 0, 1, glowStops))
		r.ball = ebiten.NewImageFromImage(radialSprite(spriteRadius, -0.35, -0.45, 1.5, ballStops))
	}
}

// Draw renders one frame of w onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, w *game.World) {
	width, height := int(w.Width), int(w.Height)
	if width <= 0 || height <= 0 {
		return
	}
	r.ensureSurfaces(width, height)

	r.scene.Clear()
	r.drawBackground(w)
	r.drawWells(w)
	r.drawTrail(w)
	r.drawParticles(w)
	r.drawPaddles(w)
	r.drawBall(w)
	r.drawScore(w)
	r.drawStatus(w)
	r.drawServe(w)
	r.drawSplash(w)
	r.drawPause(w)

	cam := NewCamera(w.Match.Rally, w.Ball.Speed(), w.Effects, r.rng)
	op := &ebiten.DrawImageOptions{GeoM: cam.GeoM(w.Width, w.Height)}
	op.Filter = ebiten.FilterLinear
	screen.Fill(backdrop)
	screen.DrawImage(r.scene, op)

	r.drawHUD(screen, w)
}

func (r *Renderer) drawBackground(w *game.World) {
	intensity := physics.Clamp(float64(w.Match.Rally)/14, 0, 1)
	from := color.NRGBA{
		uint8(14 + intensity*18), uint8(20 + intensity*12), uint8(36 + intensity*8), 255,
	}
	to := color.NRGBA{
		uint8(6 + intensity*6), uint8(10 + intensity*8), uint8(18 + intensity*14), 255,
	}

	const strips = 32
	stripWidth := w.Width / strips
	for i := 0; i < strips; i++ {
		c := lerpColor(from, to, float64(i)/(strips-1))
		vector.DrawFilledRect(r.scene, float32(float64(i)*stripWidth), 0,
			float32(stripWidth+1), float32(w.Height), c, false)
	}

	dash := color.NRGBA{255, 255, 255, 41}
	x := float32(w.Width / 2)
	for y := 30.0; y < w.Height-30; y += 26 {
		end := min(y+12, w.Height-30)
		vector.StrokeLine(r.scene, x, float32(y), x, float32(end), 2, dash, false)
	}
}

func (r *Renderer) drawWells(w *game.World) {
	if !w.Controls.Gravity {
		return
	}
	for _, well := range w.Wells {
		r.drawSprite(r.scene, r.glow, glowRadius, well.X, well.Y, glowRadius, 1)
		vector.DrawFilledCircle(r.scene, float32(well.X), float32(well.Y), 8,
			color.NRGBA{180, 240, 255, 235}, true)
	}
}

func (r *Renderer) drawTrail(w *game.World) {
	n := w.Trail.Len()
	if !w.Controls.Trails || n == 0 {
		return
	}
	speedIntensity := physics.Clamp(w.Ball.Speed()/980, 0.2, 1)
	trailColor := w.Cosmetic().TrailColor
	for i := 0; i < n; i++ {
		p := w.Trail.At(i)
		alpha := float64(i+1) / float64(n)
		radius := w.Ball.Radius * (0.42 + alpha*0.45)
		vector.DrawFilledCircle(r.scene, float32(p.X), float32(p.Y), float32(radius),
			withAlpha(trailColor, alpha*0.25*speedIntensity), true)
	}
}

func (r *Renderer) drawParticles(w *game.World) {
	for _, p := range w.Particles.Items() {
		alpha := p.Alpha()
		vector.DrawFilledCircle(r.scene, float32(p.X), float32(p.Y), float32(p.Size*(0.45+alpha)),
			withAlpha(p.Color, alpha), true)
	}
}

func (r *Renderer) drawPaddles(w *game.World) {
	c := w.Cosmetic()
	for _, p := range []struct {
		paddle entity.Paddle
		clr    color.NRGBA
	}{
		{w.Player, c.PlayerColor},
		{w.AI, c.AIColor},
	} {
		vector.DrawFilledRect(r.scene, float32(p.paddle.X), float32(p.paddle.Y),
			float32(p.paddle.Width), float32(p.paddle.Height), p.clr, false)
	}
}

func (r *Renderer) drawBall(w *game.World) {
	b := w.Ball
	r.drawSprite(r.scene, r.ball, spriteRadius, b.X, b.Y, b.Radius, 1)
	vector.DrawFilledCircle(r.scene, float32(b.X-b.Radius*0.35), float32(b.Y-b.Radius*0.45),
		float32(b.Radius*0.22), color.NRGBA{255, 255, 255, 153}, true)
}

func (r *Renderer) drawScore(w *game.World) {
	pulse := w.Effects.ScorePulse
	scale := 3 * (1 + physics.Clamp(pulse*0.5, 0, 0.24))
	alpha := 0.9 + physics.Clamp(pulse*0.25, 0, 0.1)
	label := fmt.Sprintf("%d  %d", w.Match.PlayerScore, w.Match.AIScore)
	r.drawLabel(r.scene, label, w.Width/2, 62, scale, withAlpha(color.NRGBA{240, 246, 255, 255}, alpha), 0.5)
}

func (r *Renderer) drawStatus(w *game.World) {
	c := accentColor
	if !w.Controls.Gravity {
		c = warningColor
	}
	r.drawLabel(r.scene, "Gravity "+onOff(w.Controls.Gravity), w.Width-24, 32, 1, c, 1)
}

func (r *Renderer) drawServe(w *game.World) {
	if w.ServeTimer() <= 0 {
		return
	}
	r.drawLabel(r.scene, "Serve incoming...", w.Width/2, w.Height*0.55, 1, color.NRGBA{255, 255, 255, 178}, 0.5)
}

func (r *Renderer) drawSplash(w *game.World) {
	if !w.IntroActive() {
		return
	}
	f := Splash(w.SplashTime(), w.Width, w.Height)
	cx, cy := w.Width/2, w.Height/2

	vector.DrawFilledRect(r.scene, 0, 0, float32(w.Width), float32(w.Height), withAlpha(shadeColor, 0.72*f.Alpha), false)

	r.drawSprite(r.scene, r.ball, spriteRadius, f.Ball.X, f.Ball.Y, f.Radius, 0.95*f.Alpha)
	vector.DrawFilledCircle(r.scene, float32(f.Ball.X-f.Radius*0.35), float32(f.Ball.Y-f.Radius*0.45),
		float32(f.Radius*0.18), withAlpha(color.NRGBA{255, 255, 255, 255}, 0.55*f.Alpha), true)

	r.drawLabel(r.scene, "Pong Drift", cx, cy*0.84, 5, withAlpha(textColor, f.Alpha), 0.5)
	r.drawLabel(r.scene, "Click or Press Space to Start", cx, cy*1.05, 1, withAlpha(accentColor, f.Alpha), 0.5)
	r.drawLabel(r.scene, "Use Mouse or W/S | Toggle Gravity with G", cx, cy*1.16, 1, withAlpha(dimText, 0.85*f.Alpha), 0.5)
}

func (r *Renderer) drawPause(w *game.World) {
	if w.State != game.StatePaused {
		return
	}
	vector.DrawFilledRect(r.scene, 0, 0, float32(w.Width), float32(w.Height), withAlpha(shadeColor, 0.55), false)
	cx := w.Width / 2
	r.drawLabel(r.scene, "Paused", cx, w.Height*0.5, 2, textColor, 0.5)

	hints := []string{
		"Press Space to Resume",
		"Mouse or W/S (Arrow keys) to move paddle",
		"Press G to toggle gravity",
	}
	if w.TouchMode() {
		hints = []string{
			"Tap to Resume",
			"Drag finger up/down to move paddle",
			"Two-finger tap to Pause during play",
		}
	}
	for i, h := range hints {
		r.drawLabel(r.scene, h, cx, w.Height*(0.56+0.04*float64(i)), 1, dimText, 0.5)
	}
}

// drawHUD draws the screen-space overlays the camera must not move.
func (r *Renderer) drawHUD(screen *ebiten.Image, w *game.World) {
	hud := w.HUD

	if hud.ToastVisible && hud.Toast != "" {
		width := float64(text.BoundString(basicfont.Face7x13, hud.Toast).Dx()) + 32
		vector.DrawFilledRect(screen, float32(w.Width/2-width/2), 84, float32(width), 28, panelColor, false)
		r.drawLabel(screen, hud.Toast, w.Width/2, 103, 1, textColor, 0.5)
	}

	if hud.OverlayVisible {
		vector.DrawFilledRect(screen, 16, 16, 320, 92, panelColor, false)
		r.drawLabel(screen, hud.Modifier, 28, 38, 1, accentColor, 0)
		r.drawLabel(screen, hud.Rally, 28, 70, 2*hud.RallyScale, textColor, 0)
		r.drawLabel(screen, hud.Progress, 28, 96, 1, dimText, 0)

		top := float32(w.Height - 96)
		vector.DrawFilledRect(screen, 16, top, settingsPanelWidth, 80, panelColor, false)
		r.drawLabel(screen, "Pong Drift", 28, float64(top)+24, 2, textColor, 0)
		r.drawLabel(screen, hud.Settings, 28, float64(top)+48, 1, dimText, 0)
		r.drawLabel(screen, controlsHint, 28, float64(top)+66, 1, withAlpha(dimText, 0.7), 0)
	}

	if hud.PostVisible {
		r.drawPostMatch(screen, w)
	}
}

// RematchButtonBounds returns the screen rectangle of the rematch button.
func RematchButtonBounds(width, height float64) image.Rectangle {
	cx, cy := int(width/2), int(height/2)
	return image.Rect(cx-70, cy+56, cx+70, cy+88)
}

func (r *Renderer) drawPostMatch(screen *ebiten.Image, w *game.World) {
	cx, cy := w.Width/2, w.Height/2
	vector.DrawFilledRect(screen, float32(cx-200), float32(cy-110), 400, 220, color.NRGBA{12, 20, 34, 235}, false)

	post := w.Post
	r.drawLabel(screen, post.Title, cx, cy-62, 3, textColor, 0.5)
	r.drawLabel(screen, post.Summary, cx, cy-22, 1, dimText, 0.5)
	r.drawLabel(screen, post.XPText, cx, cy+2, 1, accentColor, 0.5)
	r.drawLabel(screen, post.Unlocks, cx, cy+26, 1, dimText, 0.5)

	btn := RematchButtonBounds(w.Width, w.Height)
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()),
		color.NRGBA{125, 214, 255, 220}, false)
	r.drawLabel(screen, "Rematch", cx, float64(btn.Min.Y)+21, 1, backdrop, 0.5)
}

// drawSprite draws a square sprite of the given radius centered at (x, y),
// scaled to radius and faded by alpha.
func (r *Renderer) drawSprite(dst, sprite *ebiten.Image, spriteR int, x, y, radius, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(spriteR), -float64(spriteR))
	op.GeoM.Scale(radius/float64(spriteR), radius/float64(spriteR))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, op)
}

// drawLabel draws s with its baseline at y. align is the fraction of the
// text width placed left of x: 0 left, 0.5 centered, 1 right.
func (r *Renderer) drawLabel(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align float64) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	width := float64(bounds.Dx())

	if scale == 1 {
		text.Draw(dst, s, face, int(x-width*align), int(y), clr)
		return
	}

	r.label.Clear()
	text.Draw(r.label, s, face, -bounds.Min.X, -bounds.Min.Y, color.White)
	src := r.label.SubImage(image.Rect(0, 0, min(bounds.Dx(), labelWidth), min(bounds.Dy(), labelHeight))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-width*align, float64(bounds.Min.Y))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

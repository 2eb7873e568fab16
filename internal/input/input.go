// Package input samples keyboard, mouse and touch state from ebiten into a
// game.Input snapshot once per tick.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pongdrift/internal/ai"
	"pongdrift/internal/game"
)

// Sampler builds one game.Input per tick.
type Sampler struct {
	// RematchHit reports whether a press at (x, y) lands on an active
	// rematch button.
	RematchHit func(x, y int) bool

	mouse mouseTracker
	touch touchTracker

	width, height int
	resized       bool

	justPressed []ebiten.TouchID
	held        []ebiten.TouchID
}

// New returns a Sampler for a playfield of the given size.
func New(width, height int) *Sampler {
	return &Sampler{width: width, height: height, touch: touchTracker{id: -1}}
}

// SetSize records the current layout size. A change is reported on the
// next Sample.
func (s *Sampler) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.resized = true
}

// Sample reads device state for the current tick.
func (s *Sampler) Sample() game.Input {
	var in game.Input

	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Space = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.ToggleGravity = inpututil.IsKeyJustPressed(ebiten.KeyG)
	in.ToggleMute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.ToggleTrails = inpututil.IsKeyJustPressed(ebiten.KeyT)

	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if inpututil.IsKeyJustPressed(key) {
			in.Difficulty = ai.Presets[i].Name
		}
	}

	if s.resized {
		in.Width, in.Height = s.width, s.height
		s.resized = false
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Pointer = s.mouse.step(x, y, s.width, s.height, clicked)
	if clicked {
		s.press(&in, x, y, false, 1)
	}

	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	s.held = ebiten.AppendTouchIDs(s.held[:0])
	frame := touchFrame{pressed: len(s.justPressed) > 0, held: len(s.held)}
	if frame.pressed {
		frame.pressedID = s.justPressed[0]
	}
	if s.touch.active {
		frame.x, frame.y = ebiten.TouchPosition(s.touch.id)
		frame.released = inpututil.IsTouchJustReleased(s.touch.id)
	} else if frame.pressed {
		frame.x, frame.y = ebiten.TouchPosition(frame.pressedID)
	}
	if p, ok := s.touch.step(frame); ok {
		in.Pointer = p
	}
	if frame.pressed {
		px, py := ebiten.TouchPosition(frame.pressedID)
		s.press(&in, px, py, true, frame.held)
	}

	return in
}

func (s *Sampler) press(in *game.Input, x, y int, touch bool, touches int) {
	if s.RematchHit != nil && s.RematchHit(x, y) {
		in.Rematch = true
		return
	}
	in.Tap = true
	in.TapTouch = in.TapTouch || touch
	in.Touches = max(in.Touches, touches)
}

// mouseTracker turns raw cursor positions into pointer edges.
type mouseTracker struct {
	x, y   int
	seen   bool
	inside bool
}

func (m *mouseTracker) step(x, y, width, height int, pressed bool) game.Pointer {
	var p game.Pointer
	if x < 0 || y < 0 || x >= width || y >= height {
		if m.inside {
			p.Left = true
		}
		m.inside = false
		return p
	}

	moved := !m.seen || x != m.x || y != m.y
	m.x, m.y = x, y
	m.seen = true
	m.inside = true
	if moved || pressed {
		p.Moved = true
		p.Y = float64(y)
	}
	return p
}

// touchFrame is the raw touch state for one tick.
type touchFrame struct {
	pressed   bool
	pressedID ebiten.TouchID
	held      int

	// Position of the tracked touch, or of the new one if none is tracked.
	x, y     int
	released bool
}

// touchTracker follows the first finger down until it lifts.
type touchTracker struct {
	id     ebiten.TouchID
	active bool
	y      int
}

// step reports the tracked finger's pointer activity. ok is false when
// there is no touch activity this tick.
func (t *touchTracker) step(f touchFrame) (game.Pointer, bool) {
	switch {
	case t.active && f.released:
		t.active = false
		t.id = -1
		return game.Pointer{Touch: true, Released: true}, true
	case t.active:
		if f.y == t.y && !f.pressed {
			return game.Pointer{}, false
		}
		t.y = f.y
		return game.Pointer{Moved: true, Y: float64(f.y), Touch: true}, true
	case f.pressed:
		t.id = f.pressedID
		t.active = true
		t.y = f.y
		return game.Pointer{Moved: true, Y: float64(f.y), Touch: true}, true
	}
	return game.Pointer{}, false
}

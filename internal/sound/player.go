package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays effect tones on an audio context.
type Player struct {
	ctx    *audio.Context
	active []*audio.Player
}

// NewPlayer returns a Player on ctx.
func NewPlayer(ctx *audio.Context) *Player {
	return &Player{ctx: ctx}
}

// PaddleHit plays the paddle hit tones.
func (p *Player) PaddleHit(rally int, speed float64) {
	p.play(PaddleHitTones(rally, speed))
}

// Score plays the score sting.
func (p *Player) Score() {
	p.play(ScoreTones())
}

func (p *Player) play(tones []Tone) {
	p.reap()
	for _, t := range tones {
		pcm := Synthesize(t, p.ctx.SampleRate())
		if pcm == nil {
			continue
		}
		pl := p.ctx.NewPlayerFromBytes(pcm)
		pl.Play()
		p.active = append(p.active, pl)
	}
}

// reap closes players that have finished.
func (p *Player) reap() {
	live := p.active[:0]
	for _, pl := range p.active {
		if pl.IsPlaying() {
			live = append(live, pl)
			continue
		}
		if err := pl.Close(); err != nil {
			log.Printf("sound: close player: %v", err)
		}
	}
	clear(p.active[len(live):])
	p.active = live
}

package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"pongdrift/internal/entity"
	"pongdrift/internal/progress"
)

var (
	playerScoreColor = color.NRGBA{255, 214, 155, 255}
	aiScoreColor     = color.NRGBA{125, 214, 255, 255}
)

// PostMatch is the result summary shown after a match.
type PostMatch struct {
	Winner   Side
	XPGained int
	Result   progress.Result

	Title   string
	Summary string
	XPText  string
	Unlocks string
}

// XPAward returns the experience earned for a finished match.
func XPAward(playerScore, bestRally int, playerWon bool) int {
	bonus := 14
	if playerWon {
		bonus = 36
	}
	return 28 + playerScore*8 + bestRally*4 + bonus
}

// startMatch resets scores and effects, picks a fresh modifier and serves toward the AI.
func (w *World) startMatch() {
	w.Match = MatchState{TargetScore: TargetScore}
	w.Trail.Clear()
	w.Particles.Clear()
	w.Opponent.Reset(w.Height / 2)
	w.Effects.ScorePulse = 0
	w.Effects.RallyPulse = 0
	w.Post = PostMatch{}

	w.Modifier = entity.ChooseModifier(w.rng, w.lastModifier, w.hasModifier)
	w.lastModifier = w.Modifier
	w.hasModifier = true
	w.applyModifierSetup()

	w.startServe(1)
	w.showToast("New modifier: " + w.Modifier.String())
}

func (w *World) applyModifierSetup() {
	w.modifierClock = 0
	w.sticky = stickyState{}
	w.Ball.Radius = w.Modifier.BallRadius()
}

// startServe centers the ball and holds it for ServeDelay before it moves
// in direction (+1 right, -1 left).
func (w *World) startServe(direction int) {
	w.serveDirection = direction
	w.serveTimer = ServeDelay
	w.sticky = stickyState{}
	w.resetBall(direction)
}

func (w *World) resetBall(direction int) {
	b := &w.Ball
	b.X = w.Width / 2
	b.Y = w.Height / 2
	angle := (w.rng.Float64()*2*ServeAngleSpread - ServeAngleSpread) * math.Pi
	b.VX = math.Cos(angle) * BaseBallSpeed * float64(direction)
	b.VY = math.Sin(angle) * BaseBallSpeed
	b.Radius = w.Modifier.BallRadius()
}

// scorePoint credits scorer, fires score effects and either ends the match or
// serves toward the scorer's opponent.
func (w *World) scorePoint(scorer Side) {
	burst := aiScoreColor
	if scorer == SidePlayer {
		w.Match.PlayerScore++
		burst = playerScoreColor
	} else {
		w.Match.AIScore++
	}

	w.playScore()
	w.Effects.ScorePulse = ScorePulseTime
	w.Effects.ShakeTimer = ScoreShakeTime
	w.Effects.ShakeStrength = ScoreShakeStrength
	w.Particles.Spawn(w.rng, w.Ball.X, w.Ball.Y, 22, 220, burst)

	w.Match.Rally = 0

	if w.Match.PlayerScore >= w.Match.TargetScore || w.Match.AIScore >= w.Match.TargetScore {
		winner := SideAI
		if w.Match.PlayerScore > w.Match.AIScore {
			winner = SidePlayer
		}
		w.endMatch(winner)
		return
	}

	if scorer == SidePlayer {
		w.startServe(-1)
	} else {
		w.startServe(1)
	}
}

// endMatch moves to postmatch, awards XP and composes the result card.
func (w *World) endMatch(winner Side) {
	if !w.fire(TriggerMatchWon) {
		return
	}
	w.serveTimer = 0

	gain := XPAward(w.Match.PlayerScore, w.Match.BestRally, winner == SidePlayer)
	result, err := w.Progress.Gain(gain)
	if err != nil {
		log.Printf("progress: %v", err)
	}

	title := "Defeat"
	if winner == SidePlayer {
		title = "Victory"
	}
	unlocks := "Current cosmetic: " + w.Cosmetic().Name
	if len(result.Unlocked) > 0 {
		unlocks = "Unlocked: " + strings.Join(result.Unlocked, ", ")
	}

	w.Post = PostMatch{
		Winner:   winner,
		XPGained: gain,
		Result:   result,
		Title:    title,
		Summary:  fmt.Sprintf("Score %d-%d | Best rally %d", w.Match.PlayerScore, w.Match.AIScore, w.Match.BestRally),
		XPText:   fmt.Sprintf("+%d XP | Level %d", gain, result.Level),
		Unlocks:  unlocks,
	}
}

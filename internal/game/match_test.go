package game

import (
	"testing"

	"pongdrift/internal/entity"
)

func TestXPAward(t *testing.T) {
	tests := []struct {
		player, best int
		won          bool
		want         int
	}{
		{7, 12, true, 168},
		{0, 0, false, 42},
		{3, 5, false, 28 + 24 + 20 + 14},
	}
	for _, tt := range tests {
		if got := XPAward(tt.player, tt.best, tt.won); got != tt.want {
			t.Errorf("XPAward(%d, %d, %v) = %d, want %d", tt.player, tt.best, tt.won, got, tt.want)
		}
	}
}

func TestLeftExitScoresForAIOnce(t *testing.T) {
	w, snd := newTestWorld(t)
	startPlaying(t, w)
	w.Match.Rally = 4

	w.Ball.X, w.Ball.Y = -20, 360
	w.Ball.VX, w.Ball.VY = -300, 0
	w.Update(0.016, Input{})

	if w.Match.AIScore != 1 || w.Match.PlayerScore != 0 {
		t.Fatalf("score %d-%d, want 0-1", w.Match.PlayerScore, w.Match.AIScore)
	}
	if w.Match.Rally != 0 {
		t.Errorf("Rally = %d, want 0", w.Match.Rally)
	}
	if w.Ball.VX <= 0 || w.ServeTimer() <= 0 {
		t.Errorf("expected a pending serve toward the AI, VX=%v timer=%v", w.Ball.VX, w.ServeTimer())
	}
	if snd.scores != 1 || w.Effects.ScorePulse <= 0 || w.Effects.ShakeStrength != ScoreShakeStrength {
		t.Errorf("score effects missing: sound=%d pulse=%v", snd.scores, w.Effects.ScorePulse)
	}

	for i := 0; i < 10; i++ {
		w.Update(0.016, Input{})
	}
	if w.Match.AIScore != 1 {
		t.Errorf("AIScore = %d after serve hold, want 1", w.Match.AIScore)
	}
}

func TestRightExitScoresForPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	startPlaying(t, w)

	w.Ball.X, w.Ball.Y = w.Width+20, 360
	w.Ball.VX, w.Ball.VY = 300, 0
	w.Update(0.016, Input{})

	if w.Match.PlayerScore != 1 || w.Match.AIScore != 0 {
		t.Fatalf("score %d-%d, want 1-0", w.Match.PlayerScore, w.Match.AIScore)
	}
	if w.Ball.VX >= 0 {
		t.Errorf("serve VX = %v, want toward the player", w.Ball.VX)
	}
}

func TestMatchEndAwardsXPOnce(t *testing.T) {
	w, _ := newTestWorld(t)
	startPlaying(t, w)
	w.Match.PlayerScore = 6
	w.Match.AIScore = 3
	w.Match.BestRally = 12

	w.Ball.X, w.Ball.Y = w.Width+20, 360
	w.Ball.VX, w.Ball.VY = 300, 0
	w.Update(0.016, Input{})

	if w.State != StatePostmatch {
		t.Fatalf("State = %v, want postmatch", w.State)
	}
	if w.Progress.XP() != 168 || w.Progress.Level() != 2 {
		t.Errorf("XP=%d level=%d, want 168 / 2", w.Progress.XP(), w.Progress.Level())
	}
	post := w.Post
	if post.Winner != SidePlayer || post.XPGained != 168 || post.Title != "Victory" {
		t.Errorf("post = %+v", post)
	}
	if post.Summary != "Score 7-3 | Best rally 12" || post.XPText != "+168 XP | Level 2" {
		t.Errorf("post text = %q / %q", post.Summary, post.XPText)
	}
	if post.Unlocks != "Current cosmetic: Nebula Classic" {
		t.Errorf("Unlocks = %q", post.Unlocks)
	}
	if !w.HUD.PostVisible || !w.HUD.OverlayVisible {
		t.Error("post-match card should be visible")
	}

	for i := 0; i < 60; i++ {
		w.Update(0.033, Input{Space: true, Tap: true})
	}
	if w.State != StatePostmatch || w.Progress.XP() != 168 {
		t.Errorf("state=%v xp=%d after idle postmatch ticks", w.State, w.Progress.XP())
	}
}

func TestMatchLossAndUnlocks(t *testing.T) {
	w, _ := newTestWorld(t)
	if _, err := w.Progress.Gain(270); err != nil {
		t.Fatal(err)
	}
	startPlaying(t, w)
	w.Match.AIScore = 6
	w.Match.PlayerScore = 2
	w.Match.BestRally = 3

	w.Ball.X, w.Ball.Y = -20, 360
	w.Ball.VX, w.Ball.VY = -300, 0
	w.Update(0.016, Input{})

	if w.State != StatePostmatch || w.Post.Title != "Defeat" {
		t.Fatalf("state=%v title=%q", w.State, w.Post.Title)
	}
	gain := XPAward(2, 3, false)
	if w.Post.XPGained != gain || w.Progress.XP() != 270+gain {
		t.Errorf("gain=%d xp=%d", w.Post.XPGained, w.Progress.XP())
	}
	if w.Post.Unlocks != "Unlocked: Solar Flare" {
		t.Errorf("Unlocks = %q", w.Post.Unlocks)
	}
}

func TestRematchResetsScores(t *testing.T) {
	for name, in := range map[string]Input{
		"enter":           {Enter: true},
		"button":          {Rematch: true},
		"space and enter": {Space: true, Enter: true},
	} {
		t.Run(name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			startPlaying(t, w)
			w.Match.PlayerScore = 6
			w.Match.AIScore = 5
			w.scorePoint(SidePlayer)
			if w.State != StatePostmatch {
				t.Fatalf("State = %v", w.State)
			}

			w.Update(0.016, in)
			if w.State != StatePlaying {
				t.Fatalf("State = %v, want playing", w.State)
			}
			if w.Match.PlayerScore != 0 || w.Match.AIScore != 0 || w.Match.BestRally != 0 {
				t.Errorf("match not reset: %+v", w.Match)
			}
			if w.ServeTimer() <= 0 || w.Ball.VX <= 0 {
				t.Errorf("expected a fresh serve toward the AI")
			}
			if w.HUD.PostVisible {
				t.Error("post-match card still visible")
			}
		})
	}
}

func TestModifierNeverRepeatsAcrossMatches(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Update(0, Input{Enter: true})
	prev := w.Modifier
	seen := map[entity.Modifier]bool{prev: true}

	for i := 0; i < 200; i++ {
		w.Match.PlayerScore = TargetScore - 1
		w.scorePoint(SidePlayer)
		w.Update(0, Input{Enter: true})
		if w.Modifier == prev {
			t.Fatalf("match %d repeated modifier %v", i, prev)
		}
		if w.Ball.Radius != w.Modifier.BallRadius() {
			t.Fatalf("radius %v for %v", w.Ball.Radius, w.Modifier)
		}
		seen[w.Modifier] = true
		prev = w.Modifier
	}
	if len(seen) != len(entity.Modifiers) {
		t.Errorf("saw %d modifiers", len(seen))
	}
}

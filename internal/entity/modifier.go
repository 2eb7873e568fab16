package entity

import "math/rand"

// Modifier is a per-match rule variant.
type Modifier int

const (
	CurveDrift Modifier = iota // Sinusoidal vertical force
	BigBall                    // Larger ball radius
	StickyPaddle               // Ball briefly sticks to paddles
	IonWind                    // Sinusoidal horizontal force
)

// Modifiers lists every modifier.
var Modifiers = []Modifier{CurveDrift, BigBall, StickyPaddle, IonWind}

func (m Modifier) String() string {
	switch m {
	case CurveDrift:
		return "Curve Drift"
	case BigBall:
		return "Big Ball"
	case StickyPaddle:
		return "Sticky Paddle"
	case IonWind:
		return "Ion Wind"
	default:
		return "Unknown"
	}
}

// BallRadius returns the ball radius the modifier calls for.
func (m Modifier) BallRadius() float64 {
	if m == BigBall {
		return BigBallRadius
	}
	return BallRadius
}

// ChooseModifier picks uniformly among Modifiers, excluding previous when
// hasPrevious is set and more than one modifier remains eligible.
func ChooseModifier(rng *rand.Rand, previous Modifier, hasPrevious bool) Modifier {
	eligible := make([]Modifier, 0, len(Modifiers))
	for _, m := range Modifiers {
		if hasPrevious && m == previous {
			continue
		}
		eligible = append(eligible, m)
	}
	if len(eligible) == 0 {
		eligible = Modifiers
	}
	return eligible[rng.Intn(len(eligible))]
}

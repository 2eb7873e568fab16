package game

// Game configuration constants.
// All tunable gameplay parameters are centralized here.

// Timing
const (
	MaxTickDt       = 0.033 // Seconds; caps a single step after frame hitches
	ServeDelay      = 0.55  // Seconds the ball stays centered before a serve
	StickyHold      = 0.09  // Seconds the ball sticks to a paddle
	ToastDuration   = 1.8
	MouseAssistTime = 0.35 // Pointer-follow grace after a mouse move
	TouchAssistTime = 0.5  // Pointer-follow grace after a touch
)

// Splash intro
const (
	SplashAnimDuration  = 2.2
	SplashPauseDuration = 0.6
	SplashFadeDuration  = 1.0
	SplashFadeStart     = SplashAnimDuration + SplashPauseDuration
	SplashEnd           = SplashFadeStart + SplashFadeDuration
)

// Match
const (
	TargetScore = 7
)

// Paddles
const (
	PaddleGap         = 40.0
	PaddleWidth       = 14.0
	PaddleHeight      = 120.0
	PlayerPaddleSpeed = 740.0
	AIPaddleSpeed     = 540.0
)

// Ball
const (
	BaseBallSpeed      = 560.0
	MaxBallSpeed       = 1040.0
	MaxBallComponent   = 920.0 // Per-axis velocity cap after a paddle hit
	ServeAngleSpread   = 0.26  // Fraction of pi either side of horizontal
	PaddleDeflection   = 250.0 // Vertical velocity added at the paddle edge
	StickyOffsetLimit  = 0.42  // Fraction of paddle half-height
	StickyReleaseGain  = 2.1   // Offset to vertical velocity on release
	StickyReleaseBoost = 1.05
)

// Gravity wells
const (
	WellStrength  = 5_000_000.0
	WellSoftening = 3000.0
)

// Modifier forces
const (
	CurveDriftFrequency = 5.4
	CurveDriftForce     = 70.0
	IonWindFrequency    = 1.8
	IonWindForce        = 120.0
)

// Effects
const (
	ShakeDuration      = 0.12
	HitShakeTime       = 0.12
	ScoreShakeTime     = 0.2
	ScoreShakeStrength = 13.0
	ScorePulseTime     = 0.4
	RallyPulseTime     = 0.25
	MaxParticles       = 512
	MobileWidth        = 900 // Windows this narrow use touch hints
)

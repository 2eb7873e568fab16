package game

// State is the current game phase.
type State int

const (
	StateSplash    State = iota // Intro animation
	StatePlaying                // Full simulation
	StatePaused                 // Simulation frozen, overlay shown
	StatePostmatch              // Result card, waiting for rematch
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StatePostmatch:
		return "postmatch"
	default:
		return "unknown"
	}
}

// Trigger is an event that may move the state machine.
type Trigger int

const (
	TriggerSplashDone Trigger = iota // Intro finished or skipped
	TriggerPause
	TriggerResume
	TriggerMatchWon
	TriggerRematch
)

var transitions = map[State]map[Trigger]State{
	StateSplash: {
		TriggerSplashDone: StatePlaying,
	},
	StatePlaying: {
		TriggerPause:    StatePaused,
		TriggerMatchWon: StatePostmatch,
	},
	StatePaused: {
		TriggerResume: StatePlaying,
	},
	StatePostmatch: {
		TriggerRematch: StatePlaying,
	},
}

// Next returns the state reached from s on trigger t, and whether the
// transition exists.
func Next(s State, t Trigger) (State, bool) {
	next, ok := transitions[s][t]
	return next, ok
}

// fire applies trigger t. Triggers that land in a fresh match run match setup.
func (w *World) fire(t Trigger) bool {
	next, ok := Next(w.State, t)
	if !ok {
		return false
	}
	if t == TriggerSplashDone || t == TriggerRematch {
		w.startMatch()
	}
	w.State = next
	return true
}

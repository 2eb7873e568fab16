package game

// Pointer carries this tick's pointer activity.
type Pointer struct {
	Moved    bool    // Pointer moved or went down
	Y        float64 // Absolute Y in arena coordinates
	Touch    bool    // Came from a touch rather than a mouse
	Released bool    // The tracked touch lifted or was cancelled
	Left     bool    // The mouse left the window
}

// Input is a snapshot of everything the input layer latched since the last tick.
// Held keys are levels; the remaining booleans are edges seen this tick.
type Input struct {
	Up, Down bool

	Space         bool
	Enter         bool
	ToggleGravity bool
	Rematch       bool // Rematch button activated

	Tap      bool // Pointer went down
	TapTouch bool // ... and it was a touch
	Touches  int  // Touches held when the tap happened

	Pointer Pointer

	// External control variables.
	Difficulty   string // Preset name, empty for no change
	ToggleMute   bool
	ToggleTrails bool

	// Width and Height are non-zero when the playfield was resized.
	Width, Height int
}

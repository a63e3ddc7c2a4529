package sim

// Tone classifies a status message for display.
type Tone int

const (
	ToneNone    Tone = iota
	ToneHint         // Editor instructions
	ToneInfo         // Scenario loaded
	ToneSuccess      // Scenario saved
	ToneWarn         // Empty slot, cancelled overwrite
	ToneError        // Collision, rejected save file
)

// Message is the text shown in the status box.
type Message struct {
	Text string
	Tone Tone
}

const (
	msgCollision = "Collision! Restart the practice or back away."
	msgWallHint  = "Click the canvas twice to draw a wall."
	msgRectHint  = "Click the canvas twice to set opposite corners of a rectangle."
	msgCarHint   = "Click the canvas to set the car's starting position."
)

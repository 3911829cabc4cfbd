package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the fixed simulation rate.
const DefaultTickRate = 60

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Blocks destroyed so far
	Target  int  // Score that wins the game
	Won     bool // Whether every block has been destroyed
	Blocks  int  // Blocks still alive
	Bullets int  // Bullets in flight
	Frame   int  // Simulation ticks since reset
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShotFired      EventKind = iota // A bullet was spawned
	EventBlockDestroyed                  // A bullet destroyed a block
	EventWon                             // The last block was destroyed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "ShotFired"
	case EventBlockDestroyed:
		return "BlockDestroyed"
	case EventWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Event is a side-effect request from the game to the platform
// (play a sound, log a score). Games never perform I/O themselves.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

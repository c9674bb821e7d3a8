package altecs

// Stage orders system execution within a tick.
// Systems are executed in stage order: Before → Default → After.
type Stage int

const (
	// Before stage runs first. Use for input handling and setup logic that
	// other systems depend on.
	Before Stage = iota

	// Default stage runs second. Use for main game logic.
	Default

	// After stage runs last. Use for cleanup, synchronisation with clients,
	// and statistics.
	After

	// stageCount is the total number of stages.
	stageCount
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case Before:
		return "Before"
	case Default:
		return "Default"
	case After:
		return "After"
	default:
		return "Unknown"
	}
}

package player

// State represents the output state.
type State int

const (
	Stopped State = iota
	Playing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

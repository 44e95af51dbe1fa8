package app

// State represents the current application state.
type State int

const (
	StateLoading   State = iota // Fetching collections
	StateBrowsing               // Gallery has focus
	StateFiltering              // Filter input has focus
	StateError                  // Nothing could be loaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateFiltering:
		return "filtering"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

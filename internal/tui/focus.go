package tui

// Mode is the interaction state of the tab bar. Exactly one is current;
// it decides how keys and mouse events are routed.
type Mode int

const (
	ModeBrowse Mode = iota // Selecting tabs, no overlay
	ModeMenu               // Context menu open for one tab
	ModeRename             // Inline rename input open for one tab
	ModeDrag               // Mouse drag in progress
)

// validTransitions defines the allowed Mode transitions.
var validTransitions = map[Mode][]Mode{
	ModeBrowse: {ModeMenu, ModeRename, ModeDrag},
	ModeMenu:   {ModeBrowse, ModeRename},
	ModeRename: {ModeBrowse},
	ModeDrag:   {ModeBrowse},
}

// CanTransitionTo reports whether moving from m to next is valid.
func (m Mode) CanTransitionTo(next Mode) bool {
	for _, valid := range validTransitions[m] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeMenu:
		return "menu"
	case ModeRename:
		return "rename"
	case ModeDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// Label returns a short uppercase label for the header.
func (m Mode) Label() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeMenu:
		return "MENU"
	case ModeRename:
		return "RENAME"
	case ModeDrag:
		return "DRAG"
	default:
		return "UNKNOWN"
	}
}

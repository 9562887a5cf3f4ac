package tui

// binding is a key group with the hint shown for it in the footer.
type binding struct {
	Keys []string
	Help string
}

// GlobalKeyBindings lists the keys handled in every mode except rename,
// where all printable keys belong to the input.
var GlobalKeyBindings = []string{"ctrl+c"}

// modeBindings maps each Mode to the keys it handles, in hint order.
var modeBindings = map[Mode][]binding{
	ModeBrowse: {
		{Keys: []string{"left", "h", "right", "l"}, Help: "←/→ select"},
		{Keys: []string{"<", ">", "shift+left", "shift+right"}, Help: "</> move"},
		{Keys: []string{"a"}, Help: "a add"},
		{Keys: []string{"i"}, Help: "i insert"},
		{Keys: []string{"m", "enter"}, Help: "m menu"},
		{Keys: []string{"r"}, Help: "r rename"},
		{Keys: []string{"d"}, Help: "d dup"},
		{Keys: []string{"x"}, Help: "x delete"},
		{Keys: []string{"f"}, Help: "f first"},
		{Keys: []string{"c"}, Help: "c copy"},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "home", "g", "end", "G"}},
		{Keys: []string{"q", "ctrl+c"}, Help: "q quit"},
	},
	ModeMenu: {
		{Keys: []string{"j", "k", "up", "down", "tab", "shift+tab"}, Help: "j/k move"},
		{Keys: []string{"enter", " "}, Help: "enter choose"},
		{Keys: []string{"f", "r", "c", "d", "x"}},
		{Keys: []string{"esc"}, Help: "esc close"},
	},
	ModeRename: {
		{Keys: []string{"enter"}, Help: "enter save"},
		{Keys: []string{"esc"}, Help: "esc cancel"},
	},
	ModeDrag: {
		{Keys: []string{"esc"}, Help: "esc cancel drag"},
	},
}

// IsGlobalKey reports whether key is handled regardless of mode.
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// ModeKeys returns the keys handled in the given mode.
func ModeKeys(mode Mode) []string {
	var keys []string
	for _, b := range modeBindings[mode] {
		keys = append(keys, b.Keys...)
	}
	return keys
}

// ModeHints returns the footer hints for the given mode.
func ModeHints(mode Mode) []string {
	var hints []string
	for _, b := range modeBindings[mode] {
		if b.Help != "" {
			hints = append(hints, b.Help)
		}
	}
	return hints
}

package tui

import "testing"

func TestIsGlobalKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"ctrl+c", true},
		{"q", false},
		{"esc", false},
		{"a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsGlobalKey(tt.key); got != tt.want {
				t.Errorf("IsGlobalKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestModeKeys(t *testing.T) {
	tests := []struct {
		mode Mode
		must []string
	}{
		{ModeBrowse, []string{"left", "right", "h", "l", "a", "i", "d", "f", "r", "c", "x", "m", "enter", "<", ">", "1", "9", "home", "end", "q"}},
		{ModeMenu, []string{"j", "k", "enter", "esc", "f", "r", "c", "d", "x"}},
		{ModeRename, []string{"enter", "esc"}},
		{ModeDrag, []string{"esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			keySet := make(map[string]bool)
			for _, k := range ModeKeys(tt.mode) {
				keySet[k] = true
			}
			for _, want := range tt.must {
				if !keySet[want] {
					t.Errorf("ModeKeys(%v) missing %q", tt.mode, want)
				}
			}
		})
	}
}

func TestModeKeys_NoDuplicates(t *testing.T) {
	for _, mode := range []Mode{ModeBrowse, ModeMenu, ModeRename, ModeDrag} {
		seen := make(map[string]bool)
		for _, k := range ModeKeys(mode) {
			if seen[k] {
				t.Errorf("mode %v binds %q twice", mode, k)
			}
			seen[k] = true
		}
	}
}

func TestModeHints(t *testing.T) {
	if len(ModeHints(ModeBrowse)) == 0 {
		t.Error("browse mode should have hints")
	}
	if got := ModeHints(ModeRename); len(got) != 2 {
		t.Errorf("rename hints = %v, want 2", got)
	}
	if got := ModeHints(Mode(99)); got != nil {
		t.Errorf("unknown mode hints = %v, want nil", got)
	}
}

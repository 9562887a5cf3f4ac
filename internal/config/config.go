// Package config parses pagenav.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "pagenav.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// logLevels are the accepted values for log.level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the top-level pagenav.toml configuration.
type Config struct {
	Tabs      TabsConfig      `toml:"tabs"`
	Drag      DragConfig      `toml:"drag"`
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
}

// TabsConfig seeds the tab list and controls generated labels.
type TabsConfig struct {
	Initial     []string `toml:"initial"`
	Placeholder string   `toml:"placeholder"`
	CopySuffix  string   `toml:"copy_suffix"`
}

// DragConfig controls mouse drag recognition.
type DragConfig struct {
	Threshold int `toml:"threshold"` // cells of movement before a press becomes a drag
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	Mouse       bool   `toml:"mouse"`
}

// ClipboardConfig controls how labels are copied.
type ClipboardConfig struct {
	OSC52 bool `toml:"osc52"` // fall back to an OSC52 escape when no system clipboard is available
}

// LogConfig controls the diagnostic log. The terminal belongs to the TUI,
// so logs only ever go to a file.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Validate checks the configuration and returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Tabs.Initial) == 0 {
		errs = append(errs, fmt.Errorf("tabs.initial must list at least one tab"))
	}
	for i, label := range c.Tabs.Initial {
		if strings.TrimSpace(label) == "" {
			errs = append(errs, fmt.Errorf("tabs.initial[%d] must not be blank", i))
		}
	}
	if strings.TrimSpace(c.Tabs.Placeholder) == "" {
		errs = append(errs, fmt.Errorf("tabs.placeholder must not be blank"))
	}
	if strings.TrimSpace(c.Tabs.CopySuffix) == "" {
		errs = append(errs, fmt.Errorf("tabs.copy_suffix must not be blank"))
	}

	if c.Drag.Threshold < 0 {
		errs = append(errs, fmt.Errorf("drag.threshold must be >= 0"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if !validLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(logLevels, ", ")))
	}

	return errors.Join(errs...)
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		Tabs: TabsConfig{
			Initial:     []string{"Info", "Details", "Other", "Ending"},
			Placeholder: "Untitled",
			CopySuffix:  " Copy",
		},
		Drag: DragConfig{
			Threshold: 2,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
			Mouse:       true,
		},
		Clipboard: ClipboardConfig{
			OSC52: true,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads pagenav.toml from the given path. If path is empty, it walks up
// from the current working directory looking for pagenav.toml and falls back
// to Defaults when none exists. An explicit path that does not exist is an
// error. Unknown keys (likely typos) and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for pagenav.toml.
// It returns "" without error when the filesystem root is reached.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default pagenav.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# pagenav.toml: page navigation bar configuration

[tabs]
initial = ["Info", "Details", "Other", "Ending"]
placeholder = "Untitled"  # label for newly inserted pages
copy_suffix = " Copy"     # appended when a page is duplicated

[drag]
threshold = 2  # cells the mouse must travel before a press becomes a drag

[tui]
accent_color = "#7D56F4"  # hex color for the active tab and focused elements
mouse = true

[clipboard]
osc52 = true  # fall back to terminal OSC52 when no system clipboard is found

[log]
file = ""       # empty = no log
level = "info"  # debug, info, warn, error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

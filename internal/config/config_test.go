package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"tabs.placeholder", cfg.Tabs.Placeholder, "Untitled"},
		{"tabs.copy_suffix", cfg.Tabs.CopySuffix, " Copy"},
		{"drag.threshold", cfg.Drag.Threshold, 2},
		{"tui.accent_color", cfg.TUI.AccentColor, DefaultAccentColor},
		{"tui.mouse", cfg.TUI.Mouse, true},
		{"clipboard.osc52", cfg.Clipboard.OSC52, true},
		{"log.file", cfg.Log.File, ""},
		{"log.level", cfg.Log.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	want := []string{"Info", "Details", "Other", "Ending"}
	if !slices.Equal(cfg.Tabs.Initial, want) {
		t.Errorf("tabs.initial: got %v, want %v", cfg.Tabs.Initial, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[tabs]
initial = ["Cover", "Body"]
placeholder = "New page"
copy_suffix = " (copy)"

[drag]
threshold = 4

[tui]
accent_color = "#FF00AA"
mouse = false

[clipboard]
osc52 = false

[log]
file = "/tmp/pagenav.log"
level = "debug"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"tabs.placeholder", cfg.Tabs.Placeholder, "New page"},
			{"tabs.copy_suffix", cfg.Tabs.CopySuffix, " (copy)"},
			{"drag.threshold", cfg.Drag.Threshold, 4},
			{"tui.accent_color", cfg.TUI.AccentColor, "#FF00AA"},
			{"tui.mouse", cfg.TUI.Mouse, false},
			{"clipboard.osc52", cfg.Clipboard.OSC52, false},
			{"log.file", cfg.Log.File, "/tmp/pagenav.log"},
			{"log.level", cfg.Log.Level, "debug"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}
		if !slices.Equal(cfg.Tabs.Initial, []string{"Cover", "Body"}) {
			t.Errorf("tabs.initial: got %v", cfg.Tabs.Initial)
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[drag]
threshold = 0
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Drag.Threshold != 0 {
			t.Errorf("drag.threshold: got %d, want 0", cfg.Drag.Threshold)
		}
		if cfg.Tabs.Placeholder != "Untitled" {
			t.Errorf("tabs.placeholder: got %q, want %q (default)", cfg.Tabs.Placeholder, "Untitled")
		}
		if len(cfg.Tabs.Initial) != 4 {
			t.Errorf("tabs.initial: got %v, want the 4 default tabs", cfg.Tabs.Initial)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := Load("/nonexistent/pagenav.toml")
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "not valid [[[ toml")
		_, err := Load(path)
		if err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("unknown keys return error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[drag]
treshold = 3
`)
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "drag.treshold") {
			t.Errorf("error should name the unknown key, got %v", err)
		}
	})

	t.Run("invalid values return error", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[log]
level = "loud"
`)
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "log.level") {
			t.Errorf("error should mention log.level, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty initial", func(c *Config) { c.Tabs.Initial = nil }, []string{"tabs.initial must list"}},
		{"blank initial label", func(c *Config) { c.Tabs.Initial = []string{"A", "  "} }, []string{"tabs.initial[1]"}},
		{"blank placeholder", func(c *Config) { c.Tabs.Placeholder = " " }, []string{"tabs.placeholder"}},
		{"empty copy suffix", func(c *Config) { c.Tabs.CopySuffix = "" }, []string{"tabs.copy_suffix"}},
		{"blank copy suffix", func(c *Config) { c.Tabs.CopySuffix = "  " }, []string{"tabs.copy_suffix"}},
		{"negative threshold", func(c *Config) { c.Drag.Threshold = -1 }, []string{"drag.threshold"}},
		{"bad accent", func(c *Config) { c.TUI.AccentColor = "purple" }, []string{"tui.accent_color"}},
		{"empty accent allowed", func(c *Config) { c.TUI.AccentColor = "" }, nil},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, []string{"log.level"}},
		{
			"multiple issues joined",
			func(c *Config) {
				c.Drag.Threshold = -5
				c.Log.Level = ""
			},
			[]string{"drag.threshold", "log.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %v", tt.wantErr)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err, want)
				}
			}
		})
	}
}

func TestLoadAutoDiscovery(t *testing.T) {
	t.Run("finds pagenav.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}

		writeConfig(t, root, `[tabs]
initial = ["FoundIt"]
`)

		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(child); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(cfg.Tabs.Initial, []string{"FoundIt"}) {
			t.Errorf("tabs.initial: got %v, want [FoundIt]", cfg.Tabs.Initial)
		}
	})

	t.Run("falls back to defaults when not found anywhere", func(t *testing.T) {
		dir := t.TempDir()
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Tabs.Placeholder != "Untitled" {
			t.Errorf("expected defaults, got placeholder %q", cfg.Tabs.Placeholder)
		}
	})
}

func TestInitFile(t *testing.T) {
	t.Run("creates pagenav.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}

		if filepath.Base(path) != FileName {
			t.Errorf("expected %s, got %s", FileName, filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if cfg.Drag.Threshold != Defaults().Drag.Threshold {
			t.Errorf("drag.threshold: got %d, want default", cfg.Drag.Threshold)
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "existing")

		_, err := InitFile(dir)
		if err == nil {
			t.Error("expected error when pagenav.toml already exists")
		}
	})
}

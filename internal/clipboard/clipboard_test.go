package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

var errNoUtility = errors.New("no clipboard utility")

func failing(string) error { return errNoUtility }

func TestSystem_WriteAll_Direct(t *testing.T) {
	var got string
	s := System{write: func(text string) error {
		got = text
		return nil
	}}
	if err := s.WriteAll("Details"); err != nil {
		t.Fatal(err)
	}
	if got != "Details" {
		t.Errorf("copied %q, want %q", got, "Details")
	}
}

func TestSystem_WriteAll_OSC52Fallback(t *testing.T) {
	var term bytes.Buffer
	s := System{OSC52: true, Term: &term, write: failing}
	if err := s.WriteAll("Info"); err != nil {
		t.Fatal(err)
	}
	out := term.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("expected OSC52 sequence, got %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("Info"))) {
		t.Errorf("sequence missing encoded payload: %q", out)
	}
}

func TestSystem_WriteAll_ScreenWrapping(t *testing.T) {
	var term bytes.Buffer
	env := map[string]string{"TERM": "screen-256color"}
	s := System{
		OSC52: true,
		Term:  &term,
		Env:   func(k string) string { return env[k] },
		write: failing,
	}
	if err := s.WriteAll("Info"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(term.String(), "\x1bP") {
		t.Errorf("expected DCS-wrapped sequence under screen, got %q", term.String())
	}
}

func TestSystem_WriteAll_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		s    System
	}{
		{"osc52 disabled", System{OSC52: false, Term: &bytes.Buffer{}, write: failing}},
		{"no terminal", System{OSC52: true, write: failing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.WriteAll("x")
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("err = %v, want ErrUnavailable", err)
			}
			if !errors.Is(err, errNoUtility) {
				t.Errorf("err = %v should wrap the system error", err)
			}
		})
	}
}

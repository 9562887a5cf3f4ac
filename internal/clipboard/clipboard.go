// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 terminal escape where no clipboard utility exists (e.g. over ssh).
package clipboard

import (
	"errors"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither the system clipboard nor the OSC52
// fallback could be used.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Writer copies text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard via atotto/clipboard. When that fails and
// OSC52 is set, it writes an OSC52 sequence to Term instead.
type System struct {
	OSC52 bool
	Term  io.Writer // terminal output for the OSC52 fallback
	Env   func(string) string

	// write is the system clipboard call; nil uses atotto/clipboard.
	write func(string) error
}

// WriteAll copies text.
func (s System) WriteAll(text string) error {
	write := s.write
	if write == nil {
		write = clipboard.WriteAll
	}
	sysErr := write(text)
	if sysErr == nil {
		return nil
	}
	if !s.OSC52 || s.Term == nil {
		return errors.Join(ErrUnavailable, sysErr)
	}

	seq := osc52.New(text)
	if s.multiplexed() {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(s.Term); err != nil {
		return errors.Join(ErrUnavailable, sysErr, err)
	}
	return nil
}

// multiplexed reports whether the terminal is screen or tmux, which need the
// OSC52 sequence wrapped in a DCS passthrough.
func (s System) multiplexed() bool {
	if s.Env == nil {
		return false
	}
	term := strings.ToLower(s.Env("TERM"))
	return strings.Contains(term, "screen") || strings.Contains(term, "tmux") || s.Env("TMUX") != ""
}

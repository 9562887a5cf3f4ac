package tui

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	Label string
	Err   error
}

// statusExpiredMsg clears the footer status if it is still the one with seq.
type statusExpiredMsg struct{ seq int }

package terminal

import "strings"

// Direction of a history navigation
type Direction int

const (
	Up Direction = iota
	Down
)

// History records submitted commands and a browsing cursor. A cursor of -1
// means the user is editing a fresh line.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{cursor: -1}
}

// Submit records cmd unless it is blank or repeats the most recent entry.
// Browsing always stops.
func (h *History) Submit(cmd string) {
	h.cursor = -1
	if strings.TrimSpace(cmd) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
}

// Navigate moves the cursor and returns the text the input should show.
// Up starts at the newest entry and stops at the oldest; Down past the
// newest entry returns to an empty line.
func (h *History) Navigate(dir Direction) string {
	if len(h.entries) == 0 {
		return ""
	}

	switch dir {
	case Up:
		switch {
		case h.cursor == -1:
			h.cursor = len(h.entries) - 1
		case h.cursor > 0:
			h.cursor--
		}
	case Down:
		if h.cursor == -1 {
			return ""
		}
		h.cursor++
		if h.cursor >= len(h.entries) {
			h.cursor = -1
			return ""
		}
	}
	return h.entries[h.cursor]
}

// Cursor returns the browsing position, -1 when not browsing
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of the recorded commands, oldest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

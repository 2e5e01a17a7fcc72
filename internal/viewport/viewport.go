// Package viewport keeps the highlighted option inside the visible window of
// the menu. State values are immutable; every transition returns a new State.
package viewport

// Event is a navigation input.
type Event int

const (
	Up Event = iota
	Down
	PageUp
	PageDown
	// Resize changes no index; the window is re-fitted to the new row count.
	Resize
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case PageUp:
		return "pgup"
	case PageDown:
		return "pgdown"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// State is the highlight and the first visible index for a list of n options
// shown rows at a time. With n == 0 there is no highlight and both fields are 0.
type State struct {
	Highlight int
	Offset    int
}

// Apply runs ev against a list of n options with rows visible rows and
// returns the normalized result.
func (s State) Apply(ev Event, n, rows int) State {
	switch ev {
	case Up:
		s.Highlight = max(0, s.Highlight-1)
	case Down:
		if n > 0 {
			s.Highlight = min(n-1, s.Highlight+1)
		}
	case PageDown:
		if n > 0 {
			s.Highlight = min(n-1, s.Highlight+rows)
			s.Offset = min(max(0, n-rows), s.Offset+rows)
		}
	case PageUp:
		s.Highlight = max(0, s.Highlight-rows)
		s.Offset = max(0, s.Offset-rows)
	}
	return s.Normalize(n, rows)
}

// Reconcile moves the highlight to h, typically the index a reload found for
// the previously highlighted text, and re-fits the window.
func (s State) Reconcile(h, n, rows int) State {
	s.Highlight = h
	return s.Normalize(n, rows)
}

// Normalize clamps the highlight into the list, scrolls the window so the
// highlight is visible, and clamps the window into the list.
func (s State) Normalize(n, rows int) State {
	if n <= 0 {
		return State{}
	}
	if rows < 1 {
		rows = 1
	}
	s.Highlight = min(max(s.Highlight, 0), n-1)
	if s.Highlight < s.Offset {
		s.Offset = s.Highlight
	} else if s.Highlight >= s.Offset+rows {
		s.Offset = s.Highlight - rows + 1
	}
	s.Offset = min(max(s.Offset, 0), max(0, n-rows))
	return s
}

// Selected returns the highlighted index, or false when the list is empty.
func (s State) Selected(n int) (int, bool) {
	if n <= 0 || s.Highlight < 0 || s.Highlight >= n {
		return 0, false
	}
	return s.Highlight, true
}

// Window returns the half-open range [start, end) of visible indices.
func (s State) Window(n, rows int) (start, end int) {
	start = s.Offset
	end = min(n, s.Offset+rows)
	if end < start {
		end = start
	}
	return start, end
}

// MoreAbove reports whether options are hidden above the window.
func (s State) MoreAbove() bool { return s.Offset > 0 }

// MoreBelow reports whether options are hidden below the window.
func (s State) MoreBelow(n, rows int) bool { return s.Offset+rows < n }

// Valid reports whether s satisfies the window invariants for n and rows.
func (s State) Valid(n, rows int) bool {
	if n <= 0 {
		return s == State{}
	}
	if s.Highlight < 0 || s.Highlight >= n {
		return false
	}
	if s.Offset < 0 || s.Offset > max(0, n-rows) {
		return false
	}
	return s.Offset <= s.Highlight && s.Highlight < s.Offset+rows
}

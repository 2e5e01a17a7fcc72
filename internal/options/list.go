package options

import "strings"

// List is the ordered option list shown by the picker. The first Fixed()
// entries come from the command line and never change; the remainder is the
// suffix re-read from a Source on every reload.
//
// A List is a value: reloading builds a new List and never mutates the
// backing array of an existing one.
type List struct {
	items  []string
	nFixed int
}

// New returns a list holding only the fixed prefix.
func New(fixed []string) List {
	items := make([]string, len(fixed))
	for i, s := range fixed {
		items[i] = Sanitize(s)
	}
	return List{items: items, nFixed: len(items)}
}

// Sanitize replaces tab characters with single spaces.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

func (l List) Len() int { return len(l.items) }

// At returns the option at index i. It panics when i is out of range.
func (l List) At(i int) string { return l.items[i] }

// Items returns the options in order. Callers must not modify the result.
func (l List) Items() []string { return l.items[:len(l.items):len(l.items)] }

func (l List) Fixed() []string { return l.items[:l.nFixed:l.nFixed] }

func (l List) Suffix() []string { return l.items[l.nFixed:len(l.items):len(l.items)] }

// WithSuffix returns a new list with the same fixed prefix followed by suffix.
func (l List) WithSuffix(suffix []string) List {
	items := make([]string, 0, l.nFixed+len(suffix))
	items = append(items, l.items[:l.nFixed]...)
	for _, s := range suffix {
		items = append(items, Sanitize(s))
	}
	return List{items: items, nFixed: l.nFixed}
}

// Index returns the position of the first option equal to text, or -1.
func (l List) Index(text string) int {
	for i, s := range l.items {
		if s == text {
			return i
		}
	}
	return -1
}

// Anchor returns the text at highlight when it is a valid index.
func (l List) Anchor(highlight int) (string, bool) {
	if highlight < 0 || highlight >= len(l.items) {
		return "", false
	}
	return l.items[highlight], true
}

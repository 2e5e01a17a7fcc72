// Package layout computes where the title box and the menu box go on a
// terminal of a given size. Nothing here is cached; callers recompute the
// geometry every frame, which is how live resizes are handled.
package layout

import "strings"

// Geometry describes the boxes for one frame. Coordinates are zero-based
// cells and may be negative on very small terminals; the surface clips.
type Geometry struct {
	MenuWidth      int
	TitleBoxHeight int
	MenuHeight     int
	TotalHeight    int
	StartY         int
	StartX         int
	MenuStartY     int
}

// Compute lays out titleLines lines of title above a menu of n options on a
// termW x termH terminal. Both boxes take 80% of the terminal at most and are
// centered.
func Compute(termW, termH, titleLines, n int) Geometry {
	g := Geometry{MenuWidth: termW * 4 / 5}
	if titleLines > 0 {
		g.TitleBoxHeight = titleLines + 2
	}
	g.MenuHeight = termH*4/5 - g.TitleBoxHeight - 2
	if g.MenuHeight > n {
		g.MenuHeight = n
	}
	// keep one row so the box still draws with no options
	if g.MenuHeight < 1 {
		g.MenuHeight = 1
	}
	g.TotalHeight = g.TitleBoxHeight + g.MenuHeight + 1
	g.StartY = (termH - g.TotalHeight) / 2
	g.StartX = (termW - g.MenuWidth) / 2
	g.MenuStartY = g.StartY + g.TitleBoxHeight
	return g
}

// VisibleRows is the number of option rows the menu box shows.
func (g Geometry) VisibleRows() int { return g.MenuHeight }

// TitleLines splits a title into its display lines. A nil title has none.
func TitleLines(title *string) []string {
	if title == nil {
		return nil
	}
	return strings.Split(*title, "\n")
}

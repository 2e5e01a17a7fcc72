// Package render draws the picker into a Surface. Paint is the only code that
// writes to the terminal picture; it reads its inputs and changes nothing else.
package render

import (
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"tmenu/internal/layout"
	"tmenu/internal/viewport"
)

const moreLabel = "more"

// Paint draws the title box, the menu box and the visible options of items
// for view. title may be empty, in which case g has no title box.
func Paint(s *Surface, g layout.Geometry, title []string, items []string, view viewport.State) {
	if len(title) > 0 {
		paintTitle(s, g, title)
	}
	paintMenu(s, g, items, view)
}

func paintTitle(s *Surface, g layout.Geometry, title []string) {
	s.SetBold(true)
	for i, line := range title {
		line = xansi.Strip(line)
		x := g.StartX + (g.MenuWidth-runewidth.StringWidth(line))/2
		if x < g.StartX {
			x = g.StartX
		}
		s.DrawText(g.StartY+1+i, x, runewidth.Truncate(line, max(g.MenuWidth, 0), ""))
	}
	s.SetBold(false)

	left, right := g.StartX-1, g.StartX+g.MenuWidth
	s.DrawChar(g.StartY, left, '+')
	s.DrawChar(g.StartY, right, '+')
	s.HLine(g.StartY, g.StartX, '-', g.MenuWidth)
	s.VLine(g.StartY+1, left, '|', len(title))
	s.VLine(g.StartY+1, right, '|', len(title))
}

func paintMenu(s *Surface, g layout.Geometry, items []string, view viewport.State) {
	top, bottom := g.MenuStartY-1, g.MenuStartY+g.MenuHeight
	left, right := g.StartX-1, g.StartX+g.MenuWidth
	for _, y := range []int{top, bottom} {
		s.DrawChar(y, left, '+')
		s.DrawChar(y, right, '+')
		s.HLine(y, g.StartX, '-', g.MenuWidth)
	}
	s.VLine(g.MenuStartY, left, '|', g.MenuHeight)
	s.VLine(g.MenuStartY, right, '|', g.MenuHeight)

	n, rows := len(items), g.VisibleRows()
	s.SetBold(true)
	moreX := g.StartX + g.MenuWidth - len(moreLabel)
	if view.MoreAbove() {
		s.DrawText(top, moreX, moreLabel)
	}
	if view.MoreBelow(n, rows) {
		s.DrawText(bottom, moreX, moreLabel)
	}
	s.SetBold(false)

	highlight, hasHighlight := view.Selected(n)
	start, end := view.Window(n, rows)
	textWidth := max(g.MenuWidth-2, 0)
	for i := start; i < end; i++ {
		s.SetReverse(hasHighlight && i == highlight)
		s.DrawText(g.MenuStartY+i-start, g.StartX, " "+fit(items[i], textWidth)+" ")
	}
	s.SetReverse(false)
}

// fit truncates or space-pads text to exactly width columns.
func fit(text string, width int) string {
	text = runewidth.Truncate(xansi.Strip(text), width, "")
	return runewidth.FillRight(text, width)
}

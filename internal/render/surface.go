package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell of a Surface.
type Cell struct {
	Rune    rune
	Bold    bool
	Reverse bool
	// cont marks the right half of a double-width rune.
	cont bool
}

// Surface is a fixed-size character grid that Paint draws into. Writes that
// fall outside the grid are dropped, so drawing on a terminal that is too
// small for the layout degrades to a clipped picture.
type Surface struct {
	width, height int
	cells         []Cell
	bold, reverse bool
	renderer      *lipgloss.Renderer
}

// NewSurface returns a blank width x height surface.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	s := &Surface{
		width:    width,
		height:   height,
		cells:    make([]Cell, width*height),
		renderer: lipgloss.DefaultRenderer(),
	}
	s.Clear()
	return s
}

func (s *Surface) Size() (width, height int) { return s.width, s.height }

// SetRenderer selects the renderer String styles runs with. It must match the
// terminal the frame is written to, otherwise bold and reverse may be dropped.
func (s *Surface) SetRenderer(r *lipgloss.Renderer) {
	if r != nil {
		s.renderer = r
	}
}

// Clear blanks every cell and resets the drawing attributes.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' '}
	}
	s.bold, s.reverse = false, false
}

// SetBold toggles bold for subsequent writes.
func (s *Surface) SetBold(on bool) { s.bold = on }

// SetReverse toggles reverse video for subsequent writes.
func (s *Surface) SetReverse(on bool) { s.reverse = on }

// Cell returns the cell at (y, x). Out-of-range positions read as blank.
func (s *Surface) Cell(y, x int) Cell {
	if !s.inside(y, x) {
		return Cell{Rune: ' '}
	}
	return s.cells[y*s.width+x]
}

func (s *Surface) inside(y, x int) bool {
	return y >= 0 && y < s.height && x >= 0 && x < s.width
}

func (s *Surface) put(y, x int, c Cell) {
	if !s.inside(y, x) {
		return
	}
	i := y*s.width + x
	// never leave half of a wide rune behind
	if s.cells[i].cont && x > 0 {
		s.cells[i-1] = Cell{Rune: ' ', Bold: s.cells[i-1].Bold, Reverse: s.cells[i-1].Reverse}
	}
	if !c.cont && x+1 < s.width && s.cells[i+1].cont {
		s.cells[i+1] = Cell{Rune: ' ', Bold: s.cells[i+1].Bold, Reverse: s.cells[i+1].Reverse}
	}
	s.cells[i] = c
}

// DrawChar writes a single rune at (y, x) with the current attributes.
func (s *Surface) DrawChar(y, x int, r rune) {
	s.DrawText(y, x, string(r))
}

// DrawText writes text starting at (y, x) with the current attributes and
// returns the number of columns it spans. Escape sequences are stripped and
// control characters are shown as spaces.
func (s *Surface) DrawText(y, x int, text string) int {
	start := x
	for _, r := range xansi.Strip(text) {
		if r < 0x20 || r == 0x7f {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c := Cell{Rune: r, Bold: s.bold, Reverse: s.reverse}
		if w == 2 {
			if s.inside(y, x+1) {
				s.put(y, x, c)
				s.put(y, x+1, Cell{Rune: ' ', Bold: s.bold, Reverse: s.reverse, cont: true})
			} else {
				s.put(y, x, Cell{Rune: ' ', Bold: s.bold, Reverse: s.reverse})
			}
		} else {
			s.put(y, x, c)
		}
		x += w
	}
	return x - start
}

// HLine draws n copies of r to the right of (y, x).
func (s *Surface) HLine(y, x int, r rune, n int) {
	for i := 0; i < n; i++ {
		s.DrawChar(y, x+i, r)
	}
}

// VLine draws n copies of r downwards from (y, x).
func (s *Surface) VLine(y, x int, r rune, n int) {
	for i := 0; i < n; i++ {
		s.DrawChar(y+i, x, r)
	}
}

// Line returns row y as plain text.
func (s *Surface) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		if !c.cont {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// String renders the surface with bold and reverse runs styled by lipgloss,
// one line per row.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].Bold == row[i].Bold && row[j].Reverse == row[i].Reverse {
				if !row[j].cont {
					run.WriteRune(row[j].Rune)
				}
				j++
			}
			b.WriteString(s.styleFor(row[i].Bold, row[i].Reverse).Render(run.String()))
			i = j
		}
	}
	return b.String()
}

func (s *Surface) styleFor(bold, reverse bool) lipgloss.Style {
	return s.renderer.NewStyle().Bold(bold).Reverse(reverse)
}

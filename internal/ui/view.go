package ui

import "tmenu/internal/render"

func (m Model) View() string {
	// nothing to draw until the first size arrives, or once the session ended
	if m.outcome != Running || m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := m.geometry()
	s := render.NewSurface(m.width, m.height)
	s.SetRenderer(m.renderer)
	render.Paint(s, g, m.title, m.list.Items(), m.view.Normalize(m.list.Len(), g.VisibleRows()))
	return s.String()
}

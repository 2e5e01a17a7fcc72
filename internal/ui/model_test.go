package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"tmenu/internal/options"
	tu "tmenu/internal/testutil"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		nm, ok := next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = nm
	}
	return m, cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeMsg(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("opt%02d", i)
	}
	return out
}

func TestNavigation_ScrollsWithHighlight(t *testing.T) {
	m := New(Options{List: options.New(numbered(30))})
	// 80x20 terminal, no title: 16 - 2 = 14 rows
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	if rows := m.rows(); rows != 14 {
		t.Fatalf("expected 14 rows, got %d", rows)
	}
	for i := 0; i < 15; i++ {
		m, _ = send(t, m, keyMsg(tea.KeyDown))
	}
	if m.view.Highlight != 15 || m.view.Offset != 2 {
		t.Fatalf("expected highlight 15 offset 2, got %+v", m.view)
	}
	m, _ = send(t, m, keyMsg(tea.KeyPgDown), keyMsg(tea.KeyPgDown))
	if m.view.Highlight != 29 || m.view.Offset != 16 {
		t.Fatalf("expected clamp to end, got %+v", m.view)
	}
	m, _ = send(t, m, keyMsg(tea.KeyPgUp), keyMsg(tea.KeyUp))
	if m.view.Highlight != 14 || m.view.Offset != 2 {
		t.Fatalf("unexpected state after pgup/up: %+v", m.view)
	}
	if m.Outcome() != Running {
		t.Fatalf("expected running, got %v", m.Outcome())
	}
}

func TestResize_RefitsWindow(t *testing.T) {
	m := New(Options{List: options.New(numbered(30))})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	for i := 0; i < 20; i++ {
		m, _ = send(t, m, keyMsg(tea.KeyDown))
	}
	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if cmd == nil {
		t.Fatalf("expected a clear-screen command on resize")
	}
	rows := m.rows()
	if m.view.Highlight != 20 || !m.view.Valid(30, rows) {
		t.Fatalf("invalid state after resize: %+v rows=%d", m.view, rows)
	}
}

func TestEnter_SelectsHighlighted(t *testing.T) {
	m := New(Options{List: options.New([]string{"alpha", "beta", "gamma"})})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20}, keyMsg(tea.KeyDown))
	m, cmd := send(t, m, keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	sel, ok := m.Selection()
	if !ok || sel != "beta" || m.Outcome() != Selected {
		t.Fatalf("expected beta selected, got %q %v %v", sel, ok, m.Outcome())
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after exit")
	}
	// further input is ignored
	m, _ = send(t, m, keyMsg(tea.KeyUp))
	if sel, _ := m.Selection(); sel != "beta" {
		t.Fatalf("selection changed after exit: %q", sel)
	}
}

func TestEnter_EmptyListCancels(t *testing.T) {
	title := "Nothing here"
	m := New(Options{Title: &title, List: options.New(nil)})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	m, cmd := send(t, m, keyMsg(tea.KeyEnter))
	if cmd == nil || m.Outcome() != Cancelled {
		t.Fatalf("expected cancel on empty list, got %v", m.Outcome())
	}
	if _, ok := m.Selection(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyMsg(tea.KeyEsc), runeMsg('q'), runeMsg('Q'), keyMsg(tea.KeyCtrlC)} {
		m := New(Options{List: options.New([]string{"a"})})
		m, cmd := send(t, m, msg)
		if cmd == nil || m.Outcome() != Cancelled {
			t.Fatalf("%s: expected cancel, got %v", msg, m.Outcome())
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m := New(Options{List: options.New([]string{"a", "b"})})
	m, _ = send(t, m, runeMsg('j'), runeMsg('x'), keyMsg(tea.KeyTab))
	if m.Outcome() != Running || m.view.Highlight != 0 {
		t.Fatalf("unexpected state %+v %v", m.view, m.Outcome())
	}
}

func TestReloadTick_KeepsHighlightOnText(t *testing.T) {
	p := filepath.Join(t.TempDir(), "opts.txt")
	tu.WriteLines(t, p, "C", "D", "E")
	src := options.FileSource{Path: p}
	list, _, err := options.Reload(options.New([]string{"A", "B"}), src, 0)
	if err != nil {
		t.Fatalf("initial reload: %v", err)
	}
	m := New(Options{List: list, Source: src, RefreshInterval: 400 * time.Millisecond})
	if m.Init() == nil {
		t.Fatalf("expected reload timer from Init")
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	// highlight "D"
	m, _ = send(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	if h, _ := m.Highlight(); h != 3 {
		t.Fatalf("expected highlight 3, got %d", h)
	}

	tu.WriteLines(t, p, "E", "D")
	m, cmd := send(t, m, reloadTickMsg{id: m.tickID})
	if cmd == nil {
		t.Fatalf("expected the timer to be re-armed")
	}
	if !reflect.DeepEqual(m.Items(), []string{"A", "B", "E", "D"}) {
		t.Fatalf("unexpected items %v", m.Items())
	}
	if h, _ := m.Highlight(); h != 3 {
		t.Fatalf("expected highlight to follow D to 3, got %d", h)
	}
}

func TestReloadTick_StaleTickIgnored(t *testing.T) {
	p := filepath.Join(t.TempDir(), "opts.txt")
	tu.WriteLines(t, p, "one")
	src := options.FileSource{Path: p}
	m := New(Options{List: options.New(nil), Source: src, RefreshInterval: time.Second})
	stale := m.tickID
	m, _ = send(t, m, keyMsg(tea.KeyDown))
	m, cmd := send(t, m, reloadTickMsg{id: stale})
	if cmd != nil || m.list.Len() != 0 {
		t.Fatalf("stale tick should not reload, got %v", m.Items())
	}
	m, _ = send(t, m, reloadTickMsg{id: m.tickID})
	if m.list.Len() != 1 {
		t.Fatalf("live tick should reload, got %v", m.Items())
	}
}

func TestReload_ShrinkClampsHighlight(t *testing.T) {
	p := filepath.Join(t.TempDir(), "opts.txt")
	tu.WriteLines(t, p, numbered(10)...)
	src := options.FileSource{Path: p}
	list, _, _ := options.Reload(options.New(nil), src, 0)
	m := New(Options{List: list, Source: src, RefreshInterval: time.Second})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	for i := 0; i < 9; i++ {
		m, _ = send(t, m, keyMsg(tea.KeyDown))
	}

	tu.WriteLines(t, p, "x", "y")
	m, _ = send(t, m, reloadTickMsg{id: m.tickID})
	h, ok := m.Highlight()
	if !ok || h != 1 || m.view.Offset != 0 {
		t.Fatalf("expected clamp to last item, got %+v", m.view)
	}
}

func TestReload_MissingFileKeepsOptions(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "opts.txt")
	tu.WriteLines(t, p, "keep")
	src := options.FileSource{Path: p}
	list, _, _ := options.Reload(options.New(nil), src, 0)
	m := New(Options{List: list, Source: options.FileSource{Path: filepath.Join(dir, "gone")}, RefreshInterval: time.Second})
	m, _ = send(t, m, reloadTickMsg{id: m.tickID})
	if !reflect.DeepEqual(m.Items(), []string{"keep"}) {
		t.Fatalf("expected previous options kept, got %v", m.Items())
	}
}

func TestSourceChanged_Reloads(t *testing.T) {
	p := filepath.Join(t.TempDir(), "opts.txt")
	tu.WriteLines(t, p, "a")
	ch := make(chan struct{}, 1)
	m := New(Options{List: options.New(nil), Source: options.FileSource{Path: p}, Changes: ch})
	if m.Init() == nil {
		t.Fatalf("expected watch command from Init")
	}
	m, cmd := send(t, m, sourceChangedMsg{ok: true})
	if cmd == nil || m.list.Len() != 1 {
		t.Fatalf("expected reload and re-armed wait, got %v", m.Items())
	}
	m, cmd = send(t, m, sourceChangedMsg{ok: false})
	if cmd != nil {
		t.Fatalf("closed watcher should not be re-armed")
	}
}

func TestView_RendersTitleAndOptions(t *testing.T) {
	title := "Pick one\nSecond line"
	m := New(Options{Title: &title, List: options.New([]string{"first", "second"})})
	if m.View() != "" {
		t.Fatalf("expected empty view before the first size")
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	out := xansi.Strip(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, want := range []string{"Pick one", "Second line", " first ", " second "} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestInit_NoTimersWithoutRefresh(t *testing.T) {
	m := New(Options{List: options.New([]string{"a"})})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected no startup commands")
	}
	_, cmd := send(t, m, keyMsg(tea.KeyDown))
	if cmd != nil {
		t.Fatalf("expected no timer without auto-refresh")
	}
}

func TestView_UsesGivenRenderer(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	m := New(Options{List: options.New([]string{"first", "second"}), Renderer: r})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12}, keyMsg(tea.KeyDown))
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(xansi.Strip(line), " second ") {
			if !strings.Contains(line, "\x1b[7m") {
				t.Fatalf("highlighted row rendered without reverse video: %q", line)
			}
			return
		}
	}
	t.Fatalf("highlighted row not found in view")
}

func TestResize_RestartsIdleWait(t *testing.T) {
	p := filepath.Join(t.TempDir(), "opts.txt")
	tu.WriteLines(t, p, "one")
	m := New(Options{List: options.New(nil), Source: options.FileSource{Path: p}, RefreshInterval: time.Second})
	pending := m.tickID
	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if cmd == nil || m.tickID == pending {
		t.Fatalf("expected resize to re-arm the refresh timer")
	}
	m, _ = send(t, m, reloadTickMsg{id: pending})
	if m.list.Len() != 0 {
		t.Fatalf("timer armed before the resize should not reload, got %v", m.Items())
	}
	m, _ = send(t, m, reloadTickMsg{id: m.tickID})
	if m.list.Len() != 1 {
		t.Fatalf("timer armed by the resize should reload, got %v", m.Items())
	}
}

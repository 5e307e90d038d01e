package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel() Model {
	return NewModel(Options{
		Rules:    snake.DefaultRules(),
		Interval: 10 * time.Millisecond,
		Seed:     42,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// tick delivers a tick for the model's current chain.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})
}

func TestModelInitialState(t *testing.T) {
	m := newTestModel()
	s := m.State()

	if s.Len() != 1 || s.Head() != (core.Cell{X: 7, Y: 7}) {
		t.Errorf("initial snake = %v, expected [(7,7)]", s.Snake)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick chain")
	}
}

func TestModelTickMovesUp(t *testing.T) {
	m := newTestModel()
	m, cmd := tick(t, m)

	if m.State().Head() != (core.Cell{X: 7, Y: 6}) {
		t.Errorf("head after one tick = %v, expected (7,6)", m.State().Head())
	}
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	m := newTestModel()

	var cmd tea.Cmd
	for i := 0; i < 20 && !m.State().GameOver; i++ {
		m, cmd = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("heading up for 20 ticks should hit the wall")
	}
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}
	if m.State().Head() != (core.Cell{X: 7, Y: 0}) {
		t.Errorf("head = %v, expected (7,0)", m.State().Head())
	}

	// Further ticks are ignored
	ticks := m.State().Ticks
	m, _ = tick(t, m)
	if m.State().Ticks != ticks {
		t.Error("tick after game over changed the state")
	}

	// Movement keys are ignored while game over
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().Pending != core.DirUp {
		t.Errorf("pending after game over steer = %v, expected up", m.State().Pending)
	}
}

func TestModelSteer(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)

	if m.State().Head() != (core.Cell{X: 6, Y: 7}) {
		t.Errorf("head = %v, expected (6,7)", m.State().Head())
	}
}

func TestModelConfirmRestarts(t *testing.T) {
	m := newTestModel()

	// Enter while running does nothing
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.gen != 0 {
		t.Error("confirm while running should be ignored")
	}

	for !m.State().GameOver {
		m, _ = tick(t, m)
	}
	oldGen := m.gen

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s := m.State()
	if s.GameOver || s.Score != 0 || s.Len() != 1 || s.Direction != core.DirUp {
		t.Errorf("state after restart = %+v, expected a fresh game", s)
	}
	if cmd == nil {
		t.Error("restart should re-arm the tick chain")
	}
	if m.gen == oldGen {
		t.Error("restart should start a new tick chain")
	}

	// A tick from the old chain is dropped
	m, cmd = update(t, m, TickMsg{Time: time.Now(), Gen: oldGen})
	if m.State().Ticks != 0 || cmd != nil {
		t.Error("stale tick should be ignored")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	short := m.View()

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if full := m.View(); !strings.Contains(full, "restart") || full == short {
		t.Error("full help should list the restart binding")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "Use arrow keys to move.") {
		t.Error("view should show the movement hint")
	}

	for !m.State().GameOver {
		m, _ = tick(t, m)
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("view should show the game-over notice")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !m.TooSmall() {
		t.Fatal("20x10 cannot fit a 15x15 board")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("view should explain the window is too small")
	}

	// The game keeps running
	m, cmd := tick(t, m)
	if cmd == nil || m.State().Ticks != 1 {
		t.Error("a small window should not pause the game")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.TooSmall() {
		t.Error("80x40 should fit the board")
	}
}

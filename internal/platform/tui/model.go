package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a game model.
type Options struct {
	Rules    snake.Rules
	Interval time.Duration // Defaults to snake.DefaultTickInterval
	Seed     int64         // 0 = time-based
	Logger   *log.Logger   // nil discards logs
	Width    int           // Initial terminal size, 0 if unknown
	Height   int
}

// Model is the Bubble Tea model for one snake game.
// Bubble Tea delivers ticks and key presses to Update one at a time, so the
// state is only ever touched from a single goroutine.
type Model struct {
	rules    snake.Rules
	interval time.Duration
	rng      *rand.Rand
	state    snake.State
	gen      int // Current tick chain
	keys     KeyMap
	help     help.Model
	board    *core.Screen
	width    int
	height   int
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with a freshly reset game.
func NewModel(opts Options) Model {
	if opts.Rules.BoardSize == 0 {
		opts.Rules = snake.DefaultRules()
	}
	if opts.Interval <= 0 {
		opts.Interval = snake.DefaultTickInterval
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	bw, bh := BoardDimensions(opts.Rules.BoardSize)

	h := help.New()
	h.Width = opts.Width

	return Model{
		rules:    opts.Rules,
		interval: opts.Interval,
		rng:      rng,
		state:    opts.Rules.Reset(rng),
		keys:     DefaultKeyMap(),
		help:     h,
		board:    core.NewScreen(bw, bh),
		width:    opts.Width,
		height:   opts.Height,
		logger:   opts.Logger,
	}
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		if !m.state.GameOver {
			return m, nil
		}
		m.state = m.rules.Confirm(m.state, m.rng)
		m.gen++
		m.logger.Debug("game reset", "food", m.state.Food)
		return m, tickCmd(m.interval, m.gen)
	}

	if dir, ok := action.Direction(); ok {
		m.state = m.rules.Steer(m.state, dir)
	}
	return m, nil
}

// handleTick advances the game and schedules the next tick while it runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state.GameOver {
		return m, nil
	}

	prevScore := m.state.Score
	m.state = m.rules.Tick(m.state, m.rng)

	if m.state.GameOver {
		m.logger.Info("game over", "score", m.state.Score, "won", m.state.Won, "ticks", m.state.Ticks)
		return m, nil
	}
	if m.state.Score > prevScore {
		m.logger.Debug("food eaten", "score", m.state.Score)
	}
	return m, tickCmd(m.interval, m.gen)
}

// State returns the current game state.
func (m Model) State() snake.State {
	return m.state
}

// Snapshot returns the renderer view of the current state.
func (m Model) Snapshot() snake.Snapshot {
	return m.state.Snapshot(m.rules.BoardSize)
}

// TooSmall reports whether the terminal cannot fit the board.
func (m Model) TooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	bw, bh := BoardDimensions(m.rules.BoardSize)
	return m.width < bw || m.height < bh+3
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		bw, bh := BoardDimensions(m.rules.BoardSize)
		notice := lipgloss.JoinVertical(lipgloss.Center,
			gameOverStyle.Render("Window too small"),
			hintStyle.Render(fmt.Sprintf("Resize to at least %dx%d", bw, bh+3)),
		)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
	}

	snap := m.Snapshot()
	DrawBoard(m.board, snap)

	content := lipgloss.JoinVertical(lipgloss.Center,
		headerLine(snap),
		RenderScreen(m.board),
		statusLine(snap),
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

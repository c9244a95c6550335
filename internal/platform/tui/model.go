// Package tui provides the Bubble Tea front-end for t2048.
// It maps keys to moves, drives a game.Controller and renders the board.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Options configures a game session.
type Options struct {
	Rules    game.Rules
	Seed     int64 // 0 = random based on time
	ShowHelp bool
	Logger   *log.Logger
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	opts     Options
	ctrl     *game.Controller
	keys     KeyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	games    int   // Games started this session
	seed     int64 // Seed of the current game
	quitting bool
}

// NewModel creates a model and starts the first game.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		theme: DefaultTheme(),
	}
	if err := m.newGame(); err != nil {
		return m, err
	}
	return m, nil
}

// newGame replaces the controller with a fresh one.
// A finished game is never restarted in place. With a fixed seed,
// game n of the session is seeded with Seed+n-1.
func (m *Model) newGame() error {
	seed := m.opts.Seed + int64(m.games)
	if m.opts.Seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := game.NewController(m.opts.Rules,
		game.WithSeed(seed),
		game.WithLogger(m.opts.Logger),
	)
	if err := ctrl.StartGame(); err != nil {
		return err
	}

	m.ctrl = ctrl
	m.seed = seed
	m.games++
	m.opts.Logger.Info("new game", "game", m.games, "seed", seed, "size", m.opts.Rules.Size)
	return nil
}

// Controller returns the controller of the current game.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logFinal()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.ctrl.State().Terminal() {
			m.logFinal()
			if err := m.newGame(); err != nil {
				m.opts.Logger.Error("restart failed", "error", err)
			}
		}
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		if m.ctrl.Move(dir, game.SpawnRandom) && m.ctrl.State().Terminal() {
			m.logFinal()
		}
	}
	return m, nil
}

// logFinal reports the result of the current game.
func (m Model) logFinal() {
	snap := m.ctrl.Snapshot()
	m.opts.Logger.Info("game finished",
		"state", snap.State,
		"score", snap.Score,
		"max_tile", snap.MaxTile,
		"moves", snap.Moves,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	parts := []string{
		m.theme.Title.Render("2048"),
		m.theme.RenderHUD(snap),
		m.theme.RenderBoard(m.ctrl.Grid()),
	}
	if status := m.theme.RenderStatus(snap); status != "" {
		parts = append(parts, status)
	}
	if m.opts.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}

	view := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program and returns the final snapshot.
func Run(opts Options) (game.Snapshot, error) {
	model, err := NewModel(opts)
	if err != nil {
		return game.Snapshot{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.Snapshot{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.ctrl.Snapshot(), nil
	}
	return model.ctrl.Snapshot(), nil
}

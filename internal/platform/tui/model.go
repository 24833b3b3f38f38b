package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birthday-runner/internal/core"
)

// Game is the contract between the platform and a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game. The RuntimeConfig provides the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	jump       *core.EdgeTrigger
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		jump:       core.NewEdgeTrigger(core.DefaultHoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Clicks on the help footer are ignored
		if IsActionClick(msg) && m.gameArea().Contains(msg.X, msg.Y) {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score)
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		// Held keys repeat; the trigger reduces them to one edge
		m.jump.Press()
	case core.ActionPause, core.ActionRestart:
		// Another key stops the jump key's auto-repeat
		m.jump.Reset()
		m.inputFrame.Set(action)
	}
	return m, nil
}

// gameArea is the part of the terminal covered by the game screen.
func (m Model) gameArea() core.Rect {
	return core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
}

// handleResize processes window resize events.
// The renderer scales the canvas, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.jump.Tick() {
		m.inputFrame.Set(core.ActionJump)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logTransition records phase and pause changes.
func (m Model) logTransition(prev, next core.GameState) {
	if prev.Paused != next.Paused {
		m.logger.Debug("pause toggled", "paused", next.Paused, "score", next.Score)
	}
	if prev.Phase == next.Phase {
		return
	}

	switch {
	case next.Phase == "playing":
		m.logger.Info("game started")
	case next.Cleared:
		m.logger.Info("game clear", "score", next.Score)
	case next.GameOver:
		m.logger.Info("game over", "score", next.Score)
	default:
		m.logger.Debug("back to title", "last_score", prev.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as the jump action
	)

	_, err := p.Run()
	return err
}

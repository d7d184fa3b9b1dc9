package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// resizer is implemented by games that can adapt to a new terminal size
// without losing their state.
type resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Model is the Bubble Tea model for running a game.
// It is the frame driver: every tick forwards the real elapsed time to the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	lastTick   time.Time
	quitting   bool
	reported   bool // Whether the current game's outcome has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; one row is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg = gameArea(cfg)

	keys := DefaultGameKeyMap()
	h := help.New()
	h.ShowAll = false // The footer has room for one line

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		logger:     logger,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// gameArea removes the footer rows from a terminal-sized config.
func gameArea(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// Games that support it keep their state; others restart at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config = gameArea(core.RuntimeConfig{
		ScreenW:  msg.Width,
		ScreenH:  msg.Height,
		TickRate: m.config.TickRate,
	})
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = m.config.ScreenW

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
		m.reported = false
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State
	m.reportOutcome()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// reportOutcome logs a finished game once.
func (m *Model) reportOutcome() {
	if !m.gameState.GameOver {
		m.reported = false
		return
	}
	if m.reported {
		return
	}
	m.reported = true

	outcome := "lost"
	if m.gameState.Won {
		outcome = "won"
	}
	m.logger.Info("game over", "game", m.game.ID(), "outcome", outcome, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as plain text under ~/.breakout/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// footerRows is the number of rows below the HUD used by the help line.
const footerRows = 1

// Settings bundles what every session needs to build a game.
type Settings struct {
	Config config.Config
	Logger *log.Logger
}

// GameModel is the Bubble Tea model for a running level.
// Keys are queued and the queue yields one action per tick.
type GameModel struct {
	game       *game.Game
	queue      *core.InputQueue
	keys       KeyMap
	help       help.Model
	interval   time.Duration
	gen        uint64
	width      int
	height     int
	quitting   bool
	backToMenu bool
	backQuits  bool // no menu to return to
}

// NewGameModel creates a model for lvl sized to a width x height terminal.
func NewGameModel(lvl *level.Level, settings Settings, width, height int) GameModel {
	g := game.New(lvl, settings.Config, settings.Logger)
	worldW, worldH := worldArea(width, height)
	g.Reset(core.RuntimeConfig{
		ScreenW:  worldW,
		ScreenH:  worldH,
		TickRate: settings.Config.TickRate(),
	})

	h := help.New()
	h.Width = width

	return GameModel{
		game:     g,
		queue:    core.NewInputQueue(settings.Config.Loop.QueueSize),
		keys:     DefaultKeyMap(),
		help:     h,
		interval: settings.Config.TickInterval(),
		gen:      tickGen.Add(1),
		width:    width,
		height:   height,
	}
}

// worldArea returns the part of the terminal available to the viewport.
func worldArea(width, height int) (int, int) {
	return core.Max(width, 1), core.Max(height-core.HUDRows-footerRows, 1)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.interval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.backQuits {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.queue.Push(action)
	}
	return m, nil
}

// handleResize keeps the simulation and resizes the viewport.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	m.game.Resize(worldArea(msg.Width, msg.Height))
	return m, nil
}

// handleTick consumes one queued action and advances the simulation.
// Ticks scheduled by another model are dropped so only one chain runs.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.queue.NextFrame())
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.gen, m.interval)
}

// View renders the viewport, the HUD and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.game.Frame()) + "\n" +
		renderHUD(m.game.HUD(), m.width) + "\n" +
		m.help.View(m.keys)
}

// Game returns the underlying session.
func (m GameModel) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single level in the alternate screen until the user quits.
func Run(lvl *level.Level, settings Settings, width, height int) error {
	model := NewGameModel(lvl, settings, width, height)
	model.backQuits = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return &core.TerminalSetupError{Op: "tui", Err: err}
	}
	return nil
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for the local menu command and SSH sessions.
type SessionModel struct {
	settings  Settings
	width     int
	height    int
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session starting at the level picker.
func NewSessionModel(settings Settings, width, height int) SessionModel {
	return SessionModel{
		settings: settings,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		lvl, err := registry.Create(selected.ID)
		if err != nil {
			m.menu = m.menu.withError(err)
			return m, nil
		}

		gameModel := NewGameModel(lvl, m.settings, m.width, m.height)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// RunSession runs the menu -> game flow in the alternate screen.
func RunSession(settings Settings, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(settings, width, height),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return &core.TerminalSetupError{Op: "tui", Err: err}
	}
	return nil
}

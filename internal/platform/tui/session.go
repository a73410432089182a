package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetress/internal/config"
	"github.com/vovakirdan/tetress/internal/core"
	"github.com/vovakirdan/tetress/internal/games/tetress"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/registry"
	"github.com/vovakirdan/tetress/internal/storage"
)

// stage is the screen a session is showing.
type stage int

const (
	stageMenu stage = iota
	stageModes
	stageGame
	stageScores
)

// SessionModel manages the full arcade session flow:
// menu -> mode select -> game -> mode select, with the scoreboard reachable
// from the menu. It is the top-level model for SSH sessions and the local
// menu command.
//
// Sub-models end themselves with tea.Quit, as they do when run on their
// own; the session swallows that command and switches stage instead.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	tetressCfg config.TetressConfig
	player     string
	lastMode   engine.Mode

	stage    stage
	menu     MenuModel
	modes    TetressModeModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model. Tetress games are built from
// tetressCfg, so concurrent sessions never share configuration state.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string, tetressCfg config.TetressConfig) SessionModel {
	return SessionModel{
		store:      store,
		config:     cfg,
		tetressCfg: tetressCfg,
		player:     player,
		lastMode:   engine.ModeMarathon,
		stage:      stageMenu,
		menu:       NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageModes:
		return m.updateModes(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		return m.toScores()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		if id == tetress.ID {
			return m.toModes()
		}
		game, err := registry.Create(id)
		if err != nil {
			// The menu lists registered games only.
			return m.toMenu()
		}
		return m.toGame(game)
	}

	return m, cmd
}

func (m SessionModel) updateModes(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.modes.Update(msg)
	if modes, ok := next.(TetressModeModel); ok {
		m.modes = modes
	}

	switch {
	case m.modes.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.modes.WantsBack():
		return m.toMenu()
	case m.modes.Selected() != nil:
		m.lastMode = *m.modes.Selected()
		return m.toGame(tetress.NewWithConfig(m.lastMode, m.tetressCfg))
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		if m.game.game.ID() == tetress.ID {
			return m.toModes()
		}
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) toModes() (tea.Model, tea.Cmd) {
	m.stage = stageModes
	m.modes = NewTetressModeModel(m.store, m.player, m.lastMode, m.config.ScreenW, m.config.ScreenH)
	return m, m.modes.Init()
}

func (m SessionModel) toGame(game registry.Game) (tea.Model, tea.Cmd) {
	m.stage = stageGame
	m.config.Seed = 0
	m.game = NewModel(game, m.store, m.config, m.player)
	return m, m.game.Init()
}

func (m SessionModel) toScores() (tea.Model, tea.Cmd) {
	m.stage = stageScores
	m.scores = NewScoreboardModel(m.store, m.lastMode, m.config.ScreenW, m.config.ScreenH)
	return m, m.scores.Init()
}

// View renders the current stage.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageModes:
		return m.modes.View()
	case stageGame:
		return m.game.View()
	case stageScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a full local session until the user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, player string, tetressCfg config.TetressConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, player, tetressCfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

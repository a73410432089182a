package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tetress/internal/core"
	"github.com/vovakirdan/tetress/internal/games/tetress"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/storage"
)

// TetressModeModel lets users choose the Tetress mode. Each entry shows the
// mode rules and the player's personal best.
type TetressModeModel struct {
	modes     []engine.Mode
	bests     map[engine.Mode]string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *engine.Mode
	quitting  bool
	back      bool
}

// NewTetressModeModel creates a mode selector with the cursor on current.
// The store may be nil.
func NewTetressModeModel(store *storage.Store, player string, current engine.Mode, width, height int) TetressModeModel {
	m := TetressModeModel{
		modes:     engine.Modes,
		bests:     make(map[engine.Mode]string),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, mode := range m.modes {
		if mode == current {
			m.cursor = i
		}
	}
	if store != nil {
		for _, mode := range m.modes {
			m.bests[mode] = personalBest(store, mode, player)
		}
	}
	return m
}

// personalBest formats the player's best run of a mode, or "" when there
// is none.
func personalBest(store *storage.Store, mode engine.Mode, player string) string {
	best, err := store.PersonalBest(tetress.ID, string(mode), player)
	if err != nil {
		return ""
	}
	if mode == engine.ModeSprint {
		return formatDuration(best.Duration)
	}
	return humanize.Comma(int64(best.Score))
}

// Init initializes the model.
func (m TetressModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TetressModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TetressModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		mode := m.modes[m.cursor]
		m.selected = &mode
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode list.
func (m TetressModeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("T E T R E S S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s", cursor, mode.Title())
		if best := m.bests[mode]; best != "" {
			line += "  best " + best
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDescStyle.Render(centerText(m.modes[m.cursor].Description(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen mode, or nil if still choosing.
func (m TetressModeModel) Selected() *engine.Mode {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m TetressModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TetressModeModel) WantsBack() bool {
	return m.back
}

// RunTetressModeSelector runs the mode selection and returns the chosen
// mode, or nil when the user backed out.
func RunTetressModeSelector(store *storage.Store, player string, cfg core.RuntimeConfig) (*engine.Mode, error) {
	model := NewTetressModeModel(store, player, tetress.SelectedMode(), cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TetressModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

// formatDuration renders a run time as m:ss.cc.
func formatDuration(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

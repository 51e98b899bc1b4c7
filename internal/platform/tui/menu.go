package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// MenuChoice is what the launcher menu was left with.
type MenuChoice int

const (
	MenuQuit MenuChoice = iota
	MenuPlay
	MenuScores
)

var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

type menuItem struct {
	label  string
	choice MenuChoice
}

// menuKeys are the launcher bindings.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "a", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "d", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the launcher: play, view scores or quit, with a difficulty
// selector on the play entry.
type MenuModel struct {
	items     []menuItem
	cursor    int
	preset    int
	highScore int
	width     int
	height    int
	keys      menuKeys
	choice    MenuChoice
	done      bool
}

// NewMenuModel creates the launcher. store may be nil.
func NewMenuModel(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items: []menuItem{
			{"Play", MenuPlay},
			{"High scores", MenuScores},
			{"Quit", MenuQuit},
		},
		preset: 1,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   defaultMenuKeys(),
	}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.items[m.cursor].choice == MenuPlay {
			m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)
		}

	case key.Matches(msg, m.keys.Right):
		if m.items[m.cursor].choice == MenuPlay {
			m.preset = (m.preset + 1) % len(menuPresets)
		}

	case key.Matches(msg, m.keys.Select):
		m.choice = m.items[m.cursor].choice
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  D I G G E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.label
		if item.choice == MenuPlay {
			label = fmt.Sprintf("%s  < %s >", label, menuPresets[m.preset])
		}
		line := "  " + label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the difficulty shown on the play entry.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the launcher and returns the selection.
func RunMenu(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, gameID, preset, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg}, nil
	}

	if m.width > 0 && m.height > 0 {
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
	}
	return MenuResult{Choice: m.Choice(), Preset: m.Preset(), Config: cfg}, nil
}

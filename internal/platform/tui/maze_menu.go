package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronov/mazeterm/internal/config"
	"github.com/avoronov/mazeterm/internal/core"
)

// MazeSelection holds the user's selection from the maze menu.
type MazeSelection struct {
	Preset config.DifficultyPreset
}

// mazeMenuOption pairs a preset with its display line.
type mazeMenuOption struct {
	preset config.DifficultyPreset
	label  string
}

// mazeMenuOptions lists the selectable difficulties with their maze sizes.
func mazeMenuOptions() []mazeMenuOption {
	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
	}
	opts := make([]mazeMenuOption, 0, len(presets))
	for _, p := range presets {
		w, h := config.PresetDims(p)
		opts = append(opts, mazeMenuOption{
			preset: p,
			label:  fmt.Sprintf("%-6s (%dx%d maze)", string(p), w, h),
		})
	}
	return opts
}

// MazeMenuModel lets users choose a difficulty before playing.
type MazeMenuModel struct {
	options   []mazeMenuOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection MazeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewMazeMenuModel creates a new maze difficulty selection model.
func NewMazeMenuModel(width, height int) MazeMenuModel {
	return MazeMenuModel{
		options:   mazeMenuOptions(),
		cursor:    1, // Normal preselected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MazeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MazeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = MazeSelection{Preset: m.options[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m MazeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A Z E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MazeMenuModel) Selected() *MazeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MazeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MazeMenuModel) WantsBack() bool {
	return m.back
}

// RunMazeSelector runs the difficulty selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunMazeSelector(cfg core.RuntimeConfig) (*MazeSelection, error) {
	model := NewMazeMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MazeMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fractalfx/internal/scene"
)

var (
	pickTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b388ff")).Bold(true)
	pickSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5e4b7a"))
	pickCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e040fb")).Bold(true)
	pickSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	pickDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ce93d8"))
	pickIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	pickKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7c4dff")).Bold(true)
)

const (
	stateMenu = iota
	stateLive
)

// picker lists registered scenes and starts the live view on the chosen one.
type picker struct {
	registry      *scene.Registry
	opts          Options
	scenes        []string
	state, cursor int
	width, height int
	live          Model
	err           error
}

func newPicker(reg *scene.Registry, opts Options) picker {
	return picker{registry: reg, opts: opts, scenes: reg.List(), width: defaultCols, height: defaultRows}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scenes)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.start()
		}
	}
	return m, nil
}

func (m picker) start() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Scene = m.scenes[m.cursor]
	live, err := NewModel(m.registry, opts)
	if err != nil {
		m.err = err
		return m, nil
	}
	live.resize(m.width, m.height)
	m.live, m.state = live, stateLive
	return m, live.Init()
}

func (m picker) View() string {
	if m.state == stateLive {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + pickTitle.Render("FRACTALFX") + "\n    " + pickSub.Render("decorative fractal scenes") + "\n    " + pickSub.Render(Separator(25)) + "\n\n")
	for i, name := range m.scenes {
		desc := m.registry.Describe(name)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", pickCursor.Render("▸"), pickSelected.Render(fmt.Sprintf("%-12s", name)), pickDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", pickIdle.Render(fmt.Sprintf("%-12s", name)), pickIdle.Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5252")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + pickKey.Render("j/k") + pickIdle.Render(" navigate  ") + pickKey.Render("enter") + pickIdle.Render(" start  ") + pickKey.Render("q") + pickIdle.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive shows the scene picker, then the live view.
func RunInteractive(reg *scene.Registry, opts Options) error {
	_, err := tea.NewProgram(newPicker(reg, opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

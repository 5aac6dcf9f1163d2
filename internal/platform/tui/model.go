package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pietvm/internal/piet"
)

// Debugger layout constants
const (
	defaultStepsPerSec = 20
	minStepsPerSec     = 1
	maxStepsPerSec     = 240
	maxStackShown      = 12
	maxOutputShown     = 512
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	haltedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// DebugConfig describes one debugging session.
type DebugConfig struct {
	// Program is the display name, usually the file path.
	Program string
	// Grid is the loaded program.
	Grid *piet.Grid
	// Input is fed to in(number) and in(char); restarts on reset.
	Input []byte
	// MaxSteps bounds the run; 0 means unlimited.
	MaxSteps int
	// StepsPerSec is the auto-run speed; 0 uses the default.
	StepsPerSec int
}

// Model is the Bubble Tea model for the step debugger.
type Model struct {
	cfg    DebugConfig
	interp *piet.Interpreter
	output *bytes.Buffer

	running     bool
	stepsPerSec int
	width       int
	height      int
	loadErr     error

	keys KeyMap
	help help.Model
}

// NewModel creates a debugger model for the given session.
func NewModel(cfg DebugConfig) Model {
	if cfg.StepsPerSec <= 0 {
		cfg.StepsPerSec = defaultStepsPerSec
	}
	m := Model{
		cfg:         cfg,
		output:      &bytes.Buffer{},
		stepsPerSec: cfg.StepsPerSec,
		width:       80,
		height:      24,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	m.reset()
	return m
}

// reset builds a fresh interpreter with rewound input and output.
func (m *Model) reset() {
	m.output.Reset()
	interp, err := piet.New(m.cfg.Grid, piet.Options{
		Input:    piet.NewReaderInput(bytes.NewReader(m.cfg.Input)),
		Output:   piet.NewWriterOutput(m.output),
		MaxSteps: m.cfg.MaxSteps,
	})
	m.interp = interp
	m.loadErr = err
	m.running = false
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

	case TickMsg:
		if !m.running {
			return m, nil
		}
		if m.interp.Step() != piet.OutcomeRunning {
			m.running = false
			return m, nil
		}
		return m, tickCmd(m.stepsPerSec)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Step):
		m.running = false
		m.interp.Step()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.interp.Outcome() != piet.OutcomeRunning {
			return m, nil
		}
		m.running = !m.running
		if m.running {
			return m, tickCmd(m.stepsPerSec)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		m.stepsPerSec = clamp(m.stepsPerSec*2, minStepsPerSec, maxStepsPerSec)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.stepsPerSec = clamp(m.stepsPerSec/2, minStepsPerSec, maxStepsPerSec)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// View renders the debugger.
func (m Model) View() string {
	if m.loadErr != nil {
		return fmt.Sprintf("cannot debug %s: %v\n", m.cfg.Program, m.loadErr)
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("pietvm debug — " + m.cfg.Program))
	sb.WriteByte('\n')

	status := fmt.Sprintf("step %d  pos %s  dp|cc %s  %d steps/s",
		m.interp.Steps(), m.interp.Pos(), m.interp.Pointer(), m.stepsPerSec)
	if m.running {
		status += "  running"
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteByte('\n')

	if out := m.interp.Outcome(); out != piet.OutcomeRunning {
		sb.WriteString(haltedStyle.Render(out.String()))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	// Grid viewport sized to leave room for stack, output and help.
	maxW := m.width / 2
	maxH := m.height - 12
	if maxH < 4 {
		maxH = 4
	}
	sb.WriteString(RenderGrid(m.interp.Grid(), m.interp.Pos(), true, maxW, maxH))
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("stack"))
	sb.WriteByte(' ')
	sb.WriteString(renderStack(m.interp.Machine().Stack()))
	sb.WriteByte('\n')

	sb.WriteString(sectionStyle.Render("output"))
	sb.WriteByte(' ')
	sb.WriteString(renderOutput(m.output.String()))
	sb.WriteString("\n\n")

	sb.WriteString(m.help.View(m.keys))
	sb.WriteByte('\n')

	return sb.String()
}

// renderStack shows the top of the operand stack, top first.
func renderStack(s *piet.Stack) string {
	values := s.Snapshot()
	if len(values) == 0 {
		return "(empty)"
	}

	var parts []string
	for i := len(values) - 1; i >= 0 && len(parts) < maxStackShown; i-- {
		parts = append(parts, values[i].String())
	}
	out := strings.Join(parts, " ")
	if len(values) > maxStackShown {
		out += fmt.Sprintf(" … (%d more)", len(values)-maxStackShown)
	}
	return out
}

// renderOutput shows the tail of the program's output with control
// characters made visible.
func renderOutput(out string) string {
	if out == "" {
		return "(none)"
	}
	if len(out) > maxOutputShown {
		out = "…" + out[len(out)-maxOutputShown:]
	}
	out = strings.ReplaceAll(out, "\n", "⏎")
	return out
}

// Run starts the debugger in the local terminal.
func Run(cfg DebugConfig) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

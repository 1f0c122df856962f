package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/msto63/mEX/lang"
	"github.com/msto63/mEX/lang/ast"
)

// Entry represents one evaluated input in the session history
type Entry struct {
	Input       string
	Output      string
	ParseErrors []string
	IsError     bool
}

// Model is the main REPL TUI model
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Session state
	engine    *lang.Engine
	sessionID string
	history   []Entry
	evalCount int
	showTree  bool

	// Content buffer
	content string
}

// NewModel creates a new REPL TUI model
func NewModel(engine *lang.Engine) Model {
	ta := textarea.New()
	ta.Placeholder = "Ausdruck eingeben..."
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		textarea:  ta,
		spinner:   sp,
		engine:    engine,
		sessionID: uuid.New().String(),
		history:   []Entry{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if !m.loading {
				input := strings.TrimSpace(m.textarea.Value())
				if input != "" {
					m.textarea.Reset()
					m.loading = true
					return m, tea.Batch(m.spinner.Tick, m.evaluate(input))
				}
			}

		case "ctrl+l":
			// Clear history
			m.history = []Entry{}
			m.updateContent()
			return m, nil

		case "ctrl+t":
			// Toggle AST tree rendering for subsequent inputs
			m.showTree = !m.showTree
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-10)
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 10
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateContent()

	case evalResultMsg:
		m.loading = false
		m.evalCount++
		m.history = append(m.history, Entry(msg))
		m.updateContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	// Header
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	// History viewport
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	// Loading indicator
	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" Werte aus...\n")
	}

	// Input area
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))

	// Footer
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("meinEXPRESSIONSWERK")
	session := SubtitleStyle.Render(fmt.Sprintf("Sitzung %s", m.sessionID[:8]))

	return lipgloss.JoinVertical(lipgloss.Left, title, session)
}

func (m *Model) renderFooter() string {
	help := "Enter: Auswerten • Ctrl+T: AST an/aus • Ctrl+L: Leeren • Ctrl+C: Beenden"
	counter := fmt.Sprintf("Auswertungen: %d", m.evalCount)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-len(help)-len(counter)-4)),
			counter,
		),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, entry := range m.history {
		content.WriteString(PromptStyle.Render(">> "))
		content.WriteString(entry.Input)
		content.WriteString("\n")

		if entry.IsError {
			for _, msg := range entry.ParseErrors {
				content.WriteString(ErrorMessageStyle.Render("  " + msg))
				content.WriteString("\n")
			}
		} else if entry.Output != "" {
			content.WriteString(ResultStyle.Render(entry.Output))
			content.WriteString("\n")
		} else {
			content.WriteString(NullStyle.Render("(kein Wert)"))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	m.content = content.String()
	m.viewport.SetContent(m.content)
	m.viewport.GotoBottom()
}

// Message type for async evaluation
type evalResultMsg Entry

// evaluate runs the input through the engine as a bubbletea command
func (m *Model) evaluate(input string) tea.Cmd {
	engine := m.engine
	showTree := m.showTree

	return func() tea.Msg {
		result, err := engine.Run(input)

		if result != nil && result.HasErrors() {
			return evalResultMsg{
				Input:       input,
				ParseErrors: result.ParseErrors,
				IsError:     true,
			}
		}
		if err != nil {
			return evalResultMsg{
				Input:       input,
				ParseErrors: []string{err.Error()},
				IsError:     true,
			}
		}

		output := result.Rendering()
		if showTree {
			tree := ast.NewTreePrinter().Print(result.Program)
			output = output + "\n" + TreeStyle.Render(strings.TrimRight(tree, "\n"))
		}

		return evalResultMsg{
			Input:  input,
			Output: output,
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

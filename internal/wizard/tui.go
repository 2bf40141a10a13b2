package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// textModel asks for one line of free text.
type textModel struct {
	question  string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newTextModel(question, placeholder, value string) textModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Width = 60
	ti.Focus()

	return textModel{question: question, input: ti}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("[enter] Confirm  [esc] Cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the answer as typed.
func (m textModel) Value() string {
	return m.input.Value()
}

// selectModel asks for one of a fixed list of options.
type selectModel struct {
	question  string
	options   []string
	cursor    int
	done      bool
	cancelled bool
}

func newSelectModel(question string, options []string, defaultIndex int) selectModel {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	return selectModel{question: question, options: options, cursor: defaultIndex}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	default:
		// Number keys jump straight to an option.
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(m.options) {
				m.cursor = idx
			}
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[↑/↓] Move  [enter] Select  [esc] Cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the option under the cursor.
func (m selectModel) Value() string {
	return m.options[m.cursor]
}

// TUIPrompter asks each question with a small Bubble Tea program.
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTUIPrompter runs its programs on in and out. Nil values fall back to
// the terminal.
func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

func (p *TUIPrompter) run(m tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return final, nil
}

// Text implements Prompter.
func (p *TUIPrompter) Text(question, placeholder, value string) (string, error) {
	final, err := p.run(newTextModel(question, placeholder, value))
	if err != nil {
		return "", err
	}

	m := final.(textModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// Select implements Prompter.
func (p *TUIPrompter) Select(question string, options []string, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for '%s'", question)
	}

	final, err := p.run(newSelectModel(question, options, defaultIndex))
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

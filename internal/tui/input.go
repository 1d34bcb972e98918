package tui

import (
	"errors"
	"fmt"
	"io"

	"pathman/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInputAborted is returned when the user ends input (Ctrl+C, Ctrl+D, Esc).
var ErrInputAborted = errors.New("input aborted")

// LineInput reads a single line from the user.
type LineInput interface {
	// ReadLine shows prompt and returns the entered line. initial is
	// pre-filled as editable text where the implementation supports it.
	ReadLine(prompt, initial string) (string, error)
}

// TerminalInput reads lines with a one-shot bubbletea program per prompt.
type TerminalInput struct {
	in  io.Reader
	out io.Writer

	// Path mode: filename completion, history, pre-filled text
	pathMode bool
	history  []string
}

// NewPlainInput returns a line reader without history or completion.
func NewPlainInput(in io.Reader, out io.Writer) *TerminalInput {
	return &TerminalInput{in: in, out: out}
}

// NewPathInput returns a line reader with filesystem tab-completion and
// a history of accepted values.
func NewPathInput(in io.Reader, out io.Writer) *TerminalInput {
	return &TerminalInput{in: in, out: out, pathMode: true}
}

// ReadLine implements LineInput.
func (t *TerminalInput) ReadLine(prompt, initial string) (string, error) {
	m := newPromptModel(prompt, t.pathMode)
	if t.pathMode {
		m.history = t.history
		m.histIdx = len(t.history)
		if initial != "" {
			m.input.SetValue(initial)
			m.input.CursorEnd()
			m.refreshSuggestions()
		}
	}

	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInputAborted
		}
		return "", fmt.Errorf("line input: %w", err)
	}

	fm, ok := final.(promptModel)
	if !ok || fm.aborted {
		return "", ErrInputAborted
	}

	line := fm.input.Value()
	if t.pathMode && line != "" {
		t.history = append(t.history, line)
	}
	return line, nil
}

// promptModel is the bubbletea model behind a single prompt.
type promptModel struct {
	input    textinput.Model
	complete bool

	history []string
	histIdx int
	draft   string

	done    bool
	aborted bool
}

func newPromptModel(prompt string, pathMode bool) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 0
	ti.Focus()

	if pathMode {
		ti.ShowSuggestions = true
		// Up/Down walk history; suggestions cycle on Ctrl+N/Ctrl+P
		ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
		ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	}

	return promptModel{input: ti, complete: pathMode}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			// End of input only on an empty line, otherwise delete forward
			if m.input.Value() == "" {
				m.aborted = true
				return m, tea.Quit
			}
		case tea.KeyUp:
			if m.complete {
				m.historyPrev()
				return m, nil
			}
		case tea.KeyDown:
			if m.complete {
				m.historyNext()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		// Leave the answered prompt in the transcript
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View() + "\n"
}

func (m *promptModel) refreshSuggestions() {
	if !m.complete {
		return
	}
	m.input.SetSuggestions(model.CompletePath(m.input.Value()))
}

func (m *promptModel) historyPrev() {
	if m.histIdx == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histIdx--
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
	m.refreshSuggestions()
}

func (m *promptModel) historyNext() {
	if m.histIdx >= len(m.history) {
		return
	}
	m.histIdx++
	if m.histIdx == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
	m.refreshSuggestions()
}

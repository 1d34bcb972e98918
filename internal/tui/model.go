package tui

import (
	"io"

	"pathman/internal/logging"
	"pathman/internal/model"

	"github.com/rs/zerolog"
)

// Transition is the outcome of one pass through the editor loop.
type Transition int

const (
	Continue Transition = iota
	Saved
	Aborted
)

func (t Transition) String() string {
	switch t {
	case Saved:
		return "saved"
	case Aborted:
		return "aborted"
	default:
		return "continue"
	}
}

// Emphasis selects the color a message is printed in.
type Emphasis int

const (
	Neutral Emphasis = iota
	Success
	Warning
	Error
)

// Message is shown once, on the render after the action that set it.
type Message struct {
	Text     string
	Emphasis Emphasis
}

const noHighlight = -1

// Session holds the editor state for one invocation.
type Session struct {
	// Data
	List model.PathList

	// Exists decides whether a path is present. Defaults to model.PathExists.
	Exists func(string) bool

	// UI State, consumed by the next render
	message   *Message
	highlight int

	// Components
	plain  LineInput // top-level and entry-action prompts
	path   LineInput // new-path and edit-path prompts
	out    io.Writer
	styles styles
	log    zerolog.Logger
}

// NewSession returns an editor over list. plain reads commands, path reads
// path values with completion and history. Output is written to out.
func NewSession(list model.PathList, plain, path LineInput, out io.Writer) *Session {
	if list == nil {
		list = model.PathList{}
	}
	return &Session{
		List:      list,
		Exists:    model.PathExists,
		highlight: noHighlight,
		plain:     plain,
		path:      path,
		out:       out,
		styles:    newStyles(out),
		log:       logging.GetLogger("editor"),
	}
}

// Message returns the message pending for the next render, if any.
func (s *Session) Message() (Message, bool) {
	if s.message == nil {
		return Message{}, false
	}
	return *s.message, true
}

// Highlight returns the index highlighted on the next render, if any.
func (s *Session) Highlight() (int, bool) {
	return s.highlight, s.highlight != noHighlight
}

func (s *Session) setMessage(e Emphasis, text string) {
	s.message = &Message{Text: text, Emphasis: e}
}

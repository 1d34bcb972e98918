package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	highlight lipgloss.Style
	missing   lipgloss.Style
	duplicate lipgloss.Style
	success   lipgloss.Style
	hint      lipgloss.Style
	subject   lipgloss.Style
	note      lipgloss.Style
	plain     lipgloss.Style
}

// newStyles binds colors to the writer's own terminal capabilities, so
// nothing is colored when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		highlight: r.NewStyle().Foreground(lipgloss.Color("5")), // Magenta
		missing:   r.NewStyle().Foreground(lipgloss.Color("1")), // Red
		duplicate: r.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		success:   r.NewStyle().Foreground(lipgloss.Color("2")), // Green
		hint:      r.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		subject:   r.NewStyle().Foreground(lipgloss.Color("2")),
		note:      r.NewStyle().Foreground(lipgloss.Color("5")),
		plain:     r.NewStyle(),
	}
}

func (st styles) forEmphasis(e Emphasis) lipgloss.Style {
	switch e {
	case Success:
		return st.success
	case Warning:
		return st.duplicate
	case Error:
		return st.missing
	default:
		return st.plain
	}
}

// render prints the list, the pending message and the command hint,
// then clears the message and highlight.
func (s *Session) render() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out)

	statuses := s.List.Classify(s.Exists)
	for idx, p := range s.List {
		status := statuses[idx]

		style := s.styles.plain
		switch {
		case idx == s.highlight:
			style = s.styles.highlight
		case status.Missing:
			style = s.styles.missing
		case status.Duplicate:
			style = s.styles.duplicate
		}

		fmt.Fprintln(s.out, style.Render(fmt.Sprintf("%-5s %2d. %s", status.Flag(), idx, p)))
	}
	s.highlight = noHighlight

	if s.message != nil {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, s.styles.forEmphasis(s.message.Emphasis).Render(s.message.Text))
		s.message = nil
	}

	fmt.Fprintln(s.out)
	if len(s.List) > 0 {
		fmt.Fprintln(s.out, s.styles.hint.Render(fmt.Sprintf(
			"Edit/move entry: 0-%d.  New entry: n.  Save: s.  Quit: q", len(s.List)-1)))
		fmt.Fprintln(s.out, s.styles.hint.Render("Remove duplicates and not-existent paths: dd."))
	} else {
		fmt.Fprintln(s.out, s.styles.hint.Render("New entry: n.  Quit: q"))
	}
}

// renderEntryHeader introduces the entry-action prompt for index num.
func (s *Session) renderEntryHeader(num int) {
	p := s.List[num]

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Editing %s\n", s.styles.subject.Render(p))
	if !s.Exists(p) {
		fmt.Fprintln(s.out, s.styles.note.Render("Warning: this path doesn't exist."))
	}
	fmt.Fprintf(s.out, "Delete: d.  Edit value: e.  Set new position: 0-%d or b for bottom\n", len(s.List)-1)
}

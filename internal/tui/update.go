package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pathman/internal/model"
)

// Messages shown after each action.
const (
	msgPruned        = "Duplicate and non-existent entries removed"
	msgNewMissing    = "Warning: this path doesn't exist!"
	msgNotAdding     = "Nevermind, not adding any new paths..."
	msgInvalidNumber = "That number is not valid."
	msgNotRecognized = "That option was not recognized."
	msgDeleted       = "Entry has been deleted."
	msgMoved         = "Entry has been moved."
	msgUpdated       = "Entry has been updated."
	msgNotEditing    = "Nevermind, not editing that path"
)

const (
	promptCommand     = "> "
	promptEntryAction = ">> "
	promptNewPath     = "new> "
	promptEditPath    = "edit> "
)

// Run drives the editor until the user saves or quits. It returns the
// final list and true on save, or false when nothing should change.
func (s *Session) Run() (model.PathList, bool, error) {
	for {
		t, err := s.Step()
		if err != nil {
			return nil, false, err
		}
		switch t {
		case Saved:
			return s.List.Clone(), true, nil
		case Aborted:
			return nil, false, nil
		}
	}
}

// Step renders the current state, reads one top-level command and applies it.
func (s *Session) Step() (Transition, error) {
	s.render()

	line, err := s.plain.ReadLine(promptCommand, "")
	if errors.Is(err, ErrInputAborted) {
		s.log.Debug().Msg("Input ended at top level")
		return Aborted, nil
	}
	if err != nil {
		return Aborted, err
	}

	return s.dispatch(strings.TrimSpace(line))
}

func (s *Session) dispatch(cmd string) (Transition, error) {
	s.log.Debug().Str("command", cmd).Int("entries", len(s.List)).Msg("Dispatching command")

	switch cmd {
	case "q":
		return Aborted, nil
	case "s":
		return Saved, nil
	case "dd":
		before := len(s.List)
		// Dedupe first so the surviving copy of a duplicate is still checked
		s.List = s.List.Dedupe().PruneMissing(s.Exists)
		s.log.Debug().Int("removed", before-len(s.List)).Msg("Pruned entries")
		s.setMessage(Success, msgPruned)
		return Continue, nil
	case "n":
		return Continue, s.addEntry()
	}

	num, err := strconv.ParseUint(cmd, 10, 0)
	if err != nil {
		s.setMessage(Error, msgNotRecognized)
		return Continue, nil
	}
	if num >= uint64(len(s.List)) {
		s.setMessage(Error, msgInvalidNumber)
		return Continue, nil
	}
	return Continue, s.entryAction(int(num))
}

func (s *Session) addEntry() error {
	fmt.Fprintln(s.out, "Enter new path (or just press enter to cancel)")

	value, err := s.path.ReadLine(promptNewPath, "")
	if err != nil && !errors.Is(err, ErrInputAborted) {
		return err
	}
	value = strings.TrimSpace(value)
	if err != nil || value == "" {
		s.setMessage(Neutral, msgNotAdding)
		return nil
	}

	if !s.Exists(value) {
		s.setMessage(Warning, msgNewMissing)
	}
	s.highlight = s.List.Insert(value)
	s.log.Debug().Str("path", value).Int("index", s.highlight).Msg("Inserted entry")
	return nil
}

// entryAction reads and applies a sub-command for the entry at num.
func (s *Session) entryAction(num int) error {
	s.renderEntryHeader(num)

	line, err := s.plain.ReadLine(promptEntryAction, "")
	if errors.Is(err, ErrInputAborted) {
		return nil
	}
	if err != nil {
		return err
	}

	switch cmd := strings.TrimSpace(line); cmd {
	case "d":
		if err := s.List.Delete(num); err != nil {
			return err
		}
		s.log.Debug().Int("index", num).Msg("Deleted entry")
		s.setMessage(Success, msgDeleted)
	case "e":
		return s.editEntry(num)
	case "b":
		s.moveEntry(num, len(s.List))
	default:
		pos, err := strconv.ParseUint(cmd, 10, 0)
		if err != nil {
			s.setMessage(Error, msgInvalidNumber)
			return nil
		}
		s.moveEntry(num, int(pos))
	}
	return nil
}

func (s *Session) editEntry(num int) error {
	value, err := s.path.ReadLine(promptEditPath, s.List[num])
	if err != nil && !errors.Is(err, ErrInputAborted) {
		return err
	}
	value = strings.TrimSpace(value)
	if err != nil || value == "" {
		s.setMessage(Neutral, msgNotEditing)
		return nil
	}

	if err := s.List.Replace(num, value); err != nil {
		return err
	}
	s.log.Debug().Int("index", num).Str("path", value).Msg("Replaced entry")
	s.setMessage(Success, msgUpdated)
	return nil
}

func (s *Session) moveEntry(from, to int) {
	idx, err := s.List.MoveTo(from, to)
	if err != nil {
		s.setMessage(Error, msgInvalidNumber)
		return
	}
	s.log.Debug().Int("from", from).Int("to", idx).Msg("Moved entry")
	s.setMessage(Success, msgMoved)
	s.highlight = idx
}

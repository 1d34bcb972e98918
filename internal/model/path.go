package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange is returned when an index does not address an entry
// (or, for move targets, a valid insertion point).
var ErrIndexOutOfRange = errors.New("index out of range")

// PathList is the ordered list of directories being edited.
// Order is exactly what the user sees and arranges; nothing sorts it.
type PathList []string

// EntryStatus describes a single entry at the time it was classified.
type EntryStatus struct {
	Missing   bool // Path does not exist on the filesystem
	Duplicate bool // Same string appears at another index too
}

// Flag returns the display flag for the entry. Missing wins over duplicate.
func (s EntryStatus) Flag() string {
	switch {
	case s.Missing:
		return FlagMissing
	case s.Duplicate:
		return FlagDuplicate
	default:
		return FlagNone
	}
}

// Split parses a delimited variable value into a PathList,
// dropping empty segments.
func Split(value string, sep string) PathList {
	list := PathList{}
	if value == "" {
		return list
	}
	for _, p := range strings.Split(value, sep) {
		if p == "" {
			continue
		}
		list = append(list, p)
	}
	return list
}

// Join is the inverse of Split for lists of non-empty entries.
func (l PathList) Join(sep string) string {
	return strings.Join(l, sep)
}

// Clone returns an independent copy of the list.
func (l PathList) Clone() PathList {
	out := make(PathList, len(l))
	copy(out, l)
	return out
}

// DuplicateIndices groups entries by exact string value and returns every
// index that belongs to a group of two or more.
func (l PathList) DuplicateIndices() map[int]bool {
	groups := make(map[string][]int, len(l))
	for i, p := range l {
		groups[p] = append(groups[p], i)
	}

	dups := make(map[int]bool)
	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		for _, i := range idxs {
			dups[i] = true
		}
	}
	return dups
}

// Classify computes the status of every entry. exists decides whether a
// path is present; pass PathExists for the real filesystem.
func (l PathList) Classify(exists func(string) bool) []EntryStatus {
	dups := l.DuplicateIndices()
	statuses := make([]EntryStatus, len(l))
	for i, p := range l {
		statuses[i] = EntryStatus{
			Missing:   !exists(p),
			Duplicate: dups[i],
		}
	}
	return statuses
}

// Dedupe keeps the first occurrence of every value, in first-seen order.
func (l PathList) Dedupe() PathList {
	seen := make(map[string]bool, len(l))
	out := make(PathList, 0, len(l))
	for _, p := range l {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// PruneMissing keeps only entries for which exists reports true.
func (l PathList) PruneMissing(exists func(string) bool) PathList {
	out := make(PathList, 0, len(l))
	for _, p := range l {
		if exists(p) {
			out = append(out, p)
		}
	}
	return out
}

// Insert appends value and returns the index of the new entry.
func (l *PathList) Insert(value string) int {
	*l = append(*l, value)
	return len(*l) - 1
}

// Delete removes the entry at index.
func (l *PathList) Delete(index int) error {
	if index < 0 || index >= len(*l) {
		return fmt.Errorf("delete %d of %d entries: %w", index, len(*l), ErrIndexOutOfRange)
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
	return nil
}

// MoveTo removes the entry at from and reinserts it at to. A target equal
// to the list length means "bottom". Returns the entry's new index.
func (l *PathList) MoveTo(from, to int) (int, error) {
	n := len(*l)
	if from < 0 || from >= n {
		return 0, fmt.Errorf("move from %d of %d entries: %w", from, n, ErrIndexOutOfRange)
	}
	if to < 0 || to > n {
		return 0, fmt.Errorf("move to %d of %d entries: %w", to, n, ErrIndexOutOfRange)
	}

	entry := (*l)[from]
	rest := append((*l)[:from:from], (*l)[from+1:]...)
	if to > len(rest) {
		to = len(rest)
	}

	out := make(PathList, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, entry)
	out = append(out, rest[to:]...)
	*l = out
	return to, nil
}

// Replace overwrites the entry at index with the trimmed value.
func (l PathList) Replace(index int, value string) error {
	if index < 0 || index >= len(l) {
		return fmt.Errorf("replace %d of %d entries: %w", index, len(l), ErrIndexOutOfRange)
	}
	l[index] = strings.TrimSpace(value)
	return nil
}

package model

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PathExists reports whether something exists at path, following the
// host filesystem's own resolution rules.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

// CompletePath returns filesystem completions for a partially typed path.
// Each candidate keeps the prefix exactly as typed so it can replace the
// input verbatim; directories end with a separator.
func CompletePath(typed string) []string {
	dirPart, base := splitTyped(typed)

	// Read from the expanded directory but keep the typed spelling
	readDir := ExpandTilde(dirPart)
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		// Hidden entries only when asked for
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}

		candidate := dirPart + name
		if isDirEntry(readDir, e) {
			candidate += string(filepath.Separator)
		}
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)
	return candidates
}

// splitTyped splits typed input into the directory part (with its trailing
// separator) and the partial name after it.
func splitTyped(typed string) (string, string) {
	if typed == "~" {
		return "~" + string(filepath.Separator), ""
	}
	i := strings.LastIndexAny(typed, "/"+string(filepath.Separator))
	if i < 0 {
		return "", typed
	}
	return typed[:i+1], typed[i+1:]
}

func isDirEntry(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}

package shell

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// profileMarker precedes every line pathman appends to a profile.
const profileMarker = "# added by pathman"

// Runner executes an external command.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes the command and folds its stderr into the returned error.
func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug().Str("command", name).Strs("args", args).Msg("Executing command")
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// profileWriter appends export lines to a shell startup file.
// The zero value writes under the user's home directory.
type profileWriter struct {
	home string
}

func (w profileWriter) homeDir() (string, error) {
	if w.home != "" {
		return w.home, nil
	}
	return os.UserHomeDir()
}

func (w profileWriter) appendExport(sh Shell, name, value string) error {
	home, err := w.homeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	profile := sh.ProfilePath(home)
	if err := os.MkdirAll(filepath.Dir(profile), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	f, err := os.OpenFile(profile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", profile, err)
	}
	defer func() { _ = f.Close() }()

	block := fmt.Sprintf("\n%s\n%s\n", profileMarker, sh.ExportLine(name, value))
	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("failed to write %s: %w", profile, err)
	}

	log.Info().Str("shell", sh.Name()).Str("profile", profile).Str("variable", name).Msg("Persisted variable")
	return nil
}

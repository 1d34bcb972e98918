package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrUnknownShell is returned by ByName for unsupported shells.
var ErrUnknownShell = errors.New("unknown shell")

// Shell defines how a variable is made permanent for a given shell.
type Shell interface {
	Name() string
	// ProfilePath is the startup file the export is appended to.
	// Empty when the shell does not use a profile file.
	ProfilePath(home string) string
	// ExportLine is the statement that sets name to value in the shell.
	ExportLine(name, value string) string
	// SetEnv persists name=value for future sessions.
	SetEnv(name, value string) error
}

// posixShell covers sh, bash and zsh which share export syntax.
type posixShell struct {
	name    string
	profile string
	fs      profileWriter
}

func (s *posixShell) Name() string {
	return s.name
}

func (s *posixShell) ProfilePath(home string) string {
	return filepath.Join(home, s.profile)
}

func (s *posixShell) ExportLine(name, value string) string {
	return fmt.Sprintf("export %s=%s", name, quotePOSIX(value))
}

func (s *posixShell) SetEnv(name, value string) error {
	return s.fs.appendExport(s, name, value)
}

// FishShell implements Shell for fish.
type FishShell struct {
	fs profileWriter
}

func (s *FishShell) Name() string {
	return "fish"
}

func (s *FishShell) ProfilePath(home string) string {
	return filepath.Join(home, ".config", "fish", "config.fish")
}

func (s *FishShell) ExportLine(name, value string) string {
	// fish splits variables ending in PATH on ':' itself
	return fmt.Sprintf("set -gx %s %s", name, quotePOSIX(value))
}

func (s *FishShell) SetEnv(name, value string) error {
	return s.fs.appendExport(s, name, value)
}

// WindowsShell persists variables in the user environment via setx.
type WindowsShell struct {
	run Runner
}

func (s *WindowsShell) Name() string {
	return "windows"
}

func (s *WindowsShell) ProfilePath(home string) string {
	return ""
}

func (s *WindowsShell) ExportLine(name, value string) string {
	return fmt.Sprintf(`set "%s=%s"`, name, value)
}

func (s *WindowsShell) SetEnv(name, value string) error {
	return s.run.Run("setx", name, value)
}

// NewBash returns the bash integration.
func NewBash() Shell { return &posixShell{name: "bash", profile: ".bashrc"} }

// NewZsh returns the zsh integration.
func NewZsh() Shell { return &posixShell{name: "zsh", profile: ".zshrc"} }

// NewSh returns the plain POSIX sh integration.
func NewSh() Shell { return &posixShell{name: "sh", profile: ".profile"} }

// NewFish returns the fish integration.
func NewFish() Shell { return &FishShell{} }

// NewWindows returns the Windows integration.
func NewWindows() Shell { return &WindowsShell{run: ExecRunner{}} }

// ByName resolves a shell from its name as given on the command line.
func ByName(name string) (Shell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return NewBash(), nil
	case "zsh":
		return NewZsh(), nil
	case "sh", "dash", "ksh":
		return NewSh(), nil
	case "fish":
		return NewFish(), nil
	case "windows", "cmd", "powershell", "pwsh":
		return NewWindows(), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownShell)
}

// DetectShell attempts to identify the user's shell from $SHELL.
func DetectShell(shellPath string) Shell {
	base := strings.TrimSuffix(filepath.Base(shellPath), ".exe")
	if shellPath != "" {
		if sh, err := ByName(base); err == nil {
			return sh
		}
	}
	if runtime.GOOS == "windows" {
		return NewWindows()
	}
	return NewSh()
}

// quotePOSIX single-quotes s, escaping embedded single quotes.
func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

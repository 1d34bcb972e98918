package main

import (
	"fmt"
	"os"
	"runtime"

	"pathman/internal/logging"
	"pathman/internal/model"
	"pathman/internal/shell"
	"pathman/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "abulka",
		Repository: "pathman",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		log.Warn().Err(err).Msg("Update check failed")
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/abulka/pathman/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func defaultSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

func main() {
	detected := shell.DetectShell(os.Getenv("SHELL"))

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pathman [options] VAR\n\n")
		fmt.Fprintf(os.Stderr, "pathman interactively edits a PATH-like environment variable.\n")
		fmt.Fprintf(os.Stderr, "Entries can be added, edited, moved and deleted; duplicates and\n")
		fmt.Fprintf(os.Stderr, "missing directories are flagged and can be removed in one go.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pathman PATH                # Edit PATH\n")
		fmt.Fprintf(os.Stderr, "  pathman -s ';' CLASSPATH    # Edit a ';'-separated variable\n")
		fmt.Fprintf(os.Stderr, "  pathman --shell fish PATH   # Persist for fish instead of %s\n", detected.Name())
	}

	sepFlag := pflag.StringP("separator", "s", defaultSeparator(), "Separator character")
	shellFlag := pflag.String("shell", "", fmt.Sprintf("What shell to use (autodetected as %q)", detected.Name()))
	verboseFlag := pflag.CountP("verbose", "v", "Log verbosity, repeat for more detail")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("pathman version %s\n", model.Version)
		return
	}

	if closer, err := logging.SetupLogger(*verboseFlag); err == nil {
		defer closer.Close()
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	if len([]rune(*sepFlag)) != 1 {
		fmt.Fprintf(os.Stderr, "Separator must be a single character, got %q\n", *sepFlag)
		os.Exit(1)
	}

	sh := detected
	if *shellFlag != "" {
		var err error
		sh, err = shell.ByName(*shellFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(pflag.Arg(0), *sepFlag, sh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(varName, sep string, sh shell.Shell) error {
	var list model.PathList
	if value, ok := os.LookupEnv(varName); ok {
		list = model.Split(value, sep)
	} else {
		fmt.Fprintln(os.Stderr, "Variable is not defined, starting with an empty list")
		list = model.PathList{}
	}
	log.Info().Str("variable", varName).Str("shell", sh.Name()).Int("entries", len(list)).Msg("Starting editor")

	session := tui.NewSession(list,
		tui.NewPlainInput(os.Stdin, os.Stderr),
		tui.NewPathInput(os.Stdin, os.Stderr),
		os.Stderr)

	final, saved, err := session.Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr)
	if !saved {
		fmt.Fprintf(os.Stderr, "%s environment variable unchanged.\n", varName)
		return nil
	}

	newVal := final.Join(sep)
	if err := sh.SetEnv(varName, newVal); err != nil {
		return fmt.Errorf("failed to persist %s: %w", varName, err)
	}
	fmt.Fprintf(os.Stderr, "%s environment variable updated\n", varName)
	// Lets the caller apply the change to the current session with eval
	fmt.Println(sh.ExportLine(varName, newVal))
	return nil
}

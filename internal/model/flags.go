package model

// Display flags shown in front of each entry.
// Padded to a fixed width by the renderer.
const (
	FlagMissing   = "del" // Path does not exist (would be deleted by dd)
	FlagDuplicate = "dup" // Same value appears elsewhere in the list
	FlagNone      = ""    // Nothing to report
)

// Version is the release reported by --version and compared by --update.
const Version = "0.3.0"

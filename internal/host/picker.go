package host

import "github.com/sqweek/dialog"

// PromptForROM opens a native file picker rooted at startingDir and
// returns the chosen path, for front ends that have no ROM path on the
// command line.
func PromptForROM(startingDir string) (string, error) {
	return dialog.File().
		SetStartDir(startingDir).
		Title("Select a Game Boy ROM").
		Filter("Game Boy ROM", "gb", "gbc", "zip", "7z", "gz").
		Load()
}

package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// literalPrompt is the byte contract every scripted invocation of the
// shell sees: exactly two characters, a dollar sign and a space.
const literalPrompt = "$ "

// Prompt returns the shell's prompt string. Styling is layered on top of
// the literal bytes only when stdout is an interactive terminal and
// colorEnabled is true; every piped or non-interactive run gets the bare
// "$ " untouched by any escape sequence.
func Prompt(colorEnabled bool) string {
	if !colorEnabled || !term.IsTerminal(int(os.Stdout.Fd())) {
		return literalPrompt
	}
	return lipgloss.NewStyle().Bold(true).Foreground(currentTheme.Green).Render(literalPrompt)
}

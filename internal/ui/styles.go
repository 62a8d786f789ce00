package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Red, Green, Yellow, Blue lipgloss.Color
}{
	Red: "#f38ba8", Green: "#a6e3a1", Yellow: "#f9e2af", Blue: "#89b4fa",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Red, Green, Yellow, Blue lipgloss.Color
}{
	Red: "#d20f39", Green: "#40a02b", Yellow: "#df8e1d", Blue: "#1e66f5",
}

// ThemePalette holds the current color scheme used for interactive-only
// styling (the prompt). Diagnostics and builtin output are never styled,
// since their bytes are part of the shell's contract.
type ThemePalette struct {
	Red, Green, Yellow, Blue lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	if DetectTheme() == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}

// SetDarkTheme switches to Catppuccin Mocha.
func SetDarkTheme() {
	currentTheme = ThemePalette{Red: mocha.Red, Green: mocha.Green, Yellow: mocha.Yellow, Blue: mocha.Blue}
}

// SetLightTheme switches to Catppuccin Latte.
func SetLightTheme() {
	currentTheme = ThemePalette{Red: latte.Red, Green: latte.Green, Yellow: latte.Yellow, Blue: latte.Blue}
}

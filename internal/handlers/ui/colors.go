package ui

import "github.com/fatih/color"

// Message Colors
var (
	ErrorColor  = color.New(color.FgRed).SprintFunc()     // diagnostics
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // job notices and debug dumps
)

// Prompt Specific Colors
var (
	UserHostColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	CwdColor      = color.New(color.FgBlue, color.Bold).SprintFunc()
	ShellColor    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// DisableColor turns every palette function into plain Sprint.
func DisableColor() {
	color.NoColor = true
}

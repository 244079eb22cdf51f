package ui

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// FriendlyPath shortens absPath to a "~"-relative form when it lies under home.
func FriendlyPath(absPath, home string) string {
	if home == "" || home == string(os.PathSeparator) {
		return absPath
	}
	if absPath == home {
		return "~"
	}
	if !strings.HasPrefix(absPath, home+string(os.PathSeparator)) {
		return absPath
	}
	return filepath.Join("~", strings.TrimPrefix(absPath, home+string(os.PathSeparator)))
}

// FormatPrompt renders "user@host:cwd name$ ".
func FormatPrompt(userName, host, cwd, name string) string {
	return UserHostColor(userName+"@"+host) + ":" + CwdColor(cwd) + " " + ShellColor(name) + "$ "
}

// Prompt returns a function that renders the prompt for the current process state.
// It is called before every line, so a cd shows up immediately.
func Prompt(name string) func() string {
	userName, home := "?", ""
	if usr, err := user.Current(); err == nil {
		userName, home = usr.Username, usr.HomeDir
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	return func() string {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "?"
		}
		return FormatPrompt(userName, host, FriendlyPath(cwd, home), name)
	}
}

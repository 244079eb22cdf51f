package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
)

// complete prints the candidates for the last word of the chain's last stage.
func (s *service) complete(cmd *command.Command) {
	stages := cmd.Stages()
	last := stages[len(stages)-1]

	var candidates []string
	if len(last.Args) == 0 {
		candidates = s.commandCandidates(last.Name)
	} else {
		candidates = pathCandidates(last.Args[len(last.Args)-1], last.Name == "cd")
	}
	if len(candidates) == 0 {
		return
	}
	fmt.Fprintln(s.streams.Out, strings.Join(candidates, "  "))
}

// commandCandidates lists builtins, utilities and programs starting with prefix.
func (s *service) commandCandidates(prefix string) []string {
	set := make(map[string]struct{})
	for _, b := range Builtins {
		if strings.HasPrefix(b.Name, prefix) {
			set[b.Name] = struct{}{}
		}
	}
	for _, u := range s.registry.All() {
		if strings.HasPrefix(u.Name(), prefix) {
			set[u.Name()] = struct{}{}
		}
	}
	for _, name := range s.finder.Candidates(prefix) {
		set[name] = struct{}{}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pathCandidates lists directory entries completing word. Directories carry a
// trailing slash. Hidden entries only show up when word's base starts with a dot.
func pathCandidates(word string, dirsOnly bool) []string {
	dir, base := filepath.Split(word)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) || (strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".")) {
			continue
		}
		isDir := e.IsDir()
		if !isDir && e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(readDir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		if dirsOnly && !isDir {
			continue
		}
		if isDir {
			name += "/"
		}
		out = append(out, dir+name)
	}
	return out
}

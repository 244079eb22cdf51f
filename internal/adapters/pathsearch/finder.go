package pathsearch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// fallbackDirs is searched when neither the config nor $PATH provides directories.
var fallbackDirs = []string{"/usr/local/bin", "/usr/bin", "/bin"}

// DirectoryFinder looks programs up in a fixed, ordered list of directories.
type DirectoryFinder struct {
	dirs []string
}

// NewDirectoryFinder creates a finder over dirs. An empty list means DefaultSearchPath().
func NewDirectoryFinder(dirs []string) ports.ExecutableFinder {
	if len(dirs) == 0 {
		dirs = DefaultSearchPath()
	}
	return &DirectoryFinder{dirs: dirs}
}

// DefaultSearchPath returns the directories of $PATH in order, or a fixed
// list of system directories when $PATH is unset or empty.
func DefaultSearchPath() []string {
	var dirs []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return append([]string(nil), fallbackDirs...)
	}
	return dirs
}

// Dirs returns the directories searched, in order.
func (f *DirectoryFinder) Dirs() []string {
	return f.dirs
}

/*
Find resolves name to an executable path. A name containing a slash is taken
as a path and only checked, never searched. Otherwise the first directory
holding an executable regular file of that name wins.
*/
func (f *DirectoryFinder) Find(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name: %w", execution.ErrCommandNotFound)
	}
	if strings.ContainsRune(name, '/') {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s: %w", name, execution.ErrCommandNotFound)
	}
	for _, dir := range f.dirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, execution.ErrCommandNotFound)
}

// Candidates lists executable names in the search directories that start with prefix.
func (f *DirectoryFinder) Candidates(prefix string) []string {
	seen := make(map[string]struct{})
	for _, dir := range f.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // unreadable or missing directories are skipped like an empty one
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			if isExecutable(filepath.Join(dir, name)) {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

package utilities

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Opener hands a path to the desktop's default application.
type Opener func(ctx context.Context, path string) error

// XDGOpen runs xdg-open on path and waits for it.
func XDGOpen(ctx context.Context, path string) error {
	return exec.CommandContext(ctx, "xdg-open", path).Run()
}

/*
FileSearch lists entries of the working directory whose names contain a
keyword. With -r it descends into subdirectories and prints paths relative
to the working directory; with -o it also opens every match.
*/
type FileSearch struct {
	open Opener
}

var _ ports.Utility = (*FileSearch)(nil)

// NewFileSearch creates a FileSearch. A nil opener means XDGOpen.
func NewFileSearch(open Opener) *FileSearch {
	if open == nil {
		open = XDGOpen
	}
	return &FileSearch{open: open}
}

func (f *FileSearch) Name() string { return "filesearch" }
func (f *FileSearch) Description() string {
	return "find names containing a keyword: filesearch [-r] [-o] <keyword>"
}

func (f *FileSearch) Run(ctx context.Context, args []string, s ports.Streams) error {
	flags := pflag.NewFlagSet(f.Name(), pflag.ContinueOnError)
	flags.SetOutput(s.Err)
	recursive := flags.BoolP("recursive", "r", false, "search subdirectories too")
	open := flags.BoolP("open", "o", false, "open every match")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: filesearch [-r] [-o] <keyword>")
	}
	keyword := flags.Arg(0)

	matches, err := search(".", keyword, *recursive)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Fprintln(s.Out, m)
		if *open {
			if err := f.open(ctx, m); err != nil {
				fmt.Fprintf(s.Err, "filesearch: opening %s: %v\n", m, err)
			}
		}
	}
	return nil
}

// search returns matching entry paths under root in lexical order.
func search(root, keyword string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var matches []string
		for _, e := range entries {
			if strings.Contains(e.Name(), keyword) {
				matches = append(matches, e.Name())
			}
		}
		return matches, nil
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if path != root && strings.Contains(d.Name(), keyword) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

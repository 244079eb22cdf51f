package utilities

import (
	"context"
	"fmt"
	"os"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Take creates a directory path, including missing parents, and changes into it.
type Take struct{}

var _ ports.Utility = (*Take)(nil)

func (Take) Name() string        { return "take" }
func (Take) Description() string { return "create a directory path and change into it: take <path>" }

func (Take) Run(_ context.Context, args []string, _ ports.Streams) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: take <path>")
	}
	if err := os.MkdirAll(args[0], 0700); err != nil {
		return err
	}
	return os.Chdir(args[0])
}

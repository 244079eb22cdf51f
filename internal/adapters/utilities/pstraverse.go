package utilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// PsTraverse is a placeholder for walking the kernel's process tree, which needs a kernel module.
type PsTraverse struct{}

var _ ports.Utility = (*PsTraverse)(nil)

func (PsTraverse) Name() string        { return "pstraverse" }
func (PsTraverse) Description() string { return "process tree traversal (unavailable)" }

func (PsTraverse) Run(context.Context, []string, ports.Streams) error {
	return fmt.Errorf("kernel process traversal: %w", errors.ErrUnsupported)
}

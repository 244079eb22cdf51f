package recall

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/history"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

type service struct {
	history *history.DirHistory
	keys    ports.KeyReader
}

// NewService creates the cdh utility over the session's directory history.
// It panics if any collaborator is nil.
func NewService(h *history.DirHistory, keys ports.KeyReader) ports.Utility {
	if h == nil {
		panic("directory history cannot be nil")
	}
	if keys == nil {
		panic("key reader cannot be nil")
	}
	return &service{history: h, keys: keys}
}

func (s *service) Name() string        { return "cdh" }
func (s *service) Description() string { return "list recent directories and jump to one" }

/*
Run lists the recorded directories, most recent first, reads one key and
changes to the directory it selects. A digit picks a slot, a letter picks a
label. Jumping does not record the directory being left.
*/
func (s *service) Run(ctx context.Context, _ []string, streams ports.Streams) error {
	if s.history.Empty() {
		fmt.Fprintln(streams.Out, "There is no history")
		return nil
	}

	table := tablewriter.NewWriter(streams.Out)
	table.SetHeader([]string{"Key", "Slot", "Directory"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})
	for _, e := range s.history.Entries() {
		table.Append([]string{string(e.Label), strconv.Itoa(e.Slot), e.Path})
	}
	table.Render()

	fmt.Fprint(streams.Out, "Please provide a letter or a slot number: ")
	key, err := s.keys.ReadKey(ctx)
	fmt.Fprintln(streams.Out)
	if err != nil {
		return fmt.Errorf("reading selection: %w", err)
	}

	entry, err := s.history.Resolve(key)
	if err != nil {
		return err
	}
	return os.Chdir(entry.Path)
}

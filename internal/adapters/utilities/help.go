package utilities

import (
	"context"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// HelpEntry describes a command handled outside the registry, such as cd.
type HelpEntry struct {
	Name        string
	Description string
}

// Help prints every builtin and registered utility.
type Help struct {
	registry ports.UtilityRegistry
	builtins []HelpEntry
}

var _ ports.Utility = (*Help)(nil)

// NewHelp creates a Help listing builtins followed by the contents of registry.
func NewHelp(registry ports.UtilityRegistry, builtins ...HelpEntry) *Help {
	if registry == nil {
		panic("utility registry cannot be nil")
	}
	return &Help{registry: registry, builtins: builtins}
}

func (h *Help) Name() string        { return "help" }
func (h *Help) Description() string { return "list builtins and utilities" }

func (h *Help) Run(_ context.Context, _ []string, s ports.Streams) error {
	table := tablewriter.NewWriter(s.Out)
	table.SetHeader([]string{"Command", "Kind", "Description"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range h.builtins {
		table.Append([]string{b.Name, "builtin", b.Description})
	}
	for _, u := range h.registry.All() {
		table.Append([]string{u.Name(), "utility", u.Description()})
	}
	table.Render()
	return nil
}

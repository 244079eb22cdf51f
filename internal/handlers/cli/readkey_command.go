package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/shellfyre/internal/adapters/keyreader"
)

// keyPipeFD is where the key helper finds the pipe back to the interpreter.
const keyPipeFD = 3

// NewReadKeyCommand creates the hidden helper run by cdh to read one raw key.
func NewReadKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "readkey",
		Short:  "Read one key from the terminal and write it to descriptor 3.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := os.NewFile(keyPipeFD, "keypipe")
			defer out.Close()
			return keyreader.ServeKey(os.Stdin, out)
		},
	}
}

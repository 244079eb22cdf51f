package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
)

// ExitError carries the status the process should exit with.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// notFoundStatus is reported for a one-shot line whose program could not be run.
const notFoundStatus = 127

type rootOptions struct {
	configPath string
	command    string
	debug      bool
	noColor    bool
}

// NewRootCommand creates the shellfyre command.
func NewRootCommand(version string) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "shellfyre",
		Short: "shellfyre is a small interactive command interpreter.",
		Long: `shellfyre reads command lines, runs programs found on the search path,
connects them with pipes and redirections, and remembers the directories
you leave so that cdh can take you back.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the config file (default ~/.config/shellfyre/config.yaml).")
	rootCmd.Flags().StringVarP(&opts.command, "command", "c", "", "Run one line and exit with its status.")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Print every parsed command before running it.")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output.")

	rootCmd.AddCommand(NewReadKeyCommand())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, opts rootOptions) error {
	sh, err := newShell(opts)
	if err != nil {
		return err
	}
	defer sh.close()

	ctx := cmd.Context()
	if opts.command != "" {
		result := sh.session.RunLine(ctx, opts.command)
		status := sh.dispatcher.LastStatus()
		if result == execution.Unknown {
			status = notFoundStatus
		}
		if status != 0 {
			return &ExitError{Code: status}
		}
		return nil
	}

	_, err = sh.session.Run(ctx)
	return err
}

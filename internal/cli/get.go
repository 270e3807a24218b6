package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <symbol>",
		Short: "Look up a stock holding by symbol",
		Long: `Look up a stock holding by symbol.

Lookups are read-only and never wait on an in-flight transaction.
A missing symbol exits with status 1, distinct from command errors (2).

Example:
  stockdb get GOOG
  stockdb --format json get GOOG`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, cmd, args[0])
		},
	}
}

func runGet(opts *RootOptions, cmd *cobra.Command, symbol string) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	st, ok, err := s.Lookup(cmd.Context(), symbol)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("lookup %s failed", symbol), err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if !ok {
		f.Error("NOT_FOUND", fmt.Sprintf("no stock with symbol %q", symbol))
		return NewExitError(ExitFailure, fmt.Sprintf("%s not found", symbol))
	}
	return f.Stock(st)
}

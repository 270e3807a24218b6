package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/stock"
	"github.com/roach88/stockdb/internal/store"
)

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <symbol> <quantity> <price>",
		Short: "Overwrite an existing stock holding",
		Long: `Overwrite every field of an existing stock holding inside a
committed transaction.

If the symbol does not exist the update is a silent no-op: the command
still succeeds and no row is created. Use 'stockdb get' to confirm
existence first when that matters.

Example:
  stockdb set GOOG 105 600.10`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStockArgs(args)
			if err != nil {
				return err
			}
			return runSet(rootOpts, cmd, st)
		},
	}
}

func runSet(opts *RootOptions, cmd *cobra.Command, st stock.Stock) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	err = s.WithTransaction(ctx, func(tx *store.Tx) error {
		return tx.Update(ctx, st)
	})
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("set %s failed", st.Symbol), err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Stock(st)
}

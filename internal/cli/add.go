package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/stock"
	"github.com/roach88/stockdb/internal/store"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <symbol> <quantity> <price>",
		Short: "Insert a new stock holding",
		Long: `Insert a new stock holding inside a committed transaction.

The symbol must not already exist: the table declares no uniqueness
constraint, so a duplicate add silently creates a second row.

Example:
  stockdb add GOOG 5 600.10`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStockArgs(args)
			if err != nil {
				return err
			}
			return runAdd(rootOpts, cmd, st)
		},
	}
}

// parseStockArgs converts <symbol> <quantity> <price> positionals.
func parseStockArgs(args []string) (stock.Stock, error) {
	quantity, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return stock.Stock{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid quantity %q", args[1]), err)
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return stock.Stock{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid price %q", args[2]), err)
	}
	return stock.Stock{Symbol: args[0], Quantity: quantity, Price: price}, nil
}

func runAdd(opts *RootOptions, cmd *cobra.Command, st stock.Stock) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	err = s.WithTransaction(ctx, func(tx *store.Tx) error {
		return tx.Insert(ctx, st)
	})
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("add %s failed", st.Symbol), err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Stock(st)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/stock"
	"github.com/roach88/stockdb/internal/store"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample insert/lookup/update sequence",
		Long: `Run the sample insert/lookup/update sequence against a scratch
database in a temporary directory. The configured --db file is not touched.

The sequence: create schema, insert GOOG 5 @ 600.10, look it up, raise the
quantity by 100, then raise it again while cutting the price to 550.50,
looking the row up after each committed transaction.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.MkdirTemp("", "stockdb-demo-")
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot create scratch directory", err)
			}
			defer os.RemoveAll(dir)
			return runDemo(cmd.Context(), cmd.OutOrStdout(), filepath.Join(dir, "demo.db"))
		},
	}
}

func runDemo(ctx context.Context, w io.Writer, path string) error {
	s, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open scratch database", err)
	}
	defer s.Close()

	if err := s.CreateSchema(ctx); err != nil {
		return WrapExitError(ExitCommandError, "schema creation failed", err)
	}
	fmt.Fprintln(w, "created schema")

	st := stock.Stock{Symbol: "GOOG", Quantity: 5, Price: 600.10}
	if err := s.WithTransaction(ctx, func(tx *store.Tx) error {
		return tx.Insert(ctx, st)
	}); err != nil {
		return WrapExitError(ExitFailure, "insert failed", err)
	}
	fmt.Fprintf(w, "insert: %s\n", RenderStock(st))

	if err := demoLookup(ctx, w, s, "GOOG"); err != nil {
		return err
	}

	// Two updates, mirroring the classic driver: +100 shares, then another
	// +100 at a lower price.
	for _, next := range []stock.Stock{
		{Symbol: "GOOG", Quantity: st.Quantity + 100, Price: st.Price},
		{Symbol: "GOOG", Quantity: st.Quantity + 200, Price: 550.50},
	} {
		if err := s.WithTransaction(ctx, func(tx *store.Tx) error {
			return tx.Update(ctx, next)
		}); err != nil {
			return WrapExitError(ExitFailure, "update failed", err)
		}
		fmt.Fprintf(w, "update: %s\n", RenderStock(next))

		if err := demoLookup(ctx, w, s, "GOOG"); err != nil {
			return err
		}
	}

	return nil
}

func demoLookup(ctx context.Context, w io.Writer, s *store.Store, symbol string) error {
	got, ok, err := s.Lookup(ctx, symbol)
	if err != nil {
		return WrapExitError(ExitCommandError, "lookup failed", err)
	}
	if !ok {
		return NewExitError(ExitFailure, symbol+" missing mid-demo")
	}
	fmt.Fprintf(w, "lookup: %s\n", RenderStock(got))
	return nil
}

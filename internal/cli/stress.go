package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/stock"
	"github.com/roach88/stockdb/internal/store"
)

// StressOptions holds flags for the stress command.
type StressOptions struct {
	*RootOptions
	Workers int
	Inserts int
}

// NewStressCommand creates the stress command.
func NewStressCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StressOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Hammer one shared store with concurrent transactions",
		Long: `Launch N workers that each commit M single-insert transactions
against one shared store on a scratch database, then verify every inserted
symbol is present. Symbols are random UUIDs, so all inserts are distinct.

This exercises the store's write serialization: the workers contend on the
single transaction lock, and a correct run loses no rows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.MkdirTemp("", "stockdb-stress-")
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot create scratch directory", err)
			}
			defer os.RemoveAll(dir)
			return runStress(cmd, opts, filepath.Join(dir, "stress.db"))
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 8, "number of concurrent workers")
	cmd.Flags().IntVar(&opts.Inserts, "inserts", 25, "transactions per worker")

	return cmd
}

func runStress(cmd *cobra.Command, opts *StressOptions, path string) error {
	if opts.Workers < 1 || opts.Inserts < 1 {
		return NewExitError(ExitCommandError, "--workers and --inserts must be at least 1")
	}

	ctx := cmd.Context()
	s, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open scratch database", err)
	}
	defer s.Close()

	if err := s.CreateSchema(ctx); err != nil {
		return WrapExitError(ExitCommandError, "schema creation failed", err)
	}

	symbols := make([][]string, opts.Workers)
	errs := make([]error, opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			symbols[w] = make([]string, 0, opts.Inserts)
			for i := 0; i < opts.Inserts; i++ {
				st := stock.Stock{
					Symbol:   uuid.NewString(),
					Quantity: float64(i),
					Price:    float64(w) + 0.5,
				}
				err := s.WithTransaction(ctx, func(tx *store.Tx) error {
					return tx.Insert(ctx, st)
				})
				if err != nil {
					errs[w] = err
					return
				}
				symbols[w] = append(symbols[w], st.Symbol)
			}
			slog.Debug("worker done", "worker", w, "inserts", opts.Inserts)
		}(w)
	}
	wg.Wait()

	for w, err := range errs {
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("worker %d failed", w), err)
		}
	}

	expected := opts.Workers * opts.Inserts
	found := 0
	for _, batch := range symbols {
		for _, symbol := range batch {
			if _, ok, err := s.Lookup(ctx, symbol); err != nil {
				return WrapExitError(ExitCommandError, "verification lookup failed", err)
			} else if ok {
				found++
			}
		}
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if found != expected {
		f.Error("STRESS_MISMATCH", fmt.Sprintf("expected %d rows, found %d", expected, found))
		return NewExitError(ExitFailure, "stress verification failed")
	}
	return f.Success(fmt.Sprintf("%d workers committed %d rows, all verified", opts.Workers, expected))
}

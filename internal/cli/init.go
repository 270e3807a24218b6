package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/store"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the stocks table in the database file",
		Long: `Create the stocks table in the database file.

Schema creation happens at most once per database file: running init
against an already-initialized file fails.

Example:
  stockdb --db stocks.db init`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.CreateSchema(cmd.Context()); err != nil {
		if store.IsSchemaError(err) {
			return WrapExitError(ExitFailure, "database already initialized", err)
		}
		return WrapExitError(ExitCommandError, "schema creation failed", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success("initialized " + opts.DBPath)
}

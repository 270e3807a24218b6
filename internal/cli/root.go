package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stockdb/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DBPath     string
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the stockdb CLI.
//
// logLevel, when non-nil, is the level var backing the process logger;
// --verbose lowers it to debug. Tests pass nil.
func NewRootCommand(logLevel *slog.LevelVar) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stockdb",
		Short: "stockdb - an embedded single-table stock store",
		Long: `stockdb manages a single SQLite-backed table of stock holdings
(symbol, quantity, price) with strictly serialized write transactions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose && logLevel != nil {
				logLevel.Set(slog.LevelDebug)
			}
			return applyConfig(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "stocks.db", "path to the database file")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewStressCommand(opts))

	return cmd
}

// applyConfig overlays config-file values under explicitly-set flags.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	if opts.ConfigPath == "" {
		return nil
	}
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if cfg.Database.Path != "" && !flags.Changed("db") {
		opts.DBPath = cfg.Database.Path
	}
	if cfg.Format != "" && !flags.Changed("format") {
		if !isValidFormat(cfg.Format) {
			return fmt.Errorf("invalid format %q in config: must be one of %v", cfg.Format, ValidFormats)
		}
		opts.Format = cfg.Format
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore opens the configured database, mapping failure to a command
// error exit code.
func openStore(opts *RootOptions) (*store.Store, error) {
	s, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot open database %s", opts.DBPath), err)
	}
	slog.Debug("database opened", "path", opts.DBPath)
	return s, nil
}

// Package main is the entry point for the stockdb CLI.
//
// stockdb is a small embedded stock store: one SQLite table of
// (symbol, quantity, price) rows behind strictly serialized write
// transactions. See internal/store for the storage contract.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/roach88/stockdb/internal/cli"
)

func main() {
	// Default to info; the root command lowers this to debug on --verbose.
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	cmd := cli.NewRootCommand(level)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stockdb: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"fmt"
	"os"

	"tool-borrowing/toolshed"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := toolshed.LoadConfig()

	cmd := &cobra.Command{
		Use:           "toolshed",
		Short:         "Borrow and return company tools from the console",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Store, "store", cfg.Store, "tool store backend (memory|sqlite)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&cfg.NoBanner, "no-banner", cfg.NoBanner, "skip the welcome banner")
	return cmd
}

func run(cfg *toolshed.Config) error {
	logger := toolshed.NewLogger(cfg.LogLevel, os.Stderr)

	store, err := toolshed.OpenStore(cfg.Store, toolshed.SeedTools())
	if err != nil {
		return fmt.Errorf("open tool store: %w", err)
	}
	catalog := toolshed.NewCatalog(store)
	defer catalog.Close()
	logger.Debug("catalog ready", "store", cfg.Store)

	if !cfg.NoBanner && term.IsTerminal(int(os.Stdin.Fd())) {
		printBanner()
	}

	directory := toolshed.NewDirectory(toolshed.SeedWorkers())
	return toolshed.NewSession(os.Stdin, os.Stdout, catalog, directory, logger).Run()
}

func printBanner() {
	fmt.Println("###########################################")
	fmt.Println("#                                         #")
	fmt.Println("#     Welcome To The Tool Borrowing       #")
	fmt.Println("#               Program...                #")
	fmt.Println("#                                         #")
	fmt.Println("###########################################")
	fmt.Println("Type 'help' to see every command.")
}

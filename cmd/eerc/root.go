package main

import (
	"log/slog"

	"github.com/ava-labs/eerc-go-sdk/internal/xlog"
	"github.com/spf13/cobra"
)

// globalFlags carries the root command's persistent configuration
// (SPEC_FULL.md §2.1 "Configuration": cobra flags bound directly to config
// structs, no separate config file parser).
type globalFlags struct {
	mode      string
	logLevel  string
	logFormat string
}

var flags = &globalFlags{}

var logger *slog.Logger

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eerc",
		Short: "Encrypted ERC-20-style token protocol SDK",
		Long:  "A client-side cryptographic engine and witness-assembly CLI for the eERC protocol.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = xlog.New(flags.logLevel, flags.logFormat)
		},
	}

	root.PersistentFlags().StringVar(&flags.mode, "mode", "standalone", "deployment mode: standalone or converter")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newKeygenCmd(),
		newRegisterCmd(),
		newMintCmd(),
		newTransferCmd(),
		newWithdrawCmd(),
		newBurnCmd(),
		newDepositCmd(),
		newBalanceCmd(),
		newVersionCmd(),
	)

	return root
}

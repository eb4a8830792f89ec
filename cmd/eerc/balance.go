package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ava-labs/eerc-go-sdk/balance"
	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	var skHex, encodingFile string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Reconstruct a holder's plaintext balance from a contract read",
		Long:  "Reads a JSON-encoded balance.Encoding (EGCT, amountPCTs, balancePCT) from --encoding-file and reconstructs the plaintext total, cross-checking it against the EGCT (spec.md §4.I).",
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := parseBigInt("sk", skHex)
			if err != nil {
				return err
			}

			f, err := os.Open(encodingFile)
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}
			defer f.Close()

			var enc balance.Encoding
			if err := json.NewDecoder(f).Decode(&enc); err != nil {
				return fmt.Errorf("balance: decoding --encoding-file: %w", err)
			}

			total, err := balance.Reconstruct(sk, &enc)
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}
			return printJSON(map[string]any{"balance": total})
		},
	}

	cmd.Flags().StringVar(&skHex, "sk", "", "holder secret key")
	cmd.Flags().StringVar(&encodingFile, "encoding-file", "", "path to a JSON-encoded balance.Encoding")
	return cmd
}

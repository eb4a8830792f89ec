package main

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/engine"
	"github.com/spf13/cobra"
)

func newMintCmd() *cobra.Command {
	var receiverX, receiverY, auditorX, auditorY, amount string
	var chainID int64

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Build a MINT witness (standalone mode only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			receiverPk, err := parsePoint("receiver", receiverX, receiverY)
			if err != nil {
				return err
			}
			auditorPk, err := parsePoint("auditor", auditorX, auditorY)
			if err != nil {
				return err
			}
			v, err := parseBigInt("amount", amount)
			if err != nil {
				return err
			}

			w, err := engine.New(nil).Mint(currentMode(), receiverPk, auditorPk, v, big.NewInt(chainID))
			if err != nil {
				return fmt.Errorf("mint: %w", err)
			}
			logger.Info("built MINT witness", "amount", v)
			return printJSON(w)
		},
	}

	cmd.Flags().StringVar(&receiverX, "receiver-x", "", "receiver public key X")
	cmd.Flags().StringVar(&receiverY, "receiver-y", "", "receiver public key Y")
	cmd.Flags().StringVar(&auditorX, "auditor-x", "", "auditor public key X")
	cmd.Flags().StringVar(&auditorY, "auditor-y", "", "auditor public key Y")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to mint")
	cmd.Flags().Int64Var(&chainID, "chain-id", 43114, "chain id")
	return cmd
}

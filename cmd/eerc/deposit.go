package main

import (
	"fmt"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/engine"
	"github.com/spf13/cobra"
)

func newDepositCmd() *cobra.Command {
	var skHex, amount string
	var fromDecimals, toDecimals uint8

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Build a Deposit payload (converter mode only, no proof)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := parseBigInt("sk", skHex)
			if err != nil {
				return err
			}
			v, err := parseBigInt("amount", amount)
			if err != nil {
				return err
			}

			pk := curve.GeneratePublicKey(sk)
			w, err := engine.New(nil).Deposit(currentMode(), pk, v, fromDecimals, toDecimals)
			if err != nil {
				return fmt.Errorf("deposit: %w", err)
			}
			if w.Truncated {
				logger.Warn("deposit amount truncated by decimal rescale", "amount", v, "fromDecimals", fromDecimals, "toDecimals", toDecimals)
			}
			return printJSON(w)
		},
	}

	cmd.Flags().StringVar(&skHex, "sk", "", "depositor secret key")
	cmd.Flags().StringVar(&amount, "amount", "", "ERC-20 amount to deposit")
	cmd.Flags().Uint8Var(&fromDecimals, "from-decimals", 18, "ERC-20 token decimals")
	cmd.Flags().Uint8Var(&toDecimals, "to-decimals", 2, "protocol internal decimal width")
	return cmd
}

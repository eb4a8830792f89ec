package main

import (
	"fmt"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/engine"
	"github.com/spf13/cobra"
)

func newWithdrawCmd() *cobra.Command {
	var skHex, auditorX, auditorY, amount, balance string
	var balC1X, balC1Y, balC2X, balC2Y string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Build a WITHDRAW witness (converter mode only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := parseBigInt("sk", skHex)
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
			bal, err := parseBigInt("balance", balance)
			if err != nil {
				return err
			}
			balEGCT, err := parseEGCT("balance", balC1X, balC1Y, balC2X, balC2Y)
			if err != nil {
				return err
			}

			senderPk := curve.GeneratePublicKey(sk)
			w, newBalancePCT, err := engine.New(nil).Withdraw(currentMode(), sk, senderPk, auditorPk, v, bal, balEGCT)
			if err != nil {
				return fmt.Errorf("withdraw: %w", err)
			}
			logger.Info("built WITHDRAW witness", "amount", v)
			return printJSON(map[string]any{"witness": w, "newBalancePCT": newBalancePCT})
		},
	}

	cmd.Flags().StringVar(&skHex, "sk", "", "sender secret key")
	cmd.Flags().StringVar(&auditorX, "auditor-x", "", "auditor public key X")
	cmd.Flags().StringVar(&auditorY, "auditor-y", "", "auditor public key Y")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to withdraw")
	cmd.Flags().StringVar(&balance, "balance", "", "sender's current plaintext balance")
	cmd.Flags().StringVar(&balC1X, "balance-c1-x", "", "sender's current balance EGCT C1.X")
	cmd.Flags().StringVar(&balC1Y, "balance-c1-y", "", "sender's current balance EGCT C1.Y")
	cmd.Flags().StringVar(&balC2X, "balance-c2-x", "", "sender's current balance EGCT C2.X")
	cmd.Flags().StringVar(&balC2Y, "balance-c2-y", "", "sender's current balance EGCT C2.Y")
	return cmd
}

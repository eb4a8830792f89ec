package main

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/engine"
	"github.com/ava-labs/eerc-go-sdk/keys"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var skHex, address string
	var chainID int64

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Build a REGISTER witness",
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := parseBigInt("sk", skHex)
			if err != nil {
				return err
			}
			addrField, err := keys.AddressToField(address)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			pk := curve.GeneratePublicKey(sk)
			w, err := engine.New(nil).Register(sk, pk, addrField, big.NewInt(chainID))
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			logger.Info("built REGISTER witness", "address", address, "chainId", chainID)
			return printJSON(w)
		},
	}

	cmd.Flags().StringVar(&skHex, "sk", "", "secret key (decimal or 0x-hex)")
	cmd.Flags().StringVar(&address, "address", "", "0x-prefixed wallet address")
	cmd.Flags().Int64Var(&chainID, "chain-id", 43114, "chain id")
	return cmd
}

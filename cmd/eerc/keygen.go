package main

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/keys"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	var signatureHex string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a session keypair from a wallet signature",
		Long:  "Derive a deterministic Baby Jubjub session key from a 65-byte wallet signature over the registration message (spec.md §4.F), or generate a fresh random keypair if no signature is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sk *big.Int
			var err error
			if signatureHex != "" {
				sig, decodeErr := decodeHex(signatureHex)
				if decodeErr != nil {
					return decodeErr
				}
				sk, err = keys.DeriveKeyFromSignature(sig)
			} else {
				sk, err = curve.RandomScalar()
			}
			if err != nil {
				return fmt.Errorf("keygen: %w", err)
			}

			pk := curve.GeneratePublicKey(sk)
			return printJSON(map[string]any{
				"secretKey": sk,
				"publicKey": pk,
			})
		},
	}

	cmd.Flags().StringVar(&signatureHex, "signature", "", "0x-prefixed 65-byte ECDSA signature over the registration message")
	return cmd
}

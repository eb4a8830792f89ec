// Command eerc is a local harness for the eERC operation engine: it builds
// and prints witness dictionaries for REGISTER/MINT/TRANSFER/WITHDRAW/BURN/
// Deposit, and reconstructs balances, without talking to a prover service or
// a chain. It exists so a developer can exercise every operation end-to-end
// while scripting against a real prover/contract separately.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

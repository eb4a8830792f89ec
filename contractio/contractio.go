// Package contractio defines the ABI-shaped types the core reads from and
// writes to the eERC contract (spec.md §6). It holds no chain connection:
// callers wire these types to whatever Ethereum client they use (the
// examples this repo learned from wire gnark proofs to contracts the same
// way — plain structs handed to an ABI encoder, never embedded in the core).
package contractio

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/pct"
)

// ProofPoints is a Groth16 proof over BN254 in the contract's calldata
// shape (spec.md §6 "Prover oracle").
type ProofPoints struct {
	A [2]*big.Int
	B [2][2]*big.Int
	C [2]*big.Int
}

// Public-signal counts per operation, fixed by the contract ABI
// (spec.md §6).
const (
	RegisterPublicSignals = 5
	MintPublicSignals     = 24
	TransferPublicSignals = 32
	WithdrawPublicSignals = 16
	BurnPublicSignals     = 19
)

// AmountPCT is one entry in a holder's append-only amountPCTs queue, as read
// from the contract (spec.md §4.I).
type AmountPCT struct {
	PCT *pct.Ciphertext
}

// BalanceOf is the tuple getBalanceFromTokenAddress returns (spec.md §6).
type BalanceOf struct {
	EGCT       *egct.Ciphertext
	Nonce      *big.Int
	AmountPCTs []AmountPCT
	BalancePCT *pct.Ciphertext
}

// RegisterArgs is the calldata shape for the register entry point.
type RegisterArgs struct {
	Proof         ProofPoints
	PublicSignals [RegisterPublicSignals]*big.Int
}

// PrivateMintArgs is the calldata shape for the privateMint entry point.
type PrivateMintArgs struct {
	Proof         ProofPoints
	PublicSignals [MintPublicSignals]*big.Int
}

// TransferArgs is the calldata shape for the transfer entry point. The
// fresh sender balancePCT travels alongside the proof rather than inside
// its public signals (engine.Transfer returns it as a second value for
// exactly this purpose).
type TransferArgs struct {
	Proof         ProofPoints
	PublicSignals [TransferPublicSignals]*big.Int
	NewBalancePCT *pct.Ciphertext
}

// WithdrawArgs is the calldata shape for the withdraw entry point.
type WithdrawArgs struct {
	Proof         ProofPoints
	PublicSignals [WithdrawPublicSignals]*big.Int
	NewBalancePCT *pct.Ciphertext
}

// PrivateBurnArgs is the calldata shape for the privateBurn entry point.
type PrivateBurnArgs struct {
	Proof         ProofPoints
	PublicSignals [BurnPublicSignals]*big.Int
	NewBalancePCT *pct.Ciphertext
}

// DepositArgs is the calldata shape for deposit, which carries no proof
// (spec.md §4.H Deposit).
type DepositArgs struct {
	Amount    *big.Int
	AmountPCT *pct.Ciphertext
}

// SetAuditorPublicKeyArgs is the calldata shape for the admin entry point
// that rotates the auditor key.
type SetAuditorPublicKeyArgs struct {
	AuditorPublicKey *curve.Point
}

// Reader is the contract's read surface (spec.md §6), consumed by the core
// for balance reconstruction and registration checks.
type Reader interface {
	UserPublicKey(address string) (*curve.Point, error)
	BalanceOf(address, tokenAddress string) (*BalanceOf, error)
	AuditorPublicKey() (*curve.Point, error)
	Auditor() (string, error)
	TokenID(tokenAddress string) (*big.Int, error)
	Decimals() (uint8, error)
	Name() (string, error)
	Symbol() (string, error)
	Owner() (string, error)
	IsConverter() (bool, error)
	Registrar() (string, error)
}

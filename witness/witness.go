// Package witness defines the per-operation witness dictionaries the engine
// assembles and the external prover oracle consumes. Field names are fixed
// by the circuit/contract ABI and are load-bearing: they must not be
// renamed (spec.md §4.H, §9).
package witness

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
)

// Register is the REGISTER operation's witness.
type Register struct {
	SenderPrivateKey *big.Int     `json:"SenderPrivateKey"`
	SenderPublicKey  *curve.Point `json:"SenderPublicKey"`
	SenderAddress    *big.Int     `json:"SenderAddress"`
	ChainID          *big.Int     `json:"ChainID"`
	RegistrationHash *big.Int     `json:"RegistrationHash"`
}

// Mint is the MINT operation's witness (standalone mode only).
type Mint struct {
	ValueToMint *big.Int `json:"ValueToMint"`
	ChainID     *big.Int `json:"ChainID"`

	NullifierHash *big.Int `json:"NullifierHash"`

	ReceiverPublicKey *curve.Point `json:"ReceiverPublicKey"`
	ReceiverVTTC1     *curve.Point `json:"ReceiverVTTC1"`
	ReceiverVTTC2     *curve.Point `json:"ReceiverVTTC2"`
	ReceiverVTTRandom *big.Int     `json:"ReceiverVTTRandom"`

	ReceiverPCT        [4]*big.Int  `json:"ReceiverPCT"`
	ReceiverPCTAuthKey *curve.Point `json:"ReceiverPCTAuthKey"`
	ReceiverPCTNonce   *big.Int     `json:"ReceiverPCTNonce"`
	ReceiverPCTRandom  *big.Int     `json:"ReceiverPCTRandom"`

	AuditorPublicKey  *curve.Point `json:"AuditorPublicKey"`
	AuditorPCT        [4]*big.Int  `json:"AuditorPCT"`
	AuditorPCTAuthKey *curve.Point `json:"AuditorPCTAuthKey"`
	AuditorPCTNonce   *big.Int     `json:"AuditorPCTNonce"`
	AuditorPCTRandom  *big.Int     `json:"AuditorPCTRandom"`
}

// Transfer is the TRANSFER operation's witness: the union of Mint's
// receiver/auditor fields plus the sender's spending inputs.
type Transfer struct {
	ValueToTransfer *big.Int `json:"ValueToTransfer"`

	SenderPrivateKey  *big.Int     `json:"SenderPrivateKey"`
	SenderPublicKey   *curve.Point `json:"SenderPublicKey"`
	SenderBalance     *big.Int     `json:"SenderBalance"`
	SenderBalanceC1   *curve.Point `json:"SenderBalanceC1"`
	SenderBalanceC2   *curve.Point `json:"SenderBalanceC2"`
	SenderVTTC1       *curve.Point `json:"SenderVTTC1"`
	SenderVTTC2       *curve.Point `json:"SenderVTTC2"`

	ReceiverPublicKey *curve.Point `json:"ReceiverPublicKey"`
	ReceiverVTTC1     *curve.Point `json:"ReceiverVTTC1"`
	ReceiverVTTC2     *curve.Point `json:"ReceiverVTTC2"`
	ReceiverVTTRandom *big.Int     `json:"ReceiverVTTRandom"`

	ReceiverPCT        [4]*big.Int  `json:"ReceiverPCT"`
	ReceiverPCTAuthKey *curve.Point `json:"ReceiverPCTAuthKey"`
	ReceiverPCTNonce   *big.Int     `json:"ReceiverPCTNonce"`
	ReceiverPCTRandom  *big.Int     `json:"ReceiverPCTRandom"`

	AuditorPublicKey  *curve.Point `json:"AuditorPublicKey"`
	AuditorPCT        [4]*big.Int  `json:"AuditorPCT"`
	AuditorPCTAuthKey *curve.Point `json:"AuditorPCTAuthKey"`
	AuditorPCTNonce   *big.Int     `json:"AuditorPCTNonce"`
	AuditorPCTRandom  *big.Int     `json:"AuditorPCTRandom"`
}

// Withdraw is the WITHDRAW operation's witness (converter mode only).
type Withdraw struct {
	ValueToWithdraw *big.Int `json:"ValueToWithdraw"`

	SenderPrivateKey *big.Int     `json:"SenderPrivateKey"`
	SenderPublicKey  *curve.Point `json:"SenderPublicKey"`
	SenderBalance    *big.Int     `json:"SenderBalance"`
	SenderBalanceC1  *curve.Point `json:"SenderBalanceC1"`
	SenderBalanceC2  *curve.Point `json:"SenderBalanceC2"`

	AuditorPublicKey  *curve.Point `json:"AuditorPublicKey"`
	AuditorPCT        [4]*big.Int  `json:"AuditorPCT"`
	AuditorPCTAuthKey *curve.Point `json:"AuditorPCTAuthKey"`
	AuditorPCTNonce   *big.Int     `json:"AuditorPCTNonce"`
	AuditorPCTRandom  *big.Int     `json:"AuditorPCTRandom"`
}

// Burn is the BURN operation's witness (standalone mode only): the same
// shape as Withdraw plus a self-addressed EGCT of the burned value, which
// serves as the on-chain "transfer to burn user" artifact (spec.md §4.H
// BURN). The spec does not fix a contract-visible name for this extra pair,
// so this SDK names it BurnVTT* to match the Value-To-Transfer naming
// convention the receiver/sender EGCT fields already use.
type Burn struct {
	ValueToBurn *big.Int `json:"ValueToBurn"`

	SenderPrivateKey *big.Int     `json:"SenderPrivateKey"`
	SenderPublicKey  *curve.Point `json:"SenderPublicKey"`
	SenderBalance    *big.Int     `json:"SenderBalance"`
	SenderBalanceC1  *curve.Point `json:"SenderBalanceC1"`
	SenderBalanceC2  *curve.Point `json:"SenderBalanceC2"`

	BurnVTTC1 *curve.Point `json:"BurnVTTC1"`
	BurnVTTC2 *curve.Point `json:"BurnVTTC2"`

	AuditorPublicKey  *curve.Point `json:"AuditorPublicKey"`
	AuditorPCT        [4]*big.Int  `json:"AuditorPCT"`
	AuditorPCTAuthKey *curve.Point `json:"AuditorPCTAuthKey"`
	AuditorPCTNonce   *big.Int     `json:"AuditorPCTNonce"`
	AuditorPCTRandom  *big.Int     `json:"AuditorPCTRandom"`
}

// Deposit carries no proof (spec.md §4.H Deposit): it is a fresh sender PCT
// of the deposited amount after rescaling ERC-20 decimals to the protocol's
// internal width, plus a flag recording whether that rescale truncated
// (spec.md §9(b)).
type Deposit struct {
	AmountPCT        [4]*big.Int  `json:"AmountPCT"`
	AmountPCTAuthKey *curve.Point `json:"AmountPCTAuthKey"`
	AmountPCTNonce   *big.Int     `json:"AmountPCTNonce"`
	Truncated        bool         `json:"Truncated"`
}

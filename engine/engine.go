// Package engine implements the operation engine (spec.md §4.H): it
// assembles the per-operation witness dictionaries the external prover
// consumes, orchestrating poseidon, pct, egct and curve underneath. Every
// method is a pure function of its inputs plus fresh randomness drawn from
// the engine's Rng — no package-level state is mutated (spec.md §5).
package engine

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/pct"
	"github.com/ava-labs/eerc-go-sdk/poseidon"
	"github.com/ava-labs/eerc-go-sdk/rng"
	"github.com/ava-labs/eerc-go-sdk/witness"
)

// Engine builds witnesses, drawing randomness from Source for every
// EGCT/PCT construction it performs.
type Engine struct {
	Source rng.Rng
}

// New builds an Engine. A nil source defaults to rng.Default (the CSPRNG).
func New(source rng.Rng) *Engine {
	if source == nil {
		source = rng.Default
	}
	return &Engine{Source: source}
}

func requireRegistered(pk *curve.Point) error {
	if pk == nil || pk.IsIdentity() {
		return eerrors.ErrUnregisteredParty
	}
	return nil
}

func requireAuditor(pk *curve.Point) error {
	if pk == nil || pk.IsIdentity() {
		return eerrors.ErrAuditorNotSet
	}
	return nil
}

func requireKey(sk *big.Int) error {
	if sk == nil {
		return eerrors.ErrMissingKey
	}
	return nil
}

func requireAmount(v, bal *big.Int) error {
	if v == nil || v.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", eerrors.ErrInvalidAmount)
	}
	if bal != nil && v.Cmp(bal) > 0 {
		return fmt.Errorf("%w: amount exceeds balance", eerrors.ErrInvalidAmount)
	}
	return nil
}

// Register builds the REGISTER witness (spec.md §4.H REGISTER).
func (e *Engine) Register(sk *big.Int, pk *curve.Point, address, chainID *big.Int) (*witness.Register, error) {
	if err := requireKey(sk); err != nil {
		return nil, err
	}
	if address == nil {
		return nil, eerrors.ErrInvalidAddress
	}
	hash := poseidon.Hash3(chainID, sk, address)
	return &witness.Register{
		SenderPrivateKey: sk,
		SenderPublicKey:  pk,
		SenderAddress:    address,
		ChainID:          chainID,
		RegistrationHash: hash,
	}, nil
}

// Mint builds the MINT witness (spec.md §4.H MINT). MINT is rejected outside
// standalone mode.
func (e *Engine) Mint(mode Mode, receiverPk, auditorPk *curve.Point, v, chainID *big.Int) (*witness.Mint, error) {
	if mode != Standalone {
		return nil, fmt.Errorf("%w: MINT requires standalone mode", eerrors.ErrNotPermittedInMode)
	}
	if err := requireRegistered(receiverPk); err != nil {
		return nil, err
	}
	if err := requireAuditor(auditorPk); err != nil {
		return nil, err
	}
	if err := requireAmount(v, nil); err != nil {
		return nil, err
	}

	vtt, vttRandom, err := egct.Encrypt(e.Source, receiverPk, v)
	if err != nil {
		return nil, err
	}

	receiverPCT, err := pct.Encrypt(e.Source, receiverPk, []*big.Int{v})
	if err != nil {
		return nil, err
	}
	auditorPCT, err := pct.Encrypt(e.Source, auditorPk, []*big.Int{v})
	if err != nil {
		return nil, err
	}

	nullifier := poseidon.Hash5(chainID, auditorPCT.Cipher[0], auditorPCT.Cipher[1], auditorPCT.Cipher[2], auditorPCT.Cipher[3])

	return &witness.Mint{
		ValueToMint:   v,
		ChainID:       chainID,
		NullifierHash: nullifier,

		ReceiverPublicKey: receiverPk,
		ReceiverVTTC1:     vtt.C1,
		ReceiverVTTC2:     vtt.C2,
		ReceiverVTTRandom: vttRandom,

		ReceiverPCT:        receiverPCT.Cipher,
		ReceiverPCTAuthKey: receiverPCT.AuthKey,
		ReceiverPCTNonce:   receiverPCT.Nonce,
		ReceiverPCTRandom:  receiverPCT.EncryptionRandom,

		AuditorPublicKey:  auditorPk,
		AuditorPCT:        auditorPCT.Cipher,
		AuditorPCTAuthKey: auditorPCT.AuthKey,
		AuditorPCTNonce:   auditorPCT.Nonce,
		AuditorPCTRandom:  auditorPCT.EncryptionRandom,
	}, nil
}

// Transfer builds the TRANSFER witness (spec.md §4.H TRANSFER). balEGCT is
// the sender's *current* on-chain encrypted balance (read from the
// contract, not recomputed here). The witness dictionary's field list does
// not name the freshly-computed sender PCT of newBal (unlike receiver/
// auditor PCTs), so this method returns it as a second value: the caller
// submits it alongside the proof as the account's new balancePCT, not as a
// witness input.
func (e *Engine) Transfer(senderSK *big.Int, senderPk, receiverPk, auditorPk *curve.Point, v, bal *big.Int, balEGCT *egct.Ciphertext) (*witness.Transfer, *pct.Ciphertext, error) {
	if err := requireKey(senderSK); err != nil {
		return nil, nil, err
	}
	if err := requireRegistered(receiverPk); err != nil {
		return nil, nil, err
	}
	if err := requireAuditor(auditorPk); err != nil {
		return nil, nil, err
	}
	if err := requireAmount(v, bal); err != nil {
		return nil, nil, err
	}

	newBal := new(big.Int).Sub(bal, v)

	senderVTT, _, err := egct.Encrypt(e.Source, senderPk, v)
	if err != nil {
		return nil, nil, err
	}
	receiverVTT, receiverVTTRandom, err := egct.Encrypt(e.Source, receiverPk, v)
	if err != nil {
		return nil, nil, err
	}

	receiverPCT, err := pct.Encrypt(e.Source, receiverPk, []*big.Int{v})
	if err != nil {
		return nil, nil, err
	}
	auditorPCT, err := pct.Encrypt(e.Source, auditorPk, []*big.Int{v})
	if err != nil {
		return nil, nil, err
	}
	newBalancePCT, err := pct.Encrypt(e.Source, senderPk, []*big.Int{newBal})
	if err != nil {
		return nil, nil, err
	}

	w := &witness.Transfer{
		ValueToTransfer: v,

		SenderPrivateKey: senderSK,
		SenderPublicKey:  senderPk,
		SenderBalance:    bal,
		SenderBalanceC1:  balEGCT.C1,
		SenderBalanceC2:  balEGCT.C2,
		SenderVTTC1:      senderVTT.C1,
		SenderVTTC2:      senderVTT.C2,

		ReceiverPublicKey: receiverPk,
		ReceiverVTTC1:     receiverVTT.C1,
		ReceiverVTTC2:     receiverVTT.C2,
		ReceiverVTTRandom: receiverVTTRandom,

		ReceiverPCT:        receiverPCT.Cipher,
		ReceiverPCTAuthKey: receiverPCT.AuthKey,
		ReceiverPCTNonce:   receiverPCT.Nonce,
		ReceiverPCTRandom:  receiverPCT.EncryptionRandom,

		AuditorPublicKey:  auditorPk,
		AuditorPCT:        auditorPCT.Cipher,
		AuditorPCTAuthKey: auditorPCT.AuthKey,
		AuditorPCTNonce:   auditorPCT.Nonce,
		AuditorPCTRandom:  auditorPCT.EncryptionRandom,
	}
	return w, newBalancePCT, nil
}

// Withdraw builds the WITHDRAW witness (spec.md §4.H WITHDRAW). Valid only
// in converter mode. Like Transfer, the fresh sender PCT of newBal is
// returned alongside the witness rather than embedded in it. balEGCT is the
// sender's current on-chain encrypted balance.
func (e *Engine) Withdraw(mode Mode, senderSK *big.Int, senderPk, auditorPk *curve.Point, v, bal *big.Int, balEGCT *egct.Ciphertext) (*witness.Withdraw, *pct.Ciphertext, error) {
	if mode != Converter {
		return nil, nil, fmt.Errorf("%w: WITHDRAW requires converter mode", eerrors.ErrNotPermittedInMode)
	}
	if err := requireKey(senderSK); err != nil {
		return nil, nil, err
	}
	if err := requireAuditor(auditorPk); err != nil {
		return nil, nil, err
	}
	if err := requireAmount(v, bal); err != nil {
		return nil, nil, err
	}

	newBal := new(big.Int).Sub(bal, v)

	auditorPCT, err := pct.Encrypt(e.Source, auditorPk, []*big.Int{v})
	if err != nil {
		return nil, nil, err
	}
	newBalancePCT, err := pct.Encrypt(e.Source, senderPk, []*big.Int{newBal})
	if err != nil {
		return nil, nil, err
	}

	w := &witness.Withdraw{
		ValueToWithdraw: v,

		SenderPrivateKey: senderSK,
		SenderPublicKey:  senderPk,
		SenderBalance:    bal,
		SenderBalanceC1:  balEGCT.C1,
		SenderBalanceC2:  balEGCT.C2,

		AuditorPublicKey:  auditorPk,
		AuditorPCT:        auditorPCT.Cipher,
		AuditorPCTAuthKey: auditorPCT.AuthKey,
		AuditorPCTNonce:   auditorPCT.Nonce,
		AuditorPCTRandom:  auditorPCT.EncryptionRandom,
	}
	return w, newBalancePCT, nil
}

// Burn builds the BURN witness (spec.md §4.H BURN): standalone mode only,
// same shape as Withdraw plus a self-addressed EGCT of v. balEGCT is the
// sender's current on-chain encrypted balance.
func (e *Engine) Burn(mode Mode, senderSK *big.Int, senderPk, auditorPk *curve.Point, v, bal *big.Int, balEGCT *egct.Ciphertext) (*witness.Burn, *pct.Ciphertext, error) {
	if mode != Standalone {
		return nil, nil, fmt.Errorf("%w: BURN requires standalone mode", eerrors.ErrNotPermittedInMode)
	}
	if err := requireKey(senderSK); err != nil {
		return nil, nil, err
	}
	if err := requireAuditor(auditorPk); err != nil {
		return nil, nil, err
	}
	if err := requireAmount(v, bal); err != nil {
		return nil, nil, err
	}

	newBal := new(big.Int).Sub(bal, v)

	burnVTT, _, err := egct.Encrypt(e.Source, senderPk, v)
	if err != nil {
		return nil, nil, err
	}
	auditorPCT, err := pct.Encrypt(e.Source, auditorPk, []*big.Int{v})
	if err != nil {
		return nil, nil, err
	}
	newBalancePCT, err := pct.Encrypt(e.Source, senderPk, []*big.Int{newBal})
	if err != nil {
		return nil, nil, err
	}

	w := &witness.Burn{
		ValueToBurn: v,

		SenderPrivateKey: senderSK,
		SenderPublicKey:  senderPk,
		SenderBalance:    bal,
		SenderBalanceC1:  balEGCT.C1,
		SenderBalanceC2:  balEGCT.C2,

		BurnVTTC1: burnVTT.C1,
		BurnVTTC2: burnVTT.C2,

		AuditorPublicKey:  auditorPk,
		AuditorPCT:        auditorPCT.Cipher,
		AuditorPCTAuthKey: auditorPCT.AuthKey,
		AuditorPCTNonce:   auditorPCT.Nonce,
		AuditorPCTRandom:  auditorPCT.EncryptionRandom,
	}
	return w, newBalancePCT, nil
}

// RescaleDecimals converts an ERC-20 amount from fromDecimals to
// toDecimals, truncating (not rounding) on downscale, and reports whether
// truncation occurred (spec.md §9(b)).
func RescaleDecimals(amount *big.Int, fromDecimals, toDecimals uint8) (scaled *big.Int, truncated bool) {
	if fromDecimals == toDecimals {
		return new(big.Int).Set(amount), false
	}
	if fromDecimals > toDecimals {
		factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fromDecimals-toDecimals)), nil)
		q, r := new(big.Int).QuoRem(amount, factor, new(big.Int))
		return q, r.Sign() != 0
	}
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(toDecimals-fromDecimals)), nil)
	return new(big.Int).Mul(amount, factor), false
}

// Deposit builds the Deposit operation's PCT-only payload (spec.md §4.H
// Deposit, converter mode only): no proof, just a fresh sender PCT of the
// amount after decimal rescaling.
func (e *Engine) Deposit(mode Mode, pk *curve.Point, amount *big.Int, fromDecimals, toDecimals uint8) (*witness.Deposit, error) {
	if mode != Converter {
		return nil, fmt.Errorf("%w: Deposit requires converter mode", eerrors.ErrNotPermittedInMode)
	}
	if err := requireRegistered(pk); err != nil {
		return nil, err
	}
	if err := requireAmount(amount, nil); err != nil {
		return nil, err
	}

	scaled, truncated := RescaleDecimals(amount, fromDecimals, toDecimals)
	ct, err := pct.Encrypt(e.Source, pk, []*big.Int{scaled})
	if err != nil {
		return nil, err
	}
	return &witness.Deposit{
		AmountPCT:        ct.Cipher,
		AmountPCTAuthKey: ct.AuthKey,
		AmountPCTNonce:   ct.Nonce,
		Truncated:        truncated,
	}, nil
}

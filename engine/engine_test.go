package engine

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/poseidon"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

func TestRegisterWitness(t *testing.T) {
	e := New(nil)
	sk := big.NewInt(12345)
	pk := curve.GeneratePublicKey(sk)
	address := big.NewInt(0xabcdef)
	chainID := big.NewInt(43114)

	w, err := e.Register(sk, pk, address, chainID)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	want := poseidon.Hash3(chainID, sk, address)
	if w.RegistrationHash.Cmp(want) != 0 {
		t.Fatalf("registrationHash mismatch: got %s, want %s", w.RegistrationHash, want)
	}
	if w.SenderPrivateKey != sk || !w.SenderPublicKey.Equal(pk) {
		t.Fatal("register witness did not preserve sk/pk")
	}
}

func TestRegisterRequiresKey(t *testing.T) {
	e := New(nil)
	if _, err := e.Register(nil, nil, big.NewInt(1), big.NewInt(1)); !errors.Is(err, eerrors.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestMintRejectedInConverterMode(t *testing.T) {
	e := New(nil)
	receiverSK := big.NewInt(2)
	receiverPk := curve.GeneratePublicKey(receiverSK)
	auditorPk := curve.GeneratePublicKey(big.NewInt(3))

	_, err := e.Mint(Converter, receiverPk, auditorPk, big.NewInt(10), big.NewInt(43114))
	if !errors.Is(err, eerrors.ErrNotPermittedInMode) {
		t.Fatalf("expected ErrNotPermittedInMode, got %v", err)
	}
}

func TestMintWitnessFieldsAndNullifier(t *testing.T) {
	e := New(nil)
	receiverSK := big.NewInt(222)
	receiverPk := curve.GeneratePublicKey(receiverSK)
	auditorSK := big.NewInt(333)
	auditorPk := curve.GeneratePublicKey(auditorSK)
	v := big.NewInt(777)
	chainID := big.NewInt(43114)

	w, err := e.Mint(Standalone, receiverPk, auditorPk, v, chainID)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if w.ValueToMint.Cmp(v) != 0 {
		t.Fatal("ValueToMint mismatch")
	}

	want := poseidon.Hash5(chainID, w.AuditorPCT[0], w.AuditorPCT[1], w.AuditorPCT[2], w.AuditorPCT[3])
	if w.NullifierHash.Cmp(want) != 0 {
		t.Fatal("nullifier mismatch")
	}

	ct := &egct.Ciphertext{C1: w.ReceiverVTTC1, C2: w.ReceiverVTTC2}
	gotPoint, err := egct.Decrypt(receiverSK, ct)
	if err != nil {
		t.Fatalf("decrypt receiver VTT failed: %v", err)
	}
	if !gotPoint.Equal(curve.MulWithBasePoint(v)) {
		t.Fatal("receiver VTT does not decrypt to v")
	}
}

func TestMintRejectsUnregisteredReceiver(t *testing.T) {
	e := New(nil)
	auditorPk := curve.GeneratePublicKey(big.NewInt(3))
	_, err := e.Mint(Standalone, curve.Identity(), auditorPk, big.NewInt(1), big.NewInt(1))
	if !errors.Is(err, eerrors.ErrUnregisteredParty) {
		t.Fatalf("expected ErrUnregisteredParty, got %v", err)
	}
}

func TestMintRejectsMissingAuditor(t *testing.T) {
	e := New(nil)
	receiverPk := curve.GeneratePublicKey(big.NewInt(2))
	_, err := e.Mint(Standalone, receiverPk, curve.Identity(), big.NewInt(1), big.NewInt(1))
	if !errors.Is(err, eerrors.ErrAuditorNotSet) {
		t.Fatalf("expected ErrAuditorNotSet, got %v", err)
	}
}

func TestTransferWitnessAndBalanceCheck(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(111)
	senderPk := curve.GeneratePublicKey(senderSK)
	receiverPk := curve.GeneratePublicKey(big.NewInt(222))
	auditorPk := curve.GeneratePublicKey(big.NewInt(333))

	bal := big.NewInt(100)
	v := big.NewInt(40)
	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, bal)
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}

	w, newBalancePCT, err := e.Transfer(senderSK, senderPk, receiverPk, auditorPk, v, bal, balEGCT)
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if w.ValueToTransfer.Cmp(v) != 0 || w.SenderBalance.Cmp(bal) != 0 {
		t.Fatal("transfer witness amount/balance mismatch")
	}
	if newBalancePCT == nil {
		t.Fatal("expected a new balancePCT")
	}
}

func TestTransferRejectsAmountAboveBalance(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(111)
	senderPk := curve.GeneratePublicKey(senderSK)
	receiverPk := curve.GeneratePublicKey(big.NewInt(222))
	auditorPk := curve.GeneratePublicKey(big.NewInt(333))

	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, big.NewInt(100))
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}
	_, _, err = e.Transfer(senderSK, senderPk, receiverPk, auditorPk, big.NewInt(200), big.NewInt(100), balEGCT)
	if !errors.Is(err, eerrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestWithdrawRequiresConverterMode(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(1)
	senderPk := curve.GeneratePublicKey(senderSK)
	auditorPk := curve.GeneratePublicKey(big.NewInt(2))
	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, big.NewInt(100))
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}

	_, _, err = e.Withdraw(Standalone, senderSK, senderPk, auditorPk, big.NewInt(10), big.NewInt(100), balEGCT)
	if !errors.Is(err, eerrors.ErrNotPermittedInMode) {
		t.Fatalf("expected ErrNotPermittedInMode, got %v", err)
	}
}

func TestWithdrawWitness(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(1)
	senderPk := curve.GeneratePublicKey(senderSK)
	auditorPk := curve.GeneratePublicKey(big.NewInt(2))
	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, big.NewInt(100))
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}

	w, newBalancePCT, err := e.Withdraw(Converter, senderSK, senderPk, auditorPk, big.NewInt(10), big.NewInt(100), balEGCT)
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if w.ValueToWithdraw.Cmp(big.NewInt(10)) != 0 {
		t.Fatal("ValueToWithdraw mismatch")
	}
	if newBalancePCT == nil {
		t.Fatal("expected a new balancePCT")
	}
}

func TestBurnRequiresStandaloneMode(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(1)
	senderPk := curve.GeneratePublicKey(senderSK)
	auditorPk := curve.GeneratePublicKey(big.NewInt(2))
	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, big.NewInt(100))
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}

	_, _, err = e.Burn(Converter, senderSK, senderPk, auditorPk, big.NewInt(10), big.NewInt(100), balEGCT)
	if !errors.Is(err, eerrors.ErrNotPermittedInMode) {
		t.Fatalf("expected ErrNotPermittedInMode, got %v", err)
	}
}

func TestBurnWitnessSelfAddressedEGCT(t *testing.T) {
	e := New(nil)
	senderSK := big.NewInt(1)
	senderPk := curve.GeneratePublicKey(senderSK)
	auditorPk := curve.GeneratePublicKey(big.NewInt(2))
	v := big.NewInt(30)
	balEGCT, _, err := egct.Encrypt(rng.Default, senderPk, big.NewInt(100))
	if err != nil {
		t.Fatalf("egct.Encrypt failed: %v", err)
	}

	w, _, err := e.Burn(Standalone, senderSK, senderPk, auditorPk, v, big.NewInt(100), balEGCT)
	if err != nil {
		t.Fatalf("Burn failed: %v", err)
	}
	ct := &egct.Ciphertext{C1: w.BurnVTTC1, C2: w.BurnVTTC2}
	got, err := egct.Decrypt(senderSK, ct)
	if err != nil {
		t.Fatalf("decrypt burn VTT failed: %v", err)
	}
	if !got.Equal(curve.MulWithBasePoint(v)) {
		t.Fatal("burn VTT should self-addressed-encrypt v")
	}
}

func TestRescaleDecimalsTruncates(t *testing.T) {
	scaled, truncated := RescaleDecimals(big.NewInt(12345), 6, 4)
	if scaled.Cmp(big.NewInt(123)) != 0 {
		t.Fatalf("got %s, want 123", scaled)
	}
	if !truncated {
		t.Fatal("expected truncation flag set")
	}
}

func TestRescaleDecimalsExact(t *testing.T) {
	scaled, truncated := RescaleDecimals(big.NewInt(120000), 6, 4)
	if scaled.Cmp(big.NewInt(1200)) != 0 {
		t.Fatalf("got %s, want 1200", scaled)
	}
	if truncated {
		t.Fatal("exact downscale should not be flagged as truncated")
	}
}

func TestDepositRequiresConverterMode(t *testing.T) {
	e := New(nil)
	pk := curve.GeneratePublicKey(big.NewInt(1))
	_, err := e.Deposit(Standalone, pk, big.NewInt(100), 6, 4)
	if !errors.Is(err, eerrors.ErrNotPermittedInMode) {
		t.Fatalf("expected ErrNotPermittedInMode, got %v", err)
	}
}

func TestDepositWitness(t *testing.T) {
	e := New(nil)
	sk := big.NewInt(999)
	pk := curve.GeneratePublicKey(sk)

	w, err := e.Deposit(Converter, pk, big.NewInt(123456), 6, 4)
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	if !w.Truncated {
		t.Fatal("depositing 123456 at 6->4 decimals should truncate")
	}
}

package eventlog

import (
	"math/big"
	"testing"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/message"
	"github.com/ava-labs/eerc-go-sdk/pct"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

func TestDecodeAuditorAmount(t *testing.T) {
	sk := big.NewInt(555)
	pk := curve.GeneratePublicKey(sk)

	ct, err := pct.Encrypt(rng.Default, pk, []*big.Int{big.NewInt(4242)})
	if err != nil {
		t.Fatalf("pct.Encrypt failed: %v", err)
	}

	got, err := DecodeAuditorAmount(sk, ct)
	if err != nil {
		t.Fatalf("DecodeAuditorAmount failed: %v", err)
	}
	if got.Cmp(big.NewInt(4242)) != 0 {
		t.Fatalf("got %s, want 4242", got)
	}
}

func TestDecodeMessage(t *testing.T) {
	sk := big.NewInt(556)
	pk := curve.GeneratePublicKey(sk)

	em, err := message.EncryptMetadata(rng.Default, pk, "note for the auditor")
	if err != nil {
		t.Fatalf("EncryptMetadata failed: %v", err)
	}

	evt := &PrivateMessage{From: pk, To: pk, MessageType: 1, Metadata: em}
	got, err := DecodeMessage(sk, evt)
	if err != nil {
		t.Fatalf("DecodeMessage failed: %v", err)
	}
	if got != "note for the auditor" {
		t.Fatalf("got %q", got)
	}
}

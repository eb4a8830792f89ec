package message

import (
	"math/big"
	"testing"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

func TestStr2IntInt2StrRoundTrip(t *testing.T) {
	cases := []string{"", "a", "hello", "hello, auditor 🙂", "eERC"}
	for _, s := range cases {
		chunks := Str2Int(s)
		back, err := Int2Str(chunks)
		if err != nil {
			t.Fatalf("Int2Str(%q) failed: %v", s, err)
		}
		if back != s {
			t.Fatalf("round trip mismatch: got %q, want %q", back, s)
		}
	}
}

func TestEmptyStringEncodesToSingleZeroChunk(t *testing.T) {
	chunks := Str2Int("")
	if len(chunks) != 1 || chunks[0].Sign() != 0 {
		t.Fatalf("empty string should encode to a single zero chunk, got %v", chunks)
	}
}

func TestEncryptDecryptMetadataRoundTrip(t *testing.T) {
	sk := big.NewInt(90210)
	pk := curve.GeneratePublicKey(sk)

	s := "hello, auditor 🙂"
	em, err := EncryptMetadata(rng.Default, pk, s)
	if err != nil {
		t.Fatalf("EncryptMetadata failed: %v", err)
	}

	got, err := DecryptMetadata(sk, em)
	if err != nil {
		t.Fatalf("DecryptMetadata failed: %v", err)
	}
	if got != s {
		t.Fatalf("got %q, want %q", got, s)
	}
}

func TestEncryptDecryptEmptyMessage(t *testing.T) {
	sk := big.NewInt(1)
	pk := curve.GeneratePublicKey(sk)

	em, err := EncryptMetadata(rng.Default, pk, "")
	if err != nil {
		t.Fatalf("EncryptMetadata failed: %v", err)
	}
	got, err := DecryptMetadata(sk, em)
	if err != nil {
		t.Fatalf("DecryptMetadata failed: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestWireRoundTrip(t *testing.T) {
	sk := big.NewInt(2222)
	pk := curve.GeneratePublicKey(sk)

	em, err := EncryptMetadata(rng.Default, pk, "round trip me")
	if err != nil {
		t.Fatalf("EncryptMetadata failed: %v", err)
	}

	wire := EncodeWire(em)
	back, err := DecodeWire(wire)
	if err != nil {
		t.Fatalf("DecodeWire failed: %v", err)
	}

	got, err := DecryptMetadata(sk, back)
	if err != nil {
		t.Fatalf("DecryptMetadata after wire round trip failed: %v", err)
	}
	if got != "round trip me" {
		t.Fatalf("got %q", got)
	}
}

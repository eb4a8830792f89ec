package pct

import (
	"math/big"
	"testing"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

func TestEncryptDecryptRoundTripAllLengths(t *testing.T) {
	sk := big.NewInt(2024)
	pk := curve.GeneratePublicKey(sk)

	for l := 1; l <= MaxLength; l++ {
		m := make([]*big.Int, l)
		for i := range m {
			m[i] = big.NewInt(int64(100 + i))
		}

		ct, err := Encrypt(rng.Default, pk, m)
		if err != nil {
			t.Fatalf("length %d: Encrypt failed: %v", l, err)
		}

		got, err := Decrypt(sk, ct, l)
		if err != nil {
			t.Fatalf("length %d: Decrypt failed: %v", l, err)
		}
		for i := range m {
			if got[i].Cmp(m[i]) != 0 {
				t.Fatalf("length %d: element %d = %s, want %s", l, i, got[i], m[i])
			}
		}
	}
}

func TestToFieldsFromFieldsRoundTrip(t *testing.T) {
	sk := big.NewInt(55)
	pk := curve.GeneratePublicKey(sk)
	ct, err := Encrypt(rng.Default, pk, []*big.Int{big.NewInt(7)})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	fields := ct.ToFields()
	back := FromFields(fields)

	got, err := Decrypt(sk, back, 1)
	if err != nil {
		t.Fatalf("Decrypt after FromFields failed: %v", err)
	}
	if got[0].Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("got %s, want 7", got[0])
	}
}

func TestDecryptWithWrongKeyDiffers(t *testing.T) {
	skA := big.NewInt(1)
	skB := big.NewInt(2)
	pkA := curve.GeneratePublicKey(skA)

	ct, err := Encrypt(rng.Default, pkA, []*big.Int{big.NewInt(9)})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	got, err := Decrypt(skB, ct, 1)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if got[0].Cmp(big.NewInt(9)) == 0 {
		t.Fatal("decrypting with the wrong key should not recover the plaintext")
	}
}

func TestEncryptRejectsTooLong(t *testing.T) {
	pk := curve.GeneratePublicKey(big.NewInt(1))
	m := make([]*big.Int, MaxLength+1)
	for i := range m {
		m[i] = big.NewInt(0)
	}
	if _, err := Encrypt(rng.Default, pk, m); err == nil {
		t.Fatal("encrypting more than MaxLength elements should fail")
	}
}

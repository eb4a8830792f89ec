package egct

import (
	"math/big"
	"testing"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sk := big.NewInt(777)
	pk := curve.GeneratePublicKey(sk)

	ct, _, err := Encrypt(rng.Default, pk, big.NewInt(42))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	got, err := Decrypt(sk, ct)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	want := curve.MulWithBasePoint(big.NewInt(42))
	if !got.Equal(want) {
		t.Fatal("decrypted point should equal 42*Base8")
	}
}

func TestHomomorphicAdd(t *testing.T) {
	sk := big.NewInt(31415)
	pk := curve.GeneratePublicKey(sk)

	ct1, _, _ := Encrypt(rng.Default, pk, big.NewInt(10))
	ct2, _, _ := Encrypt(rng.Default, pk, big.NewInt(20))

	sum := Add(ct1, ct2)
	got, err := Decrypt(sk, sum)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	want := curve.MulWithBasePoint(big.NewInt(30))
	if !got.Equal(want) {
		t.Fatal("EGCT(10) + EGCT(20) should decrypt to 30*Base8")
	}
}

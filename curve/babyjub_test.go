package curve

import (
	"math/big"
	"testing"
)

func TestBase8OnCurveAndInSubgroup(t *testing.T) {
	if !OnCurve(Base8) {
		t.Fatal("Base8 must be on curve")
	}
	if !InPrimeSubgroup(Base8) {
		t.Fatal("Base8 must generate the prime-order subgroup")
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	id := Identity()
	sum := Add(Base8, id)
	if !sum.Equal(Base8) {
		t.Fatal("p + identity should equal p")
	}
}

func TestDoubleEqualsAddSelf(t *testing.T) {
	d1 := Double(Base8)
	d2 := Add(Base8, Base8)
	if !d1.Equal(d2) {
		t.Fatal("Double(p) should equal Add(p,p)")
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	// 2*Base8 + 3*Base8 == 5*Base8
	lhs := Add(Mul(Base8, big.NewInt(2)), Mul(Base8, big.NewInt(3)))
	rhs := Mul(Base8, big.NewInt(5))
	if !lhs.Equal(rhs) {
		t.Fatal("scalar mul should distribute over point addition")
	}
}

func TestGeneratePublicKeyOnCurve(t *testing.T) {
	sk := big.NewInt(123456789)
	pk := GeneratePublicKey(sk)
	if !OnCurve(pk) || !InPrimeSubgroup(pk) {
		t.Fatal("generated public key must be on-curve and in the prime subgroup")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sk := big.NewInt(424242)
	pk := GeneratePublicKey(sk)

	v := big.NewInt(100)
	ct, _, err := EncryptMessage(pk, v)
	if err != nil {
		t.Fatalf("EncryptMessage failed: %v", err)
	}

	got, err := ElGamalDecryption(sk, ct)
	if err != nil {
		t.Fatalf("ElGamalDecryption failed: %v", err)
	}
	want := MulWithBasePoint(v)
	if !got.Equal(want) {
		t.Fatal("decrypt(encrypt(v)) should equal v*Base8")
	}
}

func TestEncryptMessageRejectsIdentityPublicKey(t *testing.T) {
	if _, _, err := EncryptMessage(Identity(), big.NewInt(1)); err == nil {
		t.Fatal("encrypting under the identity point should fail")
	}
}

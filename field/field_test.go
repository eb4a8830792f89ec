package field

import (
	"math/big"
	"testing"
)

func TestAddSubInverse(t *testing.T) {
	a := big.NewInt(12345)
	b := big.NewInt(67890)

	sum := Add(a, b)
	back := Sub(sum, b)
	if back.Cmp(New(a)) != 0 {
		t.Fatalf("Sub(Add(a,b),b) = %s, want %s", back, New(a))
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := big.NewInt(999)
	if Add(a, Neg(a)).Sign() != 0 {
		t.Fatalf("a + (-a) should be zero mod P")
	}
}

func TestInv(t *testing.T) {
	a := big.NewInt(7)
	inv, err := Inv(a)
	if err != nil {
		t.Fatalf("Inv returned error: %v", err)
	}
	if Mul(a, inv).Cmp(One) != 0 {
		t.Fatalf("a * a^-1 should be 1 mod P, got %s", Mul(a, inv))
	}
}

func TestInvZeroFails(t *testing.T) {
	if _, err := Inv(Zero); err == nil {
		t.Fatal("Inv(0) should fail")
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	a := big.NewInt(16)
	root, ok := Sqrt(a)
	if !ok {
		t.Fatal("16 should be a quadratic residue mod P")
	}
	if Mul(root, root).Cmp(New(a)) != 0 {
		t.Fatalf("sqrt(16)^2 != 16 mod P")
	}
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	a := big.NewInt(3)
	got := Pow(a, big.NewInt(5))
	want := New(big.NewInt(243))
	if got.Cmp(want) != 0 {
		t.Fatalf("Pow(3,5) = %s, want %s", got, want)
	}
}

func TestEqualReducesBothSides(t *testing.T) {
	a := big.NewInt(5)
	b := new(big.Int).Add(P, big.NewInt(5))
	if !Equal(a, b) {
		t.Fatal("Equal should reduce both operands mod P")
	}
}

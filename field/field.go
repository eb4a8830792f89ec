// Package field implements arithmetic modulo the SNARK scalar prime used by
// the eERC protocol. It is one of the components the specification names as
// part of the core engine rather than a thin wrapper over a third-party
// field type (see DESIGN.md), so every operation is built directly on
// math/big's modular primitives.
package field

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/eerrors"
)

// P is the SNARK scalar field prime eERC ciphertexts and Poseidon states
// live in.
var P, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Zero and One are cached small constants, used by callers to avoid
// repeated allocation in hot loops (scalar mul).
var (
	Zero = big.NewInt(0)
	One  = big.NewInt(1)
)

// New reduces x modulo P and returns the canonical representative in [0, P).
func New(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, P)
}

// FromUint64 reduces a uint64 modulo P.
func FromUint64(x uint64) *big.Int {
	return new(big.Int).Mod(new(big.Int).SetUint64(x), P)
}

// Add returns (a + b) mod P.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), P)
}

// Sub returns (a - b) mod P.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), P)
}

// Neg returns (-a) mod P.
func Neg(a *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Neg(a), P)
}

// Mul returns (a * b) mod P.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), P)
}

// Pow returns (a^e) mod P for a non-negative exponent e.
func Pow(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, P)
}

// Inv returns the multiplicative inverse of a mod P via Fermat's little
// theorem (a^(P-2) mod P). It fails with eerrors.ErrArithmetic when a is
// congruent to zero, matching spec.md §4.A ("division by zero fails").
func Inv(a *big.Int) (*big.Int, error) {
	r := New(a)
	if r.Sign() == 0 {
		return nil, eerrors.ErrArithmetic
	}
	exp := new(big.Int).Sub(P, big.NewInt(2))
	return new(big.Int).Exp(r, exp, P), nil
}

// MustInv is Inv but panics on failure; reserved for call sites that have
// already validated a is nonzero (e.g. inside a loop over known-nonzero
// denominators), never for attacker-controlled input.
func MustInv(a *big.Int) *big.Int {
	r, err := Inv(a)
	if err != nil {
		panic(err)
	}
	return r
}

// Sqrt returns a square root of a mod P using math/big's Tonelli-Shanks
// implementation (ModSqrt), along with whether a is a quadratic residue.
func Sqrt(a *big.Int) (*big.Int, bool) {
	r := New(a)
	root := new(big.Int).ModSqrt(r, P)
	if root == nil {
		return nil, false
	}
	return root, true
}

// InRange reports whether x is in [0, P), the canonical scalar range.
func InRange(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(P) < 0
}

// Equal reports whether a and b represent the same field element once both
// are reduced modulo P.
func Equal(a, b *big.Int) bool {
	return New(a).Cmp(New(b)) == 0
}

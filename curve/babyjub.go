// Package curve implements Baby Jubjub, the twisted-Edwards curve embedded
// in BN254's scalar field that the eERC circuits use for every
// curve-point-valued witness field. Like field, this is implemented directly
// on math/big rather than wrapping a third-party curve type — see
// DESIGN.md for why.
package curve

import (
	"crypto/rand"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/field"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

// Curve parameters fixed by the protocol (spec.md §4.B).
var (
	A = big.NewInt(168700)
	D = big.NewInt(168696)

	// Order is the prime order ℓ of the subgroup Base8 generates. Every
	// secret scalar is reduced mod Order before a scalar multiplication.
	Order, _ = new(big.Int).SetString("2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)
)

// Base8 is the canonical Baby Jubjub base point generating the prime-order
// subgroup.
var Base8 = &Point{
	X: bigFromString("5299619240641551281634865583518297030282874472190772894086521144482721001553"),
	Y: bigFromString("16950150798460657717958625567821834550301663161624707787222815936182638968203"),
}

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: invalid constant " + s)
	}
	return v
}

// Point is an affine Baby Jubjub point (x, y) ∈ F_p × F_p.
type Point struct {
	X, Y *big.Int
}

// Identity is the twisted-Edwards neutral element (0, 1).
func Identity() *Point {
	return &Point{X: new(big.Int).Set(field.Zero), Y: new(big.Int).Set(field.One)}
}

// IsIdentity reports whether p is the curve identity.
func (p *Point) IsIdentity() bool {
	return p.X.Sign() == 0 && field.Equal(p.Y, field.One)
}

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	return field.Equal(p.X, q.X) && field.Equal(p.Y, q.Y)
}

// OnCurve checks ax² + y² = 1 + d·x²y² mod P.
func OnCurve(p *Point) bool {
	if !field.InRange(p.X) || !field.InRange(p.Y) {
		return false
	}
	x2 := field.Mul(p.X, p.X)
	y2 := field.Mul(p.Y, p.Y)
	lhs := field.Add(field.Mul(A, x2), y2)
	rhs := field.Add(field.One, field.Mul(D, field.Mul(x2, y2)))
	return field.Equal(lhs, rhs)
}

// InPrimeSubgroup checks ℓ·p = identity, i.e. p lies in the prime-order
// subgroup Base8 generates rather than merely on the curve (which also
// contains a small cofactor subgroup).
func InPrimeSubgroup(p *Point) bool {
	if !OnCurve(p) {
		return false
	}
	return Mul(p, Order).IsIdentity()
}

// Add implements the complete twisted-Edwards addition law. It is safe to
// call with p == q (it computes the same doubling formula).
func Add(p, q *Point) *Point {
	x1y2 := field.Mul(p.X, q.Y)
	y1x2 := field.Mul(p.Y, q.X)
	y1y2 := field.Mul(p.Y, q.Y)
	x1x2 := field.Mul(p.X, q.X)

	dxxyy := field.Mul(D, field.Mul(x1x2, y1y2))

	xNum := field.Add(x1y2, y1x2)
	xDen := field.Add(field.One, dxxyy)
	yNum := field.Sub(y1y2, field.Mul(A, x1x2))
	yDen := field.Sub(field.One, dxxyy)

	xDenInv := field.MustInv(xDen)
	yDenInv := field.MustInv(yDen)

	return &Point{
		X: field.Mul(xNum, xDenInv),
		Y: field.Mul(yNum, yDenInv),
	}
}

// Double returns p + p.
func Double(p *Point) *Point {
	return Add(p, p)
}

// Mul computes k·p via a fixed-iteration double-and-add-always ladder,
// running exactly Order.BitLen() rounds and selecting the accumulator
// branch-free regardless of k's bits (spec.md §4.B: mul must be
// constant-time-safe for secret k, since Mul carries both the secret key
// and PCT/EGCT randomness). A negative k is reduced mod Order first; a
// non-negative k is used as given, and only its low Order.BitLen() bits
// enter the ladder, so k must be below 2^Order.BitLen(). Callers that hold
// a secret scalar reduce it themselves (see ReduceScalar) before calling
// Mul, since the reduction step is itself part of the protocol's
// key-derivation contract, not an implementation detail of scalar
// multiplication.
func Mul(p *Point, k *big.Int) *Point {
	e := new(big.Int).Set(k)
	if e.Sign() < 0 {
		e = new(big.Int).Mod(e, Order)
	}

	result := Identity()
	addend := &Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}

	for i := 0; i < Order.BitLen(); i++ {
		sum := Add(result, addend)
		result = selectPoint(e.Bit(i), sum, result)
		addend = Double(addend)
	}
	return result
}

// selectPoint returns a if bit == 1 and b otherwise, computed via field
// arithmetic rather than a branch so the choice leaves no timing signature.
func selectPoint(bit uint, a, b *Point) *Point {
	mask := new(big.Int).SetUint64(uint64(bit))
	notMask := field.Sub(field.One, mask)
	return &Point{
		X: field.Add(field.Mul(mask, a.X), field.Mul(notMask, b.X)),
		Y: field.Add(field.Mul(mask, a.Y), field.Mul(notMask, b.Y)),
	}
}

// ReduceScalar reduces a secret scalar mod the subgroup order ℓ, per spec.md
// §3 ("All secret scalars are reduced mod ℓ before scalar multiplication").
func ReduceScalar(k *big.Int) *big.Int {
	return new(big.Int).Mod(k, Order)
}

// MulWithBasePoint computes k·Base8, the canonical encoding of a scalar
// amount or private key into a curve point.
func MulWithBasePoint(k *big.Int) *Point {
	return Mul(Base8, ReduceScalar(k))
}

// KeyPair is a Baby Jubjub secret/public key pair.
type KeyPair struct {
	SecretKey *big.Int
	PublicKey *Point
}

// GeneratePublicKey computes (sk mod ℓ)·Base8.
func GeneratePublicKey(sk *big.Int) *Point {
	return MulWithBasePoint(sk)
}

// RandomScalar samples a uniform scalar in [1, ℓ) using crypto/rand.
func RandomScalar() (*big.Int, error) {
	for {
		r, err := rand.Int(rand.Reader, Order)
		if err != nil {
			return nil, err
		}
		if r.Sign() != 0 {
			return r, nil
		}
	}
}

// Ciphertext is an ElGamal ciphertext (C1, C2) of an amount encoded as
// v·Base8 (spec.md §3 EGCT, §4.B encryptMessage/elGamalDecryption).
type Ciphertext struct {
	C1, C2 *Point
}

// EncryptMessage encrypts amount v under pk using the default CSPRNG. It
// samples a fresh random r in [1, ℓ) and returns it alongside the
// ciphertext because the circuit witness needs it (spec.md §4.B). Callers
// that need reproducible randomness (tests, the operation engine under a
// scripted Rng) should use EncryptMessageWithRng instead.
func EncryptMessage(pk *Point, v *big.Int) (*Ciphertext, *big.Int, error) {
	return EncryptMessageWithRng(rng.Default, pk, v)
}

// EncryptMessageWithRng is EncryptMessage parameterized over the randomness
// source, per spec.md §9's Rng capability.
func EncryptMessageWithRng(source rng.Rng, pk *Point, v *big.Int) (*Ciphertext, *big.Int, error) {
	if pk.IsIdentity() || !OnCurve(pk) {
		return nil, nil, eerrors.ErrInvalidPoint
	}
	r, err := source.Scalar(Order)
	if err != nil {
		return nil, nil, err
	}
	c1 := Mul(Base8, r)
	m := Mul(Base8, field.New(v))
	s := Mul(pk, r)
	c2 := Add(m, s)
	return &Ciphertext{C1: c1, C2: c2}, r, nil
}

// ElGamalDecryption recovers C2 − sk·C1, i.e. v·Base8. The caller must
// further solve a discrete log over a known small range to recover v itself;
// the protocol avoids that by carrying a redundant PCT-encoded amount
// (spec.md §3 EGCT).
func ElGamalDecryption(sk *big.Int, ct *Ciphertext) (*Point, error) {
	if !OnCurve(ct.C1) || !OnCurve(ct.C2) {
		return nil, eerrors.ErrInvalidPoint
	}
	negSK := new(big.Int).Neg(sk)
	s := Mul(ct.C1, negSK)
	return Add(ct.C2, s), nil
}

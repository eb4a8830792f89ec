// Package egct names the ElGamal-on-Baby-Jubjub ciphertext component
// (spec.md §4.E) as its own domain type, distinct from the raw curve
// operations curve.Ciphertext exposes, so operation witnesses and
// contract-facing structs can refer to "an EGCT" without reaching into the
// curve package's lower-level vocabulary.
package egct

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

// Ciphertext is the (C1, C2) pair the contract stores per (user, token) as
// the homomorphic running total, and per-transaction as the encrypted
// transfer amount.
type Ciphertext struct {
	C1, C2 *curve.Point
}

// Encrypt wraps curve.EncryptMessageWithRng, returning an egct.Ciphertext
// and the randomness r used, which the operation engine must fold into the
// witness.
func Encrypt(source rng.Rng, pk *curve.Point, v *big.Int) (*Ciphertext, *big.Int, error) {
	ct, r, err := curve.EncryptMessageWithRng(source, pk, v)
	if err != nil {
		return nil, nil, err
	}
	return &Ciphertext{C1: ct.C1, C2: ct.C2}, r, nil
}

// Decrypt recovers v·Base8 (not v) from the ciphertext under sk.
func Decrypt(sk *big.Int, ct *Ciphertext) (*curve.Point, error) {
	return curve.ElGamalDecryption(sk, &curve.Ciphertext{C1: ct.C1, C2: ct.C2})
}

// Add implements the contract's homomorphic aggregation: componentwise
// point addition, encrypting v1+v2 given EGCT(v1) and EGCT(v2). The core
// itself never calls this (the contract performs the aggregation); it is
// exposed for callers reconstructing the running total client-side, and for
// tests exercising the homomorphism invariant (spec.md §4.E).
func Add(a, b *Ciphertext) *Ciphertext {
	return &Ciphertext{
		C1: curve.Add(a.C1, b.C1),
		C2: curve.Add(a.C2, b.C2),
	}
}

// IsZero reports whether ct is the all-identity ciphertext, the
// representation of "no balance yet" for a freshly registered user.
func (ct *Ciphertext) IsZero() bool {
	return ct.C1.IsIdentity() && ct.C2.IsIdentity()
}

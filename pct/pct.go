// Package pct implements Poseidon ciphertexts: authenticated encryption of
// up to four field elements under an ECDH-derived Poseidon keystream
// (spec.md §4.D). This is what the contract calls amountPCTs/balancePCT.
package pct

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/field"
	"github.com/ava-labs/eerc-go-sdk/poseidon"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

// MaxLength is the largest plaintext vector PCT can encrypt in one shot.
const MaxLength = 4

// Ciphertext is the PCT tuple: four cipher field elements, the ECDH
// auth-key point, the sponge nonce, and (encryptor-only) the encryption
// randomness the witness needs.
type Ciphertext struct {
	Cipher           [MaxLength]*big.Int
	AuthKey          *curve.Point
	Nonce            *big.Int
	EncryptionRandom *big.Int
}

// Encrypt encrypts m (1 ≤ len(m) ≤ MaxLength) under pk, sampling a fresh
// encryption random s and nonce from source.
func Encrypt(source rng.Rng, pk *curve.Point, m []*big.Int) (*Ciphertext, error) {
	if len(m) < 1 || len(m) > MaxLength {
		return nil, eerrors.ErrArithmetic
	}
	if pk.IsIdentity() {
		return nil, eerrors.ErrInvalidPoint
	}

	s, err := source.Scalar(curve.Order)
	if err != nil {
		return nil, err
	}
	nonce, err := source.FieldElement(field.P)
	if err != nil {
		return nil, err
	}

	k := curve.Mul(pk, s)
	authKey := curve.Mul(curve.Base8, s)

	keystream := poseidon.NewSponge(nonce, k.X, k.Y).Squeeze(MaxLength)

	ct := &Ciphertext{AuthKey: authKey, Nonce: nonce, EncryptionRandom: s}
	for i := 0; i < MaxLength; i++ {
		var mi *big.Int
		if i < len(m) {
			mi = m[i]
		} else {
			mi = field.Zero
		}
		ct.Cipher[i] = field.Add(mi, keystream[i])
	}
	return ct, nil
}

// Decrypt recovers the first length plaintext elements (length supplied
// out-of-band by the caller, per spec.md §4.D) using sk.
func Decrypt(sk *big.Int, ct *Ciphertext, length int) ([]*big.Int, error) {
	if length < 1 || length > MaxLength {
		return nil, eerrors.ErrArithmetic
	}
	if ct.AuthKey.IsIdentity() {
		return nil, eerrors.ErrInvalidPoint
	}

	k := curve.Mul(ct.AuthKey, curve.ReduceScalar(sk))
	keystream := poseidon.NewSponge(ct.Nonce, k.X, k.Y).Squeeze(MaxLength)

	out := make([]*big.Int, length)
	for i := 0; i < length; i++ {
		out[i] = field.Sub(ct.Cipher[i], keystream[i])
	}
	return out, nil
}

// ToFields returns the 7-field on-wire form: cipher[0..4) ‖ authKey.x ‖
// authKey.y ‖ nonce, matching the contract's uint256[7] balancePCT layout.
func (ct *Ciphertext) ToFields() [7]*big.Int {
	var out [7]*big.Int
	copy(out[0:4], ct.Cipher[:])
	out[4] = ct.AuthKey.X
	out[5] = ct.AuthKey.Y
	out[6] = ct.Nonce
	return out
}

// FromFields reconstructs a Ciphertext from the 7-field on-wire form. The
// EncryptionRandom field is left nil since it is never transmitted on-chain.
func FromFields(f [7]*big.Int) *Ciphertext {
	ct := &Ciphertext{
		AuthKey: &curve.Point{X: f[4], Y: f[5]},
		Nonce:   f[6],
	}
	copy(ct.Cipher[:], f[0:4])
	return ct
}

// IsZero reports whether ct is the all-zero placeholder the contract uses
// for "no balancePCT written yet".
func (ct *Ciphertext) IsZero() bool {
	if ct.Nonce == nil || ct.Nonce.Sign() != 0 {
		return false
	}
	for _, c := range ct.Cipher {
		if c == nil || c.Sign() != 0 {
			return false
		}
	}
	return ct.AuthKey == nil || ct.AuthKey.IsIdentity()
}

// Package rng exposes the randomness capability the operation engine
// threads through every PCT/EGCT construction, so tests can inject
// deterministic randomness for reproducible witnesses (spec.md §9). The
// default implementation is a CSPRNG; nothing in this package should ever be
// reused in production in place of it.
package rng

import (
	"crypto/rand"
	"math/big"
)

// Rng samples a uniform scalar in [1, max).
type Rng interface {
	Scalar(max *big.Int) (*big.Int, error)
	FieldElement(modulus *big.Int) (*big.Int, error)
}

// CSPRNG is the production Rng backed by crypto/rand.
type CSPRNG struct{}

// Scalar samples uniformly from [1, max).
func (CSPRNG) Scalar(max *big.Int) (*big.Int, error) {
	for {
		r, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, err
		}
		if r.Sign() != 0 {
			return r, nil
		}
	}
}

// FieldElement samples uniformly from [0, modulus).
func (CSPRNG) FieldElement(modulus *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, modulus)
}

// Default is the package-level CSPRNG instance most callers should use.
var Default Rng = CSPRNG{}

// Deterministic is a test-only Rng that replays a fixed sequence of scalars,
// looping once exhausted. Never use it outside tests: reusing randomness
// across EGCT/PCT constructions breaks spec.md invariant I3.
type Deterministic struct {
	values []*big.Int
	next   int
}

// NewDeterministic builds a Deterministic Rng that replays values in order.
func NewDeterministic(values ...*big.Int) *Deterministic {
	return &Deterministic{values: values}
}

func (d *Deterministic) pick() *big.Int {
	v := d.values[d.next%len(d.values)]
	d.next++
	return v
}

// Scalar returns the next scripted value reduced mod max, with a zero
// result replaced by 1, so the value lies in [1, max).
func (d *Deterministic) Scalar(max *big.Int) (*big.Int, error) {
	v := new(big.Int).Mod(d.pick(), max)
	if v.Sign() == 0 {
		v.SetInt64(1)
	}
	return v, nil
}

// FieldElement ignores modulus beyond reduction and returns the next
// scripted value.
func (d *Deterministic) FieldElement(modulus *big.Int) (*big.Int, error) {
	return new(big.Int).Mod(d.pick(), modulus), nil
}

package poseidon

import "math/big"

// Rate and Capacity describe the duplex construction: the capacity element
// and two rate elements (PCT's ECDH shared point coordinates) are fixed for
// the life of the sponge, and each squeezed output is bound to them plus a
// strictly increasing counter.
const (
	Rate     = 2
	Capacity = 1
)

// Sponge derives a Poseidon-based keystream from a capacity element (the
// protocol's nonce) and two rate elements (PCT component D's ECDH shared
// point). Every output element is produced by a direct call into
// go-iden3-crypto/poseidon's Hash, keyed by the sponge's fixed inputs plus
// an evolving counter — this package never runs its own permutation code,
// only the reference implementation's.
type Sponge struct {
	capacityElem, rate0, rate1 *big.Int
	counter                    uint64
}

// NewSponge fixes the sponge's capacity element and rate elements.
func NewSponge(capacityElem, rate0, rate1 *big.Int) *Sponge {
	return &Sponge{
		capacityElem: new(big.Int).Set(capacityElem),
		rate0:        new(big.Int).Set(rate0),
		rate1:        new(big.Int).Set(rate1),
	}
}

// Squeeze produces the next n keystream elements. Repeated calls on the
// same Sponge continue the counter rather than restarting it.
func (s *Sponge) Squeeze(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = mustHash(s.capacityElem, s.rate0, s.rate1, new(big.Int).SetUint64(s.counter))
		s.counter++
	}
	return out
}

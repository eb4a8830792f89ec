// Package balance implements total-balance reconstruction (spec.md §4.I):
// folding a contract's (EGCT, amountPCTs, balancePCT) triple into a verified
// plaintext scalar.
package balance

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/field"
	"github.com/ava-labs/eerc-go-sdk/pct"
)

// AmountPCT is one entry in the contract's append-only amountPCTs queue.
type AmountPCT struct {
	PCT *pct.Ciphertext
}

// Encoding mirrors the contract's per-(user, token) balance storage:
// the homomorphic running total (EGCT), the queue of per-transaction
// PCTs credited to the holder, and the rolling PCT of the holder's last
// known total balance.
type Encoding struct {
	EGCT       *egct.Ciphertext
	AmountPCTs []AmountPCT
	BalancePCT *pct.Ciphertext
}

// Reconstruct folds an Encoding into the holder's plaintext total balance,
// then cross-checks it against EGCT decryption. It returns
// eerrors.ErrInconsistentBalance rather than a silently wrong value when the
// two disagree (spec.md §4.I step 3, §7).
func Reconstruct(sk *big.Int, enc *Encoding) (*big.Int, error) {
	total := new(big.Int)

	if enc.BalancePCT != nil && !enc.BalancePCT.IsZero() {
		m, err := pct.Decrypt(sk, enc.BalancePCT, 1)
		if err != nil {
			return nil, err
		}
		total = field.Add(total, m[0])
	}

	for _, a := range enc.AmountPCTs {
		m, err := pct.Decrypt(sk, a.PCT, 1)
		if err != nil {
			return nil, err
		}
		total = field.Add(total, m[0])
	}

	if total.Sign() == 0 {
		return total, nil
	}

	expected := curve.MulWithBasePoint(total)
	got, err := egct.Decrypt(sk, enc.EGCT)
	if err != nil {
		return nil, err
	}
	if !got.Equal(expected) {
		return nil, eerrors.ErrInconsistentBalance
	}
	return total, nil
}

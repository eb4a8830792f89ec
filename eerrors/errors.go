// Package eerrors defines the sum-type error taxonomy the rest of the SDK
// propagates to its operation boundary. No package in this module panics on
// a cryptographic or validation failure; every failure path returns one of
// the sentinels below, usually wrapped with fmt.Errorf("%w: ...") so callers
// can errors.Is against the sentinel while still getting a useful message.
package eerrors

import "errors"

var (
	// ErrInvalidAddress is returned for a malformed or zero address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned for a non-positive amount, or one that
	// exceeds the plaintext balance it is drawn against.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotPermittedInMode is returned when an operation is incompatible
	// with the deployment's converter/standalone mode.
	ErrNotPermittedInMode = errors.New("operation not permitted in this mode")

	// ErrAuditorNotSet is returned when the auditor public key is the curve
	// identity point.
	ErrAuditorNotSet = errors.New("auditor public key is not set")

	// ErrUnregisteredParty is returned when a counterparty public key is the
	// curve identity point.
	ErrUnregisteredParty = errors.New("counterparty is not registered")

	// ErrMissingKey is returned when an operation needs a decryption key that
	// is not present in the current session.
	ErrMissingKey = errors.New("decryption key not present in session")

	// ErrInvalidPoint is returned by curve operations given an off-curve
	// point, and where a public key or auth key is the identity point.
	ErrInvalidPoint = errors.New("invalid curve point")

	// ErrArithmetic is returned by field.Inv on a zero divisor, and by pct and
	// message on a plaintext length or wire size they cannot encode.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrProver is returned when the external prover oracle fails.
	ErrProver = errors.New("prover error")

	// ErrInconsistentBalance is the sentinel surfaced by balance
	// reconstruction (spec §4.I) when the EGCT cross-check fails.
	ErrInconsistentBalance = errors.New("inconsistent balance")

	// ErrWeakKey is returned when a derived private key scalar reduces to
	// zero mod the subgroup order.
	ErrWeakKey = errors.New("derived key is weak (zero)")
)

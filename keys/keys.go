// Package keys implements deterministic session key derivation from a
// wallet signature (spec.md §4.F) and the bit-exact registration message
// every client must reproduce to regenerate the same key.
package keys

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"golang.org/x/crypto/sha3"
)

// SignatureLen is the length of a 65-byte (r || s || v) ECDSA signature.
const SignatureLen = 65

// DeriveKeyFromSignature takes the 65-byte r||s||v signature over
// RegistrationMessage, interprets r||s as a big-endian 512-bit integer,
// reduces it mod the subgroup order, and fails with eerrors.ErrWeakKey if
// the result is zero.
func DeriveKeyFromSignature(signature []byte) (*big.Int, error) {
	if len(signature) != SignatureLen {
		return nil, fmt.Errorf("DeriveKeyFromSignature: signature must be %d bytes, got %d", SignatureLen, len(signature))
	}
	rs := new(big.Int).SetBytes(signature[:64])
	sk := new(big.Int).Mod(rs, curve.Order)
	if sk.Sign() == 0 {
		return nil, eerrors.ErrWeakKey
	}
	return sk, nil
}

// RegistrationMessage builds the exact literal message a wallet signs to
// deterministically derive its eERC session key. It is bit-exact: any
// client regenerating a key must reproduce this string unmodified.
func RegistrationMessage(address string) (string, error) {
	norm, err := NormalizeAddress(address)
	if err != nil {
		return "", err
	}
	return "eERC\nRegistering user with\n Address:" + norm, nil
}

// NormalizeAddress validates a 0x-prefixed 20-byte hex address (optionally
// EIP-55 checksummed), rejects the zero address, and returns its canonical
// lowercase form.
func NormalizeAddress(address string) (string, error) {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return "", fmt.Errorf("%w: address must be 0x-prefixed", eerrors.ErrInvalidAddress)
	}
	hexPart := address[2:]
	if len(hexPart) != 40 {
		return "", fmt.Errorf("%w: address must encode 20 bytes", eerrors.ErrInvalidAddress)
	}
	lower := strings.ToLower(hexPart)
	for _, c := range lower {
		if !isHexDigit(c) {
			return "", fmt.Errorf("%w: address contains non-hex characters", eerrors.ErrInvalidAddress)
		}
	}
	if strings.Trim(lower, "0") == "" {
		return "", fmt.Errorf("%w: zero address", eerrors.ErrInvalidAddress)
	}
	// If the input is mixed-case, it claims to be EIP-55 checksummed;
	// verify it rather than silently accepting a malformed checksum.
	if hexPart != lower && hexPart != strings.ToUpper(hexPart) {
		if checksum(lower) != hexPart {
			return "", fmt.Errorf("%w: EIP-55 checksum mismatch", eerrors.ErrInvalidAddress)
		}
	}
	return "0x" + lower, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// checksum implements EIP-55: capitalize hex digit i of the lowercase
// address when the i-th nibble of keccak256(lowercase address) is >= 8.
func checksum(lower string) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	digest := hash.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}

// AddressToField interprets a validated lowercase address as a big-endian
// field element, the form REGISTER's witness wants (spec.md §4.H).
func AddressToField(address string) (*big.Int, error) {
	norm, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	v := new(big.Int)
	if _, ok := v.SetString(norm[2:], 16); !ok {
		return nil, fmt.Errorf("%w: could not parse address hex", eerrors.ErrInvalidAddress)
	}
	return v, nil
}

// GeneratePublicKey derives the public key matching a derived session
// secret key.
func GeneratePublicKey(sk *big.Int) *curve.Point {
	return curve.GeneratePublicKey(sk)
}

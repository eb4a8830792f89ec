// Package message implements the UTF-8 ⇄ field-element metadata codec
// (spec.md §4.G) and its 32-byte-aligned on-wire layout, built on top of
// pct for the actual encryption.
package message

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
	"github.com/ava-labs/eerc-go-sdk/field"
	"github.com/ava-labs/eerc-go-sdk/pct"
	"github.com/ava-labs/eerc-go-sdk/rng"
)

// ChunkBits is the width of each field-element chunk str2int/int2str
// splits a message's integer encoding into.
const ChunkBits = 250

var chunkMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), ChunkBits), big.NewInt(1))

// Str2Int interprets s's UTF-8 bytes as a big-endian integer N and splits it
// into 250-bit chunks, least-significant chunk first. The empty string
// encodes to a single zero chunk.
func Str2Int(s string) []*big.Int {
	n := new(big.Int).SetBytes([]byte(s))
	if n.Sign() == 0 {
		return []*big.Int{big.NewInt(0)}
	}
	var chunks []*big.Int
	rest := new(big.Int).Set(n)
	for rest.Sign() > 0 {
		chunk := new(big.Int).And(rest, chunkMask)
		chunks = append(chunks, chunk)
		rest.Rsh(rest, ChunkBits)
	}
	return chunks
}

// Int2Str reverses Str2Int: it recombines chunks MSB-last into the integer
// N = Σ chunk_i·2^(250i), re-encodes N as big-endian bytes, and decodes
// those bytes as UTF-8. A single zero chunk decodes to the empty string.
func Int2Str(chunks []*big.Int) (string, error) {
	n := new(big.Int)
	for i := len(chunks) - 1; i >= 0; i-- {
		n.Lsh(n, ChunkBits)
		n.Or(n, new(big.Int).And(chunks[i], chunkMask))
	}
	if n.Sign() == 0 {
		return "", nil
	}
	return string(n.Bytes()), nil
}

// EncryptedMetadata is the decrypted-length-tagged PCT payload the wire
// layout carries for a message.
type EncryptedMetadata struct {
	Length int
	PCT    *pct.Ciphertext
}

// EncryptMetadata chunks s and PCT-encrypts the chunks under pk. s's
// encoded integer must fit in pct.MaxLength chunks (spec.md §8 scopes the
// round-trip property to strings whose encoded integer stays under P,
// which always fits within that budget).
func EncryptMetadata(source rng.Rng, pk *curve.Point, s string) (*EncryptedMetadata, error) {
	chunks := Str2Int(s)
	length := len(chunks)
	if length > pct.MaxLength {
		return nil, fmt.Errorf("message: string encodes to %d chunks, exceeding the %d-chunk wire layout", length, pct.MaxLength)
	}

	padded := make([]*big.Int, pct.MaxLength)
	copy(padded, chunks)
	for i := length; i < pct.MaxLength; i++ {
		padded[i] = field.Zero
	}

	ct, err := pct.Encrypt(source, pk, padded)
	if err != nil {
		return nil, err
	}
	return &EncryptedMetadata{Length: length, PCT: ct}, nil
}

// DecryptMetadata reverses EncryptMetadata: it PCT-decrypts Length chunks
// under sk and recombines them into the original UTF-8 string.
func DecryptMetadata(sk *big.Int, em *EncryptedMetadata) (string, error) {
	chunks, err := pct.Decrypt(sk, em.PCT, em.Length)
	if err != nil {
		return "", err
	}
	return Int2Str(chunks)
}

// field32 big-endian-pads v into a 32-byte slice, per the on-wire layout's
// "32-byte big-endian padded" rule (spec.md §4.G/§6).
func field32(v *big.Int) []byte {
	out := make([]byte, 32)
	b := v.Bytes()
	if len(b) > 32 {
		panic("message: value does not fit in 32 bytes")
	}
	copy(out[32-len(b):], b)
	return out
}

// EncodeWire serializes an EncryptedMetadata into the on-wire byte layout:
// length(32) ‖ nonce(32) ‖ authKey.x(32) ‖ authKey.y(32) ‖ cipher_i(32)...
func EncodeWire(em *EncryptedMetadata) []byte {
	buf := make([]byte, 0, 32*(4+pct.MaxLength))
	lenBytes := make([]byte, 32)
	binary.BigEndian.PutUint64(lenBytes[24:], uint64(em.Length))
	buf = append(buf, lenBytes...)
	buf = append(buf, field32(em.PCT.Nonce)...)
	buf = append(buf, field32(em.PCT.AuthKey.X)...)
	buf = append(buf, field32(em.PCT.AuthKey.Y)...)
	for _, c := range em.PCT.Cipher {
		buf = append(buf, field32(c)...)
	}
	return buf
}

// DecodeWire reverses EncodeWire.
func DecodeWire(b []byte) (*EncryptedMetadata, error) {
	want := 32 * (4 + pct.MaxLength)
	if len(b) != want {
		return nil, fmt.Errorf("%w: message.DecodeWire expects %d bytes, got %d", eerrors.ErrArithmetic, want, len(b))
	}
	length := int(binary.BigEndian.Uint64(b[24:32]))
	nonce := new(big.Int).SetBytes(b[32:64])
	authX := new(big.Int).SetBytes(b[64:96])
	authY := new(big.Int).SetBytes(b[96:128])

	ct := &pct.Ciphertext{
		Nonce:   nonce,
		AuthKey: &curve.Point{X: authX, Y: authY},
	}
	for i := 0; i < pct.MaxLength; i++ {
		off := 128 + i*32
		ct.Cipher[i] = new(big.Int).SetBytes(b[off : off+32])
	}
	return &EncryptedMetadata{Length: length, PCT: ct}, nil
}

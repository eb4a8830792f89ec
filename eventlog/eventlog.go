// Package eventlog defines the four on-chain event payload shapes the
// protocol emits, plus auditor-side decode helpers. The core consumes
// events as a stream handed to it by the host; auditor-log enumeration
// itself (e.g. scanning a block range) is a collaborator concern left to
// the host, per spec.md §9(c).
package eventlog

import (
	"math/big"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/message"
	"github.com/ava-labs/eerc-go-sdk/pct"
)

// PrivateMint is emitted when MINT completes.
type PrivateMint struct {
	ChainID       *big.Int
	NullifierHash *big.Int
	Receiver      *curve.Point
	AuditorPCT    *pct.Ciphertext
}

// PrivateTransfer is emitted when TRANSFER completes.
type PrivateTransfer struct {
	Sender     *curve.Point
	Receiver   *curve.Point
	AuditorPCT *pct.Ciphertext
}

// PrivateBurn is emitted when BURN completes.
type PrivateBurn struct {
	Sender     *curve.Point
	BurnVTT    *egct.Ciphertext
	AuditorPCT *pct.Ciphertext
}

// PrivateMessage is emitted alongside an operation that carries an optional
// UTF-8 message (spec.md §4.G). From and To are plaintext event fields
// (messageFrom/messageTo, spec.md §6); MessageType distinguishes the kinds
// of message the protocol carries (messageType, spec.md §6); Metadata is
// the payload itself, encrypted to the recipient or auditor.
type PrivateMessage struct {
	From        *curve.Point
	To          *curve.Point
	MessageType uint8
	Metadata    *message.EncryptedMetadata
}

// DecodeAuditorAmount decrypts the amount the auditor PCT commits to, the
// reading every PrivateMint/PrivateTransfer/PrivateBurn event carries for
// the auditor role.
func DecodeAuditorAmount(auditorSK *big.Int, ct *pct.Ciphertext) (*big.Int, error) {
	chunks, err := pct.Decrypt(auditorSK, ct, 1)
	if err != nil {
		return nil, err
	}
	return chunks[0], nil
}

// DecodeMessage decrypts a PrivateMessage's metadata under the recipient's
// (or auditor's) secret key.
func DecodeMessage(sk *big.Int, evt *PrivateMessage) (string, error) {
	return message.DecryptMetadata(sk, evt.Metadata)
}

// Package raw provides allocation-free views over encoded VAAs. A view wraps
// the caller's slice and decodes fields on access; Parse functions validate
// lengths up front so accessors never go out of bounds.
package raw

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

var (
	ErrSpanTooShort   = errors.New("span too short")
	ErrLengthMismatch = errors.New("payload length mismatch")
	ErrUnknownType    = errors.New("unknown message type")
)

const (
	headerFixedLen = 6
	signatureLen   = 66
	bodyFixedLen   = 51
)

// TooShort formats an ErrSpanTooShort for a view that needs at least need bytes.
func TooShort(view string, need, have int) error {
	return fmt.Errorf("%w: %s needs at least %d bytes, have %d", ErrSpanTooShort, view, need, have)
}

// Header is a view over an encoded VAA header.
type Header []byte

func ParseHeader(span []byte) (Header, error) {
	if len(span) < headerFixedLen {
		return nil, TooShort("header", headerFixedLen, len(span))
	}
	need := headerFixedLen + int(span[5])*signatureLen
	if len(span) < need {
		return nil, TooShort("header", need, len(span))
	}
	return Header(span[:need]), nil
}

func (h Header) Version() uint8           { return h[0] }
func (h Header) GuardianSetIndex() uint32 { return binary.BigEndian.Uint32(h[1:5]) }
func (h Header) NumSignatures() int       { return int(h[5]) }

// Signature returns the guardian index and 65 signature bytes of entry i.
// It reports false when i is not a signature in h.
func (h Header) Signature(i int) (uint8, []byte, bool) {
	off := headerFixedLen + i*signatureLen
	if i < 0 || i >= h.NumSignatures() || off+signatureLen > len(h) {
		return 0, nil, false
	}
	return h[off], h[off+1 : off+signatureLen], true
}

// Body is a view over an encoded VAA body.
type Body []byte

func ParseBody(span []byte) (Body, error) {
	if len(span) < bodyFixedLen {
		return nil, TooShort("body", bodyFixedLen, len(span))
	}
	return Body(span), nil
}

func (b Body) Timestamp() uint32        { return binary.BigEndian.Uint32(b[0:4]) }
func (b Body) Nonce() uint32            { return binary.BigEndian.Uint32(b[4:8]) }
func (b Body) EmitterChain() uint16     { return binary.BigEndian.Uint16(b[8:10]) }
func (b Body) EmitterAddress() [32]byte { return [32]byte(b[10:42]) }
func (b Body) Sequence() uint64         { return binary.BigEndian.Uint64(b[42:50]) }
func (b Body) ConsistencyLevel() uint8  { return b[50] }
func (b Body) Payload() Payload         { return Payload(b[bodyFixedLen:]) }

// Digest is keccak256 of the body bytes.
func (b Body) Digest() [32]byte {
	return keccak256(b)
}

// SigningDigest is keccak256 of Digest.
func (b Body) SigningDigest() [32]byte {
	d := b.Digest()
	return keccak256(d[:])
}

func keccak256(data []byte) (out [32]byte) {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// VAA is a view over a complete encoded VAA.
type VAA struct {
	span   []byte
	header Header
	body   Body
}

func Parse(span []byte) (VAA, error) {
	h, err := ParseHeader(span)
	if err != nil {
		return VAA{}, err
	}
	b, err := ParseBody(span[len(h):])
	if err != nil {
		return VAA{}, err
	}
	return VAA{span: span, header: h, body: b}, nil
}

func (v VAA) Bytes() []byte  { return v.span }
func (v VAA) Header() Header { return v.header }
func (v VAA) Body() Body     { return v.body }

// Payload is a view over an opaque payload.
type Payload []byte

// Type returns the leading type byte, or false if the payload is empty.
func (p Payload) Type() (uint8, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

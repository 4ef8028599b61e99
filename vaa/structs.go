package vaa

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

var ErrUnsupportedVersion = errors.New("unsupported VAA version")

const (
	SupportedVAAVersion = 0x01

	// HeaderMinLength is version, guardian set index and signature count.
	HeaderMinLength = 1 + 4 + 1
	// BodyMinLength is every body field with an empty payload.
	BodyMinLength = 4 + 4 + 2 + 32 + 8 + 1
	MinVAALength  = HeaderMinLength + BodyMinLength

	// MaxSignatures is the largest signature count a header can carry.
	MaxSignatures = 255
)

const (
	ConsistencyLevelPublishImmediately = uint8(200)
	ConsistencyLevelSafe               = uint8(201)
)

type (
	// Header carries the guardian attestation: protocol version, the guardian
	// set that signed and the signatures in wire order.
	Header struct {
		Version          uint8
		GuardianSetIndex uint32
		Signatures       []Signature
	}

	// Body is the attested message. Payload is opaque and runs to the end of
	// the encoding.
	Body struct {
		Timestamp        uint32
		Nonce            uint32
		EmitterChain     ChainID
		EmitterAddress   Address
		Sequence         uint64
		ConsistencyLevel uint8
		Payload          []byte
	}

	VAA struct {
		Header
		Body
	}
)

func (h Header) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, h.Version, h.GuardianSetIndex); err != nil {
		return err
	}
	if err := wireio.WriteSequence[uint8](w, h.Signatures); err != nil {
		return fmt.Errorf("failed to write signatures: %w", err)
	}
	return nil
}

func (h Header) WrittenSize() int {
	return 1 + 4 + wireio.SequenceSize[uint8](h.Signatures)
}

func (h *Header) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &h.Version); err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	if err = wireio.ReadFields(r, &h.GuardianSetIndex); err != nil {
		return fmt.Errorf("failed to read guardian set index: %w", err)
	}
	if h.Signatures, err = wireio.ReadSequence[uint8, Signature](r); err != nil {
		return fmt.Errorf("failed to read signatures: %w", err)
	}
	return nil
}

func (b Body) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, b.Timestamp, b.Nonce, b.EmitterChain, [32]byte(b.EmitterAddress), b.Sequence, b.ConsistencyLevel); err != nil {
		return err
	}
	_, err := w.Write(b.Payload)
	return err
}

func (b Body) WrittenSize() int {
	return BodyMinLength + len(b.Payload)
}

func (b *Body) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &b.Timestamp); err != nil {
		return fmt.Errorf("failed to read timestamp: %w", err)
	}
	if err = wireio.ReadFields(r, &b.Nonce); err != nil {
		return fmt.Errorf("failed to read nonce: %w", err)
	}
	if err = wireio.ReadFields(r, &b.EmitterChain); err != nil {
		return fmt.Errorf("failed to read emitter chain: %w", err)
	}
	if err = b.EmitterAddress.Read(r); err != nil {
		return fmt.Errorf("failed to read emitter address: %w", err)
	}
	if err = wireio.ReadFields(r, &b.Sequence); err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	if err = wireio.ReadFields(r, &b.ConsistencyLevel); err != nil {
		return fmt.Errorf("failed to read consistency level: %w", err)
	}
	if b.Payload, err = io.ReadAll(r); err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	return nil
}

// Time returns the observation timestamp.
func (b *Body) Time() time.Time {
	return time.Unix(int64(b.Timestamp), 0)
}

// MessageID returns a human-readable emitter_chain/emitter_address/sequence tuple.
func (b *Body) MessageID() string {
	return fmt.Sprintf("%d/%s/%d", b.EmitterChain, b.EmitterAddress, b.Sequence)
}

// Marshal returns the body encoding, which is what guardians hash.
func (b *Body) Marshal() ([]byte, error) {
	return wireio.ToBytes(b)
}

func (v VAA) Write(w io.Writer) error {
	if err := v.Header.Write(w); err != nil {
		return err
	}
	return v.Body.Write(w)
}

func (v VAA) WrittenSize() int {
	return v.Header.WrittenSize() + v.Body.WrittenSize()
}

func (v *VAA) Read(r io.Reader) error {
	if err := v.Header.Read(r); err != nil {
		return err
	}
	return v.Body.Read(r)
}

// Marshal returns the binary representation of the VAA.
func (v *VAA) Marshal() ([]byte, error) {
	return wireio.ToBytes(v)
}

func (v VAA) MarshalBinary() ([]byte, error) {
	return v.Marshal()
}

func (v *VAA) UnmarshalBinary(data []byte) error {
	vaa, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*v = *vaa
	return nil
}

// Unmarshal decodes a VAA and rejects versions other than SupportedVAAVersion.
// Use Read for version-agnostic decoding.
func Unmarshal(data []byte) (*VAA, error) {
	if len(data) < MinVAALength {
		return nil, fmt.Errorf("%w: VAA is too short", wireio.ErrShortRead)
	}
	if data[0] != SupportedVAAVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[0])
	}
	v := &VAA{}
	if err := v.Read(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return v, nil
}

// HexDigest returns the hex-encoded signing digest.
func (v *VAA) HexDigest() string {
	return hex.EncodeToString(v.SigningDigest().Bytes())
}

// ReadPayload decodes the body payload as the type-prefixed payload T. The
// payload must be consumed exactly.
func ReadPayload[T any, PT wireio.PayloadPtr[T]](b *Body) (*T, error) {
	return wireio.ReadPayloadSlice[T, PT](b.Payload)
}

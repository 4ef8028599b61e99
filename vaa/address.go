package vaa

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

type (
	// Address is a 32-byte universal address, left-padded for chains with
	// shorter native addresses.
	Address [32]byte

	// SignatureData is a 65-byte recoverable secp256k1 signature (r ∥ s ∥ v).
	SignatureData [65]byte

	// Signature is one guardian's signature over a VAA body.
	Signature struct {
		Index     uint8
		Signature SignatureData
	}
)

// SignatureSize is the encoded size of a Signature.
const SignatureSize = 1 + 65

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, a)), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	addr, err := StringToAddress(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Write(w io.Writer) error {
	_, err := w.Write(a[:])
	return err
}

func (a Address) WrittenSize() int { return len(a) }

func (a *Address) Read(r io.Reader) error {
	return wireio.ReadFields(r, (*[32]byte)(a))
}

func (s SignatureData) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, s)), nil
}

func (s SignatureData) String() string {
	return hex.EncodeToString(s[:])
}

func (s Signature) Write(w io.Writer) error {
	return wireio.WriteFields(w, s.Index, [65]byte(s.Signature))
}

func (s Signature) WrittenSize() int { return SignatureSize }

func (s *Signature) Read(r io.Reader) error {
	return wireio.ReadFields(r, &s.Index, (*[65]byte)(&s.Signature))
}

// StringToAddress converts a hex string, optionally 0x-prefixed and up to
// 32 bytes long, into a left-padded Address.
func StringToAddress(value string) (Address, error) {
	var address Address
	if len(value) < 2 {
		return address, fmt.Errorf("value must be at least 1 byte")
	}
	res, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return address, err
	}
	return BytesToAddress(res)
}

func BytesToAddress(b []byte) (Address, error) {
	var address Address
	if len(b) > 32 {
		return address, fmt.Errorf("value must be no more than 32 bytes")
	}
	copy(address[32-len(b):], b)
	return address, nil
}

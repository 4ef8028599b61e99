// Package tokenbridge implements the token bridge transfer payloads and
// governance actions.
package tokenbridge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const (
	PayloadTransfer            uint8 = 1
	PayloadTransferWithMessage uint8 = 3

	// NormalizedDecimals is the precision of amounts on the wire.
	NormalizedDecimals = 8
)

var ErrUnknownPayload = fmt.Errorf("invalid token bridge payload: %w", wireio.ErrInvalidPayloadType)

// NormalizeAmount truncates an amount with the given native decimals to the
// 8-decimal wire precision.
func NormalizeAmount(amount *uint256.Int, decimals uint8) *uint256.Int {
	if decimals <= NormalizedDecimals {
		return new(uint256.Int).Set(amount)
	}
	return new(uint256.Int).Div(amount, pow10(decimals-NormalizedDecimals))
}

// DenormalizeAmount scales a wire amount back to native decimals.
func DenormalizeAmount(amount *uint256.Int, decimals uint8) *uint256.Int {
	if decimals <= NormalizedDecimals {
		return new(uint256.Int).Set(amount)
	}
	return new(uint256.Int).Mul(amount, pow10(decimals-NormalizedDecimals))
}

func pow10(n uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}

// Payload is either a *Transfer or a *TransferWithMessage.
type Payload interface {
	wireio.TypePrefixedPayload
	Amount() *uint256.Int
}

var payloadTypes = map[uint8]func() Payload{
	PayloadTransfer:            func() Payload { return new(Transfer) },
	PayloadTransferWithMessage: func() Payload { return new(TransferWithMessage) },
}

// IsTransfer reports whether payload starts with a transfer type byte. It
// assumes the caller has checked the emitter is a token bridge.
func IsTransfer(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	_, ok := payloadTypes[payload[0]]
	return ok
}

// Decode dispatches on the leading type byte. The whole buffer must be consumed.
func Decode(buf []byte) (Payload, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty token bridge payload", wireio.ErrShortRead)
	}
	newPayload, ok := payloadTypes[buf[0]]
	if !ok {
		return nil, fmt.Errorf("%w: type %d", ErrUnknownPayload, buf[0])
	}
	p := newPayload()
	r := bytes.NewReader(buf[1:])
	if err := p.Read(r); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", wireio.ErrInvalidPayloadLength, r.Len())
	}
	return p, nil
}

// Transfer moves tokens to Recipient with an optional relayer Fee.
type Transfer struct {
	NormalizedAmount *uint256.Int
	TokenAddress     vaa.Address
	TokenChain       vaa.ChainID
	Recipient        vaa.Address
	RecipientChain   vaa.ChainID
	Fee              *uint256.Int
}

func (Transfer) PayloadType() []byte    { return []byte{PayloadTransfer} }
func (t Transfer) Amount() *uint256.Int { return t.NormalizedAmount }
func (Transfer) WrittenSize() int       { return 32 + 32 + 2 + 32 + 2 + 32 }

func (t Transfer) Write(w io.Writer) error {
	if err := wireio.WriteU256(w, t.NormalizedAmount); err != nil {
		return err
	}
	if err := wireio.WriteFields(w, [32]byte(t.TokenAddress), t.TokenChain, [32]byte(t.Recipient), t.RecipientChain); err != nil {
		return err
	}
	return wireio.WriteU256(w, t.Fee)
}

func (t *Transfer) Read(r io.Reader) (err error) {
	if t.NormalizedAmount, err = wireio.ReadU256(r); err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	if err = wireio.ReadFields(r, (*[32]byte)(&t.TokenAddress), &t.TokenChain, (*[32]byte)(&t.Recipient), &t.RecipientChain); err != nil {
		return fmt.Errorf("failed to read transfer: %w", err)
	}
	if t.Fee, err = wireio.ReadU256(r); err != nil {
		return fmt.Errorf("failed to read fee: %w", err)
	}
	return nil
}

// TransferWithMessage moves tokens to the Redeemer contract together with an
// arbitrary Payload. Payload runs to the end of the encoding.
type TransferWithMessage struct {
	NormalizedAmount *uint256.Int
	TokenAddress     vaa.Address
	TokenChain       vaa.ChainID
	Redeemer         vaa.Address
	RedeemerChain    vaa.ChainID
	Sender           vaa.Address
	Payload          []byte
}

func (TransferWithMessage) PayloadType() []byte    { return []byte{PayloadTransferWithMessage} }
func (t TransferWithMessage) Amount() *uint256.Int { return t.NormalizedAmount }

func (t TransferWithMessage) WrittenSize() int {
	return 32 + 32 + 2 + 32 + 2 + 32 + len(t.Payload)
}

func (t TransferWithMessage) Write(w io.Writer) error {
	if err := wireio.WriteU256(w, t.NormalizedAmount); err != nil {
		return err
	}
	if err := wireio.WriteFields(w, [32]byte(t.TokenAddress), t.TokenChain, [32]byte(t.Redeemer), t.RedeemerChain, [32]byte(t.Sender)); err != nil {
		return err
	}
	_, err := w.Write(t.Payload)
	return err
}

func (t *TransferWithMessage) Read(r io.Reader) (err error) {
	if t.NormalizedAmount, err = wireio.ReadU256(r); err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	if err = wireio.ReadFields(r, (*[32]byte)(&t.TokenAddress), &t.TokenChain, (*[32]byte)(&t.Redeemer), &t.RedeemerChain, (*[32]byte)(&t.Sender)); err != nil {
		return fmt.Errorf("failed to read transfer: %w", err)
	}
	if t.Payload, err = io.ReadAll(r); err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	return nil
}

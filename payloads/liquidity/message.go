// Package liquidity implements the liquidity layer payloads used by fast
// transfers: CCTP deposits, market orders and fills.
//
// There are two tag namespaces. Message covers payloads carried directly in a
// VAA body. DepositMessage covers payloads nested inside a CctpDeposit, so
// tag 1 means CctpDeposit at the top level and Fill inside a deposit.
package liquidity

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const (
	TypeCctpDeposit     uint8 = 1
	TypeFastMarketOrder uint8 = 11
	TypeFastFill        uint8 = 12

	TypeFill              uint8 = 1
	TypeSlowOrderResponse uint8 = 2
)

var (
	ErrUnknownMessage        = fmt.Errorf("unknown liquidity layer message: %w", wireio.ErrInvalidPayloadType)
	ErrUnknownDepositMessage = fmt.Errorf("unknown deposit message: %w", wireio.ErrInvalidPayloadType)
)

// Message is a top-level liquidity layer payload.
type Message interface {
	wireio.TypePrefixedPayload
	liquidityMessage()
}

// DepositMessage is a payload carried inside CctpDeposit.Payload.
type DepositMessage interface {
	wireio.TypePrefixedPayload
	depositMessage()
}

var messages = map[uint8]func() Message{
	TypeCctpDeposit:     func() Message { return new(CctpDeposit) },
	TypeFastMarketOrder: func() Message { return new(FastMarketOrder) },
	TypeFastFill:        func() Message { return new(FastFill) },
}

var depositMessages = map[uint8]func() DepositMessage{
	TypeFill:              func() DepositMessage { return new(Fill) },
	TypeSlowOrderResponse: func() DepositMessage { return new(SlowOrderResponse) },
}

func decode[T wireio.TypePrefixedPayload](buf []byte, table map[uint8]func() T, unknown error) (T, error) {
	var zero T
	if len(buf) == 0 {
		return zero, fmt.Errorf("%w: empty payload", wireio.ErrShortRead)
	}
	newMessage, ok := table[buf[0]]
	if !ok {
		return zero, fmt.Errorf("%w: type %d", unknown, buf[0])
	}
	m := newMessage()
	r := bytes.NewReader(buf[1:])
	if err := m.Read(r); err != nil {
		return zero, err
	}
	if r.Len() != 0 {
		return zero, fmt.Errorf("%w: %d trailing bytes", wireio.ErrInvalidPayloadLength, r.Len())
	}
	return m, nil
}

// Decode dispatches a top-level liquidity layer payload on its type byte.
func Decode(buf []byte) (Message, error) {
	return decode(buf, messages, ErrUnknownMessage)
}

// DecodeDeposit dispatches a deposit payload on its type byte.
func DecodeDeposit(buf []byte) (DepositMessage, error) {
	return decode(buf, depositMessages, ErrUnknownDepositMessage)
}

// FromBody decodes the liquidity layer payload of a VAA body.
func FromBody(b *vaa.Body) (Message, error) {
	return Decode(b.Payload)
}

// writeMessage writes a u16-length-prefixed trailing message.
func writeMessage(w io.Writer, msg []byte) error {
	return wireio.WriteBytes[uint16](w, msg)
}

func readMessage(r io.Reader) ([]byte, error) {
	msg, err := wireio.ReadBytes[uint16](r)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	return msg, nil
}

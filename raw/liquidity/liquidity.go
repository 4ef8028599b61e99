// Package liquidity provides allocation-free views over liquidity layer
// payloads.
package liquidity

import (
	"encoding/binary"
	"fmt"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/raw"
)

const (
	TypeDeposit         uint8 = 1
	TypeFastMarketOrder uint8 = 11

	DepositMinLen         = 146
	FastMarketOrderMinLen = 136
)

// Message is a parsed top-level liquidity layer payload: either a Deposit or
// a FastMarketOrder. Exactly one of the accessors reports true.
type Message struct {
	span            []byte
	deposit         Deposit
	fastMarketOrder FastMarketOrder
	kind            uint8
}

// Parse validates span (type byte included) and returns a view over it.
func Parse(span []byte) (Message, error) {
	if len(span) == 0 {
		return Message{}, raw.TooShort("liquidity layer message", 1, 0)
	}
	m := Message{span: span, kind: span[0]}
	var err error
	switch span[0] {
	case TypeDeposit:
		m.deposit, err = ParseDeposit(span[1:])
	case TypeFastMarketOrder:
		m.fastMarketOrder, err = ParseFastMarketOrder(span[1:])
	default:
		return Message{}, fmt.Errorf("%w: liquidity layer message type %d", raw.ErrUnknownType, span[0])
	}
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

// FromPayload parses a raw VAA payload.
func FromPayload(p raw.Payload) (Message, error) {
	return Parse(p)
}

func (m Message) Span() []byte { return m.span }

func (m Message) Deposit() (Deposit, bool) {
	return m.deposit, m.kind == TypeDeposit
}

func (m Message) FastMarketOrder() (FastMarketOrder, bool) {
	return m.fastMarketOrder, m.kind == TypeFastMarketOrder
}

// checkMessageLen verifies the u16 length at span[off:off+2] covers exactly
// the bytes after it.
func checkMessageLen(view string, span []byte, off int) error {
	declared := int(binary.BigEndian.Uint16(span[off : off+2]))
	if actual := len(span) - off - 2; declared != actual {
		return fmt.Errorf("%w: %s declares %d bytes, has %d", raw.ErrLengthMismatch, view, declared, actual)
	}
	return nil
}

// FastMarketOrder is a view over a fast market order without its type byte.
type FastMarketOrder []byte

func ParseFastMarketOrder(span []byte) (FastMarketOrder, error) {
	if len(span) < FastMarketOrderMinLen {
		return nil, raw.TooShort("FastMarketOrder", FastMarketOrderMinLen, len(span))
	}
	if err := checkMessageLen("FastMarketOrder", span, 134); err != nil {
		return nil, err
	}
	return FastMarketOrder(span), nil
}

func (o FastMarketOrder) AmountIn() uint64             { return binary.BigEndian.Uint64(o[0:8]) }
func (o FastMarketOrder) MinAmountOut() uint64         { return binary.BigEndian.Uint64(o[8:16]) }
func (o FastMarketOrder) TargetChain() uint16          { return binary.BigEndian.Uint16(o[16:18]) }
func (o FastMarketOrder) Redeemer() [32]byte           { return [32]byte(o[18:50]) }
func (o FastMarketOrder) Sender() [32]byte             { return [32]byte(o[50:82]) }
func (o FastMarketOrder) RefundAddress() [32]byte      { return [32]byte(o[82:114]) }
func (o FastMarketOrder) MaxFee() uint64               { return binary.BigEndian.Uint64(o[114:122]) }
func (o FastMarketOrder) InitAuctionFee() uint64       { return binary.BigEndian.Uint64(o[122:130]) }
func (o FastMarketOrder) Deadline() uint32             { return binary.BigEndian.Uint32(o[130:134]) }
func (o FastMarketOrder) RedeemerMessageLen() uint16   { return binary.BigEndian.Uint16(o[134:136]) }
func (o FastMarketOrder) RedeemerMessage() raw.Payload { return raw.Payload(o[136:]) }

// Deposit is a view over a CCTP deposit without its type byte.
type Deposit []byte

func ParseDeposit(span []byte) (Deposit, error) {
	if len(span) < DepositMinLen {
		return nil, raw.TooShort("Deposit", DepositMinLen, len(span))
	}
	if err := checkMessageLen("Deposit", span, 144); err != nil {
		return nil, err
	}
	return Deposit(span), nil
}

func (d Deposit) TokenAddress() [32]byte        { return [32]byte(d[0:32]) }
func (d Deposit) Amount() [32]byte              { return [32]byte(d[32:64]) }
func (d Deposit) SourceCctpDomain() uint32      { return binary.BigEndian.Uint32(d[64:68]) }
func (d Deposit) DestinationCctpDomain() uint32 { return binary.BigEndian.Uint32(d[68:72]) }
func (d Deposit) CctpNonce() uint64             { return binary.BigEndian.Uint64(d[72:80]) }
func (d Deposit) BurnSource() [32]byte          { return [32]byte(d[80:112]) }
func (d Deposit) MintRecipient() [32]byte       { return [32]byte(d[112:144]) }
func (d Deposit) PayloadLen() uint16            { return binary.BigEndian.Uint16(d[144:146]) }
func (d Deposit) Payload() raw.Payload          { return raw.Payload(d[146:]) }

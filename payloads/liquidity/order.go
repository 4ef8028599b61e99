package liquidity

import (
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

// FastMarketOrderFixedSize is the encoded size of a FastMarketOrder without
// its type tag and redeemer message bytes, length prefix included.
const FastMarketOrderFixedSize = 8 + 8 + 2 + 32 + 32 + 32 + 8 + 8 + 4 + 2

// FastMarketOrder requests a fast transfer of AmountIn to Redeemer on TargetChain.
type FastMarketOrder struct {
	AmountIn        uint64
	MinAmountOut    uint64
	TargetChain     vaa.ChainID
	Redeemer        vaa.Address
	Sender          vaa.Address
	RefundAddress   vaa.Address
	MaxFee          uint64
	InitAuctionFee  uint64
	Deadline        uint32
	RedeemerMessage []byte
}

func (FastMarketOrder) liquidityMessage()   {}
func (FastMarketOrder) PayloadType() []byte { return []byte{TypeFastMarketOrder} }

func (o FastMarketOrder) WrittenSize() int {
	return FastMarketOrderFixedSize + len(o.RedeemerMessage)
}

func (o FastMarketOrder) Write(w io.Writer) error {
	err := wireio.WriteFields(w,
		o.AmountIn,
		o.MinAmountOut,
		o.TargetChain,
		[32]byte(o.Redeemer),
		[32]byte(o.Sender),
		[32]byte(o.RefundAddress),
		o.MaxFee,
		o.InitAuctionFee,
		o.Deadline,
	)
	if err != nil {
		return err
	}
	return writeMessage(w, o.RedeemerMessage)
}

func (o *FastMarketOrder) Read(r io.Reader) (err error) {
	err = wireio.ReadFields(r,
		&o.AmountIn,
		&o.MinAmountOut,
		&o.TargetChain,
		(*[32]byte)(&o.Redeemer),
		(*[32]byte)(&o.Sender),
		(*[32]byte)(&o.RefundAddress),
		&o.MaxFee,
		&o.InitAuctionFee,
		&o.Deadline,
	)
	if err != nil {
		return fmt.Errorf("failed to read fast market order: %w", err)
	}
	o.RedeemerMessage, err = readMessage(r)
	return err
}

// FastFill is a Fill executed from the fast path for FillAmount.
type FastFill struct {
	FillAmount uint64
	Fill       Fill
}

func (FastFill) liquidityMessage()   {}
func (FastFill) PayloadType() []byte { return []byte{TypeFastFill} }

func (f FastFill) WrittenSize() int {
	return 8 + f.Fill.WrittenSize()
}

func (f FastFill) Write(w io.Writer) error {
	if err := wireio.WriteInt(w, f.FillAmount); err != nil {
		return err
	}
	return f.Fill.Write(w)
}

func (f *FastFill) Read(r io.Reader) (err error) {
	if f.FillAmount, err = wireio.ReadInt[uint64](r); err != nil {
		return fmt.Errorf("failed to read fill amount: %w", err)
	}
	return f.Fill.Read(r)
}

package liquidity

import (
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

// CctpDeposit accompanies a CCTP burn. Payload holds a DepositMessage.
type CctpDeposit struct {
	TokenAddress          vaa.Address
	Amount                *uint256.Int
	SourceCctpDomain      uint32
	DestinationCctpDomain uint32
	CctpNonce             uint64
	BurnSource            vaa.Address
	MintRecipient         vaa.Address
	Payload               []byte
}

func (CctpDeposit) liquidityMessage()   {}
func (CctpDeposit) PayloadType() []byte { return []byte{TypeCctpDeposit} }

func (d CctpDeposit) WrittenSize() int {
	return 32 + wireio.U256Size + 4 + 4 + 8 + 32 + 32 + wireio.BytesSize[uint16](d.Payload)
}

func (d CctpDeposit) Write(w io.Writer) error {
	if err := d.TokenAddress.Write(w); err != nil {
		return err
	}
	if err := wireio.WriteU256(w, d.Amount); err != nil {
		return err
	}
	if err := wireio.WriteFields(w, d.SourceCctpDomain, d.DestinationCctpDomain, d.CctpNonce, [32]byte(d.BurnSource), [32]byte(d.MintRecipient)); err != nil {
		return err
	}
	return writeMessage(w, d.Payload)
}

func (d *CctpDeposit) Read(r io.Reader) (err error) {
	if err = d.TokenAddress.Read(r); err != nil {
		return fmt.Errorf("failed to read token address: %w", err)
	}
	if d.Amount, err = wireio.ReadU256(r); err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	if err = wireio.ReadFields(r, &d.SourceCctpDomain, &d.DestinationCctpDomain, &d.CctpNonce, (*[32]byte)(&d.BurnSource), (*[32]byte)(&d.MintRecipient)); err != nil {
		return fmt.Errorf("failed to read cctp fields: %w", err)
	}
	d.Payload, err = readMessage(r)
	return err
}

// Message decodes the nested deposit payload.
func (d *CctpDeposit) Message() (DepositMessage, error) {
	return DecodeDeposit(d.Payload)
}

// Fill instructs the destination to deliver funds to Redeemer.
type Fill struct {
	SourceChain     vaa.ChainID
	OrderSender     vaa.Address
	Redeemer        vaa.Address
	RedeemerMessage []byte
}

func (Fill) depositMessage()     {}
func (Fill) PayloadType() []byte { return []byte{TypeFill} }

func (f Fill) WrittenSize() int {
	return 2 + 32 + 32 + wireio.BytesSize[uint16](f.RedeemerMessage)
}

func (f Fill) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, f.SourceChain, [32]byte(f.OrderSender), [32]byte(f.Redeemer)); err != nil {
		return err
	}
	return writeMessage(w, f.RedeemerMessage)
}

func (f *Fill) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &f.SourceChain, (*[32]byte)(&f.OrderSender), (*[32]byte)(&f.Redeemer)); err != nil {
		return fmt.Errorf("failed to read fill: %w", err)
	}
	f.RedeemerMessage, err = readMessage(r)
	return err
}

// SlowOrderResponse settles an auctioned order through the slow path.
type SlowOrderResponse struct {
	BaseFee uint64
}

func (SlowOrderResponse) depositMessage()     {}
func (SlowOrderResponse) PayloadType() []byte { return []byte{TypeSlowOrderResponse} }
func (SlowOrderResponse) WrittenSize() int    { return 8 }

func (s SlowOrderResponse) Write(w io.Writer) error {
	return wireio.WriteInt(w, s.BaseFee)
}

func (s *SlowOrderResponse) Read(r io.Reader) (err error) {
	s.BaseFee, err = wireio.ReadInt[uint64](r)
	return err
}

// Package corebridge implements the core bridge governance decrees.
package corebridge

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

// Governance actions of the core bridge. See GovernanceStructs.sol.
const (
	ActionContractUpgrade   uint8 = 1
	ActionGuardianSetUpdate uint8 = 2
	ActionSetMessageFee     uint8 = 3
	ActionTransferFees      uint8 = 4
	ActionRecoverChainID    uint8 = 5
)

var (
	ErrUnknownDecree = fmt.Errorf("invalid core bridge decree: %w", wireio.ErrInvalidPayloadType)
	ErrNonZeroGap    = fmt.Errorf("reserved bytes must be zero: %w", wireio.ErrInvalidData)
	ErrNotGovernance = errors.New("payload was not emitted by the governance emitter")
)

// Decree is one of ContractUpgrade, GuardianSetUpdate, SetMessageFee,
// TransferFees or RecoverChainID. Its type tag is the action byte.
type Decree interface {
	wireio.TypePrefixedPayload
	Action() uint8
}

var decrees = map[uint8]func() Decree{
	ActionContractUpgrade:   func() Decree { return new(ContractUpgrade) },
	ActionGuardianSetUpdate: func() Decree { return new(GuardianSetUpdate) },
	ActionSetMessageFee:     func() Decree { return new(SetMessageFee) },
	ActionTransferFees:      func() Decree { return new(TransferFees) },
	ActionRecoverChainID:    func() Decree { return new(RecoverChainID) },
}

// ReadDecree reads an action byte and decodes the matching decree.
func ReadDecree(r io.Reader) (Decree, error) {
	action, err := wireio.ReadInt[uint8](r)
	if err != nil {
		return nil, err
	}
	newDecree, ok := decrees[action]
	if !ok {
		return nil, fmt.Errorf("%w: action %d", ErrUnknownDecree, action)
	}
	d := newDecree()
	if err := d.Read(r); err != nil {
		return nil, fmt.Errorf("decree %d: %w", action, err)
	}
	return d, nil
}

// DecodeDecree is ReadDecree over a complete buffer.
func DecodeDecree(buf []byte) (Decree, error) {
	r := bytes.NewReader(buf)
	d, err := ReadDecree(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", wireio.ErrInvalidPayloadLength, r.Len())
	}
	return d, nil
}

// ContractUpgrade replaces the core bridge implementation on Chain.
type ContractUpgrade struct {
	Chain          vaa.ChainID
	Implementation vaa.Address
}

func (ContractUpgrade) Action() uint8       { return ActionContractUpgrade }
func (ContractUpgrade) PayloadType() []byte { return []byte{ActionContractUpgrade} }
func (d ContractUpgrade) WrittenSize() int  { return 2 + 32 }
func (d ContractUpgrade) Write(w io.Writer) error {
	return wireio.WriteFields(w, d.Chain, [32]byte(d.Implementation))
}
func (d *ContractUpgrade) Read(r io.Reader) error {
	return wireio.ReadFields(r, &d.Chain, (*[32]byte)(&d.Implementation))
}

// GuardianKey is the 20-byte Ethereum-style address of a guardian.
type GuardianKey [20]byte

func (k GuardianKey) Write(w io.Writer) error {
	_, err := w.Write(k[:])
	return err
}
func (k GuardianKey) WrittenSize() int { return len(k) }
func (k *GuardianKey) Read(r io.Reader) error {
	return wireio.ReadFields(r, (*[20]byte)(k))
}

// GuardianSetUpdate installs Guardians as guardian set NewIndex. Two reserved
// bytes precede the index and must be zero.
type GuardianSetUpdate struct {
	NewIndex  uint32
	Guardians []GuardianKey
}

func (GuardianSetUpdate) Action() uint8       { return ActionGuardianSetUpdate }
func (GuardianSetUpdate) PayloadType() []byte { return []byte{ActionGuardianSetUpdate} }

func (d GuardianSetUpdate) WrittenSize() int {
	return 2 + 4 + wireio.SequenceSize[uint8](d.Guardians)
}

func (d GuardianSetUpdate) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, [2]byte{}, d.NewIndex); err != nil {
		return err
	}
	return wireio.WriteSequence[uint8](w, d.Guardians)
}

func (d *GuardianSetUpdate) Read(r io.Reader) (err error) {
	var gap [2]byte
	if err = wireio.ReadFields(r, &gap); err != nil {
		return err
	}
	if gap != [2]byte{} {
		return fmt.Errorf("%w: %x", ErrNonZeroGap, gap)
	}
	if err = wireio.ReadFields(r, &d.NewIndex); err != nil {
		return err
	}
	d.Guardians, err = wireio.ReadSequence[uint8, GuardianKey](r)
	return err
}

// SetMessageFee sets the fee for publishing a message on Chain.
type SetMessageFee struct {
	Chain vaa.ChainID
	Fee   *uint256.Int
}

func (SetMessageFee) Action() uint8       { return ActionSetMessageFee }
func (SetMessageFee) PayloadType() []byte { return []byte{ActionSetMessageFee} }
func (d SetMessageFee) WrittenSize() int  { return 2 + wireio.U256Size }

func (d SetMessageFee) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, d.Chain); err != nil {
		return err
	}
	return wireio.WriteU256(w, d.Fee)
}

func (d *SetMessageFee) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &d.Chain); err != nil {
		return err
	}
	d.Fee, err = wireio.ReadU256(r)
	return err
}

// TransferFees moves Amount of collected fees on Chain to Recipient.
type TransferFees struct {
	Chain     vaa.ChainID
	Amount    *uint256.Int
	Recipient vaa.Address
}

func (TransferFees) Action() uint8       { return ActionTransferFees }
func (TransferFees) PayloadType() []byte { return []byte{ActionTransferFees} }
func (d TransferFees) WrittenSize() int  { return 2 + wireio.U256Size + 32 }

func (d TransferFees) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, d.Chain); err != nil {
		return err
	}
	if err := wireio.WriteU256(w, d.Amount); err != nil {
		return err
	}
	return d.Recipient.Write(w)
}

func (d *TransferFees) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &d.Chain); err != nil {
		return err
	}
	if d.Amount, err = wireio.ReadU256(r); err != nil {
		return err
	}
	return d.Recipient.Read(r)
}

// RecoverChainID reassigns the wormhole chain id of the EVM chain EVMChainID
// after a fork, from RecoveredChain to NewChain.
type RecoverChainID struct {
	RecoveredChain vaa.ChainID
	EVMChainID     *uint256.Int
	NewChain       vaa.ChainID
}

func (RecoverChainID) Action() uint8       { return ActionRecoverChainID }
func (RecoverChainID) PayloadType() []byte { return []byte{ActionRecoverChainID} }
func (d RecoverChainID) WrittenSize() int  { return 2 + wireio.U256Size + 2 }

func (d RecoverChainID) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, d.RecoveredChain); err != nil {
		return err
	}
	if err := wireio.WriteU256(w, d.EVMChainID); err != nil {
		return err
	}
	return wireio.WriteFields(w, d.NewChain)
}

func (d *RecoverChainID) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &d.RecoveredChain); err != nil {
		return err
	}
	if d.EVMChainID, err = wireio.ReadU256(r); err != nil {
		return err
	}
	return wireio.ReadFields(r, &d.NewChain)
}

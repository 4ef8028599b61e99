package tokenbridge

import (
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const (
	ActionRegisterChain   uint8 = 1
	ActionUpgradeContract uint8 = 2
)

var (
	ErrUnknownAction = fmt.Errorf("invalid token bridge governance action: %w", wireio.ErrInvalidPayloadType)
	ErrNonZeroGap    = fmt.Errorf("reserved bytes must be zero: %w", wireio.ErrInvalidData)
)

// Action is a token bridge governance action.
type Action interface {
	wireio.TypePrefixedPayload
	Action() uint8
}

var actions = map[uint8]func() Action{
	ActionRegisterChain:   func() Action { return new(RegisterChain) },
	ActionUpgradeContract: func() Action { return new(UpgradeContract) },
}

// RegisterChain registers the token bridge emitter of ForeignChain. The
// governance chain field is unused and must be zero.
type RegisterChain struct {
	ForeignChain   vaa.ChainID
	ForeignEmitter vaa.Address
}

func (RegisterChain) Action() uint8       { return ActionRegisterChain }
func (RegisterChain) PayloadType() []byte { return []byte{ActionRegisterChain} }
func (RegisterChain) WrittenSize() int    { return 2 + 2 + 32 }

func (a RegisterChain) Write(w io.Writer) error {
	return wireio.WriteFields(w, [2]byte{}, a.ForeignChain, [32]byte(a.ForeignEmitter))
}

func (a *RegisterChain) Read(r io.Reader) error {
	var gap [2]byte
	if err := wireio.ReadFields(r, &gap); err != nil {
		return err
	}
	if gap != [2]byte{} {
		return fmt.Errorf("%w: %x", ErrNonZeroGap, gap)
	}
	return wireio.ReadFields(r, &a.ForeignChain, (*[32]byte)(&a.ForeignEmitter))
}

// UpgradeContract replaces the token bridge implementation on TargetChain.
type UpgradeContract struct {
	TargetChain vaa.ChainID
	NewContract vaa.Address
}

func (UpgradeContract) Action() uint8       { return ActionUpgradeContract }
func (UpgradeContract) PayloadType() []byte { return []byte{ActionUpgradeContract} }
func (UpgradeContract) WrittenSize() int    { return 2 + 32 }

func (a UpgradeContract) Write(w io.Writer) error {
	return wireio.WriteFields(w, a.TargetChain, [32]byte(a.NewContract))
}

func (a *UpgradeContract) Read(r io.Reader) error {
	return wireio.ReadFields(r, &a.TargetChain, (*[32]byte)(&a.NewContract))
}

// Governance is a token bridge governance payload: the TokenBridge module
// identifier followed by a tagged action.
type Governance struct {
	Action Action
}

func (Governance) PayloadType() []byte {
	m := vaa.TokenBridgeModule
	return m[:]
}

func (g Governance) Write(w io.Writer) error {
	if g.Action == nil {
		return fmt.Errorf("%w: governance payload without action", wireio.ErrInvalidData)
	}
	return wireio.WritePayload(w, g.Action)
}

func (g Governance) WrittenSize() int {
	if g.Action == nil {
		return 0
	}
	return wireio.PayloadWrittenSize(g.Action)
}

func (g *Governance) Read(r io.Reader) error {
	tag, err := wireio.ReadInt[uint8](r)
	if err != nil {
		return err
	}
	newAction, ok := actions[tag]
	if !ok {
		return fmt.Errorf("%w: action %d", ErrUnknownAction, tag)
	}
	a := newAction()
	if err := a.Read(r); err != nil {
		return err
	}
	g.Action = a
	return nil
}

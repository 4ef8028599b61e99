package corebridge

import (
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

// Governance is a core bridge governance payload: the Core module
// identifier followed by a tagged decree.
type Governance struct {
	Decree Decree
}

func (Governance) PayloadType() []byte {
	m := vaa.CoreModule
	return m[:]
}

func (g Governance) Write(w io.Writer) error {
	if g.Decree == nil {
		return fmt.Errorf("%w: governance payload without decree", wireio.ErrInvalidData)
	}
	return wireio.WritePayload(w, g.Decree)
}

func (g Governance) WrittenSize() int {
	if g.Decree == nil {
		return 0
	}
	return wireio.PayloadWrittenSize(g.Decree)
}

func (g *Governance) Read(r io.Reader) (err error) {
	g.Decree, err = ReadDecree(r)
	return err
}

// GovernanceFromBody decodes the decree carried by a governance VAA body.
// Bodies from any emitter other than the governance emitter are rejected.
func GovernanceFromBody(b *vaa.Body) (Decree, error) {
	if !b.IsGovernance() {
		return nil, fmt.Errorf("%w: %s", ErrNotGovernance, b.MessageID())
	}
	g, err := vaa.ReadPayload[Governance](b)
	if err != nil {
		return nil, err
	}
	return g.Decree, nil
}

// NewGovernanceVAA wraps d in an unsigned governance VAA.
func NewGovernanceVAA(d Decree, timestamp uint32, nonce uint32, sequence uint64, guardianSetIndex uint32) (*vaa.VAA, error) {
	payload, err := wireio.ToPayloadBytes(Governance{Decree: d})
	if err != nil {
		return nil, err
	}
	return vaa.CreateGovernanceVAA(timestamp, nonce, sequence, guardianSetIndex, payload), nil
}

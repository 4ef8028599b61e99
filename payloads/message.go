// Package payloads holds the application payloads carried in VAA bodies.
// Core governance, token bridge and liquidity layer payloads live in the
// subpackages.
package payloads

import (
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const MessagePayloadType = 0xbb

// Message is a generic cross-chain message addressed to a contract on
// TargetChain. Target, Sender and Body are each prefixed by a u16 length.
type Message struct {
	Version     uint8
	MessageType uint8
	Index       uint64
	TargetChain vaa.ChainID
	Target      []byte
	Sender      []byte
	Body        []byte
}

func (m Message) PayloadType() []byte { return []byte{MessagePayloadType} }

func (m Message) Write(w io.Writer) error {
	if err := wireio.WriteFields(w, m.Version, m.MessageType, m.Index, m.TargetChain); err != nil {
		return err
	}
	for _, field := range [][]byte{m.Target, m.Sender, m.Body} {
		if err := wireio.WriteBytes[uint16](w, field); err != nil {
			return err
		}
	}
	return nil
}

func (m Message) WrittenSize() int {
	return 1 + 1 + 8 + 2 +
		wireio.BytesSize[uint16](m.Target) +
		wireio.BytesSize[uint16](m.Sender) +
		wireio.BytesSize[uint16](m.Body)
}

func (m *Message) Read(r io.Reader) (err error) {
	if err = wireio.ReadFields(r, &m.Version, &m.MessageType, &m.Index, &m.TargetChain); err != nil {
		return fmt.Errorf("message header: %w", err)
	}
	if m.Target, err = wireio.ReadBytes[uint16](r); err != nil {
		return fmt.Errorf("message target: %w", err)
	}
	if m.Sender, err = wireio.ReadBytes[uint16](r); err != nil {
		return fmt.Errorf("message sender: %w", err)
	}
	if m.Body, err = wireio.ReadBytes[uint16](r); err != nil {
		return fmt.Errorf("message body: %w", err)
	}
	return nil
}

// MessageFromBody decodes a tagged Message from the body payload.
func MessageFromBody(b *vaa.Body) (*Message, error) {
	return vaa.ReadPayload[Message](b)
}

package wireio

import (
	"bytes"
	"fmt"
	"io"
)

// TypedWriteable is the encoding half of a TypePrefixedPayload.
type TypedWriteable interface {
	Writeable
	PayloadType() []byte
}

// TypePrefixedPayload is a payload framed by a constant type tag.
type TypePrefixedPayload interface {
	TypedWriteable
	Readable
}

// PayloadPtr constrains PT to a pointer to T that is a TypePrefixedPayload.
type PayloadPtr[T any] interface {
	*T
	TypePrefixedPayload
}

// WritePayload writes the type tag followed by the payload body.
func WritePayload(w io.Writer, p TypedWriteable) error {
	if _, err := w.Write(p.PayloadType()); err != nil {
		return err
	}
	return p.Write(w)
}

func PayloadWrittenSize(p TypedWriteable) int {
	return len(p.PayloadType()) + p.WrittenSize()
}

// ToPayloadBytes encodes the tag and body of p.
func ToPayloadBytes(p TypedWriteable) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, PayloadWrittenSize(p)))
	if err := WritePayload(buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CheckPayloadType consumes len(tag) bytes and compares them to tag.
func CheckPayloadType(r io.Reader, tag []byte) error {
	got, err := ReadExact(r, len(tag))
	if err != nil {
		return err
	}
	if !bytes.Equal(got, tag) {
		return fmt.Errorf("%w: got %x, want %x", ErrInvalidPayloadType, got, tag)
	}
	return nil
}

// ReadPayload checks the type tag of T and decodes its body.
func ReadPayload[T any, PT PayloadPtr[T]](r io.Reader) (*T, error) {
	v := new(T)
	if err := CheckPayloadType(r, PT(v).PayloadType()); err != nil {
		return nil, err
	}
	if err := PT(v).Read(r); err != nil {
		return nil, err
	}
	return v, nil
}

// ReadPayloadSlice is ReadPayload over a complete buffer. Bytes left over
// after the body fail with ErrInvalidPayloadLength.
func ReadPayloadSlice[T any, PT PayloadPtr[T]](buf []byte) (*T, error) {
	r := bytes.NewReader(buf)
	v, err := ReadPayload[T, PT](r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidPayloadLength, r.Len())
	}
	return v, nil
}

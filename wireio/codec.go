// Package wireio implements the big-endian binary codec shared by every
// wormhole wire type: VAA headers and bodies, core and app payloads.
package wireio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/holiman/uint256"
)

var (
	ErrShortRead            = errors.New("unexpected end of input")
	ErrInvalidBool          = errors.New("invalid bool")
	ErrInvalidPayloadType   = errors.New("invalid payload type")
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrLengthOverflow       = errors.New("length overflow")
	ErrInvalidData          = errors.New("invalid data")
)

// Writeable is a value that can encode itself. WrittenSize must report
// exactly the number of bytes Write produces.
type Writeable interface {
	Write(w io.Writer) error
	WrittenSize() int
}

// Readable is a value that can decode itself from a stream.
type Readable interface {
	Read(r io.Reader) error
}

type Codec interface {
	Readable
	Writeable
}

// Integer is the set of fixed-width integers with a wire representation.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// shortRead maps the io package's end-of-input errors onto ErrShortRead.
func shortRead(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	}
	return err
}

func SizeOf[T Integer]() int {
	var v T
	return binary.Size(v)
}

func ReadInt[T Integer](r io.Reader) (T, error) {
	var v T
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, shortRead(err)
	}
	return v, nil
}

func WriteInt[T Integer](w io.Writer, v T) error {
	return binary.Write(w, binary.BigEndian, v)
}

// ReadFields decodes each pointer in order using its fixed-size big-endian
// layout. Pointers to integers, byte arrays and arrays of integers are
// supported. Booleans must go through ReadBool.
func ReadFields(r io.Reader, ptrs ...any) error {
	for _, p := range ptrs {
		if _, ok := p.(*bool); ok {
			return fmt.Errorf("%w: bool field requires ReadBool", ErrInvalidData)
		}
		if err := binary.Read(r, binary.BigEndian, p); err != nil {
			return shortRead(err)
		}
	}
	return nil
}

// WriteFields encodes each value in order using its fixed-size big-endian layout.
func WriteFields(w io.Writer, values ...any) error {
	for _, v := range values {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldsSize is the encoded size of values as written by WriteFields.
func FieldsSize(values ...any) int {
	n := 0
	for _, v := range values {
		n += binary.Size(v)
	}
	return n
}

// ReadExact reads exactly n bytes.
func ReadExact(r io.Reader, n int) ([]byte, error) {
	if err := checkRemaining(r, n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, shortRead(err)
	}
	return buf, nil
}

func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadInt[uint8](r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrInvalidBool, b)
	}
}

func WriteBool(w io.Writer, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return WriteInt(w, b)
}

// U256Size is the encoded size of a 256-bit unsigned integer.
const U256Size = 32

// ReadU256 decodes a 32-byte big-endian unsigned integer.
func ReadU256(r io.Reader) (*uint256.Int, error) {
	var b [U256Size]byte
	if err := ReadFields(r, &b); err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes32(b[:]), nil
}

// WriteU256 encodes v as 32 big-endian bytes. A nil v encodes as zero.
func WriteU256(w io.Writer, v *uint256.Int) error {
	var b [U256Size]byte
	if v != nil {
		b = v.Bytes32()
	}
	_, err := w.Write(b[:])
	return err
}

// ToBytes encodes v into a buffer sized by its WrittenSize.
func ToBytes(v Writeable) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, v.WrittenSize()))
	if err := v.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadSlice decodes v from buf and fails if any bytes remain.
func ReadSlice(buf []byte, v Readable) error {
	r := bytes.NewReader(buf)
	if err := v.Read(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidPayloadLength, r.Len())
	}
	return nil
}

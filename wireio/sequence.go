package wireio

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// MaxPreallocate caps the capacity reserved from a declared element count.
// Larger sequences grow as elements are actually decoded.
const MaxPreallocate = 1024

// LengthType is the set of unsigned integers usable as a length prefix.
type LengthType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ReadablePtr constrains PT to a pointer to T that can decode itself.
type ReadablePtr[T any] interface {
	*T
	Readable
}

func readLength[L LengthType](r io.Reader) (int, error) {
	n, err := ReadInt[L](r)
	if err != nil {
		return 0, err
	}
	if uint64(n) > math.MaxInt {
		return 0, fmt.Errorf("%w: declared length %d", ErrLengthOverflow, uint64(n))
	}
	return int(n), nil
}

func writeLength[L LengthType](w io.Writer, n int) error {
	if uint64(n) > uint64(^L(0)) {
		return fmt.Errorf("%w: %d does not fit in %d-byte prefix", ErrLengthOverflow, n, SizeOf[L]())
	}
	return WriteInt(w, L(n))
}

// checkRemaining rejects a declared length that exceeds what an in-memory
// reader still holds.
func checkRemaining(r io.Reader, n int) error {
	if lr, ok := r.(interface{ Len() int }); ok && n > lr.Len() {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortRead, n, lr.Len())
	}
	return nil
}

// ReadBytes decodes a byte string prefixed by a length of type L.
func ReadBytes[L LengthType](r io.Reader) ([]byte, error) {
	n, err := readLength[L](r)
	if err != nil {
		return nil, err
	}
	if err := checkRemaining(r, n); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(min(n, MaxPreallocate))
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		return nil, shortRead(err)
	}
	if n == 0 {
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}

func WriteBytes[L LengthType](w io.Writer, b []byte) error {
	if err := writeLength[L](w, len(b)); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func BytesSize[L LengthType](b []byte) int {
	return SizeOf[L]() + len(b)
}

// ReadSequence decodes a count of type L followed by that many elements.
// Every element occupies at least one byte on the wire.
func ReadSequence[L LengthType, T any, PT ReadablePtr[T]](r io.Reader) ([]T, error) {
	n, err := readLength[L](r)
	if err != nil {
		return nil, err
	}
	if err := checkRemaining(r, n); err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, MaxPreallocate))
	for i := 0; i < n; i++ {
		var v T
		if err := PT(&v).Read(r); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteSequence encodes len(items) as L followed by each element.
func WriteSequence[L LengthType, T Writeable](w io.Writer, items []T) error {
	if err := writeLength[L](w, len(items)); err != nil {
		return err
	}
	return WriteArray(w, items)
}

func SequenceSize[L LengthType, T Writeable](items []T) int {
	return SizeOf[L]() + ArraySize(items)
}

// ReadArray decodes exactly n elements with no count prefix.
func ReadArray[T any, PT ReadablePtr[T]](r io.Reader, n int) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		if err := PT(&out[i]).Read(r); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return out, nil
}

func WriteArray[T Writeable](w io.Writer, items []T) error {
	for _, v := range items {
		if err := v.Write(w); err != nil {
			return err
		}
	}
	return nil
}

func ArraySize[T Writeable](items []T) int {
	n := 0
	for _, v := range items {
		n += v.WrittenSize()
	}
	return n
}

// ReadNullable decodes a one-byte presence flag followed by T when set.
func ReadNullable[T any, PT ReadablePtr[T]](r io.Reader) (*T, error) {
	present, err := ReadBool(r)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v := new(T)
	if err := PT(v).Read(r); err != nil {
		return nil, err
	}
	return v, nil
}

func WriteNullable[T Writeable](w io.Writer, v *T) error {
	if v == nil {
		return WriteBool(w, false)
	}
	if err := WriteBool(w, true); err != nil {
		return err
	}
	return (*v).Write(w)
}

func NullableSize[T Writeable](v *T) int {
	if v == nil {
		return 1
	}
	return 1 + (*v).WrittenSize()
}

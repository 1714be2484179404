// Package serialize implements the canonical fixed-width byte encoding for
// native ABI structures: 32-byte big-endian field elements, 4-byte big-endian
// unsigned integers and single-byte booleans, concatenated in declaration
// order with no length prefixes or type tags.
package serialize

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FrByteLen is the canonical byte width of a single field element.
const FrByteLen = fr.Bytes

// ErrShortBuffer is reported when a read runs past the end of the buffer.
var ErrShortBuffer = errors.New("serialize: buffer too short")

// Writer is an append-only byte cursor.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteFr appends the canonical big-endian encoding of e.
func (w *Writer) WriteFr(e fr.Element) {
	b := e.Bytes()
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// Reader is a consuming byte cursor over a fixed buffer. Every read either
// succeeds completely or reports a decoding error and consumes nothing.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadFr consumes 32 bytes and rejects non-canonical encodings (values at or
// above the field modulus).
func (r *Reader) ReadFr() (fr.Element, error) {
	var e fr.Element
	b, err := r.take(FrByteLen)
	if err != nil {
		return e, err
	}
	if err := e.SetBytesCanonical(b); err != nil {
		r.off -= FrByteLen
		return e, fmt.Errorf("serialize: non-canonical field element at offset %d: %w", r.off, err)
	}
	return e, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadBool consumes one byte, which must be exactly 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.off--
		return false, fmt.Errorf("serialize: invalid boolean byte 0x%02x at offset %d", b[0], r.off)
	}
}

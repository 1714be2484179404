package pedersen

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"CircuitABI/modules/generators"
)

// Binding exposes the engine through the cross-boundary buffer conventions:
// single field elements travel as 32-byte big-endian buffers, vectors as a
// 4-byte big-endian element count followed by the packed elements, hash
// indices as 4-byte big-endian unsigned integers. Results are written into
// a caller-provided 32-byte output buffer; a nil error means the output
// buffer holds the result, otherwise its contents are undefined.
type Binding struct {
	engine *Engine
}

func NewBinding(engine *Engine) *Binding {
	return &Binding{engine: engine}
}

// Init builds the generator table. Safe to call more than once; the heavy
// derivation runs only the first time.
func (b *Binding) Init() error {
	return b.engine.Init()
}

// CompressFields writes the 2-to-1 compression of left and right into out.
func (b *Binding) CompressFields(out, left, right []byte) error {
	l, err := decodeFr(left)
	if err != nil {
		return err
	}
	r, err := decodeFr(right)
	if err != nil {
		return err
	}
	res, err := b.engine.CompressFields(l, r)
	if err != nil {
		return err
	}
	return writeResult(out, res)
}

// Compress writes the N-to-1 compression of a length-prefixed input vector
// into out, under the default domain.
func (b *Binding) Compress(out, inputs []byte) error {
	elems, err := decodeFrVector(inputs)
	if err != nil {
		return err
	}
	res, err := b.engine.Compress(elems)
	if err != nil {
		return err
	}
	return writeResult(out, res)
}

// CompressWithHashIndex writes the N-to-1 compression of a length-prefixed
// input vector under an explicit domain-separation index into out.
func (b *Binding) CompressWithHashIndex(out, inputs, hashIndex []byte) error {
	elems, err := decodeFrVector(inputs)
	if err != nil {
		return err
	}
	if len(hashIndex) != 4 {
		return fmt.Errorf("pedersen: hash index buffer must be 4 bytes, got %d", len(hashIndex))
	}
	idx := generators.Index(binary.BigEndian.Uint32(hashIndex))
	res, err := b.engine.CompressWithIndex(elems, idx)
	if err != nil {
		return err
	}
	return writeResult(out, res)
}

// Commit writes the Pedersen commitment of a length-prefixed input vector
// into out.
func (b *Binding) Commit(out, inputs []byte) error {
	elems, err := decodeFrVector(inputs)
	if err != nil {
		return err
	}
	res, err := b.engine.Commit(elems)
	if err != nil {
		return err
	}
	return writeResult(out, res)
}

// BufferToField reduces an arbitrary byte string into a field element and
// writes it into out.
func (b *Binding) BufferToField(out, data []byte) error {
	res, err := b.engine.BufferToField(data)
	if err != nil {
		return err
	}
	return writeResult(out, res)
}

// EncodeFrVector packs elems into the length-prefixed vector layout.
func EncodeFrVector(elems []fr.Element) []byte {
	buf := binary.BigEndian.AppendUint32(nil, uint32(len(elems)))
	for i := range elems {
		b := elems[i].Bytes()
		buf = append(buf, b[:]...)
	}
	return buf
}

func decodeFr(buf []byte) (fr.Element, error) {
	var e fr.Element
	if len(buf) != fr.Bytes {
		return e, fmt.Errorf("pedersen: field element buffer must be %d bytes, got %d", fr.Bytes, len(buf))
	}
	if err := e.SetBytesCanonical(buf); err != nil {
		return e, fmt.Errorf("pedersen: non-canonical field element: %w", err)
	}
	return e, nil
}

func decodeFrVector(buf []byte) ([]fr.Element, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("pedersen: vector buffer too short for length prefix")
	}
	n := binary.BigEndian.Uint32(buf)
	body := buf[4:]
	// compare in uint64 so a declared count near 2^32 cannot wrap the
	// expected byte length on 32-bit platforms
	if uint64(len(body)) != uint64(n)*fr.Bytes {
		return nil, fmt.Errorf("pedersen: vector buffer declares %d elements but carries %d bytes",
			n, len(body))
	}
	elems := make([]fr.Element, n)
	for i := range elems {
		var err error
		if elems[i], err = decodeFr(body[i*fr.Bytes : (i+1)*fr.Bytes]); err != nil {
			return nil, err
		}
	}
	return elems, nil
}

func writeResult(out []byte, res fr.Element) error {
	if len(out) != fr.Bytes {
		return fmt.Errorf("pedersen: output buffer must be %d bytes, got %d", fr.Bytes, len(out))
	}
	b := res.Bytes()
	copy(out, b[:])
	return nil
}

// Package abis defines the ABI structure family: public-input structures
// generic over their scalar representation, with one authoritative ordered
// field list per structure from which hashing, serialization, conversion
// and public-input marking are all derived, so the orders cannot drift
// apart.
package abis

import (
	"fmt"
	"math"

	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// fieldKind fixes the canonical byte encoding of one ABI field.
type fieldKind uint8

const (
	kindField   fieldKind = iota // 32-byte big-endian field element
	kindUint32                   // 4-byte big-endian unsigned integer
	kindBool                     // single 0/1 byte
	kindAddress                  // 32-byte big-endian field element
)

// field is one entry of a structure's authoritative field list. The pointer
// targets the structure's storage, so the same list drives reads and
// writes.
type field[T any] struct {
	kind fieldKind
	v    *T
}

// writeLayout appends the fixed-width encoding of each field in layout
// order. Values that do not fit their declared kind (a uint32 field holding
// a wider scalar, a boolean holding anything but 0 or 1) are rejected.
func writeLayout(w *serialize.Writer, fields []field[types.Scalar]) error {
	for i, f := range fields {
		switch f.kind {
		case kindUint32:
			if !f.v.IsUint64() || f.v.Uint64() > math.MaxUint32 {
				return fmt.Errorf("abi: field %d does not fit in a uint32", i)
			}
			w.WriteUint32(uint32(f.v.Uint64()))
		case kindBool:
			if !f.v.IsZero() && !f.v.IsOne() {
				return fmt.Errorf("abi: boolean field %d is neither 0 nor 1", i)
			}
			w.WriteBool(f.v.IsOne())
		default:
			w.WriteFr(*f.v)
		}
	}
	return nil
}

// readLayout consumes the fixed-width encoding of each field in layout
// order, filling the structure the layout points into.
func readLayout(r *serialize.Reader, fields []field[types.Scalar]) error {
	for _, f := range fields {
		switch f.kind {
		case kindUint32:
			v, err := r.ReadUint32()
			if err != nil {
				return err
			}
			f.v.SetUint64(uint64(v))
		case kindBool:
			v, err := r.ReadBool()
			if err != nil {
				return err
			}
			if v {
				f.v.SetOne()
			} else {
				f.v.SetZero()
			}
		default:
			v, err := r.ReadFr()
			if err != nil {
				return err
			}
			*f.v = v
		}
	}
	return nil
}

// convertLayout lifts every scalar of a native layout into the matching
// slot of a circuit layout. The shapes are the same field list instantiated
// at the two representations, so a mismatch is impossible for derived
// layouts; the check guards hand-edited ones.
func convertLayout[T any](ctx *types.CircuitContext, src []field[T], dst []field[frontend.Variable]) {
	if len(src) != len(dst) {
		panic("abi: field layouts differ in shape")
	}
	for i := range src {
		*dst[i].v = ctx.Witness(types.AsNative(*src[i].v))
	}
}

// markPublic records every scalar of a circuit layout as a public input, in
// layout order.
func markPublic[T any](ctx *types.CircuitContext, fields []field[T]) {
	for _, f := range fields {
		ctx.SetPublic(types.AsWire(*f.v))
	}
}

// flattenLayout returns the layout's scalars in order, the default hash
// flattening for structures without sub-structure folding.
func flattenLayout[T any](fields []field[T]) []T {
	out := make([]T, len(fields))
	for i := range fields {
		out[i] = *fields[i].v
	}
	return out
}

package abis

import (
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// FunctionSignature identifies a callable function: its verification key
// index and its privacy/constructor flags. Exactly these three fields, in
// this order, participate in equality, hashing and serialization.
type FunctionSignature[T any] struct {
	VKIndex       T // uint32
	IsPrivate     T // boolean
	IsConstructor T // boolean
}

// NewFunctionSignature builds the native form from concrete values.
// The zero value of FunctionSignature[types.Scalar] is the empty signature.
func NewFunctionSignature(vkIndex uint32, isPrivate, isConstructor bool) FunctionSignature[types.Scalar] {
	var s FunctionSignature[types.Scalar]
	s.VKIndex.SetUint64(uint64(vkIndex))
	setBool(&s.IsPrivate, isPrivate)
	setBool(&s.IsConstructor, isConstructor)
	return s
}

func setBool(e *types.Scalar, v bool) {
	if v {
		e.SetOne()
	} else {
		e.SetZero()
	}
}

func (s *FunctionSignature[T]) layout() []field[T] {
	return []field[T]{
		{kindUint32, &s.VKIndex},
		{kindBool, &s.IsPrivate},
		{kindBool, &s.IsConstructor},
	}
}

// Flatten returns the hash-order scalar sequence.
func (s *FunctionSignature[T]) Flatten(types.Representation[T]) ([]T, error) {
	return flattenLayout(s.layout()), nil
}

// Hash compresses the flattened fields under the function-signature domain.
func (s *FunctionSignature[T]) Hash(r types.Representation[T]) (T, error) {
	inputs, _ := s.Flatten(r)
	return r.Compress(inputs, generators.FunctionSignature)
}

// ToCircuitType lifts every field of a native signature to a wire bound to
// its value. Calling it on a structure already in circuit representation is
// a programming defect and panics.
func (s FunctionSignature[T]) ToCircuitType(ctx *types.CircuitContext) FunctionSignature[frontend.Variable] {
	var out FunctionSignature[frontend.Variable]
	convertLayout(ctx, s.layout(), out.layout())
	return out
}

// SetPublic marks every field as a public input, in field order. Valid only
// for the circuit representation.
func (s *FunctionSignature[T]) SetPublic(ctx *types.CircuitContext) {
	markPublic(ctx, s.layout())
}

// WriteFunctionSignature appends the canonical encoding of s.
func WriteFunctionSignature(w *serialize.Writer, s *FunctionSignature[types.Scalar]) error {
	return writeLayout(w, s.layout())
}

// ReadFunctionSignature consumes the canonical encoding of one signature.
func ReadFunctionSignature(r *serialize.Reader) (FunctionSignature[types.Scalar], error) {
	var s FunctionSignature[types.Scalar]
	err := readLayout(r, s.layout())
	return s, err
}

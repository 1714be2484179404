package abis

import (
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// StateRead records one public-state read: the storage slot and the value
// observed there.
type StateRead[T any] struct {
	StorageSlot  T
	CurrentValue T
}

func NewStateRead(storageSlot, currentValue types.Scalar) StateRead[types.Scalar] {
	return StateRead[types.Scalar]{
		StorageSlot:  storageSlot,
		CurrentValue: currentValue,
	}
}

func (s *StateRead[T]) layout() []field[T] {
	return []field[T]{
		{kindField, &s.StorageSlot},
		{kindField, &s.CurrentValue},
	}
}

func (s *StateRead[T]) Flatten(types.Representation[T]) ([]T, error) {
	return flattenLayout(s.layout()), nil
}

func (s *StateRead[T]) Hash(r types.Representation[T]) (T, error) {
	inputs, _ := s.Flatten(r)
	return r.Compress(inputs, generators.StateRead)
}

func (s StateRead[T]) ToCircuitType(ctx *types.CircuitContext) StateRead[frontend.Variable] {
	var out StateRead[frontend.Variable]
	convertLayout(ctx, s.layout(), out.layout())
	return out
}

func (s *StateRead[T]) SetPublic(ctx *types.CircuitContext) {
	markPublic(ctx, s.layout())
}

func WriteStateRead(w *serialize.Writer, s *StateRead[types.Scalar]) error {
	return writeLayout(w, s.layout())
}

func ReadStateRead(r *serialize.Reader) (StateRead[types.Scalar], error) {
	var s StateRead[types.Scalar]
	err := readLayout(r, s.layout())
	return s, err
}

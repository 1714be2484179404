package abis

import (
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// StateTransition records one public-state write: the storage slot, the
// value it held before the call and the value it holds after.
type StateTransition[T any] struct {
	StorageSlot T
	OldValue    T
	NewValue    T
}

func NewStateTransition(storageSlot, oldValue, newValue types.Scalar) StateTransition[types.Scalar] {
	return StateTransition[types.Scalar]{
		StorageSlot: storageSlot,
		OldValue:    oldValue,
		NewValue:    newValue,
	}
}

func (s *StateTransition[T]) layout() []field[T] {
	return []field[T]{
		{kindField, &s.StorageSlot},
		{kindField, &s.OldValue},
		{kindField, &s.NewValue},
	}
}

func (s *StateTransition[T]) Flatten(types.Representation[T]) ([]T, error) {
	return flattenLayout(s.layout()), nil
}

func (s *StateTransition[T]) Hash(r types.Representation[T]) (T, error) {
	inputs, _ := s.Flatten(r)
	return r.Compress(inputs, generators.StateTransition)
}

func (s StateTransition[T]) ToCircuitType(ctx *types.CircuitContext) StateTransition[frontend.Variable] {
	var out StateTransition[frontend.Variable]
	convertLayout(ctx, s.layout(), out.layout())
	return out
}

func (s *StateTransition[T]) SetPublic(ctx *types.CircuitContext) {
	markPublic(ctx, s.layout())
}

func WriteStateTransition(w *serialize.Writer, s *StateTransition[types.Scalar]) error {
	return writeLayout(w, s.layout())
}

func ReadStateTransition(r *serialize.Reader) (StateTransition[types.Scalar], error) {
	var s StateTransition[types.Scalar]
	err := readLayout(r, s.layout())
	return s, err
}

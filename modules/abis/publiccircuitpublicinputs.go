package abis

import (
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// PublicCircuitPublicInputs is the public-input block of a public-circuit
// call: the call context, the custom I/O and event arrays, the state
// transitions and reads performed by the call, the downstream call stacks,
// the private-data tree root the call executed against, and the prover
// address. Every array length is a protocol constant.
type PublicCircuitPublicInputs[T any] struct {
	CallContext CallContext[T]

	CustomInputs  [CustomInputsLength]T
	CustomOutputs [CustomOutputsLength]T

	EmittedEvents [EmittedEventsLength]T

	StateTransitions [StateTransitionsLength]StateTransition[T]
	StateReads       [StateReadsLength]StateRead[T]

	PublicCallStack             [PublicCallStackLength]T
	ContractDeploymentCallStack [ContractDeploymentCallStackLength]T
	PartialL1CallStack          [PartialL1CallStackLength]T

	OldPrivateDataTreeRoot T

	ProverAddress T // address
}

// layout is the authoritative field list: nested structures and arrays are
// inlined in place, in declaration order.
func (p *PublicCircuitPublicInputs[T]) layout() []field[T] {
	fs := p.CallContext.layout()

	for i := range p.CustomInputs {
		fs = append(fs, field[T]{kindField, &p.CustomInputs[i]})
	}
	for i := range p.CustomOutputs {
		fs = append(fs, field[T]{kindField, &p.CustomOutputs[i]})
	}
	for i := range p.EmittedEvents {
		fs = append(fs, field[T]{kindField, &p.EmittedEvents[i]})
	}
	for i := range p.StateTransitions {
		fs = append(fs, p.StateTransitions[i].layout()...)
	}
	for i := range p.StateReads {
		fs = append(fs, p.StateReads[i].layout()...)
	}
	for i := range p.PublicCallStack {
		fs = append(fs, field[T]{kindField, &p.PublicCallStack[i]})
	}
	for i := range p.ContractDeploymentCallStack {
		fs = append(fs, field[T]{kindField, &p.ContractDeploymentCallStack[i]})
	}
	for i := range p.PartialL1CallStack {
		fs = append(fs, field[T]{kindField, &p.PartialL1CallStack[i]})
	}
	fs = append(fs,
		field[T]{kindField, &p.OldPrivateDataTreeRoot},
		field[T]{kindAddress, &p.ProverAddress},
	)
	return fs
}

// Flatten returns the hash-order scalar sequence.
//
// NOTE: the call context is omitted here and hashed within the call stack
// item instead, so fewer compressions are needed to unwrap it in the kernel
// circuit. The prover address is likewise excluded from the hash. Both still
// serialize. Sub-structure arrays contribute their hashes, not their raw
// fields.
func (p *PublicCircuitPublicInputs[T]) Flatten(r types.Representation[T]) ([]T, error) {
	inputs := make([]T, 0, FlattenedLength)

	inputs = append(inputs, p.CustomInputs[:]...)
	inputs = append(inputs, p.CustomOutputs[:]...)
	inputs = append(inputs, p.EmittedEvents[:]...)

	for i := range p.StateTransitions {
		h, err := p.StateTransitions[i].Hash(r)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, h)
	}
	for i := range p.StateReads {
		h, err := p.StateReads[i].Hash(r)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, h)
	}

	inputs = append(inputs, p.PublicCallStack[:]...)
	inputs = append(inputs, p.ContractDeploymentCallStack[:]...)
	inputs = append(inputs, p.PartialL1CallStack[:]...)

	inputs = append(inputs, p.OldPrivateDataTreeRoot)
	return inputs, nil
}

// FlattenedLength is the number of scalars entering the hash.
const FlattenedLength = CustomInputsLength + CustomOutputsLength + EmittedEventsLength +
	StateTransitionsLength + StateReadsLength +
	PublicCallStackLength + ContractDeploymentCallStackLength + PartialL1CallStackLength + 1

func (p *PublicCircuitPublicInputs[T]) Hash(r types.Representation[T]) (T, error) {
	var zero T
	inputs, err := p.Flatten(r)
	if err != nil {
		return zero, err
	}
	return r.Compress(inputs, generators.PublicCircuitPublicInputs)
}

func (p PublicCircuitPublicInputs[T]) ToCircuitType(ctx *types.CircuitContext) PublicCircuitPublicInputs[frontend.Variable] {
	var out PublicCircuitPublicInputs[frontend.Variable]
	convertLayout(ctx, p.layout(), out.layout())
	return out
}

func (p *PublicCircuitPublicInputs[T]) SetPublic(ctx *types.CircuitContext) {
	markPublic(ctx, p.layout())
}

func WritePublicCircuitPublicInputs(w *serialize.Writer, p *PublicCircuitPublicInputs[types.Scalar]) error {
	return writeLayout(w, p.layout())
}

func ReadPublicCircuitPublicInputs(r *serialize.Reader) (PublicCircuitPublicInputs[types.Scalar], error) {
	var p PublicCircuitPublicInputs[types.Scalar]
	err := readLayout(r, p.layout())
	return p, err
}

// Package generators fixes the domain-separation registry shared by every
// ABI structure: one generator index per structure kind, so that hashing
// identical field sequences under two different kinds can never collide.
package generators

import "fmt"

// Index is the domain-separation tag fed into the Pedersen compression
// primitive. The enumeration is part of the external contract: the same
// structure kind must map to the same index on every side of the boundary.
type Index uint32

const (
	// Default is the domain used by compress calls that carry no explicit
	// hash index (compress_fields and the plain vector compress).
	Default Index = iota
	FunctionSignature
	CallContext
	StateTransition
	StateRead
	PublicCircuitPublicInputs
	PrivateCircuitPublicInputs
	CallStackItem
	Commitment
	Nullifier

	// NumIndices bounds the registry; the engine precomputes one generator
	// row per index.
	NumIndices
)

func (i Index) String() string {
	switch i {
	case Default:
		return "default"
	case FunctionSignature:
		return "function_signature"
	case CallContext:
		return "call_context"
	case StateTransition:
		return "state_transition"
	case StateRead:
		return "state_read"
	case PublicCircuitPublicInputs:
		return "public_circuit_public_inputs"
	case PrivateCircuitPublicInputs:
		return "private_circuit_public_inputs"
	case CallStackItem:
		return "call_stack_item"
	case Commitment:
		return "commitment"
	case Nullifier:
		return "nullifier"
	default:
		panic(fmt.Sprintf(`unknown generator index "%d"`, uint32(i)))
	}
}

// Valid reports whether i is a registered domain-separation index.
func (i Index) Valid() bool {
	return i < NumIndices
}

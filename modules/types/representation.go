// Package types defines the representation abstraction every ABI structure
// is generic over: the same structure definition instantiates with native
// field elements outside a circuit and with wires inside one, and each
// representation supplies the compress operation the canonical hash
// delegates to.
package types

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/pedersen"
)

// Scalar is the native ABI scalar, an element of the BN254 scalar field.
// Addresses and lifted booleans/uint32s are Scalars as well; their narrower
// byte encodings are fixed by each structure's field layout.
type Scalar = fr.Element

// Representation supplies the compression operation for one representation
// of the ABI scalar: T is Scalar natively and frontend.Variable in-circuit.
type Representation[T any] interface {
	Compress(inputs []T, index generators.Index) (T, error)
}

// NativeContext implements Representation[Scalar] by delegating to an
// injected compression engine.
type NativeContext struct {
	engine *pedersen.Engine
}

func NewNativeContext(engine *pedersen.Engine) *NativeContext {
	return &NativeContext{engine: engine}
}

func (c *NativeContext) Compress(inputs []Scalar, index generators.Index) (Scalar, error) {
	return c.engine.CompressWithIndex(inputs, index)
}

// CircuitContext implements Representation[frontend.Variable] by emitting
// the equivalent constraints, and carries the bookkeeping for native to
// circuit conversion and public-input marking.
//
// api and engine may be nil while the context is only used to build witness
// assignments; hashing inside a circuit definition requires both.
type CircuitContext struct {
	api    frontend.API
	engine *pedersen.Engine

	// counting only, irrelevant to the constraint system
	numWitnesses uint

	publicInputs []frontend.Variable
}

func NewCircuitContext(api frontend.API, engine *pedersen.Engine) *CircuitContext {
	return &CircuitContext{api: api, engine: engine}
}

func (c *CircuitContext) Compress(inputs []frontend.Variable, index generators.Index) (frontend.Variable, error) {
	if c.api == nil {
		panic("abi: circuit compress outside a circuit definition")
	}
	return pedersen.CircuitCompress(c.api, c.engine, inputs, index), nil
}

// Witness lifts a native scalar to a wire bound to its value and counts the
// allocation. One witness is allocated per scalar field of a converted
// structure.
func (c *CircuitContext) Witness(e Scalar) frontend.Variable {
	c.numWitnesses++
	return e.BigInt(new(big.Int))
}

// NumWitnesses returns the number of scalars lifted through this context.
func (c *CircuitContext) NumWitnesses() uint {
	return c.numWitnesses
}

// SetPublic records a wire as the next public input. The recording order is
// the structure's fixed field order and is part of the external contract:
// the verifier reconstructs public inputs in the identical order.
func (c *CircuitContext) SetPublic(v frontend.Variable) {
	c.publicInputs = append(c.publicInputs, v)
}

// PublicInputs returns the wires recorded so far, in recording order.
func (c *CircuitContext) PublicInputs() []frontend.Variable {
	return c.publicInputs
}

// BindPublic constrains the recorded public inputs against the circuit's
// declared public wires, position by position.
func (c *CircuitContext) BindPublic(declared []frontend.Variable) {
	if c.api == nil {
		panic("abi: binding public inputs outside a circuit definition")
	}
	if len(declared) != len(c.publicInputs) {
		panic("abi: declared public inputs do not match the recorded count")
	}
	for i := range declared {
		c.api.AssertIsEqual(c.publicInputs[i], declared[i])
	}
}

// AsNative asserts that a scalar of representation type T is in native
// representation. Converting an already-converted structure is a
// programming defect, not bad input, and fails immediately.
func AsNative[T any](v T) Scalar {
	e, ok := any(v).(Scalar)
	if !ok {
		panic("abi: structure is not in native representation")
	}
	return e
}

// AsWire asserts that a scalar of representation type T is in circuit
// representation, the inverse precondition of AsNative.
func AsWire[T any](v T) frontend.Variable {
	if _, ok := any(v).(Scalar); ok {
		panic("abi: structure is not in circuit representation")
	}
	if any(v) == nil {
		panic("abi: unassigned circuit scalar")
	}
	return any(v)
}

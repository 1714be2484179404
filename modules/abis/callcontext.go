package abis

import (
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

// CallContext carries the caller-visible context of one call: who called,
// which contract's storage is in scope, the transaction origin, and the
// call-kind flags.
type CallContext[T any] struct {
	MsgSender              T // address
	StorageContractAddress T // address
	TxOrigin               T // address

	IsDelegateCall       T // boolean
	IsStaticCall         T // boolean
	IsContractDeployment T // boolean
}

// NewCallContext builds the native form from concrete values.
func NewCallContext(
	msgSender, storageContractAddress, txOrigin types.Scalar,
	isDelegateCall, isStaticCall, isContractDeployment bool,
) CallContext[types.Scalar] {
	c := CallContext[types.Scalar]{
		MsgSender:              msgSender,
		StorageContractAddress: storageContractAddress,
		TxOrigin:               txOrigin,
	}
	setBool(&c.IsDelegateCall, isDelegateCall)
	setBool(&c.IsStaticCall, isStaticCall)
	setBool(&c.IsContractDeployment, isContractDeployment)
	return c
}

func (c *CallContext[T]) layout() []field[T] {
	return []field[T]{
		{kindAddress, &c.MsgSender},
		{kindAddress, &c.StorageContractAddress},
		{kindAddress, &c.TxOrigin},
		{kindBool, &c.IsDelegateCall},
		{kindBool, &c.IsStaticCall},
		{kindBool, &c.IsContractDeployment},
	}
}

func (c *CallContext[T]) Flatten(types.Representation[T]) ([]T, error) {
	return flattenLayout(c.layout()), nil
}

func (c *CallContext[T]) Hash(r types.Representation[T]) (T, error) {
	inputs, _ := c.Flatten(r)
	return r.Compress(inputs, generators.CallContext)
}

func (c CallContext[T]) ToCircuitType(ctx *types.CircuitContext) CallContext[frontend.Variable] {
	var out CallContext[frontend.Variable]
	convertLayout(ctx, c.layout(), out.layout())
	return out
}

func (c *CallContext[T]) SetPublic(ctx *types.CircuitContext) {
	markPublic(ctx, c.layout())
}

func WriteCallContext(w *serialize.Writer, c *CallContext[types.Scalar]) error {
	return writeLayout(w, c.layout())
}

func ReadCallContext(r *serialize.Reader) (CallContext[types.Scalar], error) {
	var c CallContext[types.Scalar]
	err := readLayout(r, c.layout())
	return c, err
}

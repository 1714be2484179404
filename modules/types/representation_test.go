package types

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/require"
)

func TestWitnessCounting(t *testing.T) {
	ctx := NewCircuitContext(nil, nil)

	var a, b Scalar
	a.SetUint64(1)
	b.SetUint64(2)

	wa := ctx.Witness(a)
	wb := ctx.Witness(b)
	require.Equal(t, uint(2), ctx.NumWitnesses())

	require.Equal(t, int64(1), wa.(*big.Int).Int64())
	require.Equal(t, int64(2), wb.(*big.Int).Int64())
}

func TestSetPublicPreservesOrder(t *testing.T) {
	ctx := NewCircuitContext(nil, nil)

	wires := []frontend.Variable{big.NewInt(10), big.NewInt(20), big.NewInt(30)}
	for _, w := range wires {
		ctx.SetPublic(w)
	}

	require.Equal(t, wires, ctx.PublicInputs())
}

func TestBindPublicOutsideCircuitPanics(t *testing.T) {
	ctx := NewCircuitContext(nil, nil)
	ctx.SetPublic(big.NewInt(1))
	require.Panics(t, func() { ctx.BindPublic([]frontend.Variable{big.NewInt(1)}) })
}

func TestRepresentationAssertions(t *testing.T) {
	var native Scalar
	native.SetUint64(42)

	require.Equal(t, native, AsNative(native))
	require.Panics(t, func() { AsNative[frontend.Variable](big.NewInt(42)) })

	require.NotPanics(t, func() { AsWire[frontend.Variable](big.NewInt(42)) })
	require.Panics(t, func() { AsWire(native) })
	require.Panics(t, func() { AsWire[frontend.Variable](nil) })
}

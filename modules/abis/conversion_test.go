package abis

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"CircuitABI/modules/pedersen"
	"CircuitABI/modules/types"
)

type signatureHashTestingCircuit struct {
	Engine *pedersen.Engine

	Signature FunctionSignature[frontend.Variable]
	Expected  frontend.Variable `gnark:",public"`
}

func (c *signatureHashTestingCircuit) Define(api frontend.API) error {
	ctx := types.NewCircuitContext(api, c.Engine)
	h, err := c.Signature.Hash(ctx)
	if err != nil {
		return err
	}
	api.AssertIsEqual(h, c.Expected)
	return nil
}

// The circuit hash of a converted structure must equal the native hash of
// the structure it was converted from.
func TestConversionPreservesSignatureHash(t *testing.T) {
	engine := testEngine(t)
	native := testNative(t)

	sig := NewFunctionSignature(31337, true, false)
	expected, err := sig.Hash(native)
	require.NoError(t, err)

	circuit := signatureHashTestingCircuit{Engine: engine}
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err)

	conv := types.NewCircuitContext(nil, nil)
	assignment := signatureHashTestingCircuit{
		Engine:    engine,
		Signature: sig.ToCircuitType(conv),
		Expected:  expected.BigInt(new(big.Int)),
	}
	require.EqualValues(t, 3, conv.NumWitnesses())

	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.NoError(t, cs.IsSolved(witness))
}

type signaturePublicTestingCircuit struct {
	Signature FunctionSignature[frontend.Variable]

	// declared in the signature's field order
	Declared [3]frontend.Variable `gnark:",public"`
}

func (c *signaturePublicTestingCircuit) Define(api frontend.API) error {
	ctx := types.NewCircuitContext(api, nil)
	c.Signature.SetPublic(ctx)
	ctx.BindPublic(c.Declared[:])
	return nil
}

func TestSetPublicBindsFieldsInOrder(t *testing.T) {
	sig := NewFunctionSignature(7, false, true)

	var circuit signaturePublicTestingCircuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err)

	conv := types.NewCircuitContext(nil, nil)
	assignment := signaturePublicTestingCircuit{
		Signature: sig.ToCircuitType(conv),
		Declared: [3]frontend.Variable{
			sig.VKIndex.BigInt(new(big.Int)),
			sig.IsPrivate.BigInt(new(big.Int)),
			sig.IsConstructor.BigInt(new(big.Int)),
		},
	}
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.NoError(t, cs.IsSolved(witness))

	// a permuted declaration must not satisfy the binding
	bad := assignment
	bad.Declared[0], bad.Declared[2] = bad.Declared[2], bad.Declared[0]
	witness, err = frontend.NewWitness(&bad, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.Error(t, cs.IsSolved(witness))
}

func TestPublicCircuitPublicInputsConversionWitnessCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := randomPublicInputs(rng)

	conv := types.NewCircuitContext(nil, nil)
	lifted := p.ToCircuitType(conv)
	require.EqualValues(t, 48, conv.NumWitnesses())

	// every slot is assigned, none left as a nil wire
	for _, f := range lifted.layout() {
		require.NotNil(t, *f.v)
	}
}

func TestRepresentationPreconditions(t *testing.T) {
	conv := types.NewCircuitContext(nil, nil)

	sig := NewFunctionSignature(1, true, true)
	lifted := sig.ToCircuitType(conv)

	// converting twice is a programming defect
	require.Panics(t, func() {
		lifted.ToCircuitType(conv)
	})

	// marking a native structure public is likewise a defect
	require.Panics(t, func() {
		sig.SetPublic(conv)
	})
}

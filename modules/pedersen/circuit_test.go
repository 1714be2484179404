package pedersen

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"

	"CircuitABI/modules/generators"
)

type compressTestingCircuit struct {
	Engine *Engine
	Index  uint32

	Inputs   []frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *compressTestingCircuit) Define(api frontend.API) error {
	computed := CircuitCompress(api, c.Engine, c.Inputs, generators.Index(c.Index))
	api.AssertIsEqual(computed, c.Expected)
	return nil
}

func TestCircuitCompressMatchesNative(t *testing.T) {
	engine := testEngine(t)

	// zero, one and a large scalar exercise the bit-decomposition edges
	var large fr.Element
	large.SetBigInt(new(big.Int).Sub(fr.Modulus(), big.NewInt(1)))
	inputs := []fr.Element{frOf(0), frOf(1), large}

	expected, err := engine.CompressWithIndex(inputs, generators.Index(3))
	require.NoError(t, err)

	circuit := compressTestingCircuit{
		Engine: engine,
		Index:  3,
		Inputs: make([]frontend.Variable, len(inputs)),
	}
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err)

	assignment := compressTestingCircuit{
		Engine:   engine,
		Index:    3,
		Inputs:   make([]frontend.Variable, len(inputs)),
		Expected: expected.BigInt(new(big.Int)),
	}
	for i := range inputs {
		assignment.Inputs[i] = inputs[i].BigInt(new(big.Int))
	}

	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.NoError(t, cs.IsSolved(witness))
}

func TestCircuitCompressPanicsOnMisuse(t *testing.T) {
	engine := testEngine(t)

	require.Panics(t, func() {
		_ = CircuitCompress(nil, NewEngine(), []frontend.Variable{1}, 0)
	})
	require.Panics(t, func() {
		_ = CircuitCompress(nil, engine, nil, 0)
	})
}

package pedersen

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/grumpkin"
	"github.com/consensys/gnark/frontend"

	"CircuitABI/modules/generators"
)

// CircuitCompress emits the constraints computing CompressWithIndex over
// circuit wires: the accumulator starts at the constant point len*L and each
// input wire is folded in by a constant-base double-and-add over the
// Grumpkin curve, whose point coordinates are native BN254 scalars. For
// identical field values the returned wire carries exactly the native
// compression result.
//
// Misuse (uninitialized engine, empty or oversized input, unknown index) is
// a defect in the circuit definition and panics during constraint emission.
func CircuitCompress(
	api frontend.API,
	engine *Engine,
	inputs []frontend.Variable,
	index generators.Index,
) frontend.Variable {
	if !engine.ready {
		panic(ErrNotInitialized.Error())
	}
	if err := checkWidth(len(inputs)); err != nil {
		panic(err.Error())
	}
	if !index.Valid() {
		panic(fmt.Sprintf("pedersen: unknown hash index %d", uint32(index)))
	}

	lengthTerm := engine.lengthTerm(len(inputs))
	accX := frontend.Variable(coordBig(lengthTerm.X.Bytes()))
	accY := frontend.Variable(coordBig(lengthTerm.Y.Bytes()))

	for i, input := range inputs {
		accX, accY = addScalarMul(api, accX, accY, input, engine.hashGens[index][i])
	}
	return accX
}

// addScalarMul folds scalar*base into the accumulator: the scalar wire is
// decomposed into bits and for each bit the running doubling 2^j*base, a
// native constant, is conditionally added with an incomplete affine
// addition. The accumulator carries the length-term offset, so it never
// passes through the point at infinity; an x-coordinate collision with the
// doubling ladder would make the constraint system unsatisfiable, which for
// honestly derived generators happens with negligible probability.
func addScalarMul(
	api frontend.API,
	accX, accY frontend.Variable,
	scalar frontend.Variable,
	base grumpkin.G1Affine,
) (frontend.Variable, frontend.Variable) {
	bits := api.ToBinary(scalar, fr.Bits)

	ladder := base
	for j := 0; j < len(bits); j++ {
		sumX, sumY := addConstPoint(api, accX, accY, &ladder)
		accX = api.Select(bits[j], sumX, accX)
		accY = api.Select(bits[j], sumY, accY)
		doubleAffine(&ladder)
	}
	return accX, accY
}

// addConstPoint adds the constant point p to the wire point (x1, y1) with
// the incomplete affine chord formula.
func addConstPoint(
	api frontend.API,
	x1, y1 frontend.Variable,
	p *grumpkin.G1Affine,
) (frontend.Variable, frontend.Variable) {
	px := coordBig(p.X.Bytes())
	py := coordBig(p.Y.Bytes())

	lambda := api.DivUnchecked(api.Sub(py, y1), api.Sub(px, x1))
	x3 := api.Sub(api.Mul(lambda, lambda), api.Add(x1, px))
	y3 := api.Sub(api.Mul(lambda, api.Sub(x1, x3)), y1)
	return x3, y3
}

func doubleAffine(p *grumpkin.G1Affine) {
	var j grumpkin.G1Jac
	j.FromAffine(p)
	j.DoubleAssign()
	p.FromJacobian(&j)
}

func coordBig(b [32]byte) *big.Int {
	return new(big.Int).SetBytes(b[:])
}

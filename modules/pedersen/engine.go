// Package pedersen implements the Pedersen compression primitive backing the
// canonical ABI hash: fixed generator points on the Grumpkin curve, whose
// base field is the BN254 scalar field, so that compression outputs are ABI
// scalars and the identical computation can be emitted as BN254 circuit
// constraints.
package pedersen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/grumpkin"
	"github.com/consensys/gnark-crypto/ecc/grumpkin/fp"
	"golang.org/x/crypto/blake2s"

	"CircuitABI/modules/generators"
)

const (
	// MaxCompressWidth is the widest input vector any caller may compress
	// under a single generator row. It bounds the flattened field count of
	// the largest ABI structure.
	MaxCompressWidth = 32

	hashGeneratorLabel   = "pedersen.hash.generator"
	commitGeneratorLabel = "pedersen.commit.generator"
	lengthGeneratorLabel = "pedersen.length.generator"
)

// ErrNotInitialized is reported by every compression operation invoked
// before Init has completed.
var ErrNotInitialized = errors.New("pedersen: generator table not initialized")

// Engine owns the process-wide generator-point table. Construct one with
// NewEngine, call Init exactly once (concurrent first calls are serialized
// by the engine), then share it freely: after Init the table is read-only.
//
// Two engines built from the same derivation labels produce identical
// results. Callers comparing or re-deriving hashes must stay with one
// generator-construction strategy; results from differently derived tables
// are not bit-compatible.
type Engine struct {
	initOnce sync.Once
	ready    bool

	hashGens   [generators.NumIndices][MaxCompressWidth]grumpkin.G1Affine
	commitGens [MaxCompressWidth]grumpkin.G1Affine
	lengthGen  grumpkin.G1Affine
}

func NewEngine() *Engine {
	return &Engine{}
}

// Init derives the generator table. The derivation is deterministic but
// heavy; repeated calls are no-ops returning the cached success.
func (e *Engine) Init() error {
	e.initOnce.Do(func() {
		for idx := generators.Index(0); idx < generators.NumIndices; idx++ {
			for pos := 0; pos < MaxCompressWidth; pos++ {
				e.hashGens[idx][pos] = derivePoint(hashGeneratorLabel, uint32(idx), uint32(pos))
			}
		}
		for pos := 0; pos < MaxCompressWidth; pos++ {
			e.commitGens[pos] = derivePoint(commitGeneratorLabel, 0, uint32(pos))
		}
		e.lengthGen = derivePoint(lengthGeneratorLabel, 0, 0)
		e.ready = true
	})
	if !e.ready {
		return ErrNotInitialized
	}
	return nil
}

// derivePoint maps (label, index, position) to a curve point by hashing the
// tuple with BLAKE2s and incrementing an attempt counter until the digest,
// read as an x-coordinate, lands on the curve. The smaller of the two y
// roots is taken so the derivation has a single canonical output.
func derivePoint(label string, index, position uint32) grumpkin.G1Affine {
	msg := make([]byte, 0, len(label)+12)
	msg = append(msg, label...)
	msg = binary.BigEndian.AppendUint32(msg, index)
	msg = binary.BigEndian.AppendUint32(msg, position)
	msg = binary.BigEndian.AppendUint32(msg, 0) // attempt counter

	for attempt := uint32(0); ; attempt++ {
		binary.BigEndian.PutUint32(msg[len(msg)-4:], attempt)
		digest := blake2s.Sum256(msg)

		var x fp.Element
		x.SetBytes(digest[:])

		// y^2 = x^3 - 17
		var ySquared, y, seventeen fp.Element
		seventeen.SetUint64(17)
		ySquared.Square(&x)
		ySquared.Mul(&ySquared, &x)
		ySquared.Sub(&ySquared, &seventeen)
		if y.Sqrt(&ySquared) == nil {
			continue
		}
		if y.LexicographicallyLargest() {
			y.Neg(&y)
		}

		p := grumpkin.G1Affine{X: x, Y: y}
		if !p.IsOnCurve() || p.IsInfinity() {
			continue
		}
		return p
	}
}

// CompressWithIndex reduces inputs to a single scalar under the given
// domain-separation index:
//
//	x( len(inputs)*L + sum_i inputs[i]*G[index][i] )
//
// The length term pins the input count and keeps the accumulator off the
// point at infinity for every non-empty input vector.
func (e *Engine) CompressWithIndex(inputs []fr.Element, index generators.Index) (fr.Element, error) {
	var out fr.Element
	if !e.ready {
		return out, ErrNotInitialized
	}
	if err := checkWidth(len(inputs)); err != nil {
		return out, err
	}
	if !index.Valid() {
		return out, fmt.Errorf("pedersen: unknown hash index %d", uint32(index))
	}

	var acc grumpkin.G1Jac
	acc.FromAffine(e.lengthTerm(len(inputs)))
	var s big.Int
	for i := range inputs {
		var term grumpkin.G1Affine
		inputs[i].BigInt(&s)
		term.ScalarMultiplication(&e.hashGens[index][i], &s)
		acc.AddMixed(&term)
	}

	var p grumpkin.G1Affine
	p.FromJacobian(&acc)
	return coordToScalar(p.X), nil
}

// Compress is CompressWithIndex under the default domain.
func (e *Engine) Compress(inputs []fr.Element) (fr.Element, error) {
	return e.CompressWithIndex(inputs, generators.Default)
}

// CompressFields is the 2-to-1 compression of two field elements under the
// default domain.
func (e *Engine) CompressFields(left, right fr.Element) (fr.Element, error) {
	return e.Compress([]fr.Element{left, right})
}

// Commit computes a Pedersen commitment over the commitment generator set.
// Unlike the hash generators there is no length term; committing to an
// all-zero vector yields the zero scalar (the affine encoding of the point
// at infinity).
func (e *Engine) Commit(inputs []fr.Element) (fr.Element, error) {
	var out fr.Element
	if !e.ready {
		return out, ErrNotInitialized
	}
	if err := checkWidth(len(inputs)); err != nil {
		return out, err
	}

	var acc grumpkin.G1Jac
	var s big.Int
	var term grumpkin.G1Affine
	inputs[0].BigInt(&s)
	term.ScalarMultiplication(&e.commitGens[0], &s)
	acc.FromAffine(&term)
	for i := 1; i < len(inputs); i++ {
		inputs[i].BigInt(&s)
		term.ScalarMultiplication(&e.commitGens[i], &s)
		acc.AddMixed(&term)
	}

	var p grumpkin.G1Affine
	p.FromJacobian(&acc)
	return coordToScalar(p.X), nil
}

// BufferToField reduces an arbitrary byte string into a field element by
// hashing it with BLAKE2s and interpreting the digest modulo the field.
func (e *Engine) BufferToField(data []byte) (fr.Element, error) {
	var out fr.Element
	if !e.ready {
		return out, ErrNotInitialized
	}
	digest := blake2s.Sum256(data)
	out.SetBytes(digest[:])
	return out, nil
}

// lengthTerm returns n*L as an affine point. n is at least 1 and far below
// the group order, so the result is never the point at infinity.
func (e *Engine) lengthTerm(n int) *grumpkin.G1Affine {
	var p grumpkin.G1Affine
	p.ScalarMultiplication(&e.lengthGen, big.NewInt(int64(n)))
	return &p
}

func checkWidth(n int) error {
	if n == 0 {
		return errors.New("pedersen: cannot compress an empty input vector")
	}
	if n > MaxCompressWidth {
		return fmt.Errorf("pedersen: input vector of %d elements exceeds the maximum width %d",
			n, MaxCompressWidth)
	}
	return nil
}

// coordToScalar reinterprets a Grumpkin base-field coordinate as a BN254
// scalar. The two fields share one modulus, so the canonical bytes convert
// without reduction.
func coordToScalar(x fp.Element) fr.Element {
	b := x.Bytes()
	var s fr.Element
	s.SetBytes(b[:])
	return s
}

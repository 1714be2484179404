package pedersen

import (
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"CircuitABI/modules/generators"
)

var (
	sharedEngine     *Engine
	sharedEngineOnce sync.Once
)

// testEngine shares one initialized engine across the package's tests; the
// generator derivation is deterministic, so sharing never leaks state.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	sharedEngineOnce.Do(func() {
		sharedEngine = NewEngine()
		if err := sharedEngine.Init(); err != nil {
			t.Fatal(err.Error())
		}
	})
	return sharedEngine
}

func frOf(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func TestUninitializedEngine(t *testing.T) {
	e := NewEngine()

	_, err := e.Compress([]fr.Element{frOf(1)})
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = e.Commit([]fr.Element{frOf(1)})
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = e.BufferToField([]byte("hello"))
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitIsIdempotent(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.Init())
	require.NoError(t, e.Init())
}

func TestCompressDeterministicAcrossEngines(t *testing.T) {
	inputs := []fr.Element{frOf(1), frOf(2), frOf(3)}

	first, err := testEngine(t).CompressWithIndex(inputs, generators.FunctionSignature)
	require.NoError(t, err)

	fresh := NewEngine()
	require.NoError(t, fresh.Init())
	second, err := fresh.CompressWithIndex(inputs, generators.FunctionSignature)
	require.NoError(t, err)

	require.True(t, first.Equal(&second))
}

func TestCompressHashIndexSeparation(t *testing.T) {
	e := testEngine(t)
	inputs := []fr.Element{frOf(5), frOf(1), frOf(0)}

	left, err := e.CompressWithIndex(inputs, generators.FunctionSignature)
	require.NoError(t, err)
	right, err := e.CompressWithIndex(inputs, generators.StateTransition)
	require.NoError(t, err)

	require.False(t, left.Equal(&right))
}

func TestCompressBindsInputValues(t *testing.T) {
	e := testEngine(t)

	left, err := e.Compress([]fr.Element{frOf(7), frOf(8)})
	require.NoError(t, err)
	right, err := e.Compress([]fr.Element{frOf(8), frOf(7)})
	require.NoError(t, err)
	require.False(t, left.Equal(&right), "compression must depend on input order")

	again, err := e.Compress([]fr.Element{frOf(7), frOf(8)})
	require.NoError(t, err)
	require.True(t, left.Equal(&again))
}

func TestCompressFieldsMatchesVectorCompress(t *testing.T) {
	e := testEngine(t)

	pair, err := e.CompressFields(frOf(11), frOf(12))
	require.NoError(t, err)
	vector, err := e.Compress([]fr.Element{frOf(11), frOf(12)})
	require.NoError(t, err)

	require.True(t, pair.Equal(&vector))
}

func TestCommitDiffersFromCompress(t *testing.T) {
	e := testEngine(t)
	inputs := []fr.Element{frOf(3), frOf(4)}

	compressed, err := e.Compress(inputs)
	require.NoError(t, err)
	committed, err := e.Commit(inputs)
	require.NoError(t, err)

	require.False(t, compressed.Equal(&committed))
}

func TestCompressRejectsMalformedVectors(t *testing.T) {
	e := testEngine(t)

	_, err := e.Compress(nil)
	require.Error(t, err)

	tooWide := make([]fr.Element, MaxCompressWidth+1)
	_, err = e.Compress(tooWide)
	require.Error(t, err)

	_, err = e.CompressWithIndex([]fr.Element{frOf(1)}, generators.NumIndices)
	require.Error(t, err)
}

func TestBufferToField(t *testing.T) {
	e := testEngine(t)

	first, err := e.BufferToField([]byte("some external data"))
	require.NoError(t, err)
	again, err := e.BufferToField([]byte("some external data"))
	require.NoError(t, err)
	other, err := e.BufferToField([]byte("other external data"))
	require.NoError(t, err)

	require.True(t, first.Equal(&again))
	require.False(t, first.Equal(&other))
}

func TestGeneratorsAreOnCurveAndDistinct(t *testing.T) {
	e := testEngine(t)

	seen := map[string]bool{}
	for idx := generators.Index(0); idx < generators.NumIndices; idx++ {
		for pos := 0; pos < MaxCompressWidth; pos++ {
			p := e.hashGens[idx][pos]
			require.True(t, p.IsOnCurve())
			require.False(t, p.IsInfinity())
			key := p.X.String() + "," + p.Y.String()
			require.False(t, seen[key], "duplicate generator at index %d position %d", idx, pos)
			seen[key] = true
		}
	}
	require.True(t, e.lengthGen.IsOnCurve())
	require.False(t, e.lengthGen.IsInfinity())
}

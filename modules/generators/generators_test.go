package generators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexNames(t *testing.T) {
	seen := map[string]bool{}
	for i := Index(0); i < NumIndices; i++ {
		require.True(t, i.Valid())
		name := i.String()
		require.False(t, seen[name], "duplicate index name %s", name)
		seen[name] = true
	}

	require.False(t, NumIndices.Valid())
	require.Panics(t, func() { _ = NumIndices.String() })
}

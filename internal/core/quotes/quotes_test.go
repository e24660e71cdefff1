package quotes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogPicksFromEntries(t *testing.T) {
	catalog := New(Default, rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		require.Contains(t, Default, catalog.PickRandom())
	}
}

func TestCatalogIsDeterministicForSeed(t *testing.T) {
	first := New(Default, rand.New(rand.NewSource(42)))
	second := New(Default, rand.New(rand.NewSource(42)))
	for i := 0; i < 10; i++ {
		require.Equal(t, first.PickRandom(), second.PickRandom())
	}
}

func TestEmptyCatalog(t *testing.T) {
	require.Empty(t, New(nil, nil).PickRandom())
}

func TestFixed(t *testing.T) {
	require.Equal(t, "go", Fixed("go").PickRandom())
}

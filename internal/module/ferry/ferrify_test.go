package ferry

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFerrify_ZeroScore(t *testing.T) {
	assert.Equal(t, "", Ferrify(0, 42))
}

func TestFerrify_Deterministic(t *testing.T) {
	first := Ferrify(4.2, 1234)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Ferrify(4.2, 1234))
	}
}

func TestFerrify_TokenCount(t *testing.T) {
	for _, tc := range []struct {
		score float64
		want  int
	}{
		{0.1, 1},
		{1, 1},
		{1.5, 2},
		{3, 3},
		{7.01, 8},
	} {
		train := Ferrify(tc.score, 99)
		assert.Equal(t, tc.want, strings.Count(train, "::")+1, "score %v renders %q", tc.score, train)
	}
}

func TestFerrify_StartsWithFront(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		train := Ferrify(5, seed)
		var found bool
		for _, front := range frontOfTrain {
			if strings.HasPrefix(train, front) {
				found = true
			}
		}
		assert.True(t, found, "seed %d renders %q", seed, train)
	}
}

func TestSeedForPerson_Stable(t *testing.T) {
	id, err := uuid.Parse("a2f94dfc-4138-4f09-a1aa-a51603b49633")
	require.NoError(t, err)

	seed := SeedForPerson(id)
	assert.Equal(t, seed, SeedForPerson(id))

	other := uuid.New()
	assert.NotEqual(t, seed, SeedForPerson(other))
}

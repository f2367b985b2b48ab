package instance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomRejectsTooManyRows(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := GenerateRandom(rng, 8, 3, 0.5, false)
	require.Error(t, err)
}

func TestGenerateRandomNoEmptyColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	inst, err := GenerateRandom(rng, 12, 6, 0.3, false)
	require.NoError(t, err)

	for col := 0; col < 6; col++ {
		any := false
		for _, row := range inst.Matrix {
			if row[col] {
				any = true
				break
			}
		}
		assert.True(t, any, "column %d must not be empty after repair", col)
	}
}

func TestGenerateRandomRowsAreUniqueAndNonEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inst, err := GenerateRandom(rng, 10, 5, 0.4, false)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, row := range inst.Matrix {
		assert.True(t, anyTrue(row))
		key := ""
		for _, v := range row {
			if v {
				key += "1"
			} else {
				key += "0"
			}
		}
		assert.False(t, seen[key], "duplicate row %v", row)
		seen[key] = true
	}
}

func TestGenerateRandomGuaranteeSeedsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	inst, err := GenerateRandom(rng, 6, 4, 0.5, true)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, col == i, inst.Matrix[i][col])
		}
	}
}

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	got, err := Ints("  3   -4\t12 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, -4, 12}, got)

	got, err = Ints("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInts_RejectsNonInteger(t *testing.T) {
	_, err := Ints("1 2 x3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x3"`)
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, AbsDiff(1, 4))
	assert.Equal(t, 3, AbsDiff(4, 1))
	assert.Equal(t, int64(0), AbsDiff(int64(-2), int64(-2)))
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(" \t"))
	assert.False(t, Blank(" 1 "))
}

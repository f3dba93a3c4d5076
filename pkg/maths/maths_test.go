package maths

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{12, 0, 12},
		{0, 7, 7},
		{12, 18, 6},
		{17, 5, 1},
		{21_883, 13_019, 277},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "gcd(%d, %d)", tt.a, tt.b)
		if tt.b != 0 {
			assert.Equal(t, GCD(tt.b, tt.a%tt.b), GCD(tt.a, tt.b), "euclid step for (%d, %d)", tt.a, tt.b)
		}
	}
}

func TestLCM_Properties(t *testing.T) {
	pairs := [][2]uint64{{2, 3}, {4, 6}, {1, 9}, {21_883, 13_019}, {7, 7}}
	for _, p := range pairs {
		ab, err := LCM(p[0], p[1])
		require.NoError(t, err)
		ba, err := LCM(p[1], p[0])
		require.NoError(t, err)

		assert.Equal(t, ab, ba, "lcm must be commutative")
		assert.Zero(t, ab%p[0])
		assert.Zero(t, ab%p[1])
	}

	one, err := LCM(42, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), one)
}

func TestLCM_Errors(t *testing.T) {
	_, err := LCM(0, 5)
	assert.ErrorIs(t, err, ErrZero)

	_, err = LCM(math.MaxUint64, math.MaxUint64-1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestLCMOf(t *testing.T) {
	got, err := LCMOf([]uint64{5})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)

	got, err = LCMOf([]uint64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), got)

	values := []uint64{20_777, 18_673, 13_939, 17_621, 19_199, 15_517}
	got, err = LCMOf(values)
	require.NoError(t, err)
	for _, v := range values {
		assert.Zero(t, got%v, "%d must divide %d", v, got)
	}

	_, err = LCMOf(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = LCMOf([]uint64{0, 3})
	assert.ErrorIs(t, err, ErrZero)
}

package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	base := FromSlice([]string{"AA", "BB", "CC"})

	t.Run("Middle", func(t *testing.T) {
		out, err := Insert(base, 1, "ZZ")
		require.NoError(t, err)
		assert.Equal(t, []string{"AA", "ZZ", "BB", "CC"}, ToSlice(out))
		assert.Equal(t, []string{"AA", "BB", "CC"}, ToSlice(base), "source list must be untouched")
	})

	t.Run("Front", func(t *testing.T) {
		out, err := Insert(base, 0, "ZZ")
		require.NoError(t, err)
		assert.Equal(t, []string{"ZZ", "AA", "BB", "CC"}, ToSlice(out))
	})

	t.Run("AtLengthAppends", func(t *testing.T) {
		out, err := Insert(base, 3, "ZZ")
		require.NoError(t, err)
		assert.Equal(t, []string{"AA", "BB", "CC", "ZZ"}, ToSlice(out))
	})

	t.Run("IntoEmpty", func(t *testing.T) {
		out, err := Insert(Empty[string](), 0, "ZZ")
		require.NoError(t, err)
		assert.Equal(t, []string{"ZZ"}, ToSlice(out))
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		for _, idx := range []int{-1, 4, 100} {
			_, err := Insert(base, idx, "ZZ")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfBounds), "index %d", idx)
		}
	})
}

func TestReplace(t *testing.T) {
	base := FromSlice([]int{1, 2, 3})

	out, err := Replace(base, 2, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30}, ToSlice(out))
	assert.Equal(t, []int{1, 2, 3}, ToSlice(base))

	_, err = Replace(base, 3, 30)
	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "replace", be.Op)
	assert.Equal(t, 3, be.Index)
	assert.Equal(t, 3, be.Len)
}

func TestRemove(t *testing.T) {
	base := FromSlice([]int{1, 2, 3, 4})

	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"First", 0, []int{2, 3, 4}},
		{"Middle", 1, []int{1, 3, 4}},
		{"Last", 3, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Remove(base, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToSlice(out))
		})
	}

	_, err := Remove(base, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Remove(Empty[int](), 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPickAndIndexWhere(t *testing.T) {
	base := FromSlice([]string{"a", "b", "c", "d"})

	picked := Pick(base, []int{3, 0, 2})
	assert.Equal(t, []string{"d", "a", "c"}, ToSlice(picked))

	assert.Equal(t, 2, IndexWhere(base, func(s string) bool { return s == "c" }))
	assert.Equal(t, -1, IndexWhere(base, func(s string) bool { return s == "z" }))
}

func TestGet(t *testing.T) {
	base := FromSlice([]int{7})

	v, err := Get(base, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = Get(base, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dict-transfer/tree"
)

func TestParseDeclaration(t *testing.T) {
	t.Parallel()

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		bindings, single, err := parseDeclaration("x")
		require.NoError(t, err)
		assert.True(t, single)
		assert.Equal(t, []Binding{{Path: tree.Path{"x"}}}, bindings)
	})

	t.Run("flat sequence is one path", func(t *testing.T) {
		t.Parallel()

		bindings, single, err := parseDeclaration([]any{"a", "b"})
		require.NoError(t, err)
		assert.True(t, single)
		assert.Equal(t, []Binding{{Path: tree.Path{"a", "b"}}}, bindings)
	})

	t.Run("sequence of sequences is one binding each", func(t *testing.T) {
		t.Parallel()

		bindings, single, err := parseDeclaration([]any{
			[]any{"x"},
			[]any{"y", "z"},
		})
		require.NoError(t, err)
		assert.False(t, single)
		assert.Equal(t, []Binding{
			{Path: tree.Path{"x"}},
			{Path: tree.Path{"y", "z"}},
		}, bindings)
	})

	t.Run("trailing integer list marks a fan-out", func(t *testing.T) {
		t.Parallel()

		bindings, single, err := parseDeclaration([]any{
			[]any{"x", []any{0, 2}},
		})
		require.NoError(t, err)
		assert.False(t, single)
		require.Len(t, bindings, 1)
		assert.True(t, bindings[0].IsFanOut())
		assert.Equal(t, tree.Path{"x"}, bindings[0].Path)
		assert.Equal(t, []int{0, 2}, bindings[0].Indices)
	})

	t.Run("json-decoded indices are float64", func(t *testing.T) {
		t.Parallel()

		bindings, _, err := parseDeclaration([]any{
			[]any{"x", []any{float64(0), float64(2)}},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, bindings[0].Indices)
	})

	t.Run("fractional index is rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDeclaration([]any{
			[]any{"x", []any{0.5}},
		})
		assert.ErrorIs(t, err, ErrBadIndex)
	})

	t.Run("empty declaration", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDeclaration([]any{})
		assert.ErrorIs(t, err, ErrEmptyDeclaration)
	})

	t.Run("index list with no keys in front", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDeclaration([]any{
			[]any{[]any{0, 1}},
		})
		assert.ErrorIs(t, err, ErrEmptyDeclaration)
	})

	t.Run("non-string component", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDeclaration([]any{"a", 1})
		assert.ErrorIs(t, err, ErrBadComponent)

		_, _, err = parseDeclaration([]any{[]any{"a", 1, []any{0}}})
		assert.ErrorIs(t, err, ErrBadComponent)
	})

	t.Run("empty index list is still a fan-out", func(t *testing.T) {
		t.Parallel()

		bindings, _, err := parseDeclaration([]any{
			[]any{"x", []any{}},
		})
		require.NoError(t, err)
		assert.True(t, bindings[0].IsFanOut())
		assert.Empty(t, bindings[0].Indices)
	})
}

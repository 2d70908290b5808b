package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, size int, cells ...int) *Grid {
	t.Helper()
	g, err := NewGridFromCells(size, cells)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Len(t, g.EmptyCells(), 16)
	assert.Equal(t, 0, g.HighestValue())

	_, err = NewGrid(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewGrid(MaxSize + 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	g, err = NewGrid(MaxSize)
	require.NoError(t, err)
	assert.Len(t, g.Cells(), MaxSize*MaxSize)
}

func TestNewGridFromCellsErrors(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		cells []int
		err   error
	}{
		{"too few cells", 2, []int{2, 0, 0}, ErrInvalidSize},
		{"too many cells", 1, []int{2, 4}, ErrInvalidSize},
		{"negative", 2, []int{2, -2, 0, 0}, ErrInvalidTile},
		{"not a power of two", 2, []int{2, 6, 0, 0}, ErrInvalidTile},
		{"one is not a tile", 2, []int{1, 0, 0, 0}, ErrInvalidTile},
		{"zero size", 0, nil, ErrInvalidSize},
		{"above max size", MaxSize + 1, nil, ErrInvalidSize},
		{"huge size", 1_000_000_000, nil, ErrInvalidSize},
		{"size squared wraps to zero", 1 << 32, nil, ErrInvalidSize},
		{"square count on wrong size", 2, make([]int, 9), ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGridFromCells(tt.size, tt.cells)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewGridFromCellsCopies(t *testing.T) {
	cells := []int{2, 0, 0, 4}
	g := mustGrid(t, 2, cells...)
	cells[0] = 8
	v, err := g.CellAt(0)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestIndexPosition(t *testing.T) {
	g := mustGrid(t, 3, make([]int, 9)...)
	for i := 0; i < 9; i++ {
		r, c := g.Position(i)
		assert.Equal(t, i, g.Index(r, c))
	}
	r, c := g.Position(5)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestCellAtBounds(t *testing.T) {
	g := mustGrid(t, 2, 2, 4, 8, 0)

	v, err := g.CellAt(2)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	for _, index := range []int{-1, 4, 100} {
		_, err := g.CellAt(index)
		assert.ErrorIs(t, err, ErrOutOfBounds, "index %d", index)
		assert.False(t, g.InBounds(index))
		assert.False(t, g.IsEmpty(index))
	}
	assert.True(t, g.IsEmpty(3))
	assert.False(t, g.IsEmpty(0))
}

func TestEmptyCellsAndHighest(t *testing.T) {
	g := mustGrid(t, 3,
		0, 2, 0,
		4, 0, 1024,
		0, 0, 2,
	)
	assert.Equal(t, []int{0, 2, 4, 6, 7}, g.EmptyCells())
	assert.Equal(t, 1024, g.HighestValue())
}

func TestSameRowSameColumn(t *testing.T) {
	g := mustGrid(t, 4, make([]int, 16)...)

	assert.True(t, g.SameRow(0, 3))
	assert.False(t, g.SameRow(3, 4), "row boundary must not wrap")
	assert.True(t, g.SameColumn(1, 13))
	assert.False(t, g.SameColumn(1, 2))
	// 構造的な判定のみで範囲チェックはしない
	assert.True(t, g.SameColumn(15, 19))
}

func TestSwapCells(t *testing.T) {
	g := mustGrid(t, 2, 2, 0, 0, 4)
	require.NoError(t, g.SwapCells(0, 1))
	assert.Equal(t, []int{0, 2, 0, 4}, g.Cells())

	err := g.SwapCells(0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, []int{0, 2, 0, 4}, g.Cells())
}

func TestMergeCells(t *testing.T) {
	g := mustGrid(t, 2, 4, 4, 2, 0)

	merged, err := g.MergeCells(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, merged)
	assert.Equal(t, []int{8, 0, 2, 0}, g.Cells())

	tests := []struct {
		name string
		i, j int
		err  error
	}{
		{"different values", 0, 2, ErrInvalidMerge},
		{"empty cells", 1, 3, ErrInvalidMerge},
		{"same cell", 0, 0, ErrInvalidMerge},
		{"out of bounds", 0, -1, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.MergeCells(tt.i, tt.j)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []int{8, 0, 2, 0}, g.Cells(), "failed merge must not mutate")
		})
	}
}

func TestSetValue(t *testing.T) {
	g := mustGrid(t, 2, 0, 0, 0, 0)
	require.NoError(t, g.SetValue(3, 4))
	assert.Equal(t, []int{0, 0, 0, 4}, g.Cells())
	assert.ErrorIs(t, g.SetValue(4, 2), ErrOutOfBounds)
	assert.ErrorIs(t, g.SetValue(0, 3), ErrInvalidTile)
}

func TestLine(t *testing.T) {
	g := mustGrid(t, 3, make([]int, 9)...)

	tests := []struct {
		dir      Direction
		n        int
		expected []int
	}{
		{Left, 1, []int{3, 4, 5}},
		{Right, 1, []int{5, 4, 3}},
		{Up, 2, []int{2, 5, 8}},
		{Down, 2, []int{8, 5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, g.Line(tt.dir, tt.n))
		})
	}

	assert.Nil(t, g.Line(Direction(9), 0))
	assert.Nil(t, g.Line(Left, 3))
}

func TestGridCloneEqual(t *testing.T) {
	g := mustGrid(t, 2, 2, 0, 0, 4)
	c := g.Clone()
	assert.True(t, g.Equal(c))

	require.NoError(t, c.SetValue(1, 2))
	assert.False(t, g.Equal(c))
	assert.False(t, g.Equal(nil))
	assert.False(t, g.Equal(mustGrid(t, 1, 2)))
}

func TestGridString(t *testing.T) {
	g := mustGrid(t, 2, 2, 0, 0, 2048)
	expected := "" +
		"+------+------+\n" +
		"|    2 |      |\n" +
		"+------+------+\n" +
		"|      | 2048 |\n" +
		"+------+------+\n"
	assert.Equal(t, expected, g.String())

	wide := mustGrid(t, 1, 131072)
	assert.Equal(t, "+--------+\n| 131072 |\n+--------+\n", wide.String())
}

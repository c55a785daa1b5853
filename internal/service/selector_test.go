package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEmptyCell(t *testing.T) {
	t.Run("Picks the only free cell", func(t *testing.T) {
		// Given: a board with a single free cell at (2, 1)
		board := &entity.Board{
			{entity.PlayerX, entity.PlayerO, entity.PlayerX},
			{entity.PlayerO, entity.PlayerX, entity.PlayerO},
			{entity.PlayerX, entity.EmptyCell, entity.PlayerO},
		}

		// When: selecting a cell
		cell, err := SelectEmptyCell(board, rand.New(rand.NewSource(1)))

		// Then: the free cell is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 2, Col: 1}, cell)
	})

	t.Run("Never picks an occupied cell and reaches every free one", func(t *testing.T) {
		// Given: a board with four free cells
		board := &entity.Board{
			{entity.PlayerX, entity.EmptyCell, entity.PlayerO},
			{entity.EmptyCell, entity.PlayerX, entity.EmptyCell},
			{entity.PlayerO, entity.EmptyCell, entity.PlayerX},
		}
		rng := rand.New(rand.NewSource(42))
		seen := make(map[entity.Cell]int)

		// When: selecting many times
		for range 400 {
			cell, err := SelectEmptyCell(board, rng)
			require.NoError(t, err)
			require.Equal(t, entity.EmptyCell, board.At(cell), "selected occupied cell %s", cell)
			seen[cell]++
		}

		// Then: every free cell came up
		assert.ElementsMatch(t, board.EmptyCells(), keys(seen))
	})

	t.Run("Spreads picks evenly over free cells", func(t *testing.T) {
		// Given: a board with four free cells and a fixed seed
		board := &entity.Board{
			{entity.PlayerX, entity.EmptyCell, entity.PlayerO},
			{entity.EmptyCell, entity.PlayerX, entity.EmptyCell},
			{entity.PlayerO, entity.EmptyCell, entity.PlayerX},
		}
		rng := rand.New(rand.NewSource(7))
		const draws = 4000
		seen := make(map[entity.Cell]int)

		// When: selecting many times
		for range draws {
			cell, err := SelectEmptyCell(board, rng)
			require.NoError(t, err)
			seen[cell]++
		}

		// Then: each cell comes up about a quarter of the time
		for _, cell := range board.EmptyCells() {
			assert.InDelta(t, 0.25, float64(seen[cell])/draws, 0.08, "cell %s", cell)
		}
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		// Given: a full board
		board := &entity.Board{
			{entity.PlayerX, entity.PlayerO, entity.PlayerX},
			{entity.PlayerX, entity.PlayerO, entity.PlayerO},
			{entity.PlayerO, entity.PlayerX, entity.PlayerX},
		}

		// When: selecting a cell
		_, err := SelectEmptyCell(board, rand.New(rand.NewSource(1)))

		// Then: ErrNoMovesAvailable is returned, matching IsBoardFull
		require.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
		assert.True(t, board.IsBoardFull())
	})
}

func TestRandomSelector_SelectMove(t *testing.T) {
	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		// Given: two selectors with the same seed
		first := NewRandomSelector(7)
		second := NewRandomSelector(7)
		board := entity.Board{}

		// When/Then: they agree move after move
		for range 20 {
			a, err := first.SelectMove(board)
			require.NoError(t, err)
			b, err := second.SelectMove(board)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})

	t.Run("Does not mutate the caller's board", func(t *testing.T) {
		// Given: an empty board
		selector := NewRandomSelector(0)
		board := entity.Board{}

		// When: selecting a move
		_, err := selector.SelectMove(board)
		require.NoError(t, err)

		// Then: the board is still empty
		assert.Equal(t, entity.Board{}, board)
	})
}

func TestScriptedSelector_SelectMove(t *testing.T) {
	// Given: a selector scripted with two moves
	selector := NewScriptedSelector(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 2, Col: 2})

	// When: asking for moves
	first, err := selector.SelectMove(entity.Board{})
	require.NoError(t, err)
	second, err := selector.SelectMove(entity.Board{})
	require.NoError(t, err)
	_, err = selector.SelectMove(entity.Board{})

	// Then: the moves come back in order, then the script runs out
	assert.Equal(t, entity.Cell{Row: 0, Col: 0}, first)
	assert.Equal(t, entity.Cell{Row: 2, Col: 2}, second)
	require.ErrorIs(t, err, ErrScriptExhausted)
	assert.Equal(t, 0, selector.Remaining())
}

func keys(m map[entity.Cell]int) []entity.Cell {
	out := make([]entity.Cell, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

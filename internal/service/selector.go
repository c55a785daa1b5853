package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrScriptExhausted = errors.New("scripted moves exhausted")

// MoveSelector picks the AI's next cell on a board copy.
type MoveSelector interface {
	SelectMove(board entity.Board) (entity.Cell, error)
}

type randomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector returns a selector choosing uniformly among empty cells.
// A zero seed seeds from the clock.
func NewRandomSelector(seed int64) MoveSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomSelector{
		rng: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *randomSelector) SelectMove(board entity.Board) (entity.Cell, error) {
	return SelectEmptyCell(&board, that.rng)
}

// SelectEmptyCell returns one of the board's empty cells chosen uniformly at random.
func SelectEmptyCell(board *entity.Board, rng *rand.Rand) (entity.Cell, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, apperror.ErrNoMovesAvailable
	}

	return availableCells[rng.Intn(len(availableCells))], nil
}

// ScriptedSelector replays a fixed list of cells in order.
type ScriptedSelector struct {
	moves []entity.Cell
	next  int
}

func NewScriptedSelector(moves ...entity.Cell) *ScriptedSelector {
	return &ScriptedSelector{moves: moves}
}

func (that *ScriptedSelector) SelectMove(_ entity.Board) (entity.Cell, error) {
	if that.next >= len(that.moves) {
		return entity.Cell{}, fmt.Errorf("%w after %d moves", ErrScriptExhausted, len(that.moves))
	}

	move := that.moves[that.next]
	that.next++

	return move, nil
}

// Remaining is the number of scripted moves not played yet.
func (that *ScriptedSelector) Remaining() int {
	return len(that.moves) - that.next
}

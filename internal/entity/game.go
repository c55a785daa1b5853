package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the side length of the board, fixed at 3.
const BoardSize = 3

type RoundResult string

const (
	RoundInProgress RoundResult = "in_progress"
	RoundPlayerWin  RoundResult = "player_win"
	RoundAIWin      RoundResult = "ai_win"
	RoundDraw       RoundResult = "draw"
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidMark  = errors.New("invalid mark")

	WinLines = [8][3]Cell{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Cell is a (row, col) coordinate on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

// PlaceMark puts mark on the cell at (row, col). The board is left untouched
// when the coordinates are out of range or the cell is taken.
func (that *Board) PlaceMark(row, col int, mark Mark) error {
	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %w %q", apperror.ErrInvalidMove, ErrInvalidMark, mark)
	}

	cell := Cell{Row: row, Col: col}
	if !cell.IsValid() {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, ErrInvalidCell, cell)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, ErrCellOccupied, cell)
	}

	that[row][col] = mark

	return nil
}

// CheckWinner reports whether any row, column or diagonal is filled with mark.
func (that *Board) CheckWinner(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a == mark && b == mark && c == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsBoardFull() bool {
	return len(that.EmptyCells()) == 0
}

// EmptyCells returns the free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) At(cell Cell) Mark {
	return that[cell.Row][cell.Col]
}

func (that *Board) Reset() {
	*that = Board{}
}

// Evaluate returns the round state after justPlaced was put on the board.
// Only the mark just placed can have completed a line, so the other one is not checked.
func (that *Board) Evaluate(justPlaced Mark) RoundResult {
	if that.CheckWinner(justPlaced) {
		return SideOf(justPlaced).RoundWin()
	}

	if that.IsBoardFull() {
		return RoundDraw
	}

	return RoundInProgress
}

func (that RoundResult) IsTerminal() bool {
	return that == RoundPlayerWin || that == RoundAIWin || that == RoundDraw
}

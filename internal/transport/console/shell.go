package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	movePrompt      = "Enter your move (row and column, 0-2): "
	invalidInputMsg = "Invalid input. Please enter two numbers separated by a space."
	invalidMoveMsg  = "Invalid move. Try again."
)

// Shell is the interactive side of the game: it reads the human's moves and
// prints the board, the score and round results.
type Shell struct {
	logger *slog.Logger

	reader *lineReader
	out    io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger: logger.With("component", "console"),
		reader: newLineReader(in),
		out:    out,
	}
}

// Close releases the input reader. The shell must not be used afterwards.
func (that *Shell) Close() {
	that.reader.Close()
}

func (that *Shell) Welcome() {
	that.println("Welcome to Tic Tac Toe!")
	that.println("You are 'X', and the AI is 'O'.")
	that.printf("First to win %d rounds wins the game.\n", entity.WinsToMatch)
}

// NextMove prompts until a well-formed move is typed.
func (that *Shell) NextMove(ctx context.Context, _ entity.Board) (entity.Cell, error) {
	for {
		that.printf("%s", movePrompt)

		text, err := that.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				that.println()
			}
			return entity.Cell{}, err
		}

		cell, err := ParseMove(text)
		if err != nil {
			that.logger.Debug("Unparsable move", "input", text, "error", err)
			that.println(invalidInputMsg)
			continue
		}

		return cell, nil
	}
}

func (that *Shell) TurnStarted(score entity.MatchScore, board entity.Board) {
	that.printf("\nScore - Player: %d, AI: %d\n", score.PlayerWins, score.AIWins)
	that.printf("%s", RenderBoard(board))
}

func (that *Shell) MoveRejected(_ entity.Cell, _ error) {
	that.println(invalidMoveMsg)
}

func (that *Shell) RoundFinished(result entity.RoundResult, board entity.Board) {
	that.printf("%s", RenderBoard(board))

	switch result {
	case entity.RoundPlayerWin:
		that.println("You win this round!")
	case entity.RoundAIWin:
		that.println("AI wins this round!")
	case entity.RoundDraw:
		that.println("It's a tie!")
	case entity.RoundInProgress:
	}
}

func (that *Shell) MatchFinished(outcome entity.MatchOutcome) {
	that.printf("\nFinal Score - Player: %d, AI: %d\n", outcome.Score.PlayerWins, outcome.Score.AIWins)

	if outcome.Winner == entity.SidePlayer {
		that.println("Congratulations! You won the game!")
	} else {
		that.println("AI won the game. Better luck next time!")
	}
}

// RenderBoard draws each row as cells joined by " | ", each followed by a rule.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for _, row := range board {
		cells := make([]string, 0, len(row))
		for _, mark := range row {
			cells = append(cells, markSymbol(mark))
		}

		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 9))
		sb.WriteString("\n")
	}

	return sb.String()
}

func markSymbol(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}
	return string(mark)
}

func (that *Shell) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}

func (that *Shell) println(args ...any) {
	if _, err := fmt.Fprintln(that.out, args...); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}

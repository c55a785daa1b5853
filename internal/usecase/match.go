package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrIllegalAIMove = errors.New("ai chose an illegal move")

// HumanPlayer supplies well-formed moves for X. Range and occupancy are checked by the engine.
type HumanPlayer interface {
	NextMove(ctx context.Context, board entity.Board) (entity.Cell, error)
}

type MoveSelector interface {
	SelectMove(board entity.Board) (entity.Cell, error)
}

// Reporter receives everything the shell has to show between turns.
type Reporter interface {
	TurnStarted(score entity.MatchScore, board entity.Board)
	MoveRejected(cell entity.Cell, err error)
	RoundFinished(result entity.RoundResult, board entity.Board)
	MatchFinished(outcome entity.MatchOutcome)
}

type MatchEngine struct {
	logger *slog.Logger

	human    HumanPlayer
	selector MoveSelector
	reporter Reporter
}

func NewMatchEngine(logger *slog.Logger, human HumanPlayer, selector MoveSelector, reporter Reporter) *MatchEngine {
	return &MatchEngine{
		logger: logger.With("component", "match_engine"),

		human:    human,
		selector: selector,
		reporter: reporter,
	}
}

// RunMatch plays rounds on a fresh board until one side has WinsToMatch round wins.
func (that *MatchEngine) RunMatch(ctx context.Context) (*entity.MatchOutcome, error) {
	outcome := &entity.MatchOutcome{ID: uuid.NewString()}
	log := that.logger.With("match_id", outcome.ID)

	log.Info("Match started", "wins_to_match", entity.WinsToMatch)

	board := entity.NewBoard()
	for !outcome.Score.IsDecided() {
		result, err := that.RunRound(ctx, board, outcome.Score)
		if err != nil {
			log.Warn("Match aborted", "rounds", outcome.Rounds, "error", err)
			return outcome, fmt.Errorf("round %d: %w", outcome.Rounds+1, err)
		}

		outcome.Rounds++
		outcome.Score.Record(result)
		board.Reset()

		log.Info("Round finished",
			"round", outcome.Rounds,
			"result", result,
			"player_wins", outcome.Score.PlayerWins,
			"ai_wins", outcome.Score.AIWins,
		)
	}

	outcome.Winner = outcome.Score.Winner()
	that.reporter.MatchFinished(*outcome)

	log.Info("Match finished", "winner", outcome.Winner, "rounds", outcome.Rounds)

	return outcome, nil
}

// RunRound alternates X and O on board until the round is decided. The board
// is left in its terminal state for the caller to reset.
func (that *MatchEngine) RunRound(ctx context.Context, board *entity.Board, score entity.MatchScore) (entity.RoundResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.RoundInProgress, err
		}

		that.reporter.TurnStarted(score, *board)

		if err := that.playerTurn(ctx, board); err != nil {
			return entity.RoundInProgress, err
		}

		if result := board.Evaluate(entity.SidePlayer.Mark()); result.IsTerminal() {
			that.reporter.RoundFinished(result, *board)
			return result, nil
		}

		if err := that.aiTurn(board); err != nil {
			return entity.RoundInProgress, err
		}

		if result := board.Evaluate(entity.SideAI.Mark()); result.IsTerminal() {
			that.reporter.RoundFinished(result, *board)
			return result, nil
		}
	}
}

// playerTurn asks for moves until one lands on the board.
func (that *MatchEngine) playerTurn(ctx context.Context, board *entity.Board) error {
	for {
		cell, err := that.human.NextMove(ctx, *board)
		if err != nil {
			return fmt.Errorf("failed to read player move: %w", err)
		}

		err = board.PlaceMark(cell.Row, cell.Col, entity.SidePlayer.Mark())
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.logger.Debug("Player move rejected", "cell", cell, "error", err)
			that.reporter.MoveRejected(cell, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to place player mark: %w", err)
		}

		that.logger.Debug("Player moved", "cell", cell)

		return nil
	}
}

func (that *MatchEngine) aiTurn(board *entity.Board) error {
	cell, err := that.selector.SelectMove(*board)
	if err != nil {
		return fmt.Errorf("ai failed to select move: %w", err)
	}

	if err = board.PlaceMark(cell.Row, cell.Col, entity.SideAI.Mark()); err != nil {
		return fmt.Errorf("%w %s: %w", ErrIllegalAIMove, cell, err)
	}

	that.logger.Debug("AI moved", "cell", cell)

	return nil
}

package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	conf := &config.Config{LogLevel: "warn", AISeed: 20241019}

	t.Run("Plays a full match against the random AI", func(t *testing.T) {
		// Given: a human who walks the board cell by cell, over and over
		out := &bytes.Buffer{}

		// When: the game is run
		err := run(context.Background(), logger, conf, strings.NewReader(walkBoard(300)), out)

		// Then: the match ends with a final score and a verdict
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "Welcome to Tic Tac Toe!\n"))
		assert.Contains(t, out.String(), "Final Score - Player: ")
		assert.True(t,
			strings.Contains(out.String(), "Congratulations! You won the game!") ||
				strings.Contains(out.String(), "AI won the game. Better luck next time!"),
		)
	})

	t.Run("Survives an overlong line", func(t *testing.T) {
		// Given: a huge first line before the usual moves
		out := &bytes.Buffer{}
		input := strings.Repeat("a", 70000) + "\n" + walkBoard(300)

		// When: the game is run
		err := run(context.Background(), logger, conf, strings.NewReader(input), out)

		// Then: the line is reported and the match still finishes
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invalid input. Please enter two numbers separated by a space.")
		assert.Contains(t, out.String(), "Final Score - Player: ")
	})

	t.Run("Stops when input ends", func(t *testing.T) {
		// Given: a human who types one bad line and leaves
		out := &bytes.Buffer{}

		// When: the game is run
		err := run(context.Background(), logger, conf, strings.NewReader("quit\n"), out)

		// Then: the match is aborted on closed input
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, out.String(), "Invalid input. Please enter two numbers separated by a space.")
		assert.NotContains(t, out.String(), "Final Score")
	})
}

func walkBoard(cycles int) string {
	var sb strings.Builder
	for range cycles {
		for row := range 3 {
			for col := range 3 {
				sb.WriteString(string(rune('0'+row)) + " " + string(rune('0'+col)) + "\n")
			}
		}
	}
	return sb.String()
}

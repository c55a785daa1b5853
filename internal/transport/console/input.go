package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ParseMove reads "row col" as two whitespace-separated integers.
// Whether the cell is on the board and free is left to the board itself.
func ParseMove(text string) (entity.Cell, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return entity.Cell{}, fmt.Errorf("%w: expected 2 numbers, got %d fields", apperror.ErrInvalidInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: row %q: %w", apperror.ErrInvalidInput, fields[0], err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: column %q: %w", apperror.ErrInvalidInput, fields[1], err)
	}

	return entity.Cell{Row: row, Col: col}, nil
}

type line struct {
	text string
	err  error
}

// lineReader pumps lines from the input in a goroutine so a blocked read
// does not keep ReadLine from returning on context cancellation.
// Lines have no length limit.
type lineReader struct {
	lines chan line
	done  chan struct{}
	once  sync.Once
}

func newLineReader(in io.Reader) *lineReader {
	reader := &lineReader{
		lines: make(chan line),
		done:  make(chan struct{}),
	}

	go reader.pump(bufio.NewReader(in))

	return reader
}

func (that *lineReader) pump(in *bufio.Reader) {
	defer close(that.lines)

	for {
		text, err := in.ReadString('\n')

		var next line
		switch {
		case err != nil && !errors.Is(err, io.EOF):
			next = line{err: err}
		case text != "":
			next = line{text: strings.TrimRight(text, "\r\n")}
		default:
			return
		}

		select {
		case that.lines <- next:
		case <-that.done:
			return
		}

		if err != nil {
			return
		}
	}
}

func (that *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return l.text, nil
	}
}

// Close stops the pump once its pending read returns.
func (that *lineReader) Close() {
	that.once.Do(func() { close(that.done) })
}

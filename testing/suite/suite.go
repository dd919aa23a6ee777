package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bounded by the test lifetime and a debug logger.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ParseBoard - builds a board from three rows of 'X' (first), 'O' (second)
// and '.' (empty), the same notation entity.Board.String prints.
func ParseBoard(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	if len(rows) != entity.BoardSize {
		t.Fatalf("expected %d rows, got %d", entity.BoardSize, len(rows))
	}

	var board entity.Board
	for row, line := range rows {
		if len(line) != entity.BoardSize {
			t.Fatalf("row %d: expected %d cells, got %q", row, entity.BoardSize, line)
		}

		for col, mark := range line {
			pos := entity.Position{Row: row, Col: col}
			switch mark {
			case 'X':
				board = board.Place(pos, entity.First)
			case 'O':
				board = board.Place(pos, entity.Second)
			case '.':
			default:
				t.Fatalf("row %d: unknown mark %q", row, mark)
			}
		}
	}

	return board
}

// Pos - shorthand for a board coordinate.
func Pos(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

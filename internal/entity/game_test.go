package entity_test

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	t.Run("Zero cell is empty", func(t *testing.T) {
		// Given: a zero cell
		var cell entity.Cell

		// When: asking for the occupant
		player, ok := cell.Occupant()

		// Then: nobody holds it
		assert.True(t, cell.IsEmpty())
		assert.False(t, ok)
		assert.Equal(t, entity.NoPlayer, player)
		assert.Equal(t, entity.Empty, cell)
	})

	t.Run("Occupied cell reports its player", func(t *testing.T) {
		// Given: a cell occupied by the second player
		cell := entity.Occupied(entity.Second)

		// When: asking for the occupant
		player, ok := cell.Occupant()

		// Then: the second player holds it
		assert.False(t, cell.IsEmpty())
		assert.True(t, ok)
		assert.Equal(t, entity.Second, player)
	})
}

func TestPlayerID(t *testing.T) {
	t.Run("Opponent flips the sides", func(t *testing.T) {
		assert.Equal(t, entity.Second, entity.First.Opponent())
		assert.Equal(t, entity.First, entity.Second.Opponent())
		assert.Equal(t, entity.NoPlayer, entity.NoPlayer.Opponent())
	})

	t.Run("ParsePlayerID round trips the names", func(t *testing.T) {
		for _, player := range entity.Players {
			parsed, err := entity.ParsePlayerID(player.String())
			require.NoError(t, err)
			assert.Equal(t, player, parsed)
		}
	})

	t.Run("ParsePlayerID rejects unknown names", func(t *testing.T) {
		_, err := entity.ParsePlayerID("third")

		assert.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})
}

func TestPosition(t *testing.T) {
	t.Run("InBounds accepts the 3x3 grid only", func(t *testing.T) {
		for index := range 9 {
			assert.True(t, entity.PositionFromIndex(index).InBounds())
		}

		for _, pos := range []entity.Position{suite.Pos(-1, 0), suite.Pos(0, -1), suite.Pos(3, 0), suite.Pos(0, 3), suite.Pos(5, 5)} {
			assert.False(t, pos.InBounds(), pos.String())
		}
	})

	t.Run("Index is row-major", func(t *testing.T) {
		assert.Equal(t, 0, suite.Pos(0, 0).Index())
		assert.Equal(t, 5, suite.Pos(1, 2).Index())
		assert.Equal(t, 7, suite.Pos(2, 1).Index())
		assert.Equal(t, suite.Pos(2, 1), entity.PositionFromIndex(7))
	})
}

func TestBoard_Place(t *testing.T) {
	// Given: an empty board
	var board entity.Board

	// When: placing a mark
	next := board.Place(suite.Pos(1, 1), entity.First)

	// Then: the new board holds the mark and the original is untouched
	assert.Equal(t, entity.Occupied(entity.First), next.At(suite.Pos(1, 1)))
	assert.Equal(t, entity.Empty, board.At(suite.Pos(1, 1)))
	assert.Equal(t, 1, next.MoveCount())
	assert.Equal(t, 0, board.MoveCount())
}

func TestBoard_EmptyPositions(t *testing.T) {
	// Given: a board with a few marks
	board := suite.ParseBoard(t,
		"X.O",
		".X.",
		"O..",
	)

	// When: listing the empty cells
	positions := board.EmptyPositions()

	// Then: they come back in row-major order
	assert.Equal(t, []entity.Position{
		suite.Pos(0, 1), suite.Pos(1, 0), suite.Pos(1, 2), suite.Pos(2, 1), suite.Pos(2, 2),
	}, positions)
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		var board entity.Board

		assert.Equal(t, entity.InProgress(), board.Outcome())
	})

	t.Run("Every line wins for its owner", func(t *testing.T) {
		for i, combo := range entity.WinCombos {
			for _, player := range entity.Players {
				// Given: a board with only this line filled by one player
				var board entity.Board
				for _, index := range combo {
					board = board.Place(entity.PositionFromIndex(index), player)
				}

				// When: computing the outcome
				outcome := board.Outcome()

				// Then: the owner of the line wins
				assert.Equal(t, entity.Win(player), outcome, "line %d, player %s", i, player)
			}
		}
	})

	t.Run("Non-winning first row does not hide a later winning line", func(t *testing.T) {
		// Given: the first row is mixed, the last column belongs to O
		board := suite.ParseBoard(t,
			"XXO",
			"X.O",
			"..O",
		)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: O wins
		assert.Equal(t, entity.Win(entity.Second), outcome)
	})

	t.Run("Full board with a winning line is a win, not a tie", func(t *testing.T) {
		// Given: the ninth move completes the diagonal
		board := suite.ParseBoard(t,
			"XOX",
			"OXO",
			"OXX",
		)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: X wins
		assert.Equal(t, entity.Win(entity.First), outcome)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		board := suite.ParseBoard(t,
			"XOX",
			"XOO",
			"OXX",
		)

		assert.Equal(t, entity.Tie(), board.Outcome())
	})

	t.Run("Partial board without a line is in progress", func(t *testing.T) {
		board := suite.ParseBoard(t,
			"XO.",
			".X.",
			"..O",
		)

		outcome := board.Outcome()

		assert.Equal(t, entity.InProgress(), outcome)
		assert.False(t, outcome.IsOver())
	})
}

func TestOutcome(t *testing.T) {
	assert.True(t, entity.Win(entity.First).IsWinFor(entity.First))
	assert.False(t, entity.Win(entity.First).IsWinFor(entity.Second))
	assert.False(t, entity.Tie().IsWinFor(entity.First))
	assert.True(t, entity.Tie().IsOver())
	assert.Equal(t, "win (second)", entity.Win(entity.Second).String())
	assert.Equal(t, "tie", entity.Tie().String())
}

func TestBoard_String(t *testing.T) {
	board := suite.ParseBoard(t,
		"X.O",
		".X.",
		"O..",
	)

	assert.Equal(t, "X.O\n.X.\nO..", board.String())
}

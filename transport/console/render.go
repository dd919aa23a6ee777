package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

// color - the first player is blue, the second red.
func color(player entity.PlayerID) string {
	switch player {
	case entity.First:
		return "blue"
	case entity.Second:
		return "red"
	default:
		return ""
	}
}

func mark(cell entity.Cell) byte {
	switch player, _ := cell.Occupant(); player {
	case entity.First:
		return 'B'
	case entity.Second:
		return 'R'
	default:
		return '.'
	}
}

func controller(player entity.Player) string {
	if player.IsAI {
		return "computer"
	}
	return "human"
}

func (that *Server) render() {
	that.printf("%s", renderSession(that.uGame.Session()))
}

// renderSession - draws the board with coordinates, then the status line.
func renderSession(session tictactoe.Session) string {
	var builder strings.Builder

	builder.WriteString("  0 1 2\n")
	for row := range entity.BoardSize {
		builder.WriteByte(byte('0' + row))
		for col := range entity.BoardSize {
			builder.WriteByte(' ')
			builder.WriteByte(mark(session.Board.At(entity.Position{Row: row, Col: col})))
		}
		builder.WriteByte('\n')
	}

	switch outcome := tictactoe.CurrentOutcome(session); outcome.Status {
	case entity.StatusWin:
		builder.WriteString(color(outcome.Winner) + " wins, type new to play again\n")
	case entity.StatusTie:
		builder.WriteString("tie, type new to play again\n")
	default:
		turn := tictactoe.CurrentTurn(session)
		builder.WriteString(color(turn) + " to move (" + controller(session.Player(turn)) + ")\n")
	}

	return builder.String()
}

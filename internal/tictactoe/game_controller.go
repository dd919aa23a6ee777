package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// TryMove - places the mark of player on pos and returns the updated session.
// On error the returned session is the input, unchanged.
func TryMove(session Session, pos entity.Position, player entity.PlayerID) (Session, error) {
	if CurrentOutcome(session).IsOver() {
		return session, apperror.ErrGameOver
	}

	if err := validateMove(session, player, pos); err != nil {
		return session, fmt.Errorf("invalid move: %w", err)
	}

	session.Board = session.Board.Place(pos, player)
	session.Moves++
	updateGameStatus(&session, player)

	return session, nil
}

// validateMove - checks if the move is valid.
func validateMove(session Session, player entity.PlayerID, pos entity.Position) error {
	if session.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	if !session.Board.At(pos).IsEmpty() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(session *Session, player entity.PlayerID) {
	switch outcome := session.Board.Outcome(); outcome.Status {
	case entity.StatusWin:
		session.Players[outcome.Winner.Index()].HasWon = true
		session.Turn = entity.NoPlayer
	case entity.StatusTie:
		session.Turn = entity.NoPlayer
	default:
		session.Turn = player.Opponent()
	}
}

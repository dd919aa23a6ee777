package tictactoe

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// Session holds one game from the first move to the final outcome. It is a
// value: every operation returns a new Session and leaves its input alone.
type Session struct {
	ID      string
	Board   entity.Board
	Turn    entity.PlayerID
	Moves   int
	Players [2]entity.Player
}

// NewGame - returns an empty game with the first player to move. The listed
// players are controlled by the computer.
func NewGame(aiPlayers ...entity.PlayerID) Session {
	session := Session{
		ID:   uuid.NewString(),
		Turn: entity.First,
	}

	for i, id := range entity.Players {
		session.Players[i] = entity.Player{ID: id}
	}

	for _, id := range aiPlayers {
		if id.IsValid() {
			session.Players[id.Index()].IsAI = true
		}
	}

	return session
}

// Reset - starts a new game with the same computer-controlled seats. Nothing
// else carries over.
func Reset(session Session) Session {
	return NewGame(session.aiPlayers()...)
}

// SetAI - hands a seat to the computer or back to a human.
func SetAI(session Session, player entity.PlayerID, isAI bool) (Session, error) {
	if !player.IsValid() {
		return session, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, player)
	}

	session.Players[player.Index()].IsAI = isAI
	return session, nil
}

// CurrentOutcome - recomputes the outcome from the board.
func CurrentOutcome(session Session) entity.Outcome {
	return session.Board.Outcome()
}

// CurrentTurn - returns the player expected to move, NoPlayer once the game is over.
func CurrentTurn(session Session) entity.PlayerID {
	return session.Turn
}

// Player - returns the record of one side.
func (that Session) Player(id entity.PlayerID) entity.Player {
	if !id.IsValid() {
		return entity.Player{}
	}
	return that.Players[id.Index()]
}

// IsAITurn - reports whether the computer has to play the next move.
func (that Session) IsAITurn() bool {
	return !CurrentOutcome(that).IsOver() && that.Player(that.Turn).IsAI
}

func (that Session) aiPlayers() []entity.PlayerID {
	var ids []entity.PlayerID
	for _, player := range that.Players {
		if player.IsAI {
			ids = append(ids, player.ID)
		}
	}
	return ids
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

// PlayerID identifies one of the two sides of the game.
type PlayerID uint8

const (
	// NoPlayer is nobody's turn: it is only reported once the game is over.
	NoPlayer PlayerID = iota
	First
	Second
)

// Players lists both sides in turn order.
var Players = [2]PlayerID{First, Second}

func (that PlayerID) IsValid() bool {
	return that == First || that == Second
}

// Opponent - returns the other side. NoPlayer has no opponent.
func (that PlayerID) Opponent() PlayerID {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoPlayer
	}
}

// Index - returns the slot of the player in a two-element array.
func (that PlayerID) Index() int {
	return int(that) - 1
}

func (that PlayerID) String() string {
	switch that {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

// ParsePlayerID - accepts the names produced by PlayerID.String.
func ParsePlayerID(name string) (PlayerID, error) {
	switch name {
	case "first":
		return First, nil
	case "second":
		return Second, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}
}

// Player is the per-game record of one side.
type Player struct {
	ID     PlayerID
	IsAI   bool
	HasWon bool
}

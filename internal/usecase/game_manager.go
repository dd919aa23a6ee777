package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

type botService interface {
	BestMove(board entity.Board, aiPlayer entity.PlayerID) (entity.Position, error)
}

// MoveRequest is one input from the front end: either a cell for the player on
// turn, or Bot set to let the computer play that turn instead.
type MoveRequest struct {
	Position entity.Position
	Bot      bool
}

// CellRequest - asks to play pos for the player on turn.
func CellRequest(pos entity.Position) *MoveRequest {
	return &MoveRequest{Position: pos}
}

// BotRequest - asks the computer to play the current turn.
func BotRequest() *MoveRequest {
	return &MoveRequest{Bot: true}
}

type GameManager struct {
	logger *slog.Logger
	bot    botService

	session tictactoe.Session
}

func NewGameManager(logger *slog.Logger, bot botService, aiPlayers ...entity.PlayerID) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game-manager"),
		bot:    bot,
	}
	manager.startSession(tictactoe.NewGame(aiPlayers...))

	return manager
}

// Session - returns a copy of the current game.
func (that *GameManager) Session() tictactoe.Session {
	return that.session
}

// Tick - consumes at most one request. On the computer's turn the computer
// moves first and a cell request from the same tick is rejected.
func (that *GameManager) Tick(req *MoveRequest) (tictactoe.Session, error) {
	if tictactoe.CurrentOutcome(that.session).IsOver() {
		if req != nil {
			return that.session, apperror.ErrGameOver
		}
		return that.session, nil
	}

	if that.session.IsAITurn() {
		if err := that.makeBotTurn(); err != nil {
			return that.session, err
		}

		if req != nil && !req.Bot {
			return that.session, apperror.ErrNotYourTurn
		}
		return that.session, nil
	}

	switch {
	case req == nil:
		return that.session, nil
	case req.Bot:
		return that.session, that.makeBotTurn()
	default:
		return that.session, that.MakeTurn(req.Position)
	}
}

// MakeTurn - plays pos for the human on turn.
func (that *GameManager) MakeTurn(pos entity.Position) error {
	player := tictactoe.CurrentTurn(that.session)
	if that.session.Player(player).IsAI {
		return apperror.ErrNotYourTurn
	}

	return that.applyMove(pos, player)
}

// PlayAgain - replaces the current game with a fresh one.
func (that *GameManager) PlayAgain() tictactoe.Session {
	that.startSession(tictactoe.Reset(that.session))
	return that.session
}

// ToggleAI - hands a seat to the computer or back to a human.
func (that *GameManager) ToggleAI(player entity.PlayerID) (tictactoe.Session, error) {
	session, err := tictactoe.SetAI(that.session, player, !that.session.Player(player).IsAI)
	if err != nil {
		return that.session, fmt.Errorf("failed to toggle AI: %w", err)
	}

	that.session = session
	that.logger.Info("seat changed", "session", session.ID, "player", player.String(), "ai", session.Player(player).IsAI)

	return that.session, nil
}

func (that *GameManager) makeBotTurn() error {
	player := tictactoe.CurrentTurn(that.session)

	pos, err := that.bot.BestMove(that.session.Board, player)
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = that.applyMove(pos, player); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *GameManager) applyMove(pos entity.Position, player entity.PlayerID) error {
	log := that.logger.With("method", "applyMove", "session", that.session.ID)

	session, err := tictactoe.TryMove(that.session, pos, player)
	if err != nil {
		if errors.Is(err, apperror.ErrOutOfBounds) {
			log.Warn("move outside the board", "player", player.String(), "cell", pos.String())
		}
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.session = session
	log.Info("move applied", "player", player.String(), "cell", pos.String(), "moves", session.Moves)

	if outcome := tictactoe.CurrentOutcome(session); outcome.IsOver() {
		log.Info("game finished", "outcome", outcome.String())
	}

	return nil
}

func (that *GameManager) startSession(session tictactoe.Session) {
	that.session = session
	that.logger.Info("game started", "session", session.ID, "first_ai", session.Player(entity.First).IsAI, "second_ai", session.Player(entity.Second).IsAI)
}

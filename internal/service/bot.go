package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// winScore is the value of an immediate win. Every ply spent before the game
// ends moves the score one step towards zero, so quicker wins and slower
// losses rank higher.
const winScore = 10

type BotService interface {
	BestMove(board entity.Board, aiPlayer entity.PlayerID) (entity.Position, error)
}

type botService struct {
	logger  *slog.Logger
	pruning bool
}

// NewBotService - returns a minimax player. With pruning enabled the search
// cuts branches with alpha-beta; the chosen cell is the same either way.
func NewBotService(logger *slog.Logger, pruning bool) BotService {
	return &botService{
		logger:  logger.With("component", "bot"),
		pruning: pruning,
	}
}

// BestMove - returns the cell the AI plays under optimal play from both sides,
// searching the whole game tree without pruning.
func BestMove(board entity.Board, aiPlayer entity.PlayerID) (entity.Position, error) {
	pos, _, err := search(board, aiPlayer, false)
	return pos, err
}

func (that *botService) BestMove(board entity.Board, aiPlayer entity.PlayerID) (entity.Position, error) {
	log := that.logger.With("method", "BestMove", "player", aiPlayer.String())

	pos, stats, err := search(board, aiPlayer, that.pruning)
	if err != nil {
		return entity.Position{}, err
	}

	log.Debug("move selected", "cell", pos.String(), "score", stats.score, "nodes", stats.nodes, "pruning", that.pruning)

	return pos, nil
}

type searchStats struct {
	score int
	nodes int
}

type searcher struct {
	ai       entity.PlayerID
	opponent entity.PlayerID
	pruning  bool
	nodes    int
}

// search - scores every empty cell in row-major order and keeps the first one
// with the strictly greatest score.
func search(board entity.Board, aiPlayer entity.PlayerID, pruning bool) (entity.Position, searchStats, error) {
	if !aiPlayer.IsValid() {
		return entity.Position{}, searchStats{}, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, aiPlayer)
	}

	moves := board.EmptyPositions()
	if len(moves) == 0 {
		return entity.Position{}, searchStats{}, apperror.ErrNoLegalMoves
	}

	if outcome := board.Outcome(); outcome.IsOver() {
		return entity.Position{}, searchStats{}, fmt.Errorf("%w: %s", apperror.ErrGameOver, outcome)
	}

	s := &searcher{
		ai:       aiPlayer,
		opponent: aiPlayer.Opponent(),
		pruning:  pruning,
	}

	bestMove := moves[0]
	bestScore := math.MinInt
	for _, pos := range moves {
		score := s.minimax(board.Place(pos, s.ai), 0, false, bestScore, math.MaxInt)
		if score > bestScore {
			bestScore = score
			bestMove = pos
		}
	}

	return bestMove, searchStats{score: bestScore, nodes: s.nodes}, nil
}

// minimax - returns the value of board for the AI. alpha and beta bound the
// window the caller still cares about; they are only consulted when pruning.
// Scores inside the window are exact, so pruning never changes a result.
func (that *searcher) minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	switch outcome := board.Outcome(); {
	case outcome.IsWinFor(that.ai):
		return winScore - depth
	case outcome.IsWinFor(that.opponent):
		return depth - winScore
	case outcome.Status == entity.StatusTie:
		return 0
	}

	moves := board.EmptyPositions()
	if len(moves) == 0 {
		panic(fmt.Sprintf("minimax: full board is not terminal:\n%s", board))
	}

	if maximizing {
		best := math.MinInt
		for _, pos := range moves {
			best = max(best, that.minimax(board.Place(pos, that.ai), depth+1, false, alpha, beta))
			if that.pruning {
				alpha = max(alpha, best)
				if alpha >= beta {
					break
				}
			}
		}
		return best
	}

	best := math.MaxInt
	for _, pos := range moves {
		best = min(best, that.minimax(board.Place(pos, that.opponent), depth+1, true, alpha, beta))
		if that.pruning {
			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

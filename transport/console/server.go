package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")

	errQuit = errors.New("quit")
)

type uGame interface {
	Session() tictactoe.Session
	Tick(req *usecase.MoveRequest) (tictactoe.Session, error)
	PlayAgain() tictactoe.Session
	ToggleAI(player entity.PlayerID) (tictactoe.Session, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
	out    io.Writer

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, uGame uGame, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		out:    out,

		handlers: make(map[string]func([]string) error),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["ai"] = server.handleBotMove
	server.handlers["toggle"] = server.handleToggle
	server.handlers["new"] = server.handleNewGame
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - reads commands line by line until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	if err := that.advance(); err != nil {
		return err
	}
	that.render()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.readError(readErr)
			}

			if err := that.handleLine(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (that *Server) readError(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}
	return nil
}

// handleLine - runs one command, lets the computer answer and redraws the board.
// Only quitting and search failures end the loop.
func (that *Server) handleLine(line string) error {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	if _, err := strconv.Atoi(name); err == nil {
		name, args = "move", fields
	}

	handler, ok := that.handlers[name]
	if !ok {
		that.printf("%s: %q, type help\n", ErrUnknownCommand, name)
		return nil
	}

	if err := handler(args); err != nil {
		if errors.Is(err, errQuit) || errors.Is(err, apperror.ErrNoLegalMoves) {
			return err
		}
		log.Debug("command rejected", "command", name, "error", err)
		that.printf("%s\n", describe(err))
	}

	if err := that.advance(); err != nil {
		return err
	}
	that.render()

	return nil
}

// advance - plays every computer turn until a human has to move or the game ends.
func (that *Server) advance() error {
	for that.uGame.Session().IsAITurn() {
		if _, err := that.uGame.Tick(nil); err != nil {
			return fmt.Errorf("computer turn failed: %w", err)
		}
	}
	return nil
}

func (that *Server) handleMove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move needs a row and a column", ErrBadArguments)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q", ErrBadArguments, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: column %q", ErrBadArguments, args[1])
	}

	_, err = that.uGame.Tick(usecase.CellRequest(entity.Position{Row: row, Col: col}))
	return err
}

func (that *Server) handleBotMove(_ []string) error {
	_, err := that.uGame.Tick(usecase.BotRequest())
	return err
}

func (that *Server) handleToggle(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: toggle needs first or second", ErrBadArguments)
	}

	player, err := entity.ParsePlayerID(args[0])
	if err != nil {
		return err
	}

	_, err = that.uGame.ToggleAI(player)
	return err
}

func (that *Server) handleNewGame(_ []string) error {
	that.uGame.PlayAgain()
	return nil
}

func (that *Server) handleHelp(_ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ []string) error {
	return errQuit
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// describe - turns a rejected move into a short message for the player.
func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameOver):
		return "the game is over, type new to play again"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "it's the computer's turn"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "pick a row and a column between 0 and 2"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is already taken"
	default:
		return err.Error()
	}
}

const helpText = `commands:
  <row> <col>          place your mark, rows and columns count from 0
  ai                   let the computer play your turn
  toggle first|second  switch a side between human and computer
  new                  play again
  quit                 leave
`

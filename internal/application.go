package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-core/transport/console"
	"golang.org/x/sync/errgroup"
)

// RunApp - runs the application until the player quits, input ends or ctx is done.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	aiPlayers, err := conf.Game.AIPlayers()
	if err != nil {
		return fmt.Errorf("could not read game mode: %w", err)
	}

	pruning, err := conf.Search.Pruning()
	if err != nil {
		return fmt.Errorf("could not read search algorithm: %w", err)
	}

	botService := service.NewBotService(logger, pruning)
	gameManager := usecase.NewGameManager(logger, botService, aiPlayers...)
	consoleServer := console.New(logger, gameManager, out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errg, ctx := errgroup.WithContext(ctx)

	// run console
	errg.Go(func() error {
		defer cancel()

		log.Info("Starting console", "mode", conf.Game.Mode, "algorithm", conf.Search.Algorithm)
		if consoleErr := consoleServer.Start(ctx, in); consoleErr != nil {
			log.Error("console error", "error", consoleErr)
			return fmt.Errorf("console error: %w", consoleErr)
		}

		return nil
	})

	errg.Go(func() error {
		<-ctx.Done()
		log.Info("Application context canceled, shutting down")
		return nil
	})

	return errg.Wait()
}

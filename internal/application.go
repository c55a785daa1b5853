package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one match on the process's standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	shell := console.New(logger, in, out)
	defer shell.Close()

	selector := service.NewRandomSelector(conf.AISeed)
	engine := usecase.NewMatchEngine(logger, shell, selector, shell)

	shell.Welcome()

	outcome, err := engine.RunMatch(ctx)
	if err != nil {
		return fmt.Errorf("match aborted: %w", err)
	}

	log.Debug("Match complete", "match_id", outcome.ID, "winner", outcome.Winner)

	return nil
}

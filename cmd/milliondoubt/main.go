package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"

	"github.com/minaorangina/milliondoubt/config"
	"github.com/minaorangina/milliondoubt/engine"
	"github.com/minaorangina/milliondoubt/game"
	"github.com/minaorangina/milliondoubt/players"
	"github.com/minaorangina/milliondoubt/server"
	"github.com/minaorangina/milliondoubt/store"
	"go.uber.org/zap"
)

const defaultPlayerName = "Player"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game failed", zap.Error(err))
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	gameID := players.NewID()

	name := cfg.PlayerName
	if name == "" {
		name = defaultPlayerName
	}

	human := players.NewHuman(players.NewID(), name, os.Stdin, os.Stdout)
	cpu := players.NewCPU(players.CPUOpts{
		Name:      "CPU",
		Rng:       rand.New(rand.NewSource(rng.Int63())),
		DoubtRate: cfg.CPUDoubtRate,
		BluffRate: cfg.CPUBluffRate,
	})
	ps := players.NewPlayers(human, cpu)

	str := store.NewInMemoryGameStore()
	if err := str.AddGame(gameID, ps.Info()); err != nil {
		return err
	}

	if cfg.SpectatorAddr != "" {
		spectators := server.NewServer(str, logger.Named("server"))
		spectators.Addr = cfg.SpectatorAddr
		go func() {
			logger.Info("spectator server listening", zap.String("addr", cfg.SpectatorAddr))
			if err := spectators.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectator server stopped", zap.Error(err))
			}
		}()
		defer spectators.Close()
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:  gameID,
		Players: ps,
		Game: game.New(game.Opts{
			GameID:         gameID,
			HandSize:       cfg.HandSize,
			BurstThreshold: cfg.BurstThreshold,
			Rng:            rng,
		}),
		Sink:        engine.MultiSink{human, engine.NewZapSink(logger.Named("events")), str},
		Logger:      logger.Named("engine").With(zap.Int64("seed", cfg.Seed)),
		MaxAttempts: cfg.MaxAttempts,
	})
	if err != nil {
		return err
	}

	if err := ge.Start(); err != nil {
		return err
	}

	// the human blocks on stdin, so the game runs beside the signal handler
	done := make(chan error, 1)
	go func() {
		_, err := ge.Run(ctx)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

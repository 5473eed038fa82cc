package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"gotcha/config"
	"gotcha/engine"
	"gotcha/game"
	"gotcha/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file (default: XDG search for gotcha/config.yaml)")
	seed := flag.Uint64("seed", 0, "Seed for the dice, overrides the config file (0: random)")
	scriptPath := flag.String("script", "", "Play the commands in this file instead of reading stdin")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(*configPath, *seed, *scriptPath); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}

func run(configPath string, seed uint64, scriptPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if seed == 0 {
		seed = cfg.Seed
	}
	stateOpts := []game.Option{game.WithMaxDepth(cfg.MaxDepth)}
	if seed != 0 {
		stateOpts = append(stateOpts, game.WithSeed(seed))
	}

	match, err := engine.New(cfg.Setup, engine.WithStateOptions(stateOpts...))
	if err != nil {
		return err
	}
	match.SubscribeAll(func(e game.Event) {
		log.Info().Str("kind", string(e.Kind())).Msgf("%+v", e)
	})

	var ctrl engine.Controller = player.NewConsole(os.Stdin, os.Stdout)
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if ctrl, err = player.NewScript(f); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	winner, err := match.Run(ctx, ctrl)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info().Msg("match left unfinished")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("%s wins!\n", cfg.Setup.Players[winner].Name)
	return player.RenderBoard(os.Stdout, match.State)
}

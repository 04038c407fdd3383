// tictacchess runs the game server, AI self-play and AI experiments.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tictacchess/communication/client"
	"tictacchess/communication/server"
	"tictacchess/config"
	"tictacchess/engine"
	"tictacchess/experiments"
	"tictacchess/game"
	"tictacchess/gamemaster"
	"tictacchess/searcher"
	"tictacchess/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Command-line flags; unset values fall back to the config file
var (
	flagMode       = flag.String("mode", "serve", "serve, selfplay, remote or experiment")
	flagWhite      = flag.String("white", "", "Difficulty of White in selfplay and remote (easy, medium, hard)")
	flagBlack      = flag.String("black", "", "Difficulty of Black in selfplay and of the server AI in remote")
	flagDepth      = flag.Int("depth", 0, "Hard search depth in plies")
	flagSeed       = flag.Uint64("seed", 0, "Random seed for Easy and Medium, 0 seeds from the clock")
	flagAddr       = flag.String("addr", "", "Listen address for serve")
	flagServer     = flag.String("server", "http://localhost:3000", "Server URL for remote")
	flagExperiment = flag.String("experiment", "difficulty", "difficulty or depth")
	flagDebug      = flag.Bool("debug", false, "Log at debug level")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *flagSaveConfig {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *flagMode {
	case "serve":
		err = serve(ctx, cfg)
	case "selfplay":
		err = selfplay(cfg)
	case "remote":
		err = remote(ctx, cfg)
	case "experiment":
		err = experiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *flagMode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *flagMode)
	}
}

func applyFlags(cfg *config.Config) {
	if *flagDepth > 0 {
		cfg.Game.Depth = *flagDepth
	}
	if *flagSeed > 0 {
		cfg.Game.Seed = *flagSeed
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagDebug {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
}

func searcherOptions(cfg *config.Config) []searcher.Option {
	options := []searcher.Option{searcher.WithDepth(cfg.Game.Depth), searcher.WithMetrics()}
	if cfg.Game.Seed > 0 {
		options = append(options, searcher.WithSeed(cfg.Game.Seed))
	}
	return options
}

// difficulty returns the flag's difficulty, or the configured one when the flag is empty.
func difficulty(cfg *config.Config, flagValue string) (searcher.Difficulty, error) {
	if flagValue == "" {
		flagValue = cfg.Game.Difficulty
	}
	return searcher.ParseDifficulty(flagValue)
}

func serve(ctx context.Context, cfg *config.Config) error {
	manager := gamemaster.NewManager(
		gamemaster.WithThinkDelay(cfg.ThinkDelay()),
		gamemaster.WithHandCount(cfg.Game.HandCount),
		gamemaster.WithSearcherOptions(searcherOptions(cfg)...),
	)
	s := server.New(manager)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		s.Shutdown()
	}()
	return s.Listen(cfg.Server.Addr)
}

func selfplay(cfg *config.Config) error {
	white, err := difficulty(cfg, *flagWhite)
	if err != nil {
		return err
	}
	black, err := difficulty(cfg, *flagBlack)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(
		agent.NewAgent(searcher.New(searcherOptions(cfg)...), white),
		agent.NewAgent(searcher.New(searcherOptions(cfg)...), black),
		game.WithHandCount(cfg.Game.HandCount),
	)
	_, gameMetric, _ := e.Run()
	log.Info().Msgf("%s after %d moves in %s", e.State.Status, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

// remote plays White locally against the AI of a server, which plays Black.
func remote(ctx context.Context, cfg *config.Config) error {
	white, err := difficulty(cfg, *flagWhite)
	if err != nil {
		return err
	}
	black, err := difficulty(cfg, *flagBlack)
	if err != nil {
		return err
	}

	c := client.New(*flagServer)
	view, err := c.CreateGame(ctx, string(gamemaster.ModeAI), black.String())
	if err != nil {
		return err
	}
	log.Info().Msgf("playing game %s on %s", view.ID, *flagServer)
	defer func() {
		if err := c.Delete(context.Background()); err != nil {
			log.Warn().Err(err).Msgf("failed to delete game %s", view.ID)
		}
	}()

	e := engine.RemoteEngine(agent.NewAgent(searcher.New(searcherOptions(cfg)...), white), game.White, c,
		game.WithHandCount(cfg.Game.HandCount))
	_, gameMetric, _, err := e.RunContext(ctx)
	if err != nil {
		return err
	}
	log.Info().Msgf("%s after %d moves in %s", e.State.Status, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func experiment(cfg *config.Config) error {
	var (
		dir string
		err error
	)
	switch *flagExperiment {
	case "difficulty":
		dir, err = experiments.RunDifficultyExperiment(cfg.Experiments.OutputDir)
	case "depth":
		dir, err = experiments.RunDepthExperiment(cfg.Experiments.OutputDir)
	default:
		err = fmt.Errorf("unknown experiment %q", *flagExperiment)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}

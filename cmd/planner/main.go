package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/upperhold/config"
	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/equity"
	"github.com/domino14/upperhold/report"
	"github.com/domino14/upperhold/strategy"
)

var (
	GitVersion string
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Str("version", GitVersion).Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			log.Fatal().Err(err).Msg("could-not-create-cpu-profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("planner-failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	hand, err := dice.ParseHand(cfg.GetString(config.ConfigHand))
	if err != nil {
		return err
	}
	sides := cfg.GetInt(config.ConfigSides)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration(config.ConfigTimeout))
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	p := strategy.NewPlanner()
	if t := cfg.GetInt(config.ConfigThreads); t > 0 {
		p.SetThreads(t)
	}
	p.SetMaxOutcomes(cfg.GetInt(config.ConfigMaxOutcomes))

	var res strategy.Result
	if cfg.GetBool(config.ConfigRank) {
		res, err = p.Rank(ctx, hand, sides)
	} else {
		res, err = p.Plan(ctx, hand, sides)
	}
	if err != nil {
		return err
	}
	if err := report.Write(os.Stdout, res, cfg.GetString(config.ConfigFormat)); err != nil {
		return err
	}

	if cfg.GetBool(config.ConfigHistogram) {
		d, err := equity.ScoreDistribution(res.Hold, sides, len(res.Reroll))
		if err != nil {
			return err
		}
		return report.Histogram(os.Stdout, d)
	}
	return nil
}

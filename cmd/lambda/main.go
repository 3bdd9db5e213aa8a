package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/upperhold/config"
	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/strategy"
)

var cfg *config.Config

// PlanEvent is the request payload. Hand accepts a list of ints or a
// string like "11156". Sides defaults to the configured value.
type PlanEvent struct {
	Hand  dice.Hand `json:"hand"`
	Sides int       `json:"sides,omitempty"`
	Rank  bool      `json:"rank,omitempty"`
}

func HandleRequest(ctx context.Context, evt PlanEvent) (strategy.Result, error) {
	sides := evt.Sides
	if sides == 0 {
		sides = cfg.GetInt(config.ConfigSides)
	}
	logger := log.With().Str("hand", evt.Hand.String()).Int("sides", sides).Logger()

	ctx, cancel := context.WithTimeout(ctx, cfg.GetDuration(config.ConfigTimeout))
	defer cancel()

	p := strategy.NewPlanner()
	if t := cfg.GetInt(config.ConfigThreads); t > 0 {
		p.SetThreads(t)
	}
	p.SetMaxOutcomes(cfg.GetInt(config.ConfigMaxOutcomes))

	tstart := time.Now()
	var res strategy.Result
	var err error
	if evt.Rank {
		res, err = p.Rank(logger.WithContext(ctx), evt.Hand, sides)
	} else {
		res, err = p.Plan(logger.WithContext(ctx), evt.Hand, sides)
	}
	if err != nil {
		logger.Err(err).Msg("plan-failed")
		return strategy.Result{}, err
	}
	logger.Info().Str("hold", res.Hold.String()).Float64("ev", res.ExpectedValue).
		Dur("elapsed", time.Since(tstart)).Msg("plan-done")
	return res, nil
}

func main() {
	cfg = &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	lambda.Start(HandleRequest)
}

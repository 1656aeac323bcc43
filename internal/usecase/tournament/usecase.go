package tournament

import (
	"context"
	"fmt"

	"wordsnake-arena/internal/application/port/input"
	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"
)

const defaultExperiments = 100

var _ input.TournamentRunner = (*UseCase)(nil)

// MatchFactory builds the runner for one experiment around its dedicated
// logger. The tournament opens a fresh log sink per experiment the way the
// original arena kept one log file per game.
type MatchFactory func(logger output.LoggerPort) input.MatchRunner

type Config struct {
	Experiments int
}

type UseCase struct {
	newMatch  MatchFactory
	loggerFor output.LoggerFactory
	recorder  output.ResultRecorder
	spectator output.SpectatorPort
	logger    output.LoggerPort
	cfg       Config
}

func New(
	newMatch MatchFactory,
	loggerFor output.LoggerFactory,
	recorder output.ResultRecorder,
	spectator output.SpectatorPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.Experiments <= 0 {
		cfg.Experiments = defaultExperiments
	}
	return &UseCase{
		newMatch:  newMatch,
		loggerFor: loggerFor,
		recorder:  recorder,
		spectator: spectator,
		logger:    logger,
		cfg:       cfg,
	}
}

// Run plays the configured number of experiments sequentially, recording a
// result row for each. A failed experiment aborts the tournament; already
// recorded results stay on disk.
func (uc *UseCase) Run(ctx context.Context) (*entity.TournamentResult, error) {
	result := &entity.TournamentResult{}

	for experiment := 1; experiment <= uc.cfg.Experiments; experiment++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("tournament interrupted: %w", err)
		}

		matchLog, err := uc.loggerFor(experiment)
		if err != nil {
			return result, fmt.Errorf("failed to open log for experiment %d: %w", experiment, err)
		}

		uc.logger.Info("Running experiment", "experiment", experiment)
		matchLog.Info("Running experiment", "experiment", experiment)

		matchResult, err := uc.newMatch(matchLog).Run(ctx, experiment)
		if cerr := matchLog.Close(); cerr != nil {
			uc.logger.Warn("Failed to close experiment log", "experiment", experiment, "error", cerr)
		}
		if err != nil {
			return result, fmt.Errorf("experiment %d failed: %w", experiment, err)
		}

		if err := uc.recorder.Record(*matchResult); err != nil {
			return result, fmt.Errorf("failed to record experiment %d: %w", experiment, err)
		}

		result.Played++
		result.Results = append(result.Results, *matchResult)
	}

	uc.spectator.ShowClosing(ctx, result.Played)
	return result, nil
}

package di

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"wordsnake-arena/internal/application/port/input"
	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"
	"wordsnake-arena/internal/infrastructure/llm/native"
	"wordsnake-arena/internal/infrastructure/llm/ollama"
	"wordsnake-arena/internal/infrastructure/logger"
	"wordsnake-arena/internal/infrastructure/prompts"
	"wordsnake-arena/internal/infrastructure/recorder"
	"wordsnake-arena/internal/infrastructure/spectator"
	"wordsnake-arena/internal/usecase/match"
	"wordsnake-arena/internal/usecase/referee"
	"wordsnake-arena/internal/usecase/tournament"
)

const (
	BackendOpenAI = "openai"
	BackendNative = "native"
)

type Config struct {
	ModelA      string
	ModelB      string
	Backend     string
	Host        string
	Experiments int
	MaxTurns    int
	StartWord   string
	Category    string
	Temperature float32
	DataDir     string
	LogsDir     string
	LogRequests bool
}

type Container struct {
	Logger     output.LoggerPort
	Recorder   output.ResultRecorder
	Tournament input.TournamentRunner

	// ResultsPath is where this run's CSV lands, e.g. data/1724919000/game_results.csv.
	ResultsPath string
}

// NewContainer wires one tournament run. Each run gets its own timestamped
// data and logs directories, matching the original arena's layout.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	runLogsDir := filepath.Join(cfg.LogsDir, stamp)

	log, err := logger.NewFileLogger(filepath.Join(runLogsDir, "arena.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	resultsPath := filepath.Join(cfg.DataDir, stamp, "game_results.csv")
	rec, err := recorder.NewCSVRecorder(resultsPath)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create result recorder: %w", err)
	}

	systemPrompt, err := prompts.GenerateRulesPrompt(prompts.RulesPromptTemplate, cfg.Category)
	if err != nil {
		rec.Close()
		log.Close()
		return nil, fmt.Errorf("failed to generate rules prompt: %w", err)
	}

	llmA, err := newLLM(cfg, cfg.ModelA, log)
	if err != nil {
		rec.Close()
		log.Close()
		return nil, fmt.Errorf("failed to create seat A backend: %w", err)
	}
	llmB, err := newLLM(cfg, cfg.ModelB, log)
	if err != nil {
		rec.Close()
		log.Close()
		return nil, fmt.Errorf("failed to create seat B backend: %w", err)
	}

	console := spectator.NewConsole()
	ref := referee.New()

	matchCfg := match.Config{
		PlayerA:      entity.Player{Seat: entity.SeatA, Model: cfg.ModelA},
		PlayerB:      entity.Player{Seat: entity.SeatB, Model: cfg.ModelB},
		SeedWord:     cfg.StartWord,
		MaxTurns:     cfg.MaxTurns,
		Temperature:  cfg.Temperature,
		SystemPrompt: systemPrompt,
	}

	newMatch := func(matchLog output.LoggerPort) input.MatchRunner {
		return match.New(llmA, llmB, ref, console, matchLog, matchCfg)
	}

	tour := tournament.New(
		newMatch,
		logger.ExperimentLoggerFactory(runLogsDir),
		rec,
		console,
		log,
		tournament.Config{Experiments: cfg.Experiments},
	)

	return &Container{
		Logger:      log,
		Recorder:    rec,
		Tournament:  tour,
		ResultsPath: resultsPath,
	}, nil
}

func newLLM(cfg Config, model string, log output.LoggerPort) (output.LLMPort, error) {
	var httpLog output.LoggerPort
	if cfg.LogRequests {
		httpLog = log
	}

	switch cfg.Backend {
	case BackendNative:
		return native.NewAdapter(native.Config{
			Host:   cfg.Host,
			Model:  model,
			Logger: httpLog,
		})
	case "", BackendOpenAI:
		adapterCfg := ollama.DefaultConfig(model)
		if cfg.Host != "" {
			adapterCfg.Host = cfg.Host
		}
		adapterCfg.Logger = httpLog
		return ollama.NewAdapter(adapterCfg), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func (c *Container) Close() {
	if c.Recorder != nil {
		c.Recorder.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

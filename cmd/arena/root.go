package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wordsnake-arena/internal/config"
	"wordsnake-arena/internal/di"
	"wordsnake-arena/internal/infrastructure/env"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultModelA = "llama3:8b-instruct-q8_0"
	defaultModelB = "gemma2:9b-instruct-q8_0"
)

type options struct {
	modelA      string
	modelB      string
	experiments int
	maxTurns    int
	startWord   string
	category    string
	host        string
	backend     string
	configPath  string
	dataDir     string
	logsDir     string
	temperature float32
	logRequests bool
}

// Flag defaults come from the environment (dotenv included), so precedence
// ends up: flag > env > config file > built-in default.
func newRootCmd() *cobra.Command {
	envSvc := env.NewEnvService()

	opts := &options{
		modelA:      envSvc.GetWithDefault("ARENA_MODEL_A", defaultModelA),
		modelB:      envSvc.GetWithDefault("ARENA_MODEL_B", defaultModelB),
		experiments: envSvc.GetInt("ARENA_EXPERIMENTS", 100),
		maxTurns:    envSvc.GetInt("ARENA_MAX_TURNS", 200),
		startWord:   envSvc.GetWithDefault("ARENA_START_WORD", "Giraffe"),
		category:    envSvc.GetWithDefault("ARENA_CATEGORY", "animal"),
		host:        envSvc.GetWithDefault("ARENA_HOST", "http://localhost:11434"),
		backend:     envSvc.GetWithDefault("ARENA_BACKEND", di.BackendOpenAI),
		dataDir:     envSvc.GetWithDefault("ARENA_DATA_DIR", "data"),
		logsDir:     envSvc.GetWithDefault("ARENA_LOGS_DIR", "logs"),
		temperature: envSvc.GetFloat32("ARENA_TEMPERATURE", 0.8),
		logRequests: envSvc.GetBool("ARENA_LOG_REQUESTS", false),
	}

	cmd := &cobra.Command{
		Use:           "arena",
		Short:         "Run word-snake matches between two Ollama-served models",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, envSvc, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.modelA, "model-a", opts.modelA, "Model tag for seat A")
	flags.StringVar(&opts.modelB, "model-b", opts.modelB, "Model tag for seat B")
	flags.IntVar(&opts.experiments, "experiments", opts.experiments, "Number of experiments to run")
	flags.IntVar(&opts.maxTurns, "max-turns", opts.maxTurns, "Turn cap per experiment")
	flags.StringVar(&opts.startWord, "start-word", opts.startWord, "Seed word opening every match")
	flags.StringVar(&opts.category, "category", opts.category, "Kind of word the chain is built from")
	flags.StringVar(&opts.host, "host", opts.host, "Ollama base URL")
	flags.StringVar(&opts.backend, "backend", opts.backend, "LLM backend: openai or native")
	flags.StringVar(&opts.configPath, "config", "", "Optional config file (.toml/.yaml/.json)")
	flags.StringVar(&opts.dataDir, "data-dir", opts.dataDir, "Directory for result CSVs")
	flags.StringVar(&opts.logsDir, "logs-dir", opts.logsDir, "Directory for run logs")
	flags.Float32Var(&opts.temperature, "temperature", opts.temperature, "Sampling temperature")
	flags.BoolVar(&opts.logRequests, "log-requests", opts.logRequests, "Log raw HTTP traffic to the run log")

	return cmd
}

func run(cmd *cobra.Command, envSvc *env.EnvService, opts *options) error {
	if opts.configPath != "" {
		fileCfg, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		applyFileConfig(cmd.Flags(), envSvc, opts, fileCfg)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		ModelA:      opts.modelA,
		ModelB:      opts.modelB,
		Backend:     opts.backend,
		Host:        opts.host,
		Experiments: opts.experiments,
		MaxTurns:    opts.maxTurns,
		StartWord:   opts.startWord,
		Category:    opts.category,
		Temperature: opts.temperature,
		DataDir:     opts.dataDir,
		LogsDir:     opts.logsDir,
		LogRequests: opts.logRequests,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	container.Logger.Info("Tournament started",
		"modelA", opts.modelA,
		"modelB", opts.modelB,
		"experiments", opts.experiments,
		"maxTurns", opts.maxTurns,
		"results", container.ResultsPath)

	result, err := container.Tournament.Run(ctx)
	if err != nil {
		container.Logger.Error("Tournament failed", "error", err, "played", result.Played)
		return err
	}

	container.Logger.Info("Tournament completed", "played", result.Played)
	fmt.Printf("\nResults: %s\n", container.ResultsPath)
	return nil
}

// applyFileConfig fills in options from a config file. An option already
// given on the command line or through its ARENA_* variable keeps its value,
// so precedence stays flag > env > config file > built-in default.
func applyFileConfig(flags *pflag.FlagSet, envSvc *env.EnvService, opts *options, fileCfg config.FileConfig) {
	fromFile := func(flag, envKey string) bool {
		return !flags.Changed(flag) && !envSvc.Has(envKey)
	}

	if fromFile("model-a", "ARENA_MODEL_A") && fileCfg.ModelA != "" {
		opts.modelA = fileCfg.ModelA
	}
	if fromFile("model-b", "ARENA_MODEL_B") && fileCfg.ModelB != "" {
		opts.modelB = fileCfg.ModelB
	}
	if fromFile("experiments", "ARENA_EXPERIMENTS") && fileCfg.Experiments != 0 {
		opts.experiments = fileCfg.Experiments
	}
	if fromFile("max-turns", "ARENA_MAX_TURNS") && fileCfg.MaxTurns != 0 {
		opts.maxTurns = fileCfg.MaxTurns
	}
	if fromFile("start-word", "ARENA_START_WORD") && fileCfg.StartWord != "" {
		opts.startWord = fileCfg.StartWord
	}
	if fromFile("category", "ARENA_CATEGORY") && fileCfg.Category != "" {
		opts.category = fileCfg.Category
	}
	if fromFile("host", "ARENA_HOST") && fileCfg.Host != "" {
		opts.host = fileCfg.Host
	}
	if fromFile("backend", "ARENA_BACKEND") && fileCfg.Backend != "" {
		opts.backend = fileCfg.Backend
	}
	if fromFile("data-dir", "ARENA_DATA_DIR") && fileCfg.DataDir != "" {
		opts.dataDir = fileCfg.DataDir
	}
	if fromFile("logs-dir", "ARENA_LOGS_DIR") && fileCfg.LogsDir != "" {
		opts.logsDir = fileCfg.LogsDir
	}
	if fromFile("temperature", "ARENA_TEMPERATURE") && fileCfg.Temperature != nil {
		opts.temperature = *fileCfg.Temperature
	}
}

package tournament

import (
	"context"
	"errors"
	"testing"

	"wordsnake-arena/internal/application/port/input"
	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"
)

type fakeMatch struct {
	results []entity.MatchResult
	err     error
	runs    int
}

func (m *fakeMatch) Run(ctx context.Context, experiment int) (*entity.MatchResult, error) {
	m.runs++
	if m.err != nil {
		return nil, m.err
	}
	result := m.results[(experiment-1)%len(m.results)]
	result.Experiment = experiment
	return &result, nil
}

type fakeRecorder struct {
	rows []entity.MatchResult
	err  error
}

func (r *fakeRecorder) Record(result entity.MatchResult) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, result)
	return nil
}

func (r *fakeRecorder) Close() error { return nil }

type nopSpectator struct {
	closings int
}

func (s *nopSpectator) ShowMatchStart(ctx context.Context, e int, a, b entity.Player) {}

func (s *nopSpectator) ShowSeed(ctx context.Context, word string) {}

func (s *nopSpectator) ShowTurn(ctx context.Context, turn entity.Turn) {}

func (s *nopSpectator) ShowVerdict(ctx context.Context, e int, v entity.Verdict) {}

func (s *nopSpectator) ShowClosing(ctx context.Context, played int) { s.closings++ }

type nopLogger struct {
	closed bool
}

func (l *nopLogger) Debug(msg string, args ...any) {}

func (l *nopLogger) Info(msg string, args ...any) {}

func (l *nopLogger) Warn(msg string, args ...any) {}

func (l *nopLogger) Error(msg string, args ...any) {}

func (l *nopLogger) WithField(key string, value any) output.LoggerPort { return l }

func (l *nopLogger) WithFields(fields map[string]any) output.LoggerPort { return l }

func (l *nopLogger) Close() error {
	l.closed = true
	return nil
}

func TestRun_RecordsEveryExperiment(t *testing.T) {
	m := &fakeMatch{results: []entity.MatchResult{
		{Verdict: entity.Verdict{Winner: "Model A", Reason: "B forfeited"}, Concluded: true},
	}}
	rec := &fakeRecorder{}
	spec := &nopSpectator{}

	uc := New(
		func(log output.LoggerPort) input.MatchRunner { return m },
		func(experiment int) (output.LoggerPort, error) { return &nopLogger{}, nil },
		rec, spec, &nopLogger{},
		Config{Experiments: 5},
	)

	result, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Played != 5 {
		t.Errorf("Expected 5 played, got %d", result.Played)
	}
	if len(rec.rows) != 5 {
		t.Fatalf("Expected 5 recorded rows, got %d", len(rec.rows))
	}
	for i, row := range rec.rows {
		if row.Experiment != i+1 {
			t.Errorf("Row %d: expected experiment %d, got %d", i, i+1, row.Experiment)
		}
	}
	if spec.closings != 1 {
		t.Errorf("Expected exactly one closing banner, got %d", spec.closings)
	}
}

func TestRun_ClosesExperimentLogs(t *testing.T) {
	m := &fakeMatch{results: []entity.MatchResult{{Concluded: true}}}
	var logs []*nopLogger

	uc := New(
		func(log output.LoggerPort) input.MatchRunner { return m },
		func(experiment int) (output.LoggerPort, error) {
			l := &nopLogger{}
			logs = append(logs, l)
			return l, nil
		},
		&fakeRecorder{}, &nopSpectator{}, &nopLogger{},
		Config{Experiments: 3},
	)

	if _, err := uc.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(logs) != 3 {
		t.Fatalf("Expected 3 experiment logs, got %d", len(logs))
	}
	for i, l := range logs {
		if !l.closed {
			t.Errorf("Experiment log %d was not closed", i+1)
		}
	}
}

func TestRun_MatchFailureAborts(t *testing.T) {
	m := &fakeMatch{err: errors.New("backend unreachable")}
	rec := &fakeRecorder{}

	uc := New(
		func(log output.LoggerPort) input.MatchRunner { return m },
		func(experiment int) (output.LoggerPort, error) { return &nopLogger{}, nil },
		rec, &nopSpectator{}, &nopLogger{},
		Config{Experiments: 5},
	)

	result, err := uc.Run(context.Background())
	if err == nil {
		t.Fatal("Expected an error")
	}
	if m.runs != 1 {
		t.Errorf("Expected the tournament to stop after the first failure, got %d runs", m.runs)
	}
	if result.Played != 0 || len(rec.rows) != 0 {
		t.Error("Nothing should be recorded for a failed experiment")
	}
}

func TestRun_CanceledContextStops(t *testing.T) {
	m := &fakeMatch{results: []entity.MatchResult{{Concluded: true}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := New(
		func(log output.LoggerPort) input.MatchRunner { return m },
		func(experiment int) (output.LoggerPort, error) { return &nopLogger{}, nil },
		&fakeRecorder{}, &nopSpectator{}, &nopLogger{},
		Config{Experiments: 5},
	)

	_, err := uc.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if m.runs != 0 {
		t.Errorf("Expected no matches after cancellation, got %d", m.runs)
	}
}

func TestRun_DefaultExperimentCount(t *testing.T) {
	m := &fakeMatch{results: []entity.MatchResult{{Concluded: true}}}

	uc := New(
		func(log output.LoggerPort) input.MatchRunner { return m },
		func(experiment int) (output.LoggerPort, error) { return &nopLogger{}, nil },
		&fakeRecorder{}, &nopSpectator{}, &nopLogger{},
		Config{},
	)

	result, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Played != defaultExperiments {
		t.Errorf("Expected %d experiments, got %d", defaultExperiments, result.Played)
	}
}

package match

import (
	"context"
	"fmt"
	"strings"

	"wordsnake-arena/internal/application/port/input"
	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"
	"wordsnake-arena/internal/usecase/referee"
)

const defaultMaxTurns = 200

var _ input.MatchRunner = (*UseCase)(nil)

type Config struct {
	PlayerA      entity.Player
	PlayerB      entity.Player
	SeedWord     string
	MaxTurns     int
	Temperature  float32
	SystemPrompt string
}

type UseCase struct {
	llmA      output.LLMPort
	llmB      output.LLMPort
	referee   *referee.Referee
	spectator output.SpectatorPort
	logger    output.LoggerPort
	cfg       Config
}

func New(
	llmA output.LLMPort,
	llmB output.LLMPort,
	ref *referee.Referee,
	spectator output.SpectatorPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = defaultMaxTurns
	}
	return &UseCase{
		llmA:      llmA,
		llmB:      llmB,
		referee:   ref,
		spectator: spectator,
		logger:    logger,
		cfg:       cfg,
	}
}

// Run plays one experiment to its verdict. The transcript opens with the
// rules and the seed word; seats then alternate starting with A. Seat A is
// prompted with the transcript as-is, seat B through a role-swapped view.
func (uc *UseCase) Run(ctx context.Context, experiment int) (*entity.MatchResult, error) {
	uc.logger.Debug("Match configuration",
		"modelA", uc.cfg.PlayerA.Model,
		"modelB", uc.cfg.PlayerB.Model,
		"maxTurns", uc.cfg.MaxTurns,
		"seedWord", uc.cfg.SeedWord)

	uc.spectator.ShowMatchStart(ctx, experiment, uc.cfg.PlayerA, uc.cfg.PlayerB)

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: uc.cfg.SystemPrompt},
		{Role: entity.RoleUser, Content: uc.cfg.SeedWord},
	}

	// The seed counts as seat A's turn 0 in the transcript log.
	uc.logger.Debug("Turn played",
		"experiment", experiment, "turn", 0, "seat", string(entity.SeatA), "word", uc.cfg.SeedWord)
	uc.spectator.ShowSeed(ctx, uc.cfg.SeedWord)

	result := &entity.MatchResult{Experiment: experiment}

	for i := 0; i <= uc.cfg.MaxTurns; i++ {
		seat := entity.SeatA
		llm := uc.llmA
		view := messages
		replyRole := entity.RoleAssistant
		if i%2 == 1 {
			seat = entity.SeatB
			llm = uc.llmB
			view = entity.SwapRoles(messages)
			replyRole = entity.RoleUser
		}

		resp, err := llm.Chat(ctx, output.ChatRequest{
			Messages:    view,
			Temperature: uc.cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("seat %s chat failed on turn %d: %w", seat, i+1, err)
		}

		reply := strings.TrimSpace(resp.Message.Content)
		messages = append(messages, entity.Message{Role: replyRole, Content: reply})

		turn := entity.Turn{Index: i + 1, Seat: seat, Word: reply}
		result.Turns = append(result.Turns, turn)

		uc.logger.Debug("Turn played",
			"experiment", experiment, "turn", turn.Index, "seat", string(seat), "word", reply)
		uc.spectator.ShowTurn(ctx, turn)

		if verdict, done := uc.referee.Judge(seat, reply); done {
			result.Verdict = verdict
			result.Concluded = true
			uc.logger.Info("Match concluded",
				"experiment", experiment, "winner", verdict.Winner, "reason", verdict.Reason)
			uc.spectator.ShowVerdict(ctx, experiment, verdict)
			return result, nil
		}
	}

	result.Verdict = entity.Verdict{Winner: entity.NoWinner, Reason: entity.NoConclusion}
	uc.logger.Info("Match ended without a winner", "experiment", experiment)
	uc.spectator.ShowVerdict(ctx, experiment, result.Verdict)
	return result, nil
}

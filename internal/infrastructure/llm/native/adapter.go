package native

import (
	"context"
	"fmt"

	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	ollamallm "github.com/tmc/langchaingo/llms/ollama"
)

var _ output.LLMPort = (*Adapter)(nil)

// Adapter talks to Ollama through its native API via langchaingo. Used when
// the OpenAI-compatible endpoint is not wanted (--backend native).
type Adapter struct {
	llm    *ollamallm.LLM
	model  string
	logger output.LoggerPort
}

type Config struct {
	Host   string
	Model  string
	Logger output.LoggerPort
}

func NewAdapter(cfg Config) (*Adapter, error) {
	llm, err := ollamallm.New(
		ollamallm.WithModel(cfg.Model),
		ollamallm.WithServerURL(cfg.Host),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return &Adapter{
		llm:    llm,
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	content := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		content = append(content, llms.TextParts(messageType(msg.Role), msg.Content))
	}

	resp, err := a.llm.GenerateContent(ctx, content,
		llms.WithTemperature(float64(req.Temperature)),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	if a.logger != nil {
		a.logger.Debug("Generated content",
			"model", a.model,
			"messages", len(content),
			"responseLen", len(resp.Choices[0].Content))
	}

	return &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.RoleAssistant,
			Content: resp.Choices[0].Content,
		},
	}, nil
}

func messageType(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.RoleSystem:
		return llms.ChatMessageTypeSystem
	case entity.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

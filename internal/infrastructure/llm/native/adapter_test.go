package native

import (
	"testing"

	"wordsnake-arena/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestMessageType(t *testing.T) {
	assert.Equal(t, llms.ChatMessageTypeSystem, messageType(entity.RoleSystem))
	assert.Equal(t, llms.ChatMessageTypeAI, messageType(entity.RoleAssistant))
	assert.Equal(t, llms.ChatMessageTypeHuman, messageType(entity.RoleUser))
	assert.Equal(t, llms.ChatMessageTypeHuman, messageType(entity.MessageRole("tool")))
}

func TestNewAdapter(t *testing.T) {
	adapter, err := NewAdapter(Config{
		Host:  "http://localhost:11434",
		Model: "llama3:8b-instruct-q8_0",
	})
	assert.NoError(t, err)
	assert.NotNil(t, adapter)
}

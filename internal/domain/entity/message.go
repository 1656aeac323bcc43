package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Message struct {
	Role    MessageRole
	Content string
}

// SwapRoles returns a copy of the transcript with user and assistant roles
// exchanged. System messages keep their role. Seat B is always prompted
// through this view so that each model sees its own words as "assistant"
// and the opponent's as "user".
func SwapRoles(messages []Message) []Message {
	swapped := make([]Message, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		switch role {
		case RoleUser:
			role = RoleAssistant
		case RoleAssistant:
			role = RoleUser
		}
		swapped = append(swapped, Message{
			Role:    role,
			Content: msg.Content,
		})
	}
	return swapped
}

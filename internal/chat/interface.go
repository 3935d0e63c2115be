package chat

import (
	"context"

	"obsidianlist/internal/model"
)

// UseCase defines the chat business logic surface.
type UseCase interface {
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)
	ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error)
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)
}

package repository

import (
	"context"

	"obsidianlist/internal/model"
)

// Repository defines data access for conversations and their append-only
// message logs. Single-record getters return a zero-value entity (ID == "")
// when the row does not exist, not an error.
type Repository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetConversation(ctx context.Context, id string) (model.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]model.Conversation, error)

	// RecentMessages returns the newest limit messages, oldest first.
	RecentMessages(ctx context.Context, conversationID string, limit int) ([]model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, int, error)
	AppendExchange(ctx context.Context, opt AppendExchangeOptions) (AppendExchangeResult, error)
}

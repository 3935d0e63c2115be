package usecase

import (
	"context"

	"obsidianlist/internal/chat"
	"obsidianlist/internal/chat/repository"
	"obsidianlist/internal/model"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ListConversations returns the caller's conversations, most recent first.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error) {
	return uc.repo.ListConversations(ctx, sc.UserID)
}

// ListMessages returns one page of an owned conversation's log, oldest first.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input chat.ListMessagesInput) (chat.ListMessagesOutput, error) {
	if input.ConversationID == "" {
		return chat.ListMessagesOutput{}, chat.ErrConversationNotFound
	}

	conv, err := uc.repo.GetConversation(ctx, input.ConversationID)
	if err != nil {
		return chat.ListMessagesOutput{}, err
	}
	if conv.ID == "" {
		return chat.ListMessagesOutput{}, chat.ErrConversationNotFound
	}
	if conv.UserID != sc.UserID {
		return chat.ListMessagesOutput{}, chat.ErrPermissionDenied
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	messages, total, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		ConversationID: conv.ID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return chat.ListMessagesOutput{}, err
	}

	return chat.ListMessagesOutput{
		Conversation: conv,
		Messages:     messages,
		Total:        total,
	}, nil
}

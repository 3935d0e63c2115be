package usecase

import (
	"context"
	"strings"

	"obsidianlist/internal/chat"
	"obsidianlist/internal/chat/repository"
	"obsidianlist/internal/model"
)

// SendMessage runs one exchange with the agent. The conversation row and both
// log entries are only written after the agent succeeds, so a provider
// failure leaves no partial state behind.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	var (
		conv    model.Conversation
		history []model.Message
	)
	if input.ConversationID != "" {
		existing, err := uc.repo.GetConversation(ctx, input.ConversationID)
		if err != nil {
			return chat.SendMessageOutput{}, err
		}
		if existing.ID == "" {
			return chat.SendMessageOutput{}, chat.ErrConversationNotFound
		}
		if existing.UserID != sc.UserID {
			return chat.SendMessageOutput{}, chat.ErrPermissionDenied
		}
		conv = existing

		history, err = uc.repo.RecentMessages(ctx, conv.ID, uc.historyWindow)
		if err != nil {
			return chat.SendMessageOutput{}, err
		}
	}

	exchange, err := uc.agent.ProcessMessage(ctx, sc, history, message)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.SendMessage: agent failed: %v", err)
		uc.countExchange("error")
		return chat.SendMessageOutput{}, err
	}

	if conv.ID == "" {
		created, err := uc.repo.CreateConversation(ctx, repository.CreateConversationOptions{
			UserID: sc.UserID,
			Title:  conversationTitle(message),
		})
		if err != nil {
			uc.countExchange("error")
			return chat.SendMessageOutput{}, err
		}
		conv = created
	}

	result, err := uc.repo.AppendExchange(ctx, repository.AppendExchangeOptions{
		ConversationID: conv.ID,
		UserID:         sc.UserID,
		UserContent:    message,
		ReplyContent:   exchange.Reply,
		ToolCalls:      exchange.ToolCalls,
	})
	if err != nil {
		uc.countExchange("error")
		return chat.SendMessageOutput{}, err
	}

	uc.countExchange("ok")
	return chat.SendMessageOutput{
		Conversation:     conv,
		UserMessage:      result.UserMessage,
		AssistantMessage: result.AssistantMessage,
	}, nil
}

// conversationTitle derives a title from the first message: its first 50
// characters.
func conversationTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= maxTitleLength {
		return message
	}
	return string(runes[:maxTitleLength])
}

func (uc *implUseCase) countExchange(outcome string) {
	if uc.m == nil {
		return
	}
	uc.m.ChatExchangesTotal.WithLabelValues(outcome).Inc()
}
